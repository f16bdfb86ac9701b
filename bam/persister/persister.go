package persister

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/bam-broker/bus"
	"code.cloudfoundry.org/bam-broker/db"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v4"
)

// PersistedTypes are the bus messages written to the databases.
var PersistedTypes = append([]models.MessageType{
	models.RebuildStartType,
	models.RebuildEndType,
	models.ServiceStatusType,
	models.HostStatusType,
}, models.NodeEventTypes...)

const initialRetryInterval = 50 * time.Millisecond

type Stats struct {
	Persisted uint64
	Dropped   uint64
}

// Persister writes node events and raw statuses taken from the bus. Writes
// are retried with an exponential back-off and dropped once maxElapsedTime
// has passed.
type Persister struct {
	logger         lager.Logger
	eventDB        db.EventDB
	statusDB       db.StatusHistoryDB
	sub            *bus.Subscription
	maxElapsedTime time.Duration

	persisted atomic.Uint64
	dropped   atomic.Uint64
}

func New(logger lager.Logger, eventDB db.EventDB, statusDB db.StatusHistoryDB, sub *bus.Subscription, maxElapsedTime time.Duration) *Persister {
	return &Persister{
		logger:         logger.Session("persister"),
		eventDB:        eventDB,
		statusDB:       statusDB,
		sub:            sub,
		maxElapsedTime: maxElapsedTime,
	}
}

func (p *Persister) Stats() Stats {
	return Stats{Persisted: p.persisted.Load(), Dropped: p.dropped.Load()}
}

func (p *Persister) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	close(ready)
	p.logger.Info("started", lager.Data{"subscription": p.sub.Name()})
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("stopped", lager.Data{"pending": p.sub.Len()})
			return nil
		case <-p.sub.Ready():
			p.Persist(ctx, p.sub.Drain())
		}
	}
}

// Persist writes msgs in order. Statuses are collected and saved in a
// single bulk insert after the other messages.
func (p *Persister) Persist(ctx context.Context, msgs []models.Message) {
	var statuses []*models.ServiceStatus
	for _, msg := range msgs {
		switch m := msg.(type) {
		case *models.NodeEvent:
			p.write(ctx, "save-event", lager.Data{"owner": m.Owner.String(), "start": m.Start, "open": m.IsOpen()}, func() error {
				return p.eventDB.SaveEvent(ctx, m)
			})
		case *models.RebuildStart:
			p.write(ctx, "delete-events", lager.Data{"targets": m.Targets, "from": m.From}, func() error {
				return p.eventDB.DeleteEvents(ctx, m.Targets, m.From)
			})
		case *models.RebuildEnd:
			p.logger.Info("rebuild-persisted", lager.Data{"targets": m.Targets})
		case *models.ServiceStatus:
			statuses = append(statuses, m)
		case *models.HostStatus:
			statuses = append(statuses, m.AsServiceStatus())
		}
	}

	if len(statuses) > 0 {
		p.write(ctx, "save-statuses", lager.Data{"count": len(statuses)}, func() error {
			return p.statusDB.SaveServiceStatusesInBulk(ctx, statuses)
		})
	}
}

func (p *Persister) write(ctx context.Context, action string, data lager.Data, op func() error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialRetryInterval
	b.MaxElapsedTime = p.maxElapsedTime

	err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), func(err error, wait time.Duration) {
		p.logger.Info("retry-"+action, lager.Data{"error": err.Error(), "wait": wait.String()})
	})
	if err != nil {
		p.dropped.Add(1)
		p.logger.Error("failed-to-"+action, err, data)
		return
	}
	p.persisted.Add(1)
}
