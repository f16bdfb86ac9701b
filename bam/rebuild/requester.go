package rebuild

import (
	"context"
	"time"

	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

type HistoryQuerier interface {
	QueryStatuses(ctx context.Context, start, end time.Time) ([]*models.ServiceStatus, error)
	QueryLatestStatuses(ctx context.Context, before time.Time) ([]*models.ServiceStatus, error)
}

// Requester turns rebuild requests into jobs for the pipeline. Fetching the
// history happens on the caller's goroutine.
type Requester struct {
	logger  lager.Logger
	clock   clock.Clock
	history HistoryQuerier
	jobs    chan Job
}

func NewRequester(logger lager.Logger, clock clock.Clock, history HistoryQuerier, queueSize int) *Requester {
	return &Requester{
		logger:  logger.Session("rebuild-requester"),
		clock:   clock,
		history: history,
		jobs:    make(chan Job, queueSize),
	}
}

func (r *Requester) Jobs() <-chan Job {
	return r.jobs
}

// Request queues a rebuild of targets from the given time up to now. A
// rebuild never stops in the past: the live timeline past the window would
// otherwise be deleted with nothing replayed in its place.
func (r *Requester) Request(ctx context.Context, targets []models.NodeRef, from time.Time) error {
	if len(targets) == 0 {
		return ErrNoTargets
	}
	to := r.clock.Now()
	if !to.After(from) {
		return ErrInvalidWindow
	}
	if len(r.jobs) == cap(r.jobs) {
		return ErrBusy
	}

	seed, err := r.history.QueryLatestStatuses(ctx, from)
	if err != nil {
		return err
	}
	history, err := r.history.QueryStatuses(ctx, from, to)
	if err != nil {
		return err
	}

	job := Job{Targets: targets, From: from, To: to, Seed: seed, History: history}
	select {
	case r.jobs <- job:
		r.logger.Info("queued", lager.Data{"targets": targets, "from": from, "to": to, "seed": len(seed), "records": len(history)})
		return nil
	default:
		return ErrBusy
	}
}
