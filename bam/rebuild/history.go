package rebuild

import (
	"context"
	"os"
	"sort"
	"time"

	"code.cloudfoundry.org/bam-broker/bus"
	"code.cloudfoundry.org/bam-broker/collection"
	"code.cloudfoundry.org/bam-broker/db"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
)

// HistoryStore answers status history queries from recent statuses kept in
// memory, falling back to the status database when the memory cache does
// not reach back far enough.
type HistoryStore struct {
	logger   lager.Logger
	cache    *collection.TSDCache[*models.ServiceStatus]
	statusDB db.StatusHistoryDB
	sub      *bus.Subscription
}

func NewHistoryStore(logger lager.Logger, capacity int, statusDB db.StatusHistoryDB, sub *bus.Subscription) *HistoryStore {
	return &HistoryStore{
		logger:   logger.Session("history-store"),
		cache:    collection.NewTSDCache[*models.ServiceStatus](capacity),
		statusDB: statusDB,
		sub:      sub,
	}
}

func (h *HistoryStore) Put(msg models.Message) {
	switch m := msg.(type) {
	case *models.ServiceStatus:
		h.cache.Put(m)
	case *models.HostStatus:
		h.cache.Put(m.AsServiceStatus())
	}
}

func (h *HistoryStore) QueryStatuses(ctx context.Context, start, end time.Time) ([]*models.ServiceStatus, error) {
	if statuses, hit := h.cache.Query(start.UnixNano(), end.UnixNano(), nil); hit {
		h.logger.Debug("query-cache-hit", lager.Data{"start": start, "end": end, "count": len(statuses)})
		return statuses, nil
	}

	statuses, err := h.statusDB.RetrieveServiceStatuses(ctx, start, end)
	if err != nil {
		h.logger.Error("query-status-db", err, lager.Data{"start": start, "end": end})
		return nil, err
	}
	return statuses, nil
}

// QueryLatestStatuses returns the last status of every item seen before the
// given time, ordered by key. The database is always asked since only it
// knows items that went quiet; statuses still in memory and newer than the
// persisted ones override them.
func (h *HistoryStore) QueryLatestStatuses(ctx context.Context, before time.Time) ([]*models.ServiceStatus, error) {
	persisted, err := h.statusDB.RetrieveLatestServiceStatuses(ctx, before)
	if err != nil {
		h.logger.Error("query-latest-status-db", err, lager.Data{"before": before})
		return nil, err
	}

	latest := make(map[models.ServiceKey]*models.ServiceStatus, len(persisted))
	for _, s := range persisted {
		latest[s.Key] = s
	}
	recent, _ := h.cache.Query(0, before.UnixNano(), nil)
	for _, s := range recent {
		if prev, ok := latest[s.Key]; ok && prev.Timestamp.After(s.Timestamp) {
			continue
		}
		latest[s.Key] = s
	}

	statuses := make([]*models.ServiceStatus, 0, len(latest))
	for _, s := range latest {
		statuses = append(statuses, s)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Key.Less(statuses[j].Key) })
	return statuses, nil
}

// Run feeds the cache from the bus subscription until signalled.
func (h *HistoryStore) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	close(ready)
	h.logger.Info("started")
	for {
		select {
		case <-signals:
			h.logger.Info("stopped")
			return nil
		case <-h.sub.Ready():
			for _, msg := range h.sub.Drain() {
				h.Put(msg)
			}
		}
	}
}
