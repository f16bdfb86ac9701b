package operator

import (
	"context"
	"time"

	"code.cloudfoundry.org/bam-broker/db"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// StatusHistoryPruner removes raw statuses older than the retention. Rebuild
// windows reaching further back than the retention replay an incomplete
// history.
type StatusHistoryPruner struct {
	statusDB  db.StatusHistoryDB
	retention time.Duration
	clock     clock.Clock
	logger    lager.Logger
}

func NewStatusHistoryPruner(logger lager.Logger, clock clock.Clock, statusDB db.StatusHistoryDB, retention time.Duration) *StatusHistoryPruner {
	return &StatusHistoryPruner{
		statusDB:  statusDB,
		retention: retention,
		clock:     clock,
		logger:    logger.Session("status-history-pruner"),
	}
}

func (p *StatusHistoryPruner) Operate(ctx context.Context) {
	cutoff := p.clock.Now().Add(-p.retention)

	logger := p.logger.Session("pruning-statuses", lager.Data{"cutoff": cutoff})
	logger.Info("starting")
	defer logger.Info("completed")

	if err := p.statusDB.PruneServiceStatuses(ctx, cutoff); err != nil {
		logger.Error("failed-to-prune-statuses", err)
	}
}
