package operator

import (
	"context"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

type Operator interface {
	Operate(ctx context.Context)
}

// Runner calls its operator once on start and then on every interval. A
// tick that arrives while the previous run is still going is skipped.
type Runner struct {
	operator Operator
	interval time.Duration
	clock    clock.Clock
	logger   lager.Logger
}

func NewRunner(logger lager.Logger, clock clock.Clock, interval time.Duration, operator Operator) *Runner {
	return &Runner{
		operator: operator,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

func (r *Runner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()
	close(ready)
	r.logger.Info("started", lager.Data{"interval": r.interval})

	running := make(chan struct{}, 1)
	operate := func() {
		select {
		case running <- struct{}{}:
			go func() {
				defer func() { <-running }()
				r.operator.Operate(ctx)
			}()
		default:
			r.logger.Info("skipped-overlapping-run")
		}
	}

	operate()
	for {
		select {
		case <-signals:
			r.logger.Info("stopped")
			return nil
		case <-ticker.C():
			operate()
		}
	}
}
