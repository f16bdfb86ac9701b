package broker

import (
	"os"
	"time"

	"code.cloudfoundry.org/bam-broker/bam/applier"
	"code.cloudfoundry.org/bam-broker/bam/graph"
	"code.cloudfoundry.org/bam-broker/bam/rebuild"
	"code.cloudfoundry.org/bam-broker/bus"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

type Reloader interface {
	Reload()
}

var publishedKinds = []models.NodeKind{models.KindIndicator, models.KindActivity, models.KindAggregate}

// Pipeline is the only goroutine touching the graph. It processes raw
// monitoring messages, configuration snapshots and rebuild jobs one at a
// time.
type Pipeline struct {
	logger          lager.Logger
	clock           clock.Clock
	engine          *graph.Engine
	applier         *applier.Applier
	coordinator     *rebuild.Coordinator
	raw             *bus.Subscription
	snapshots       <-chan *models.ConfigurationSnapshot
	jobs            <-chan rebuild.Job
	reloads         <-chan os.Signal
	reloader        Reloader
	statuses        *StatusCache
	publishInterval time.Duration
}

func NewPipeline(
	logger lager.Logger,
	clock clock.Clock,
	engine *graph.Engine,
	applier *applier.Applier,
	coordinator *rebuild.Coordinator,
	raw *bus.Subscription,
	snapshots <-chan *models.ConfigurationSnapshot,
	jobs <-chan rebuild.Job,
	reloads <-chan os.Signal,
	reloader Reloader,
	statuses *StatusCache,
	publishInterval time.Duration,
) *Pipeline {
	return &Pipeline{
		logger:          logger.Session("pipeline"),
		clock:           clock,
		engine:          engine,
		applier:         applier,
		coordinator:     coordinator,
		raw:             raw,
		snapshots:       snapshots,
		jobs:            jobs,
		reloads:         reloads,
		reloader:        reloader,
		statuses:        statuses,
		publishInterval: publishInterval,
	}
}

func (p *Pipeline) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ticker := p.clock.NewTicker(p.publishInterval)
	defer ticker.Stop()

	close(ready)
	p.logger.Info("started")
	for {
		select {
		case <-signals:
			p.logger.Info("stopped", lager.Data{"pending": p.raw.Len()})
			return nil
		case <-p.raw.Ready():
			for _, msg := range p.raw.Drain() {
				p.engine.Process(msg, p.clock.Now())
			}
		case snapshot := <-p.snapshots:
			p.applySnapshot(snapshot)
		case job := <-p.jobs:
			p.rebuild(job)
		case sig := <-p.reloads:
			p.logger.Info("reload-requested", lager.Data{"signal": sig.String()})
			p.reloader.Reload()
		case <-ticker.C():
			p.publishStatuses()
		}
	}
}

func (p *Pipeline) applySnapshot(snapshot *models.ConfigurationSnapshot) {
	now := p.clock.Now()
	result := p.applier.Apply(snapshot, now)
	p.engine.Refresh(result.Touched, now)

	for _, ref := range result.Removed {
		p.statuses.Remove(ref)
	}
	p.publishStatuses()
	p.logger.Info("applied-snapshot", lager.Data{
		"created":  len(result.Created),
		"patched":  len(result.Patched),
		"removed":  len(result.Removed),
		"degraded": len(result.Degraded),
	})
}

func (p *Pipeline) rebuild(job rebuild.Job) {
	events, err := p.coordinator.Rebuild(job)
	if err != nil {
		p.logger.Error("failed-to-rebuild", err, lager.Data{"targets": job.Targets, "from": job.From, "to": job.To})
		return
	}
	p.publishStatuses()
	p.logger.Info("rebuilt", lager.Data{"targets": job.Targets, "events": len(events)})
}

func (p *Pipeline) publishStatuses() {
	registry := p.engine.Registry()
	for _, kind := range publishedKinds {
		for _, n := range registry.Nodes(kind) {
			p.statuses.Set(StatusOf(n))
		}
	}
}
