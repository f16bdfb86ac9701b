package applier

import (
	"context"
	"time"

	"code.cloudfoundry.org/bam-broker/db"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// ConfigPoller loads the configuration snapshot on start, on every tick and
// on demand. Only the latest snapshot is kept for the consumer.
type ConfigPoller struct {
	logger    lager.Logger
	clock     clock.Clock
	interval  time.Duration
	configDB  db.ConfigDB
	snapshots chan *models.ConfigurationSnapshot
	reload    chan struct{}
	doneChan  chan bool
}

func NewConfigPoller(logger lager.Logger, clock clock.Clock, interval time.Duration, configDB db.ConfigDB) *ConfigPoller {
	return &ConfigPoller{
		logger:    logger.Session("config-poller"),
		clock:     clock,
		interval:  interval,
		configDB:  configDB,
		snapshots: make(chan *models.ConfigurationSnapshot, 1),
		reload:    make(chan struct{}, 1),
		doneChan:  make(chan bool),
	}
}

func (p *ConfigPoller) Snapshots() <-chan *models.ConfigurationSnapshot {
	return p.snapshots
}

// Reload asks for an immediate poll.
func (p *ConfigPoller) Reload() {
	select {
	case p.reload <- struct{}{}:
	default:
	}
}

func (p *ConfigPoller) Start() {
	go p.startSnapshotRetrieve()
	p.logger.Info("started", lager.Data{"interval": p.interval})
}

func (p *ConfigPoller) Stop() {
	close(p.doneChan)
	p.logger.Info("stopped")
}

func (p *ConfigPoller) startSnapshotRetrieve() {
	tick := p.clock.NewTicker(p.interval)
	defer tick.Stop()

	for {
		if snapshot, err := p.retrieveSnapshot(); err == nil {
			p.deliver(snapshot)
		}

		select {
		case <-p.doneChan:
			return
		case <-tick.C():
		case <-p.reload:
			p.logger.Info("reload-requested")
		}
	}
}

func (p *ConfigPoller) retrieveSnapshot() (*models.ConfigurationSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	snapshot, err := p.configDB.RetrieveSnapshot(ctx)
	if err != nil {
		p.logger.Error("retrieve-snapshot", err)
		return nil, err
	}
	p.logger.Debug("snapshot-retrieved", lager.Data{"size": snapshot.Size()})
	return snapshot, nil
}

// deliver replaces a snapshot the consumer has not picked up yet.
func (p *ConfigPoller) deliver(snapshot *models.ConfigurationSnapshot) {
	for {
		select {
		case p.snapshots <- snapshot:
			return
		default:
		}
		select {
		case <-p.snapshots:
			p.logger.Debug("drop-stale-snapshot")
		default:
		}
	}
}
