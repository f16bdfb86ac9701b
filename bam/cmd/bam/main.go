package main

import (
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/bam-broker/bam/applier"
	"code.cloudfoundry.org/bam-broker/bam/broker"
	"code.cloudfoundry.org/bam-broker/bam/config"
	"code.cloudfoundry.org/bam-broker/bam/graph"
	"code.cloudfoundry.org/bam-broker/bam/persister"
	"code.cloudfoundry.org/bam-broker/bam/rebuild"
	"code.cloudfoundry.org/bam-broker/bam/server"
	"code.cloudfoundry.org/bam-broker/bus"
	"code.cloudfoundry.org/bam-broker/healthendpoint"
	"code.cloudfoundry.org/bam-broker/helpers"
	"code.cloudfoundry.org/bam-broker/models"
	"code.cloudfoundry.org/bam-broker/operator"
	"code.cloudfoundry.org/bam-broker/startup"
	"code.cloudfoundry.org/bam-broker/sync"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
)

const (
	namespace     = "bam"
	subSystem     = "broker"
	lockTableName = "bam_broker_lock"
)

func main() {
	conf, logger := startup.Bootstrap("bam-broker", config.LoadConfig, func(c *config.Config) *helpers.LoggingConfig {
		return &c.Logging
	})

	bClock := clock.NewClock()

	configDB := startup.CreateConfigDB(conf.DB.ConfigDB, logger)
	eventDB := startup.CreateEventDB(conf.DB.EventDB, logger)
	statusDB := startup.CreateStatusHistoryDB(conf.DB.StatusDB, logger)
	defer startup.CleanupDatabases(configDB, eventDB, statusDB)

	messageBus := bus.New(logger)
	engine := graph.NewEngine(logger, graph.NewRegistry(), graph.NewStateBook(), messageBus)
	statuses := broker.NewStatusCache(conf.StatusCache.TTL)

	history := rebuild.NewHistoryStore(logger, conf.Rebuild.HistoryCacheSize, statusDB.DB,
		messageBus.Subscribe("history", models.ServiceStatusType, models.HostStatusType))
	requester := rebuild.NewRequester(logger, bClock, history, conf.Rebuild.QueueSize)

	persistSub := messageBus.Subscribe(conf.Persister.QueueName, persister.PersistedTypes...)
	eventPersister := persister.New(logger, eventDB.DB, statusDB.DB, persistSub, conf.Persister.MaxElapsedTime)

	rawSub := messageBus.Subscribe("pipeline", models.RawMessageTypes...)
	poller := applier.NewConfigPoller(logger, bClock, conf.ConfigPoller.Interval, configDB.DB)

	reloads := make(chan os.Signal, 1)
	signal.Notify(reloads, syscall.SIGHUP)

	pipeline := broker.NewPipeline(
		logger, bClock, engine,
		applier.NewApplier(logger, engine),
		rebuild.NewCoordinator(logger, engine, messageBus),
		rawSub, poller.Snapshots(), requester.Jobs(), reloads, poller,
		statuses, conf.StatusCache.PublishInterval,
	)

	httpStatusCollector := healthendpoint.NewHTTPStatusCollector(namespace, subSystem)
	promRegistry := prometheus.NewRegistry()
	healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{
		healthendpoint.NewBrokerCollector(namespace, subSystem, func() healthendpoint.BrokerStats {
			engineStats := engine.Stats()
			persisterStats := eventPersister.Stats()
			return healthendpoint.BrokerStats{
				Messages:       engineStats.Messages,
				Recomputations: engineStats.Recomputations,
				Events:         engineStats.Events,
				Cycles:         engineStats.Cycles,
				Persisted:      persisterStats.Persisted,
				Dropped:        persisterStats.Dropped,
				PendingRaw:     rawSub.Len(),
				PendingWrites:  persistSub.Len(),
				CachedNodes:    statuses.Len(),
			}
		}),
		healthendpoint.NewDatabaseStatusCollector(namespace, subSystem, "configDB", configDB.DB),
		healthendpoint.NewDatabaseStatusCollector(namespace, subSystem, "eventDB", eventDB.DB),
		healthendpoint.NewDatabaseStatusCollector(namespace, subSystem, "statusDB", statusDB.DB),
		httpStatusCollector,
	}, true, logger.Session("bam-prometheus"))

	checkers := []healthendpoint.Checker{
		healthendpoint.DbChecker("config_db", configDB.DB),
		healthendpoint.DbChecker("event_db", eventDB.DB),
		healthendpoint.DbChecker("status_db", statusDB.DB),
	}

	var builders []startup.MemberBuilder
	if conf.DBLock.Enabled {
		lockDB := startup.CreateLockDB(conf.DB.LockDB, lockTableName, logger)
		defer startup.CleanupDatabases(lockDB)

		dbLock := sync.NewDatabaseLock(logger, bClock, lockDB.DB, lockOwner(conf.DBLock.Owner, logger),
			conf.DBLock.TTL, conf.DBLock.RetryInterval)
		checkers = append(checkers, healthendpoint.ProcessChecker("db_lock", dbLock.Held))
		builders = append(builders, startup.Runner("db_lock", dbLock))
	}

	builders = append([]startup.MemberBuilder{
		startup.Member("health_server", func() (ifrit.Runner, error) {
			return healthendpoint.NewServerWithBasicAuth(conf.Health, checkers, logger, promRegistry)
		}),
	}, builders...)

	builders = append(builders,
		startup.Runner("history_store", history),
		startup.Runner("persister", eventPersister),
		startup.Runner("config_poller", pollerRunner(poller)),
		startup.Runner("pipeline", pipeline),
		startup.Member("http_server", func() (ifrit.Runner, error) {
			return server.NewServer(logger, conf.Server, statuses, eventDB.DB, requester, messageBus, httpStatusCollector)
		}),
		startup.Runner("status_pruner", operator.NewRunner(logger, bClock, conf.StatusHistory.PruneInterval,
			operator.NewStatusHistoryPruner(logger, bClock, statusDB.DB, conf.StatusHistory.Retention))),
	)

	startup.StartService(logger, builders...)
}

func pollerRunner(poller *applier.ConfigPoller) ifrit.Runner {
	return ifrit.RunFunc(func(signals <-chan os.Signal, ready chan<- struct{}) error {
		poller.Start()
		close(ready)
		<-signals
		poller.Stop()
		return nil
	})
}

func lockOwner(configured string, logger lager.Logger) string {
	if configured != "" {
		return configured
	}
	hostname, err := os.Hostname()
	startup.ExitOnError(err, logger, "failed-to-get-hostname")
	return hostname
}
