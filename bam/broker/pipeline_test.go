package broker_test

import (
	"os"
	"syscall"
	"time"

	"code.cloudfoundry.org/bam-broker/bam/applier"
	. "code.cloudfoundry.org/bam-broker/bam/broker"
	"code.cloudfoundry.org/bam-broker/bam/graph"
	"code.cloudfoundry.org/bam-broker/bam/rebuild"
	"code.cloudfoundry.org/bam-broker/bus"
	"code.cloudfoundry.org/bam-broker/fakes"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/tedsuo/ifrit"
)

var _ = Describe("Pipeline", func() {
	const publishInterval = 10 * time.Second

	var (
		logger    *lagertest.TestLogger
		clock     *fakeclock.FakeClock
		b         *bus.Bus
		observer  *bus.Subscription
		snapshots chan *models.ConfigurationSnapshot
		jobs      chan rebuild.Job
		reloads   chan os.Signal
		reloader  *fakes.FakeReloader
		statuses  *StatusCache
		process   ifrit.Process
		seen      []models.Message
	)

	observed := func() []models.Message {
		seen = append(seen, observer.Drain()...)
		return seen
	}

	cachedStatus := func(ref models.NodeRef) func() models.Status {
		return func() models.Status {
			s, ok := statuses.Get(ref)
			if !ok {
				return 255
			}
			return s.Status
		}
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("pipeline-test")
		clock = fakeclock.NewFakeClock(at(1000))
		b = bus.New(logger)
		observer = b.Subscribe("observer", append([]models.MessageType{models.RebuildStartType, models.RebuildEndType}, models.NodeEventTypes...)...)
		snapshots = make(chan *models.ConfigurationSnapshot, 1)
		jobs = make(chan rebuild.Job, 1)
		reloads = make(chan os.Signal, 1)
		reloader = &fakes.FakeReloader{}
		statuses = NewStatusCache(time.Minute)
		seen = nil

		engine := graph.NewEngine(logger, graph.NewRegistry(), graph.NewStateBook(), b)
		pipeline := NewPipeline(
			logger,
			clock,
			engine,
			applier.NewApplier(logger, engine),
			rebuild.NewCoordinator(logger, engine, b),
			b.Subscribe("pipeline", models.RawMessageTypes...),
			snapshots,
			jobs,
			reloads,
			reloader,
			statuses,
			publishInterval,
		)
		process = ifrit.Invoke(pipeline)

		snapshots <- activitySnapshot()
		Eventually(cachedStatus(models.ActivityRef(1))).Should(Equal(models.StatusOK))
	})

	AfterEach(func() {
		process.Signal(os.Interrupt)
		Eventually(process.Wait()).Should(Receive(BeNil()))
	})

	It("opens the timelines of the configured nodes", func() {
		Eventually(observed).Should(HaveLen(3))
		for _, msg := range seen {
			ev := msg.(*models.NodeEvent)
			Expect(ev.IsOpen()).To(BeTrue())
			Expect(ev.Start).To(Equal(at(1000)))
		}
		Expect(cachedStatus(models.AggregateRef(1))()).To(Equal(models.StatusUnknown))
	})

	It("computes raw messages and republishes statuses on tick", func() {
		clock.Increment(time.Second)
		b.Publish(&models.ServiceStatus{
			Key:     models.ServiceKey{HostID: 1, ServiceID: 1},
			State:   models.StatusCritical,
			Metrics: map[string]float64{"rta": 150},
		})

		Eventually(observed).Should(ContainElement(&models.NodeEvent{
			Owner: models.ActivityRef(1), Start: at(1001), Impact: 40, Status: models.StatusWarning,
		}))
		Expect(cachedStatus(models.ActivityRef(1))()).To(Equal(models.StatusOK))

		clock.Increment(publishInterval)
		Eventually(cachedStatus(models.ActivityRef(1))).Should(Equal(models.StatusWarning))
		Eventually(cachedStatus(models.AggregateRef(1))).Should(Equal(models.StatusWarning))
	})

	It("drops the statuses of removed nodes", func() {
		snapshots <- models.NewConfigurationSnapshot()
		Eventually(cachedStatus(models.ActivityRef(1))).Should(Equal(models.Status(255)))
		Eventually(func() int { return statuses.Len() }).Should(BeZero())
	})

	It("runs rebuild jobs", func() {
		jobs <- rebuild.Job{
			Targets: []models.NodeRef{models.ActivityRef(1)},
			From:    at(100),
			To:      at(900),
		}
		Eventually(observed).Should(ContainElement(&models.RebuildEnd{Targets: []models.NodeRef{models.ActivityRef(1)}}))
		Expect(seen).To(ContainElement(&models.RebuildStart{Targets: []models.NodeRef{models.ActivityRef(1)}, From: at(100), To: at(900)}))
	})

	It("logs failed rebuild jobs", func() {
		jobs <- rebuild.Job{Targets: []models.NodeRef{models.ActivityRef(9)}, From: at(100), To: at(900)}
		Eventually(logger.Buffer()).Should(gbytes.Say("failed-to-rebuild"))
	})

	It("asks for a configuration reload on SIGHUP", func() {
		reloads <- syscall.SIGHUP
		Eventually(reloader.ReloadCallCount).Should(Equal(1))
	})
})
