package rebuild_test

import (
	"time"

	"code.cloudfoundry.org/bam-broker/bam/graph"
	. "code.cloudfoundry.org/bam-broker/bam/rebuild"
	"code.cloudfoundry.org/bam-broker/fakes"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type boundary struct {
	Start  time.Time
	End    *time.Time
	Impact float64
	Status models.Status
}

func boundaries(events []*models.NodeEvent) []boundary {
	b := make([]boundary, 0, len(events))
	for _, ev := range events {
		b = append(b, boundary{Start: ev.Start, End: ev.End, Impact: ev.Impact, Status: ev.Status})
	}
	return b
}

var _ = Describe("Coordinator", func() {
	var (
		logger      *lagertest.TestLogger
		sink        *fakes.FakeEventSink
		registry    *graph.Registry
		engine      *graph.Engine
		coordinator *Coordinator
		job         Job
		activity    = models.ActivityRef(1)
	)

	published := func(from int) []models.Message {
		var msgs []models.Message
		for i := from; i < sink.PublishCallCount(); i++ {
			msgs = append(msgs, sink.PublishArgsForCall(i))
		}
		return msgs
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("coordinator-test")
		sink = &fakes.FakeEventSink{}
		registry = graph.NewRegistry()
		engine = graph.NewEngine(logger, registry, graph.NewStateBook(), sink)
		coordinator = NewCoordinator(logger, engine, sink)

		registry.Insert(graph.NewActivity(logger, &models.ActivityConfig{ID: 1, Rule: models.RuleSum, Warning: 30, Critical: 60}))
		registry.Insert(graph.NewIndicator(logger, &models.IndicatorConfig{
			ID: 1, ActivityID: 1, ImpactCritical: 40,
			Source: models.IndicatorSource{Type: models.SourceService, Service: models.ServiceKey{HostID: 1, ServiceID: 1}},
		}))
		registry.Insert(graph.NewIndicator(logger, &models.IndicatorConfig{
			ID: 2, ActivityID: 1, ImpactCritical: 30,
			Source: models.IndicatorSource{Type: models.SourceService, Service: models.ServiceKey{HostID: 1, ServiceID: 2}},
		}))
		engine.Refresh([]models.NodeRef{models.IndicatorRef(1), models.IndicatorRef(2), activity}, at(0))

		job = Job{
			Targets: []models.NodeRef{activity},
			From:    at(50),
			To:      at(500),
			History: []*models.ServiceStatus{
				status(1, 1, models.StatusOK, 300),
				status(1, 2, models.StatusCritical, 200),
				status(1, 1, models.StatusCritical, 100),
				status(1, 1, models.StatusCritical, 700),
			},
		}
	})

	It("replays the history into a gap-free timeline", func() {
		events, err := coordinator.Rebuild(job)
		Expect(err).NotTo(HaveOccurred())

		end := func(sec int64) *time.Time { t := at(sec); return &t }
		Expect(boundaries(events)).To(Equal([]boundary{
			{Start: at(50), Impact: 0, Status: models.StatusOK},
			{Start: at(50), End: end(100), Impact: 0, Status: models.StatusOK},
			{Start: at(100), Impact: 40, Status: models.StatusWarning},
			{Start: at(100), End: end(200), Impact: 40, Status: models.StatusWarning},
			{Start: at(200), Impact: 70, Status: models.StatusCritical},
			{Start: at(200), End: end(300), Impact: 70, Status: models.StatusCritical},
			{Start: at(300), Impact: 30, Status: models.StatusWarning},
		}))
		for _, ev := range events {
			Expect(ev.Owner).To(Equal(activity))
		}
	})

	It("produces identical boundaries when run twice", func() {
		first, err := coordinator.Rebuild(job)
		Expect(err).NotTo(HaveOccurred())
		second, err := coordinator.Rebuild(job)
		Expect(err).NotTo(HaveOccurred())
		Expect(boundaries(second)).To(Equal(boundaries(first)))
	})

	It("brackets the events with rebuild markers", func() {
		before := sink.PublishCallCount()
		events, err := coordinator.Rebuild(job)
		Expect(err).NotTo(HaveOccurred())

		msgs := published(before)
		Expect(msgs[0]).To(Equal(&models.RebuildStart{Targets: []models.NodeRef{activity}, From: at(50), To: at(500)}))
		Expect(msgs[len(msgs)-1]).To(Equal(&models.RebuildEnd{Targets: []models.NodeRef{activity}}))
		for i, ev := range events {
			Expect(msgs[1+i]).To(BeIdenticalTo(ev))
		}
	})

	Context("splicing into the live timeline", func() {
		It("keeps the replayed open event when the live value matches", func() {
			engine.Process(status(1, 2, models.StatusCritical, 600), at(600))
			before := sink.PublishCallCount()

			events, err := coordinator.Rebuild(job)
			Expect(err).NotTo(HaveOccurred())
			Expect(published(before)).To(HaveLen(len(events) + 2))

			n, _ := registry.Lookup(activity)
			Expect(n.Tracker().Current().Start).To(Equal(at(300)))
			Expect(n.Tracker().Current().Status).To(Equal(models.StatusWarning))
		})

		It("keeps the live event start when the live node changed after the window", func() {
			engine.Process(status(1, 1, models.StatusCritical, 600), at(600))
			engine.Process(status(1, 2, models.StatusCritical, 600), at(600))
			before := sink.PublishCallCount()

			events, err := coordinator.Rebuild(job)
			Expect(err).NotTo(HaveOccurred())

			msgs := published(before)
			Expect(msgs).To(HaveLen(len(events) + 4))
			closed := msgs[len(msgs)-3].(*models.NodeEvent)
			reopened := msgs[len(msgs)-2].(*models.NodeEvent)
			Expect(closed.Start).To(Equal(at(300)))
			Expect(*closed.End).To(Equal(at(600)))
			Expect(reopened.Start).To(Equal(at(600)))
			Expect(reopened.Status).To(Equal(models.StatusCritical))

			n, _ := registry.Lookup(activity)
			Expect(n.Tracker().Current().Start).To(Equal(at(600)))
			Expect(n.Tracker().Current().Impact).To(Equal(70.0))
		})

		It("splices at the live event start when the history missed a change inside the window", func() {
			engine.Process(status(1, 1, models.StatusCritical, 250), at(250))
			job.History = []*models.ServiceStatus{status(1, 2, models.StatusCritical, 200)}
			before := sink.PublishCallCount()

			events, err := coordinator.Rebuild(job)
			Expect(err).NotTo(HaveOccurred())

			msgs := published(before)
			Expect(msgs).To(HaveLen(len(events) + 4))
			closed := msgs[len(msgs)-3].(*models.NodeEvent)
			reopened := msgs[len(msgs)-2].(*models.NodeEvent)
			Expect(closed.Start).To(Equal(at(200)))
			Expect(*closed.End).To(Equal(at(250)))
			Expect(reopened.Start).To(Equal(at(250)))
			Expect(reopened.Impact).To(Equal(40.0))
		})

		It("closes the replayed event at the window end when the live change predates it", func() {
			engine.Process(status(1, 1, models.StatusCritical, 150), at(150))
			job.History = []*models.ServiceStatus{status(1, 2, models.StatusCritical, 200)}
			before := sink.PublishCallCount()

			events, err := coordinator.Rebuild(job)
			Expect(err).NotTo(HaveOccurred())

			msgs := published(before)
			Expect(msgs).To(HaveLen(len(events) + 4))
			closed := msgs[len(msgs)-3].(*models.NodeEvent)
			reopened := msgs[len(msgs)-2].(*models.NodeEvent)
			Expect(closed.Start).To(Equal(at(200)))
			Expect(*closed.End).To(Equal(at(500)))
			Expect(reopened.Start).To(Equal(at(500)))
			Expect(reopened.Impact).To(Equal(40.0))
		})
	})

	Context("seeding the replay", func() {
		BeforeEach(func() {
			for id, key := range map[uint32]models.ServiceKey{1: {HostID: 1, ServiceID: 1}, 2: {HostID: 1, ServiceID: 2}} {
				registry.Insert(graph.NewIndicator(logger, &models.IndicatorConfig{
					ID: id, ActivityID: 1, ImpactCritical: 40, ImpactUnknown: 50,
					Source: models.IndicatorSource{Type: models.SourceService, Service: key},
				}))
			}
			engine.Refresh([]models.NodeRef{models.IndicatorRef(1), models.IndicatorRef(2)}, at(1))
			job.History = []*models.ServiceStatus{status(1, 1, models.StatusCritical, 100)}
		})

		It("starts from the statuses known before the window", func() {
			job.Seed = []*models.ServiceStatus{
				status(1, 1, models.StatusOK, 10),
				status(1, 2, models.StatusOK, 20),
			}

			events, err := coordinator.Rebuild(job)
			Expect(err).NotTo(HaveOccurred())
			Expect(events[0].Start).To(Equal(at(50)))
			Expect(events[0].Impact).To(Equal(0.0))
			Expect(events[0].Status).To(Equal(models.StatusOK))
			Expect(events[len(events)-1].Start).To(Equal(at(100)))
			Expect(events[len(events)-1].Impact).To(Equal(40.0))
		})

		It("treats items without a status before the window as unknown", func() {
			job.Seed = []*models.ServiceStatus{status(1, 1, models.StatusOK, 10)}

			events, err := coordinator.Rebuild(job)
			Expect(err).NotTo(HaveOccurred())
			Expect(events[0].Impact).To(Equal(50.0))
			Expect(events[0].Status).To(Equal(models.StatusWarning))
		})

		It("ignores seed statuses inside the window", func() {
			job.Seed = []*models.ServiceStatus{
				status(1, 1, models.StatusOK, 10),
				status(1, 2, models.StatusOK, 60),
			}

			events, err := coordinator.Rebuild(job)
			Expect(err).NotTo(HaveOccurred())
			Expect(events[0].Impact).To(Equal(50.0))
		})
	})

	Context("targets", func() {
		It("skips unknown targets and other kinds", func() {
			job.Targets = []models.NodeRef{models.ActivityRef(99), models.IndicatorRef(1), activity, activity}
			events, err := coordinator.Rebuild(job)
			Expect(err).NotTo(HaveOccurred())
			Expect(events).NotTo(BeEmpty())
			Expect(sink.PublishArgsForCall(sink.PublishCallCount() - 1)).To(Equal(&models.RebuildEnd{Targets: []models.NodeRef{activity}}))
		})

		It("fails without any live target", func() {
			job.Targets = []models.NodeRef{models.ActivityRef(99)}
			_, err := coordinator.Rebuild(job)
			Expect(err).To(MatchError(ErrNoTargets))
		})

		It("fails on an empty window", func() {
			job.To = job.From
			_, err := coordinator.Rebuild(job)
			Expect(err).To(MatchError(ErrInvalidWindow))
		})
	})
})
