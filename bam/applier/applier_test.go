package applier_test

import (
	. "code.cloudfoundry.org/bam-broker/bam/applier"
	"code.cloudfoundry.org/bam-broker/bam/graph"
	"code.cloudfoundry.org/bam-broker/fakes"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("Applier", func() {
	var (
		logger   *lagertest.TestLogger
		sink     *fakes.FakeEventSink
		registry *graph.Registry
		engine   *graph.Engine
		applier  *Applier
		snapshot *models.ConfigurationSnapshot
		result   Result
	)

	apply := func(s *models.ConfigurationSnapshot, sec int64) Result {
		r := applier.Apply(s, at(sec))
		engine.Refresh(r.Touched, at(sec))
		return r
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("applier-test")
		sink = &fakes.FakeEventSink{}
		registry = graph.NewRegistry()
		engine = graph.NewEngine(logger, registry, graph.NewStateBook(), sink)
		applier = NewApplier(logger, engine)
		snapshot = baseSnapshot()
		result = apply(snapshot, 0)
	})

	It("creates every configured node", func() {
		Expect(result.Created).To(ConsistOf(
			models.PredicateRef(1), models.ActivityRef(1),
			models.IndicatorRef(1), models.IndicatorRef(2), models.IndicatorRef(3),
		))
		Expect(result.Patched).To(BeEmpty())
		Expect(result.Removed).To(BeEmpty())
		Expect(result.Degraded).To(BeEmpty())
		Expect(registry.Len(models.KindIndicator)).To(Equal(3))
	})

	It("opens one event per tracked node", func() {
		events := publishedEvents(sink)
		Expect(events).To(HaveLen(4))
		for _, ev := range events {
			Expect(ev.IsOpen()).To(BeTrue())
			Expect(ev.Start).To(Equal(at(0)))
		}
	})

	It("changes nothing when the same snapshot is applied again", func() {
		published := sink.PublishCallCount()
		again := apply(baseSnapshot(), 50)
		Expect(again.Created).To(BeEmpty())
		Expect(again.Patched).To(BeEmpty())
		Expect(again.Removed).To(BeEmpty())
		Expect(again.Touched).To(BeEmpty())
		Expect(again.Changed()).To(BeFalse())
		Expect(sink.PublishCallCount()).To(Equal(published))
	})

	Context("patching an indicator", func() {
		BeforeEach(func() {
			engine.Process(&models.ServiceStatus{Key: models.ServiceKey{HostID: 1, ServiceID: 1}, State: models.StatusCritical, Timestamp: at(10)}, at(10))
			engine.Process(&models.ServiceStatus{Key: models.ServiceKey{HostID: 1, ServiceID: 2}, State: models.StatusCritical, Timestamp: at(10)}, at(10))
		})

		It("emits nothing by itself and updates the activity on refresh", func() {
			activity, _ := registry.Lookup(models.ActivityRef(1))
			Expect(activity.Result().Status).To(Equal(models.StatusWarning))
			indicator, _ := registry.Lookup(models.IndicatorRef(1))

			published := sink.PublishCallCount()
			changed := baseSnapshot()
			changed.Indicators[1].ImpactCritical = 40
			r := applier.Apply(changed, at(20))

			Expect(r.Patched).To(Equal([]models.NodeRef{models.IndicatorRef(1)}))
			Expect(sink.PublishCallCount()).To(Equal(published))
			patched, _ := registry.Lookup(models.IndicatorRef(1))
			Expect(patched).To(BeIdenticalTo(indicator))
			Expect(r.Touched).To(ContainElements(models.IndicatorRef(1), models.ActivityRef(1)))

			engine.Refresh(r.Touched, at(20))
			Expect(activity.Result().Impact).To(Equal(65.0))
			Expect(activity.Result().Status).To(Equal(models.StatusCritical))

			events := eventsOf(publishedEvents(sink)[published:], models.ActivityRef(1))
			Expect(events).To(HaveLen(2))
			Expect(*events[0].End).To(Equal(at(20)))
			Expect(events[1].Start).To(Equal(at(20)))
		})

		It("moves an indicator to another activity", func() {
			changed := baseSnapshot()
			changed.Activities[2] = &models.ActivityConfig{ID: 2, Rule: models.RuleSum, Warning: 10, Critical: 20}
			changed.Indicators[1].ActivityID = 2
			apply(changed, 20)

			first, _ := registry.Lookup(models.ActivityRef(1))
			second, _ := registry.Lookup(models.ActivityRef(2))
			Expect(first.Result().Impact).To(Equal(25.0))
			Expect(second.Result().Impact).To(Equal(25.0))
			Expect(second.Result().Status).To(Equal(models.StatusCritical))
		})
	})

	Context("removing an activity", func() {
		var published int

		BeforeEach(func() {
			published = sink.PublishCallCount()
			changed := baseSnapshot()
			delete(changed.Activities, 1)
			result = apply(changed, 30)
		})

		It("closes its open event at the removal time", func() {
			Expect(result.Removed).To(Equal([]models.NodeRef{models.ActivityRef(1)}))
			events := eventsOf(publishedEvents(sink)[published:], models.ActivityRef(1))
			Expect(events).To(HaveLen(1))
			Expect(events[0].IsOpen()).To(BeFalse())
			Expect(*events[0].End).To(Equal(at(30)))
			Expect(events[0].Start).To(Equal(at(0)))
		})

		It("degrades the orphaned indicators", func() {
			Expect(result.Degraded).To(ConsistOf(models.IndicatorRef(1), models.IndicatorRef(2), models.IndicatorRef(3)))
			Eventually(logger.Buffer()).Should(gbytes.Say("degraded-node"))
		})

		It("starts a new timeline from bootstrap when it comes back", func() {
			published = sink.PublishCallCount()
			result = apply(baseSnapshot(), 40)
			Expect(result.Created).To(Equal([]models.NodeRef{models.ActivityRef(1)}))

			events := eventsOf(publishedEvents(sink)[published:], models.ActivityRef(1))
			Expect(events).To(HaveLen(1))
			Expect(events[0].IsOpen()).To(BeTrue())
			Expect(events[0].Start).To(Equal(at(40)))
			Expect(result.Degraded).To(BeEmpty())
		})
	})

	Context("invalid configuration", func() {
		It("degrades a predicate with an unknown item", func() {
			broken := baseSnapshot()
			broken.Predicates[1].Expression = `state("db", "mysql") == OK`
			result = apply(broken, 10)

			Expect(result.Patched).To(Equal([]models.NodeRef{models.PredicateRef(1)}))
			Expect(result.Degraded).To(Equal([]models.NodeRef{models.PredicateRef(1)}))
			indicator, _ := registry.Lookup(models.IndicatorRef(3))
			Expect(indicator.Result().Status).To(Equal(models.StatusUnknown))
		})

		It("degrades indicators with unknown sources and applies the rest", func() {
			broken := baseSnapshot()
			broken.Indicators[4] = &models.IndicatorConfig{ID: 4, ActivityID: 1, Source: models.IndicatorSource{Type: models.SourceAggregate, ID: 77}}
			broken.Indicators[5] = &models.IndicatorConfig{ID: 5, ActivityID: 1, Source: models.IndicatorSource{Type: models.SourceService, Service: models.ServiceKey{HostID: 5, ServiceID: 5}}}
			result = apply(broken, 10)

			Expect(result.Created).To(Equal([]models.NodeRef{models.IndicatorRef(4), models.IndicatorRef(5)}))
			Expect(result.Degraded).To(Equal([]models.NodeRef{models.IndicatorRef(4), models.IndicatorRef(5)}))
			n, _ := registry.Lookup(models.IndicatorRef(5))
			Expect(n.Degraded()).To(MatchError(models.ErrUnknownReference))
		})

		It("degrades the nodes of a dependency cycle", func() {
			cyclic := baseSnapshot()
			cyclic.Activities[2] = &models.ActivityConfig{ID: 2, Rule: models.RuleWorst, Warning: 10, Critical: 20}
			cyclic.Indicators[10] = &models.IndicatorConfig{ID: 10, ActivityID: 2, Source: models.IndicatorSource{Type: models.SourceActivity, ID: 1}}
			cyclic.Indicators[11] = &models.IndicatorConfig{ID: 11, ActivityID: 1, Source: models.IndicatorSource{Type: models.SourceActivity, ID: 2}}
			result = apply(cyclic, 10)

			Expect(result.Degraded).To(ConsistOf(
				models.ActivityRef(1), models.ActivityRef(2), models.IndicatorRef(10), models.IndicatorRef(11),
			))
			n, _ := registry.Lookup(models.ActivityRef(1))
			Expect(n.Degraded()).To(MatchError(models.ErrDependencyCycle))
			Expect(n.Result().Status).To(Equal(models.StatusUnknown))

			result = apply(baseSnapshot(), 20)
			Expect(result.Degraded).To(BeEmpty())
			Expect(n.Degraded()).To(BeNil())
			Expect(n.Result().Status).To(Equal(models.StatusOK))
		})
	})
})
