package graph_test

import (
	"math/rand"

	. "code.cloudfoundry.org/bam-broker/bam/graph"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Engine", func() {
	var (
		logger   *lagertest.TestLogger
		registry *Registry
		sink     *recordingSink
		engine   *Engine
		catalog  *models.Catalog
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("engine-test")
		registry = NewRegistry()
		sink = &recordingSink{}
		engine = NewEngine(logger, registry, NewStateBook(), sink)
		catalog = models.NewCatalog([]models.CatalogItem{
			{Key: models.ServiceKey{HostID: 1, ServiceID: 1}, HostName: "web", Description: "http"},
			{Key: models.ServiceKey{HostID: 1, ServiceID: 2}, HostName: "web", Description: "disk"},
			{Key: models.ServiceKey{HostID: 2, ServiceID: 1}, HostName: "db", Description: "pgsql"},
		})
	})

	refreshAll := func(sec int64) {
		var refs []models.NodeRef
		for _, kind := range []models.NodeKind{models.KindPredicate, models.KindIndicator, models.KindActivity, models.KindAggregate} {
			for _, n := range registry.Nodes(kind) {
				refs = append(refs, n.Ref())
			}
		}
		engine.Refresh(refs, at(sec))
	}

	Context("predicate indicator", func() {
		BeforeEach(func() {
			registry.Insert(NewPredicate(logger, &models.PredicateConfig{
				ID: 1, Expression: `state("web", "http") == CRITICAL`, Impact: 10, ImpactIf: true,
			}, catalog))
			registry.Insert(NewIndicator(logger, &models.IndicatorConfig{
				ID: 1, ActivityID: 1, Source: models.IndicatorSource{Type: models.SourcePredicate, ID: 1}, ImpactUnknown: 100,
			}))
			registry.Insert(NewActivity(logger, &models.ActivityConfig{ID: 1, Rule: models.RuleSum, Warning: 5, Critical: 50}))
			refreshAll(0)
			engine.Process(serviceStatus(1, 1, models.StatusOK, at(1)), at(1))
			sink.Reset()
		})

		It("opens an impacting event when the predicate becomes true", func() {
			engine.Process(serviceStatus(1, 1, models.StatusCritical, at(100)), at(100))

			events := sink.Events(models.IndicatorRef(1))
			Expect(events).To(HaveLen(2))
			Expect(closedAt(events[0])).To(Equal(at(100)))
			Expect(events[0].Impact).To(Equal(0.0))
			Expect(events[1].IsOpen()).To(BeTrue())
			Expect(events[1].Start).To(Equal(at(100)))
			Expect(events[1].Impact).To(Equal(10.0))

			activity := sink.Events(models.ActivityRef(1))
			Expect(activity).To(HaveLen(2))
			Expect(activity[1].Status).To(Equal(models.StatusWarning))
		})

		It("does not recompute anything for unrelated items", func() {
			before := engine.Stats().Recomputations
			engine.Process(serviceStatus(2, 1, models.StatusCritical, at(100)), at(100))
			Expect(engine.Stats().Recomputations).To(Equal(before))
			Expect(sink.messages).To(BeEmpty())
		})

		It("stops the cascade when a result does not change", func() {
			before := engine.Stats().Recomputations
			engine.Process(serviceStatus(1, 1, models.StatusWarning, at(100)), at(100))
			Expect(sink.messages).To(BeEmpty())
			Expect(engine.Stats().Recomputations).To(Equal(before + 1))
		})
	})

	Context("sum activity", func() {
		BeforeEach(func() {
			registry.Insert(NewActivity(logger, &models.ActivityConfig{ID: 1, Rule: models.RuleSum, Warning: 30, Critical: 60}))
			for i, key := range []models.ServiceKey{{HostID: 1, ServiceID: 1}, {HostID: 1, ServiceID: 2}, {HostID: 2, ServiceID: 1}} {
				registry.Insert(NewIndicator(logger, &models.IndicatorConfig{
					ID: uint32(i + 1), ActivityID: 1,
					Source:         models.IndicatorSource{Type: models.SourceService, Service: key},
					ImpactWarning:  10,
					ImpactCritical: 25,
					ImpactUnknown:  0,
				}))
			}
			refreshAll(0)
		})

		It("goes critical once three indicators drop 25 each", func() {
			engine.Process(serviceStatus(1, 1, models.StatusCritical, at(10)), at(10))
			engine.Process(serviceStatus(1, 2, models.StatusCritical, at(20)), at(20))
			Expect(registry.Nodes(models.KindActivity)[0].Result().Status).To(Equal(models.StatusWarning))

			engine.Process(serviceStatus(2, 1, models.StatusCritical, at(30)), at(30))
			r := registry.Nodes(models.KindActivity)[0].Result()
			Expect(r.Impact).To(Equal(75.0))
			Expect(r.Status).To(Equal(models.StatusCritical))

			events := sink.Events(models.ActivityRef(1))
			last := events[len(events)-1]
			Expect(last.IsOpen()).To(BeTrue())
			Expect(last.Start).To(Equal(at(30)))
			Expect(last.Status).To(Equal(models.StatusCritical))
			checkTimeline(events)
		})

		It("records downtime as a separate impact", func() {
			engine.Process(serviceStatus(1, 1, models.StatusCritical, at(10)), at(10))
			engine.Process(&models.Downtime{Key: models.ServiceKey{HostID: 1, ServiceID: 1}, Started: true, Timestamp: at(20)}, at(20))

			r := registry.Nodes(models.KindActivity)[0].Result()
			Expect(r.Impact).To(Equal(25.0))
			Expect(r.DowntimeImpact).To(Equal(25.0))
			Expect(r.InDowntime).To(BeFalse())
		})

		It("keeps a gap-free timeline with at most one open event per node", func() {
			keys := []models.ServiceKey{{HostID: 1, ServiceID: 1}, {HostID: 1, ServiceID: 2}, {HostID: 2, ServiceID: 1}}
			states := []models.Status{models.StatusOK, models.StatusWarning, models.StatusCritical, models.StatusUnknown}
			rng := rand.New(rand.NewSource(42))
			for i := 1; i <= 300; i++ {
				key := keys[rng.Intn(len(keys))]
				var msg models.Message = serviceStatus(key.HostID, key.ServiceID, states[rng.Intn(len(states))], at(int64(i)))
				if rng.Intn(5) == 0 {
					msg = &models.Downtime{Key: key, Started: rng.Intn(2) == 0, Timestamp: at(int64(i))}
				}
				engine.Process(msg, at(int64(i)))
			}

			checkTimeline(sink.Events(models.ActivityRef(1)))
			for id := uint32(1); id <= 3; id++ {
				checkTimeline(sink.Events(models.IndicatorRef(id)))
			}
		})
	})

	Context("activity feeding an indicator", func() {
		BeforeEach(func() {
			registry.Insert(NewActivity(logger, &models.ActivityConfig{ID: 1, Rule: models.RuleWorst, Warning: 50, Critical: 80}))
			registry.Insert(NewActivity(logger, &models.ActivityConfig{ID: 2, Rule: models.RuleSum, Warning: 50, Critical: 80}))
			registry.Insert(NewIndicator(logger, &models.IndicatorConfig{
				ID: 1, ActivityID: 1,
				Source:         models.IndicatorSource{Type: models.SourceService, Service: models.ServiceKey{HostID: 1, ServiceID: 1}},
				ImpactCritical: 90,
			}))
			registry.Insert(NewIndicator(logger, &models.IndicatorConfig{
				ID: 2, ActivityID: 2, Source: models.IndicatorSource{Type: models.SourceActivity, ID: 1},
			}))
			refreshAll(0)
		})

		It("forwards the computed impact of the source activity", func() {
			engine.Process(serviceStatus(1, 1, models.StatusCritical, at(5)), at(5))

			upstream, _ := registry.Lookup(models.IndicatorRef(2))
			Expect(upstream.Result().Impact).To(Equal(90.0))
			Expect(upstream.Result().Status).To(Equal(models.StatusCritical))

			top, _ := registry.Lookup(models.ActivityRef(2))
			Expect(top.Result().Status).To(Equal(models.StatusCritical))
		})

		It("treats a missing source as unknown", func() {
			registry.Insert(NewIndicator(logger, &models.IndicatorConfig{
				ID: 3, ActivityID: 2, Source: models.IndicatorSource{Type: models.SourceActivity, ID: 99}, ImpactUnknown: 15,
			}))
			engine.Refresh([]models.NodeRef{models.IndicatorRef(3)}, at(6))

			n, _ := registry.Lookup(models.IndicatorRef(3))
			Expect(n.Result().Status).To(Equal(models.StatusUnknown))
			Expect(n.Result().Impact).To(Equal(15.0))
		})
	})

	Context("initial load", func() {
		BeforeEach(func() {
			registry.Insert(NewActivity(logger, &models.ActivityConfig{ID: 1, Rule: models.RuleSum, Warning: 30, Critical: 60}))
			for i, key := range []models.ServiceKey{{HostID: 1, ServiceID: 1}, {HostID: 1, ServiceID: 2}} {
				registry.Insert(NewIndicator(logger, &models.IndicatorConfig{
					ID: uint32(i + 1), ActivityID: 1,
					Source:         models.IndicatorSource{Type: models.SourceService, Service: key},
					ImpactCritical: 40,
					ImpactUnknown:  40,
				}))
			}
		})

		It("emits one event per activity", func() {
			refreshAll(0)

			events := sink.Events(models.ActivityRef(1))
			Expect(events).To(HaveLen(1))
			Expect(events[0].IsOpen()).To(BeTrue())
			Expect(events[0].Start).To(Equal(at(0)))
			Expect(events[0].Impact).To(Equal(80.0))
			Expect(events[0].Status).To(Equal(models.StatusCritical))
		})

		It("computes each node once", func() {
			refreshAll(0)
			Expect(engine.Stats().Recomputations).To(Equal(uint64(3)))
		})

		It("emits one event when only the indicators are refreshed", func() {
			refreshAll(0)
			engine.Process(serviceStatus(1, 1, models.StatusOK, at(5)), at(5))
			engine.Process(serviceStatus(1, 2, models.StatusOK, at(5)), at(5))
			sink.Reset()

			registry.Insert(NewIndicator(logger, &models.IndicatorConfig{
				ID: 1, ActivityID: 1,
				Source:        models.IndicatorSource{Type: models.SourceService, Service: models.ServiceKey{HostID: 2, ServiceID: 1}},
				ImpactUnknown: 40,
			}))
			registry.Insert(NewIndicator(logger, &models.IndicatorConfig{
				ID: 2, ActivityID: 1,
				Source:        models.IndicatorSource{Type: models.SourceService, Service: models.ServiceKey{HostID: 2, ServiceID: 2}},
				ImpactUnknown: 40,
			}))
			engine.Refresh([]models.NodeRef{models.IndicatorRef(1), models.IndicatorRef(2)}, at(10))

			events := sink.Events(models.ActivityRef(1))
			Expect(events).To(HaveLen(2))
			Expect(closedAt(events[0])).To(Equal(at(10)))
			Expect(events[1].Start).To(Equal(at(10)))
			Expect(events[1].Status).To(Equal(models.StatusCritical))
		})
	})

	Context("cycles", func() {
		It("logs and breaks the cascade", func() {
			registry.Insert(NewActivity(logger, &models.ActivityConfig{ID: 1, Rule: models.RuleSum, Warning: 10, Critical: 20}))
			registry.Insert(NewActivity(logger, &models.ActivityConfig{ID: 2, Rule: models.RuleSum, Warning: 10, Critical: 20}))
			registry.Insert(NewIndicator(logger, &models.IndicatorConfig{ID: 1, ActivityID: 1, Source: models.IndicatorSource{Type: models.SourceActivity, ID: 2}}))
			registry.Insert(NewIndicator(logger, &models.IndicatorConfig{ID: 2, ActivityID: 2, Source: models.IndicatorSource{Type: models.SourceActivity, ID: 1}}))

			refreshAll(0)
			Expect(engine.Stats().Cycles).To(BeNumerically(">", 0))
		})
	})

	It("ignores messages it does not understand", func() {
		engine.Process(&models.RebuildEnd{}, at(1))
		Expect(engine.Stats().Messages).To(BeZero())
	})
})
