package graph_test

import (
	. "code.cloudfoundry.org/bam-broker/bam/graph"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("EventTracker", func() {
	var (
		logger  *lagertest.TestLogger
		tracker *EventTracker
		owner   = models.ActivityRef(7)
		ok      = Result{Status: models.StatusOK}
		crit    = Result{Status: models.StatusCritical, Impact: 80}
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("tracker-test")
		tracker = NewEventTracker(logger, owner)
	})

	It("starts in bootstrap", func() {
		Expect(tracker.State()).To(Equal(Bootstrap))
		Expect(tracker.Current()).To(BeNil())
	})

	It("opens an event on the first update", func() {
		events := tracker.Update(ok, at(10))
		Expect(events).To(HaveLen(1))
		Expect(events[0].IsOpen()).To(BeTrue())
		Expect(events[0].Owner).To(Equal(owner))
		Expect(events[0].Start).To(Equal(at(10)))
		Expect(tracker.State()).To(Equal(Open))
	})

	It("emits nothing when the value does not change", func() {
		tracker.Update(ok, at(10))
		Expect(tracker.Update(Result{Status: models.StatusOK, Nominal: 3}, at(20))).To(BeEmpty())
		Expect(tracker.Current().Start).To(Equal(at(10)))
	})

	It("closes and reopens at the same instant when the value changes", func() {
		tracker.Update(ok, at(10))
		events := tracker.Update(crit, at(20))
		Expect(events).To(HaveLen(2))
		Expect(events[0].Start).To(Equal(at(10)))
		Expect(closedAt(events[0])).To(Equal(at(20)))
		Expect(events[0].Status).To(Equal(models.StatusOK))
		Expect(events[1].IsOpen()).To(BeTrue())
		Expect(events[1].Start).To(Equal(at(20)))
		Expect(events[1].Impact).To(Equal(80.0))
	})

	It("treats a downtime change as a new value", func() {
		tracker.Update(ok, at(10))
		Expect(tracker.Update(Result{Status: models.StatusOK, InDowntime: true}, at(20))).To(HaveLen(2))
	})

	It("never mutates emitted events", func() {
		opened := tracker.Update(ok, at(10))[0]
		tracker.Update(crit, at(20))
		Expect(opened.IsOpen()).To(BeTrue())
	})

	It("clamps a close time earlier than the open event", func() {
		tracker.Update(ok, at(10))
		events := tracker.Update(crit, at(5))
		Expect(closedAt(events[0])).To(Equal(at(10)))
		Expect(events[1].Start).To(Equal(at(10)))
	})

	Context("Close", func() {
		It("closes the open event and returns to bootstrap", func() {
			tracker.Update(ok, at(10))
			closed := tracker.Close(at(30))
			Expect(closedAt(closed)).To(Equal(at(30)))
			Expect(tracker.State()).To(Equal(Bootstrap))
		})

		It("logs and returns nil when nothing is open", func() {
			Expect(tracker.Close(at(30))).To(BeNil())
			Eventually(logger.Buffer()).Should(gbytes.Say("close-without-open-event"))
		})
	})

	Context("Discard and Adopt", func() {
		It("drops the open event silently", func() {
			tracker.Update(ok, at(10))
			tracker.Discard()
			Expect(tracker.State()).To(Equal(Bootstrap))
		})

		It("takes over an open event", func() {
			tracker.Adopt(&models.NodeEvent{Owner: owner, Start: at(3), Impact: 80, Status: models.StatusCritical})
			Expect(tracker.Current().Start).To(Equal(at(3)))
			Expect(tracker.Update(crit, at(40))).To(BeEmpty())
		})

		It("refuses to adopt while an event is open", func() {
			tracker.Update(ok, at(10))
			tracker.Adopt(&models.NodeEvent{Owner: owner, Start: at(3), Status: models.StatusCritical})
			Expect(tracker.Current().Start).To(Equal(at(10)))
			Eventually(logger.Buffer()).Should(gbytes.Say("adopt-with-open-event"))
		})

		It("ignores closed events", func() {
			end := at(5)
			tracker.Adopt(&models.NodeEvent{Owner: owner, Start: at(3), End: &end})
			Expect(tracker.State()).To(Equal(Bootstrap))
		})
	})
})
