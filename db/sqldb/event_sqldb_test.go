package sqldb_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/bam-broker/db"
	. "code.cloudfoundry.org/bam-broker/db/sqldb"
	"code.cloudfoundry.org/bam-broker/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EventSQLDB", func() {
	var (
		edb *EventSQLDB
		err error
		ctx context.Context
	)

	at := func(sec int64) time.Time { return time.Unix(baseTime+sec, 0).UTC() }

	event := func(owner models.NodeRef, start int64, end *int64, status models.Status) *models.NodeEvent {
		e := &models.NodeEvent{Owner: owner, Start: at(start), Impact: 10 * float64(status), Status: status}
		if end != nil {
			t := at(*end)
			e.End = &t
		}
		return e
	}
	ends := func(sec int64) *int64 { return &sec }

	retrieve := func(owner models.NodeRef, order db.OrderType) []*models.NodeEvent {
		events, err := edb.RetrieveEvents(ctx, owner, at(0), at(10000), order)
		Expect(err).NotTo(HaveOccurred())
		return events
	}

	BeforeEach(func() {
		ctx = context.Background()
		edb, err = NewEventSQLDB(testDBConfig(), testLogger("event-sqldb"))
		Expect(err).NotTo(HaveOccurred())
		cleanTables("bam_events")
	})

	AfterEach(func() {
		Expect(edb.Close()).To(Succeed())
		cleanTables("bam_events")
	})

	Describe("SaveEvent", func() {
		It("inserts an open event then closes it", func() {
			owner := models.ActivityRef(1)
			Expect(edb.SaveEvent(ctx, event(owner, 100, nil, models.StatusWarning))).To(Succeed())
			Expect(retrieve(owner, db.ASC)[0].IsOpen()).To(BeTrue())

			Expect(edb.SaveEvent(ctx, event(owner, 100, ends(200), models.StatusWarning))).To(Succeed())
			Expect(edb.SaveEvent(ctx, event(owner, 200, nil, models.StatusOK))).To(Succeed())

			events := retrieve(owner, db.ASC)
			Expect(events).To(HaveLen(2))
			Expect(*events[0].End).To(BeTemporally("==", at(200)))
			Expect(events[0].Status).To(Equal(models.StatusWarning))
			Expect(events[0].Impact).To(Equal(10.0))
			Expect(events[1].Start).To(BeTemporally("==", at(200)))
			Expect(events[1].IsOpen()).To(BeTrue())
			Expect(count("bam_events")).To(Equal(2))
		})

		It("inserts a closed event that was never stored open", func() {
			owner := models.IndicatorRef(4)
			Expect(edb.SaveEvent(ctx, event(owner, 100, ends(150), models.StatusCritical))).To(Succeed())
			events := retrieve(owner, db.ASC)
			Expect(events).To(HaveLen(1))
			Expect(events[0].Owner).To(Equal(owner))
			Expect(*events[0].End).To(BeTemporally("==", at(150)))
		})

		It("keeps owners of different kinds apart", func() {
			Expect(edb.SaveEvent(ctx, event(models.ActivityRef(1), 100, nil, models.StatusOK))).To(Succeed())
			Expect(edb.SaveEvent(ctx, event(models.AggregateRef(1), 100, nil, models.StatusCritical))).To(Succeed())
			Expect(retrieve(models.ActivityRef(1), db.ASC)).To(HaveLen(1))
			Expect(retrieve(models.AggregateRef(1), db.ASC)[0].Status).To(Equal(models.StatusCritical))
		})
	})

	Describe("RetrieveEvents", func() {
		owner := models.ActivityRef(2)

		BeforeEach(func() {
			Expect(edb.SaveEvent(ctx, event(owner, 0, ends(100), models.StatusOK))).To(Succeed())
			Expect(edb.SaveEvent(ctx, event(owner, 100, ends(200), models.StatusWarning))).To(Succeed())
			Expect(edb.SaveEvent(ctx, event(owner, 200, nil, models.StatusCritical))).To(Succeed())
		})

		It("returns the events overlapping the window", func() {
			events, err := edb.RetrieveEvents(ctx, owner, at(150), at(250), db.ASC)
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(2))
			Expect(events[0].Status).To(Equal(models.StatusWarning))
			Expect(events[1].Status).To(Equal(models.StatusCritical))
		})

		It("excludes an event ending at the window start", func() {
			events, err := edb.RetrieveEvents(ctx, owner, at(100), at(150), db.ASC)
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(1))
			Expect(events[0].Start).To(BeTemporally("==", at(100)))
		})

		It("honours the order", func() {
			events := retrieve(owner, db.DESC)
			Expect(events).To(HaveLen(3))
			Expect(events[0].Start).To(BeTemporally("==", at(200)))
			Expect(events[2].Start).To(BeTemporally("==", at(0)))
		})
	})

	Describe("DeleteEvents", func() {
		owner := models.ActivityRef(3)
		other := models.AggregateRef(3)

		BeforeEach(func() {
			Expect(edb.SaveEvent(ctx, event(owner, 0, ends(100), models.StatusOK))).To(Succeed())
			Expect(edb.SaveEvent(ctx, event(owner, 100, ends(300), models.StatusWarning))).To(Succeed())
			Expect(edb.SaveEvent(ctx, event(owner, 300, nil, models.StatusCritical))).To(Succeed())
			Expect(edb.SaveEvent(ctx, event(other, 250, nil, models.StatusOK))).To(Succeed())
		})

		It("removes later events and cuts the spanning one", func() {
			Expect(edb.DeleteEvents(ctx, []models.NodeRef{owner}, at(200))).To(Succeed())

			events := retrieve(owner, db.ASC)
			Expect(events).To(HaveLen(2))
			Expect(*events[0].End).To(BeTemporally("==", at(100)))
			Expect(events[1].Start).To(BeTemporally("==", at(100)))
			Expect(*events[1].End).To(BeTemporally("==", at(200)))

			Expect(retrieve(other, db.ASC)).To(HaveLen(1))
		})

		It("closes an open event started before the cut", func() {
			Expect(edb.DeleteEvents(ctx, []models.NodeRef{other}, at(400))).To(Succeed())
			events := retrieve(other, db.ASC)
			Expect(events).To(HaveLen(1))
			Expect(*events[0].End).To(BeTemporally("==", at(400)))
		})
	})
})
