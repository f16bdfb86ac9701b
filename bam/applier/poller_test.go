package applier_test

import (
	"errors"
	"time"

	. "code.cloudfoundry.org/bam-broker/bam/applier"
	"code.cloudfoundry.org/bam-broker/fakes"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("ConfigPoller", func() {
	const interval = 10 * time.Second

	var (
		logger   *lagertest.TestLogger
		clock    *fakeclock.FakeClock
		configDB *fakes.FakeConfigDB
		poller   *ConfigPoller
		first    *models.ConfigurationSnapshot
		second   *models.ConfigurationSnapshot
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("poller-test")
		clock = fakeclock.NewFakeClock(time.Now())
		configDB = &fakes.FakeConfigDB{}
		first = baseSnapshot()
		second = baseSnapshot()
		delete(second.Activities, 1)
		configDB.RetrieveSnapshotReturnsOnCall(0, first, nil)
		configDB.RetrieveSnapshotReturns(second, nil)
		poller = NewConfigPoller(logger, clock, interval, configDB)
	})

	JustBeforeEach(func() {
		poller.Start()
	})

	AfterEach(func() {
		poller.Stop()
	})

	It("delivers a snapshot on start", func() {
		Eventually(poller.Snapshots()).Should(Receive(BeIdenticalTo(first)))
	})

	It("polls again on every tick", func() {
		Eventually(poller.Snapshots()).Should(Receive(BeIdenticalTo(first)))
		Eventually(clock.WatcherCount).Should(Equal(1))
		clock.Increment(interval)
		Eventually(poller.Snapshots()).Should(Receive(BeIdenticalTo(second)))
	})

	It("polls again on reload", func() {
		Eventually(poller.Snapshots()).Should(Receive(BeIdenticalTo(first)))
		poller.Reload()
		Eventually(poller.Snapshots()).Should(Receive(BeIdenticalTo(second)))
		Eventually(logger.Buffer()).Should(gbytes.Say("reload-requested"))
	})

	It("keeps only the latest snapshot", func() {
		Eventually(configDB.RetrieveSnapshotCallCount).Should(Equal(1))
		Eventually(clock.WatcherCount).Should(Equal(1))
		clock.Increment(interval)
		Eventually(configDB.RetrieveSnapshotCallCount).Should(Equal(2))
		Eventually(poller.Snapshots()).Should(Receive(BeIdenticalTo(second)))
		Consistently(poller.Snapshots()).ShouldNot(Receive())
	})

	Context("when the database fails", func() {
		BeforeEach(func() {
			configDB.RetrieveSnapshotReturnsOnCall(0, nil, errors.New("db down"))
		})

		It("logs and delivers nothing until the next poll", func() {
			Eventually(logger.Buffer()).Should(gbytes.Say("retrieve-snapshot"))
			Consistently(poller.Snapshots()).ShouldNot(Receive())
			clock.Increment(interval)
			Eventually(poller.Snapshots()).Should(Receive(BeIdenticalTo(second)))
		})
	})
})
