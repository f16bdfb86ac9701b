package operator_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/bam-broker/fakes"
	"code.cloudfoundry.org/bam-broker/operator"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/ginkgomon_v2"
)

var _ = Describe("Runner", func() {
	var (
		proc         ifrit.Process
		fclock       *fakeclock.FakeClock
		buffer       *gbytes.Buffer
		fakeOperator *fakes.FakeOperator
		runner       *operator.Runner
	)

	BeforeEach(func() {
		logger := lagertest.NewTestLogger("operator")
		buffer = logger.Buffer()
		fclock = fakeclock.NewFakeClock(time.Now())

		fakeOperator = &fakes.FakeOperator{}
		runner = operator.NewRunner(logger, fclock, testInterval, fakeOperator)
	})

	JustBeforeEach(func() {
		proc = ifrit.Invoke(runner)
		Eventually(buffer).Should(gbytes.Say("started"))
	})

	AfterEach(func() {
		ginkgomon_v2.Interrupt(proc)
	})

	It("operates on start and after every interval", func() {
		Eventually(fakeOperator.OperateCallCount).Should(Equal(1))

		fclock.WaitForWatcherAndIncrement(testInterval)
		Eventually(fakeOperator.OperateCallCount).Should(Equal(2))

		fclock.WaitForWatcherAndIncrement(testInterval)
		Eventually(fakeOperator.OperateCallCount).Should(Equal(3))
	})

	Context("when a run is still going", func() {
		var release chan struct{}

		BeforeEach(func() {
			release = make(chan struct{})
			fakeOperator.OperateStub = func(context.Context) { <-release }
		})

		AfterEach(func() {
			close(release)
		})

		It("skips the tick", func() {
			Eventually(fakeOperator.OperateCallCount).Should(Equal(1))
			fclock.WaitForWatcherAndIncrement(testInterval)
			Eventually(buffer).Should(gbytes.Say("skipped-overlapping-run"))
			Expect(fakeOperator.OperateCallCount()).To(Equal(1))
		})
	})

	Context("when an interrupt is sent", func() {
		It("stops operating", func() {
			Eventually(fakeOperator.OperateCallCount).Should(Equal(1))

			ginkgomon_v2.Interrupt(proc)
			Eventually(buffer).Should(gbytes.Say("stopped"))

			fclock.Increment(testInterval)
			Consistently(fakeOperator.OperateCallCount).Should(Equal(1))
		})
	})
})
