package sync_test

import (
	"errors"
	"os"
	"time"

	"code.cloudfoundry.org/bam-broker/fakes"
	. "code.cloudfoundry.org/bam-broker/sync"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/tedsuo/ifrit"
)

var _ = Describe("DatabaseLock", func() {
	const (
		owner         = "bam-0"
		ttl           = 15 * time.Second
		retryInterval = 5 * time.Second
	)

	var (
		lockDB *fakes.FakeLockDB
		fclock *fakeclock.FakeClock
		logger *lagertest.TestLogger
		lock   *DatabaseLock
		proc   ifrit.Process
	)

	BeforeEach(func() {
		lockDB = &fakes.FakeLockDB{}
		fclock = fakeclock.NewFakeClock(time.Now())
		logger = lagertest.NewTestLogger("dblock")
		lock = NewDatabaseLock(logger, fclock, lockDB, owner, ttl, retryInterval)
	})

	JustBeforeEach(func() {
		proc = ifrit.Background(lock)
		Eventually(logger.Buffer()).Should(gbytes.Say("started"))
	})

	AfterEach(func() {
		proc.Signal(os.Interrupt)
		Eventually(proc.Wait()).Should(Receive())
	})

	Context("when the lock is free", func() {
		BeforeEach(func() {
			lockDB.LockReturns(true, nil)
		})

		It("becomes ready holding the lock", func() {
			Eventually(proc.Ready()).Should(BeClosed())
			Expect(lock.Held()).To(BeTrue())

			l := lockDB.LockArgsForCall(0)
			Expect(l.Owner).To(Equal(owner))
			Expect(l.Ttl).To(Equal(ttl))
		})

		It("renews the lock on every retry interval", func() {
			Eventually(proc.Ready()).Should(BeClosed())
			fclock.WaitForWatcherAndIncrement(retryInterval)
			Eventually(lockDB.LockCallCount).Should(Equal(2))
			Expect(lock.Held()).To(BeTrue())
		})

		It("releases the lock when signalled", func() {
			Eventually(proc.Ready()).Should(BeClosed())
			proc.Signal(os.Interrupt)
			Eventually(proc.Wait()).Should(Receive(BeNil()))
			Expect(lockDB.ReleaseCallCount()).To(Equal(1))
			Expect(lockDB.ReleaseArgsForCall(0)).To(Equal(owner))
			Expect(lock.Held()).To(BeFalse())
		})

		Context("and a competitor takes it", func() {
			It("exits with ErrLockLost", func() {
				Eventually(proc.Ready()).Should(BeClosed())
				lockDB.LockReturns(false, nil)

				fclock.WaitForWatcherAndIncrement(retryInterval)
				Eventually(proc.Wait()).Should(Receive(MatchError(ErrLockLost)))
				Expect(logger.Buffer()).To(gbytes.Say("lost-lock"))
				Expect(lock.Held()).To(BeFalse())
			})
		})
	})

	Context("when another owner holds the lock", func() {
		BeforeEach(func() {
			lockDB.LockReturns(false, nil)
		})

		It("waits until the lock can be taken", func() {
			Consistently(proc.Ready()).ShouldNot(BeClosed())

			lockDB.LockReturns(true, nil)
			fclock.WaitForWatcherAndIncrement(retryInterval)
			Eventually(proc.Ready()).Should(BeClosed())
			Expect(lock.Held()).To(BeTrue())
		})

		It("does not release a lock it never held", func() {
			proc.Signal(os.Interrupt)
			Eventually(proc.Wait()).Should(Receive(BeNil()))
			Expect(lockDB.ReleaseCallCount()).To(BeZero())
		})
	})

	Context("when the lock database fails", func() {
		BeforeEach(func() {
			lockDB.LockReturns(false, errors.New("connection refused"))
		})

		It("logs and keeps trying", func() {
			Eventually(logger.Buffer()).Should(gbytes.Say("failed-to-acquire-lock"))
			fclock.WaitForWatcherAndIncrement(retryInterval)
			Eventually(lockDB.LockCallCount).Should(Equal(2))
			Expect(proc.Ready()).NotTo(BeClosed())
		})
	})
})
