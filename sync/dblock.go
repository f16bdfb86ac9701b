package sync

import (
	"errors"
	"os"
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/bam-broker/db"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

var ErrLockLost = errors.New("database lock lost to another owner")

// DatabaseLock is an ifrit runner that becomes ready once it holds the lock
// row and keeps renewing it. Losing the lock ends the run with ErrLockLost
// so that the members started after it are stopped.
type DatabaseLock struct {
	logger        lager.Logger
	clock         clock.Clock
	lockDB        db.LockDB
	owner         string
	ttl           time.Duration
	retryInterval time.Duration
	held          atomic.Bool
}

func NewDatabaseLock(logger lager.Logger, clock clock.Clock, lockDB db.LockDB, owner string, ttl, retryInterval time.Duration) *DatabaseLock {
	return &DatabaseLock{
		logger:        logger.Session("db-lock", lager.Data{"owner": owner}),
		clock:         clock,
		lockDB:        lockDB,
		owner:         owner,
		ttl:           ttl,
		retryInterval: retryInterval,
	}
}

func (l *DatabaseLock) Held() bool {
	return l.held.Load()
}

func (l *DatabaseLock) acquire() bool {
	acquired, err := l.lockDB.Lock(&models.Lock{Owner: l.owner, Ttl: l.ttl})
	if err != nil {
		l.logger.Error("failed-to-acquire-lock", err)
		return false
	}
	return acquired
}

func (l *DatabaseLock) release() {
	l.held.Store(false)
	if err := l.lockDB.Release(l.owner); err != nil {
		l.logger.Error("failed-to-release-lock", err)
		return
	}
	l.logger.Info("released-lock")
}

func (l *DatabaseLock) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ticker := l.clock.NewTicker(l.retryInterval)
	defer ticker.Stop()

	l.logger.Info("started", lager.Data{"ttl": l.ttl, "retry-interval": l.retryInterval})
	if l.acquire() {
		l.held.Store(true)
		l.logger.Info("acquired-lock")
		close(ready)
	}

	for {
		select {
		case <-signals:
			if l.Held() {
				l.release()
			}
			l.logger.Info("stopped")
			return nil

		case <-ticker.C():
			acquired := l.acquire()
			switch {
			case acquired && !l.Held():
				l.held.Store(true)
				l.logger.Info("acquired-lock")
				close(ready)
			case !acquired && l.Held():
				l.logger.Info("lost-lock")
				l.release()
				return ErrLockLost
			case !acquired:
				l.logger.Debug("lock-held-elsewhere")
			}
		}
	}
}
