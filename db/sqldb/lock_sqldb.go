package sqldb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"time"

	"code.cloudfoundry.org/bam-broker/db"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"
)

const lockTxAttempts = 3

type lockRow struct {
	Owner     string    `db:"owner"`
	Timestamp time.Time `db:"lock_timestamp"`
	TTL       int64     `db:"ttl"`
}

// LockSQLDB holds a single-row lock table. The row owner is the active
// broker; a row older than its ttl can be taken over.
type LockSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	table    string
	sqldb    *sqlx.DB
}

func NewLockSQLDB(dbConfig db.DatabaseConfig, table string, logger lager.Logger) (*LockSQLDB, error) {
	sqldb, err := openDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &LockSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		table:    table,
		sqldb:    sqldb,
	}, nil
}

func (ldb *LockSQLDB) Close() error {
	err := ldb.sqldb.Close()
	if err != nil {
		ldb.logger.Error("close-lock-db", err)
	}
	return err
}

//nolint:gosec // #nosec G202 -- the table name comes from configuration; placeholders cannot name tables.
func (ldb *LockSQLDB) fetch(tx *sqlx.Tx) (*lockRow, error) {
	if ldb.sqldb.DriverName() == db.PostgresDriverName {
		if _, err := tx.Exec("LOCK TABLE " + ldb.table + " IN ACCESS EXCLUSIVE MODE"); err != nil {
			return nil, err
		}
	}

	query := "SELECT owner, lock_timestamp, ttl FROM " + ldb.table + " LIMIT 1 FOR UPDATE"
	if ldb.sqldb.DriverName() == db.PostgresDriverName {
		query += " NOWAIT"
	}
	var row lockRow
	err := tx.Get(&row, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (ldb *LockSQLDB) now(tx *sqlx.Tx) (time.Time, error) {
	query := "SELECT UTC_TIMESTAMP()"
	if ldb.sqldb.DriverName() == db.PostgresDriverName {
		query = "SELECT NOW() AT TIME ZONE 'utc'"
	}
	var now time.Time
	err := tx.QueryRow(query).Scan(&now)
	return now, err
}

//nolint:gosec // #nosec G202
func (ldb *LockSQLDB) Lock(lock *models.Lock) (bool, error) {
	logger := ldb.logger.Session("lock", lager.Data{"owner": lock.Owner})
	acquired := false
	err := ldb.transact(func(tx *sqlx.Tx) error {
		acquired = false
		held, err := ldb.fetch(tx)
		if err != nil {
			return err
		}
		now, err := ldb.now(tx)
		if err != nil {
			return err
		}

		switch {
		case held == nil:
			logger.Debug("no-one-holds-the-lock")
		case held.Owner == lock.Owner:
			query := tx.Rebind("UPDATE " + ldb.table + " SET lock_timestamp = ? WHERE owner = ?")
			if _, err = tx.Exec(query, now, lock.Owner); err != nil {
				return err
			}
			logger.Debug("renewed-lock")
			acquired = true
			return nil
		case held.Timestamp.Add(time.Duration(held.TTL) * time.Second).Before(now):
			logger.Info("lock-expired", lager.Data{"previous-owner": held.Owner})
			query := tx.Rebind("DELETE FROM " + ldb.table + " WHERE owner = ?")
			if _, err = tx.Exec(query, held.Owner); err != nil {
				return err
			}
		default:
			logger.Debug("lock-held-by-another-owner", lager.Data{"holder": held.Owner})
			return nil
		}

		query := tx.Rebind("INSERT INTO " + ldb.table + " (owner, lock_timestamp, ttl) VALUES (?, ?, ?)")
		if _, err = tx.Exec(query, lock.Owner, now, int64(lock.Ttl/time.Second)); err != nil {
			return err
		}
		logger.Info("acquired-lock")
		acquired = true
		return nil
	})
	if err != nil {
		logger.Error("failed-to-acquire-lock", err)
		return false, err
	}
	return acquired, nil
}

//nolint:gosec // #nosec G202
func (ldb *LockSQLDB) Release(owner string) error {
	err := ldb.transact(func(tx *sqlx.Tx) error {
		_, err := tx.Exec(tx.Rebind("DELETE FROM "+ldb.table+" WHERE owner = ?"), owner)
		return err
	})
	if err != nil {
		ldb.logger.Error("failed-to-release-lock", err, lager.Data{"owner": owner})
	}
	return err
}

// transact retries f when the driver hands out a broken connection, which
// database/sql does not always retry itself.
func (ldb *LockSQLDB) transact(f func(tx *sqlx.Tx) error) error {
	var err error
	for attempt := 1; attempt <= lockTxAttempts; attempt++ {
		err = inTx(context.Background(), ldb.sqldb, nil, f)
		if !errors.Is(err, driver.ErrBadConn) || attempt == lockTxAttempts {
			return err
		}
		ldb.logger.Debug("retry-transaction", lager.Data{"attempt": attempt})
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
