package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"code.cloudfoundry.org/bam-broker/db"

	"code.cloudfoundry.org/lager/v3"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// openDB connects to the database behind dbConfig.URL and applies the pool
// settings. The connection is verified before returning.
func openDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*sqlx.DB, error) {
	database, err := db.GetConnection(dbConfig.URL)
	if err != nil {
		return nil, err
	}

	sqldb, err := sqlx.Open(database.DriverName, database.DataSourceName)
	if err != nil {
		logger.Error("open-db", err)
		return nil, err
	}

	if err = sqldb.Ping(); err != nil {
		_ = sqldb.Close()
		logger.Error("ping-db", err)
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)
	sqldb.SetConnMaxIdleTime(dbConfig.ConnectionMaxIdleTime)
	return sqldb, nil
}

// inTx runs f in a transaction, committing when f succeeds.
func inTx(ctx context.Context, sqldb *sqlx.DB, opts *sql.TxOptions, f func(tx *sqlx.Tx) error) error {
	tx, err := sqldb.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	if err = f(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
