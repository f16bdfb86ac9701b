package startup

import (
	"code.cloudfoundry.org/bam-broker/db"
	"code.cloudfoundry.org/bam-broker/db/sqldb"

	"code.cloudfoundry.org/lager/v3"
)

// DatabaseConnection pairs a store with the function closing it.
type DatabaseConnection[T any] struct {
	DB     T
	Closer func() error
}

func (c *DatabaseConnection[T]) Close() error {
	if c == nil {
		return nil
	}
	return c.Closer()
}

func CreateConfigDB(dbConfig db.DatabaseConfig, logger lager.Logger) *DatabaseConnection[db.ConfigDB] {
	configDB, err := sqldb.NewConfigSQLDB(dbConfig, logger.Session("config-db"))
	ExitOnError(err, logger, "failed-to-connect-config-db")
	return &DatabaseConnection[db.ConfigDB]{DB: configDB, Closer: configDB.Close}
}

func CreateEventDB(dbConfig db.DatabaseConfig, logger lager.Logger) *DatabaseConnection[db.EventDB] {
	eventDB, err := sqldb.NewEventSQLDB(dbConfig, logger.Session("event-db"))
	ExitOnError(err, logger, "failed-to-connect-event-db")
	return &DatabaseConnection[db.EventDB]{DB: eventDB, Closer: eventDB.Close}
}

func CreateStatusHistoryDB(dbConfig db.DatabaseConfig, logger lager.Logger) *DatabaseConnection[db.StatusHistoryDB] {
	statusDB, err := sqldb.NewStatusHistorySQLDB(dbConfig, logger.Session("status-db"))
	ExitOnError(err, logger, "failed-to-connect-status-db")
	return &DatabaseConnection[db.StatusHistoryDB]{DB: statusDB, Closer: statusDB.Close}
}

func CreateLockDB(dbConfig db.DatabaseConfig, lockTableName string, logger lager.Logger) *DatabaseConnection[db.LockDB] {
	lockDB, err := sqldb.NewLockSQLDB(dbConfig, lockTableName, logger.Session("lock-db"))
	ExitOnError(err, logger, "failed-to-connect-lock-db")
	return &DatabaseConnection[db.LockDB]{DB: lockDB, Closer: lockDB.Close}
}

// CleanupDatabases closes every connection.
func CleanupDatabases(connections ...interface{ Close() error }) {
	for _, conn := range connections {
		_ = conn.Close()
	}
}
