package db

import (
	"context"
	"errors"
	"io"
	"time"

	"code.cloudfoundry.org/bam-broker/healthendpoint"
	"code.cloudfoundry.org/bam-broker/models"
)

const (
	PostgresDriverName = "postgres"
	MysqlDriverName    = "mysql"

	ConfigDb = "config_db"
	EventDb  = "event_db"
	StatusDb = "status_db"
	LockDb   = "lock_db"
)

type OrderType uint8

const (
	DESC OrderType = iota
	ASC
)
const (
	DESCSTR string = "DESC"
	ASCSTR  string = "ASC"
)

func (o OrderType) String() string {
	if o == ASC {
		return ASCSTR
	}
	return DESCSTR
}

var ErrAlreadyExists = errors.New("already exists")
var ErrDoesNotExist = errors.New("doesn't exist")

type DatabaseConfig struct {
	URL                   string        `yaml:"url"`
	MaxOpenConnections    int           `yaml:"max_open_connections"`
	MaxIdleConnections    int           `yaml:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
	ConnectionMaxIdleTime time.Duration `yaml:"connection_max_idletime"`
}

// ConfigDB holds the BA configuration: predicates, indicators, activities,
// aggregates and the monitored item catalog.
type ConfigDB interface {
	healthendpoint.DatabaseStatus
	healthendpoint.Pinger
	RetrieveSnapshot(ctx context.Context) (*models.ConfigurationSnapshot, error)
	io.Closer
}

// EventDB stores the node timelines.
type EventDB interface {
	healthendpoint.DatabaseStatus
	healthendpoint.Pinger
	// SaveEvent inserts an open event or sets the end of the stored one.
	SaveEvent(ctx context.Context, event *models.NodeEvent) error
	// DeleteEvents removes the events of owners starting at or after from.
	DeleteEvents(ctx context.Context, owners []models.NodeRef, from time.Time) error
	RetrieveEvents(ctx context.Context, owner models.NodeRef, start, end time.Time, orderType OrderType) ([]*models.NodeEvent, error)
	io.Closer
}

type StatusHistoryDB interface {
	healthendpoint.DatabaseStatus
	healthendpoint.Pinger
	SaveServiceStatusesInBulk(ctx context.Context, statuses []*models.ServiceStatus) error
	// RetrieveServiceStatuses returns the statuses in [start, end) ordered by
	// timestamp, host and service.
	RetrieveServiceStatuses(ctx context.Context, start, end time.Time) ([]*models.ServiceStatus, error)
	// RetrieveLatestServiceStatuses returns, per monitored item, the last
	// status recorded before the given time, ordered by host and service.
	RetrieveLatestServiceStatuses(ctx context.Context, before time.Time) ([]*models.ServiceStatus, error)
	PruneServiceStatuses(ctx context.Context, before time.Time) error
	io.Closer
}

type LockDB interface {
	Lock(lock *models.Lock) (bool, error)
	Release(owner string) error
	io.Closer
}
