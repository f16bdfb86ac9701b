package sqldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"code.cloudfoundry.org/bam-broker/db"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var statusColumns = []string{"host_id", "service_id", "state", "in_downtime", "acknowledged", "metrics", "status_time"}

type statusRow struct {
	HostID       uint32         `db:"host_id"`
	ServiceID    uint32         `db:"service_id"`
	State        uint8          `db:"state"`
	InDowntime   bool           `db:"in_downtime"`
	Acknowledged bool           `db:"acknowledged"`
	Metrics      sql.NullString `db:"metrics"`
	StatusTime   time.Time      `db:"status_time"`
}

func statusValues(s *models.ServiceStatus) ([]interface{}, error) {
	var metrics sql.NullString
	if len(s.Metrics) > 0 {
		encoded, err := json.Marshal(s.Metrics)
		if err != nil {
			return nil, err
		}
		metrics = sql.NullString{String: string(encoded), Valid: true}
	}
	return []interface{}{s.Key.HostID, s.Key.ServiceID, uint8(s.State), s.InDowntime, s.Acknowledged, metrics, s.Timestamp.UTC()}, nil
}

// StatusHistorySQLDB keeps the raw service statuses rebuilds replay.
type StatusHistorySQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewStatusHistorySQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*StatusHistorySQLDB, error) {
	sqldb, err := openDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &StatusHistorySQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (sdb *StatusHistorySQLDB) Close() error {
	err := sdb.sqldb.Close()
	if err != nil {
		sdb.logger.Error("close-status-db", err)
	}
	return err
}

func (sdb *StatusHistorySQLDB) Ping() error {
	return sdb.sqldb.Ping()
}

func (sdb *StatusHistorySQLDB) GetDBStatus() sql.DBStats {
	return sdb.sqldb.Stats()
}

func (sdb *StatusHistorySQLDB) SaveServiceStatusesInBulk(ctx context.Context, statuses []*models.ServiceStatus) error {
	if len(statuses) == 0 {
		return nil
	}
	err := inTx(ctx, sdb.sqldb, nil, func(tx *sqlx.Tx) error {
		if sdb.sqldb.DriverName() == db.PostgresDriverName {
			return copyStatuses(ctx, tx, statuses)
		}
		return insertStatuses(ctx, tx, statuses)
	})
	if err != nil {
		sdb.logger.Error("failed-to-save-statuses", err, lager.Data{"count": len(statuses)})
	}
	return err
}

func copyStatuses(ctx context.Context, tx *sqlx.Tx, statuses []*models.ServiceStatus) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("bam_service_statuses", statusColumns...))
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, s := range statuses {
		values, err := statusValues(s)
		if err != nil {
			return err
		}
		if _, err = stmt.ExecContext(ctx, values...); err != nil {
			return err
		}
	}
	_, err = stmt.ExecContext(ctx)
	return err
}

func insertStatuses(ctx context.Context, tx *sqlx.Tx, statuses []*models.ServiceStatus) error {
	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?,", len(statusColumns)), ",") + ")"
	rows := make([]string, 0, len(statuses))
	args := make([]interface{}, 0, len(statuses)*len(statusColumns))
	for _, s := range statuses {
		values, err := statusValues(s)
		if err != nil {
			return err
		}
		rows = append(rows, placeholders)
		args = append(args, values...)
	}
	query := tx.Rebind("INSERT INTO bam_service_statuses (" + strings.Join(statusColumns, ", ") + ") VALUES " + strings.Join(rows, ", "))
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

func (sdb *StatusHistorySQLDB) RetrieveServiceStatuses(ctx context.Context, start, end time.Time) ([]*models.ServiceStatus, error) {
	query := sdb.sqldb.Rebind("SELECT " + strings.Join(statusColumns, ", ") + " FROM bam_service_statuses " +
		"WHERE status_time >= ? AND status_time < ? ORDER BY status_time, host_id, service_id")

	var rows []statusRow
	if err := sdb.sqldb.SelectContext(ctx, &rows, query, start.UTC(), end.UTC()); err != nil {
		sdb.logger.Error("failed-to-retrieve-statuses", err, lager.Data{"start": start, "end": end})
		return nil, err
	}
	return sdb.toStatuses(rows)
}

func (sdb *StatusHistorySQLDB) RetrieveLatestServiceStatuses(ctx context.Context, before time.Time) ([]*models.ServiceStatus, error) {
	columns := make([]string, len(statusColumns))
	for i, c := range statusColumns {
		columns[i] = "s." + c
	}
	query := sdb.sqldb.Rebind("SELECT " + strings.Join(columns, ", ") + " FROM bam_service_statuses s " +
		"JOIN (SELECT host_id, service_id, MAX(status_time) AS status_time FROM bam_service_statuses " +
		"WHERE status_time < ? GROUP BY host_id, service_id) latest " +
		"ON s.host_id = latest.host_id AND s.service_id = latest.service_id AND s.status_time = latest.status_time " +
		"ORDER BY s.host_id, s.service_id")

	var rows []statusRow
	if err := sdb.sqldb.SelectContext(ctx, &rows, query, before.UTC()); err != nil {
		sdb.logger.Error("failed-to-retrieve-latest-statuses", err, lager.Data{"before": before})
		return nil, err
	}

	// two statuses recorded at the same instant both match the join
	deduped := rows[:0]
	for _, r := range rows {
		if n := len(deduped); n > 0 && deduped[n-1].HostID == r.HostID && deduped[n-1].ServiceID == r.ServiceID {
			deduped[n-1] = r
			continue
		}
		deduped = append(deduped, r)
	}
	return sdb.toStatuses(deduped)
}

func (sdb *StatusHistorySQLDB) toStatuses(rows []statusRow) ([]*models.ServiceStatus, error) {
	statuses := make([]*models.ServiceStatus, 0, len(rows))
	for _, r := range rows {
		s := &models.ServiceStatus{
			Key:          models.ServiceKey{HostID: r.HostID, ServiceID: r.ServiceID},
			State:        models.Status(r.State),
			InDowntime:   r.InDowntime,
			Acknowledged: r.Acknowledged,
			Timestamp:    r.StatusTime.UTC(),
		}
		if r.Metrics.Valid {
			if err := json.Unmarshal([]byte(r.Metrics.String), &s.Metrics); err != nil {
				sdb.logger.Error("failed-to-decode-metrics", err, lager.Data{"key": s.Key.String()})
				return nil, err
			}
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

func (sdb *StatusHistorySQLDB) PruneServiceStatuses(ctx context.Context, before time.Time) error {
	query := sdb.sqldb.Rebind("DELETE FROM bam_service_statuses WHERE status_time < ?")
	_, err := sdb.sqldb.ExecContext(ctx, query, before.UTC())
	if err != nil {
		sdb.logger.Error("failed-to-prune-statuses", err, lager.Data{"before": before})
	}
	return err
}
