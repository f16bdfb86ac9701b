package sqldb

import (
	"context"
	"database/sql"
	"time"

	"code.cloudfoundry.org/bam-broker/db"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"
)

type eventRow struct {
	Kind       string       `db:"kind"`
	OwnerID    uint32       `db:"owner_id"`
	StartTime  time.Time    `db:"start_time"`
	EndTime    sql.NullTime `db:"end_time"`
	Impact     float64      `db:"impact"`
	Status     uint8        `db:"status"`
	InDowntime bool         `db:"in_downtime"`
}

func (r eventRow) toEvent() (*models.NodeEvent, error) {
	var kind models.NodeKind
	if err := kind.UnmarshalText([]byte(r.Kind)); err != nil {
		return nil, err
	}
	e := &models.NodeEvent{
		Owner:      models.NodeRef{Kind: kind, ID: r.OwnerID},
		Start:      r.StartTime.UTC(),
		Impact:     r.Impact,
		Status:     models.Status(r.Status),
		InDowntime: r.InDowntime,
	}
	if r.EndTime.Valid {
		end := r.EndTime.Time.UTC()
		e.End = &end
	}
	return e, nil
}

func nullEnd(e *models.NodeEvent) sql.NullTime {
	if e.End == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: e.End.UTC(), Valid: true}
}

// EventSQLDB stores node timelines keyed by owner and start time.
type EventSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewEventSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*EventSQLDB, error) {
	sqldb, err := openDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &EventSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (edb *EventSQLDB) Close() error {
	err := edb.sqldb.Close()
	if err != nil {
		edb.logger.Error("close-event-db", err)
	}
	return err
}

func (edb *EventSQLDB) Ping() error {
	return edb.sqldb.Ping()
}

func (edb *EventSQLDB) GetDBStatus() sql.DBStats {
	return edb.sqldb.Stats()
}

func (edb *EventSQLDB) SaveEvent(ctx context.Context, event *models.NodeEvent) error {
	kind, start := event.Owner.Kind.String(), event.Start.UTC()
	err := inTx(ctx, edb.sqldb, nil, func(tx *sqlx.Tx) error {
		var count int
		query := tx.Rebind("SELECT COUNT(*) FROM bam_events WHERE kind = ? AND owner_id = ? AND start_time = ?")
		if err := tx.GetContext(ctx, &count, query, kind, event.Owner.ID, start); err != nil {
			return err
		}

		if count > 0 {
			query = tx.Rebind("UPDATE bam_events SET end_time = ?, impact = ?, status = ?, in_downtime = ? WHERE kind = ? AND owner_id = ? AND start_time = ?")
			_, err := tx.ExecContext(ctx, query, nullEnd(event), event.Impact, uint8(event.Status), event.InDowntime, kind, event.Owner.ID, start)
			return err
		}
		query = tx.Rebind("INSERT INTO bam_events (kind, owner_id, start_time, end_time, impact, status, in_downtime) VALUES (?, ?, ?, ?, ?, ?, ?)")
		_, err := tx.ExecContext(ctx, query, kind, event.Owner.ID, start, nullEnd(event), event.Impact, uint8(event.Status), event.InDowntime)
		return err
	})
	if err != nil {
		edb.logger.Error("failed-to-save-event", err, lager.Data{"owner": event.Owner.String(), "start": start})
	}
	return err
}

// DeleteEvents removes the events of owners starting at or after from. An
// event spanning from is cut to end there, leaving room for the replayed
// timeline.
func (edb *EventSQLDB) DeleteEvents(ctx context.Context, owners []models.NodeRef, from time.Time) error {
	from = from.UTC()
	err := inTx(ctx, edb.sqldb, nil, func(tx *sqlx.Tx) error {
		deleteQuery := tx.Rebind("DELETE FROM bam_events WHERE kind = ? AND owner_id = ? AND start_time >= ?")
		truncateQuery := tx.Rebind("UPDATE bam_events SET end_time = ? WHERE kind = ? AND owner_id = ? AND start_time < ? AND (end_time IS NULL OR end_time > ?)")
		for _, owner := range owners {
			kind := owner.Kind.String()
			if _, err := tx.ExecContext(ctx, deleteQuery, kind, owner.ID, from); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, truncateQuery, from, kind, owner.ID, from, from); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		edb.logger.Error("failed-to-delete-events", err, lager.Data{"owners": owners, "from": from})
	}
	return err
}

// RetrieveEvents returns the events of owner overlapping [start, end).
func (edb *EventSQLDB) RetrieveEvents(ctx context.Context, owner models.NodeRef, start, end time.Time, orderType db.OrderType) ([]*models.NodeEvent, error) {
	query := edb.sqldb.Rebind("SELECT kind, owner_id, start_time, end_time, impact, status, in_downtime FROM bam_events " +
		"WHERE kind = ? AND owner_id = ? AND start_time < ? AND (end_time IS NULL OR end_time > ?) " +
		"ORDER BY start_time " + orderType.String())

	var rows []eventRow
	if err := edb.sqldb.SelectContext(ctx, &rows, query, owner.Kind.String(), owner.ID, end.UTC(), start.UTC()); err != nil {
		edb.logger.Error("failed-to-retrieve-events", err, lager.Data{"owner": owner.String(), "query": query})
		return nil, err
	}

	events := make([]*models.NodeEvent, 0, len(rows))
	for _, r := range rows {
		e, err := r.toEvent()
		if err != nil {
			edb.logger.Error("failed-to-decode-event", err, lager.Data{"kind": r.Kind})
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
