package sqldb

import (
	"context"
	"database/sql"

	"code.cloudfoundry.org/bam-broker/db"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"
)

type predicateRow struct {
	ID         uint32  `db:"predicate_id"`
	Name       string  `db:"name"`
	Expression string  `db:"expression"`
	Impact     float64 `db:"impact"`
	ImpactIf   bool    `db:"impact_if"`
}

type indicatorRow struct {
	ID             uint32  `db:"indicator_id"`
	ActivityID     uint32  `db:"activity_id"`
	SourceType     string  `db:"source_type"`
	HostID         uint32  `db:"host_id"`
	ServiceID      uint32  `db:"service_id"`
	SourceID       uint32  `db:"source_id"`
	ImpactWarning  float64 `db:"impact_warning"`
	ImpactCritical float64 `db:"impact_critical"`
	ImpactUnknown  float64 `db:"impact_unknown"`
}

type activityRow struct {
	ID                uint32        `db:"activity_id"`
	Name              string        `db:"name"`
	Rule              string        `db:"rule"`
	Warning           float64       `db:"warning"`
	Critical          float64       `db:"critical"`
	DowntimeBehaviour string        `db:"downtime_behaviour"`
	HostID            sql.NullInt64 `db:"host_id"`
	ServiceID         sql.NullInt64 `db:"service_id"`
}

type aggregateRow struct {
	ID          uint32        `db:"aggregate_id"`
	Name        string        `db:"name"`
	Computation string        `db:"computation"`
	Metric      string        `db:"metric"`
	Warning     float64       `db:"warning"`
	Critical    float64       `db:"critical"`
	HostID      sql.NullInt64 `db:"host_id"`
	ServiceID   sql.NullInt64 `db:"service_id"`
}

type aggregateServiceRow struct {
	AggregateID uint32 `db:"aggregate_id"`
	HostID      uint32 `db:"host_id"`
	ServiceID   uint32 `db:"service_id"`
}

type catalogRow struct {
	HostID      uint32 `db:"host_id"`
	ServiceID   uint32 `db:"service_id"`
	HostName    string `db:"host_name"`
	Description string `db:"description"`
}

func virtualService(host, service sql.NullInt64) *models.ServiceKey {
	if !host.Valid {
		return nil
	}
	return &models.ServiceKey{HostID: uint32(host.Int64), ServiceID: uint32(service.Int64)}
}

type ConfigSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewConfigSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*ConfigSQLDB, error) {
	sqldb, err := openDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &ConfigSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (cdb *ConfigSQLDB) Close() error {
	err := cdb.sqldb.Close()
	if err != nil {
		cdb.logger.Error("close-config-db", err)
	}
	return err
}

func (cdb *ConfigSQLDB) Ping() error {
	return cdb.sqldb.Ping()
}

func (cdb *ConfigSQLDB) GetDBStatus() sql.DBStats {
	return cdb.sqldb.Stats()
}

// RetrieveSnapshot reads the whole BA configuration in one read-only
// transaction so the tables are seen at a single point in time.
func (cdb *ConfigSQLDB) RetrieveSnapshot(ctx context.Context) (*models.ConfigurationSnapshot, error) {
	snapshot := models.NewConfigurationSnapshot()
	err := inTx(ctx, cdb.sqldb, &sql.TxOptions{ReadOnly: true}, func(tx *sqlx.Tx) error {
		var predicates []predicateRow
		if err := tx.SelectContext(ctx, &predicates, "SELECT predicate_id, name, expression, impact, impact_if FROM bam_predicates"); err != nil {
			return err
		}
		for _, p := range predicates {
			snapshot.Predicates[p.ID] = &models.PredicateConfig{
				ID: p.ID, Name: p.Name, Expression: p.Expression, Impact: p.Impact, ImpactIf: p.ImpactIf,
			}
		}

		var indicators []indicatorRow
		if err := tx.SelectContext(ctx, &indicators, "SELECT indicator_id, activity_id, source_type, host_id, service_id, source_id, impact_warning, impact_critical, impact_unknown FROM bam_indicators"); err != nil {
			return err
		}
		for _, i := range indicators {
			snapshot.Indicators[i.ID] = &models.IndicatorConfig{
				ID:         i.ID,
				ActivityID: i.ActivityID,
				Source: models.IndicatorSource{
					Type:    models.SourceType(i.SourceType),
					Service: models.ServiceKey{HostID: i.HostID, ServiceID: i.ServiceID},
					ID:      i.SourceID,
				},
				ImpactWarning:  i.ImpactWarning,
				ImpactCritical: i.ImpactCritical,
				ImpactUnknown:  i.ImpactUnknown,
			}
		}

		var activities []activityRow
		if err := tx.SelectContext(ctx, &activities, "SELECT activity_id, name, rule, warning, critical, downtime_behaviour, host_id, service_id FROM bam_activities"); err != nil {
			return err
		}
		for _, a := range activities {
			snapshot.Activities[a.ID] = &models.ActivityConfig{
				ID:                a.ID,
				Name:              a.Name,
				Rule:              models.AggregationRule(a.Rule),
				Warning:           a.Warning,
				Critical:          a.Critical,
				DowntimeBehaviour: models.DowntimeBehaviour(a.DowntimeBehaviour),
				VirtualService:    virtualService(a.HostID, a.ServiceID),
			}
		}

		var aggregates []aggregateRow
		if err := tx.SelectContext(ctx, &aggregates, "SELECT aggregate_id, name, computation, metric, warning, critical, host_id, service_id FROM bam_aggregates"); err != nil {
			return err
		}
		for _, a := range aggregates {
			snapshot.Aggregates[a.ID] = &models.AggregateConfig{
				ID:             a.ID,
				Name:           a.Name,
				Computation:    models.Computation(a.Computation),
				Metric:         a.Metric,
				Warning:        a.Warning,
				Critical:       a.Critical,
				VirtualService: virtualService(a.HostID, a.ServiceID),
			}
		}

		var services []aggregateServiceRow
		if err := tx.SelectContext(ctx, &services, "SELECT aggregate_id, host_id, service_id FROM bam_aggregate_services ORDER BY aggregate_id, host_id, service_id"); err != nil {
			return err
		}
		for _, s := range services {
			if a, ok := snapshot.Aggregates[s.AggregateID]; ok {
				a.Services = append(a.Services, models.ServiceKey{HostID: s.HostID, ServiceID: s.ServiceID})
			}
		}

		var catalog []catalogRow
		if err := tx.SelectContext(ctx, &catalog, "SELECT host_id, service_id, host_name, description FROM bam_catalog"); err != nil {
			return err
		}
		items := make([]models.CatalogItem, 0, len(catalog))
		for _, c := range catalog {
			items = append(items, models.CatalogItem{
				Key:         models.ServiceKey{HostID: c.HostID, ServiceID: c.ServiceID},
				HostName:    c.HostName,
				Description: c.Description,
			})
		}
		snapshot.Catalog = models.NewCatalog(items)
		return nil
	})
	if err != nil {
		cdb.logger.Error("failed-to-retrieve-snapshot", err)
		return nil, err
	}
	return snapshot, nil
}
