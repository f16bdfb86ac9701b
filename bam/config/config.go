package config

import (
	"fmt"
	"strings"
	"time"

	"code.cloudfoundry.org/bam-broker/db"
	"code.cloudfoundry.org/bam-broker/helpers"
)

const (
	DefaultConfigPollInterval   = 30 * time.Second
	DefaultRebuildQueueSize     = 4
	DefaultHistoryCacheSize     = 100000
	DefaultPersisterQueueName   = "persister"
	DefaultMaxElapsedTime       = 5 * time.Minute
	DefaultStatusTTL            = 10 * time.Minute
	DefaultPublishInterval      = 5 * time.Second
	DefaultStatusRetention      = 7 * 24 * time.Hour
	DefaultPruneInterval        = time.Hour
	DefaultDBLockTTL            = 15 * time.Second
	DefaultDBLockRetryInterval  = 5 * time.Second
	DefaultServerPort           = 8080
	DefaultHealthServerPort     = 8081
	DefaultDatabaseMaxOpenConns = 10
)

type DBConfig struct {
	ConfigDB db.DatabaseConfig `yaml:"config_db"`
	EventDB  db.DatabaseConfig `yaml:"event_db"`
	StatusDB db.DatabaseConfig `yaml:"status_db"`
	LockDB   db.DatabaseConfig `yaml:"lock_db"`
}

type ConfigPollerConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type RebuildConfig struct {
	QueueSize        int `yaml:"queue_size"`
	HistoryCacheSize int `yaml:"history_cache_size"`
}

type PersisterConfig struct {
	QueueName      string        `yaml:"queue_name"`
	MaxElapsedTime time.Duration `yaml:"max_elapsed_time"`
}

type StatusCacheConfig struct {
	TTL             time.Duration `yaml:"ttl"`
	PublishInterval time.Duration `yaml:"publish_interval"`
}

type StatusHistoryConfig struct {
	Retention     time.Duration `yaml:"retention"`
	PruneInterval time.Duration `yaml:"prune_interval"`
}

type DBLockConfig struct {
	Enabled       bool          `yaml:"enabled"`
	TTL           time.Duration `yaml:"ttl"`
	RetryInterval time.Duration `yaml:"retry_interval"`
	Owner         string        `yaml:"owner"`
}

type Config struct {
	Logging       helpers.LoggingConfig `yaml:"logging"`
	Server        helpers.ServerConfig  `yaml:"server"`
	Health        helpers.HealthConfig  `yaml:"health"`
	DB            DBConfig              `yaml:"db"`
	ConfigPoller  ConfigPollerConfig    `yaml:"config_poller"`
	Rebuild       RebuildConfig         `yaml:"rebuild"`
	Persister     PersisterConfig       `yaml:"persister"`
	StatusCache   StatusCacheConfig     `yaml:"status_cache"`
	StatusHistory StatusHistoryConfig   `yaml:"status_history"`
	DBLock        DBLockConfig          `yaml:"db_lock"`
}

func defaultConfig() Config {
	return Config{
		Logging: helpers.LoggingConfig{Level: "info"},
		Server:  helpers.ServerConfig{Port: DefaultServerPort},
		Health: helpers.HealthConfig{
			ServerConfig: helpers.ServerConfig{Port: DefaultHealthServerPort},
		},
		DB: DBConfig{
			ConfigDB: db.DatabaseConfig{MaxOpenConnections: DefaultDatabaseMaxOpenConns},
			EventDB:  db.DatabaseConfig{MaxOpenConnections: DefaultDatabaseMaxOpenConns},
			StatusDB: db.DatabaseConfig{MaxOpenConnections: DefaultDatabaseMaxOpenConns},
			LockDB:   db.DatabaseConfig{MaxOpenConnections: DefaultDatabaseMaxOpenConns},
		},
		ConfigPoller: ConfigPollerConfig{Interval: DefaultConfigPollInterval},
		Rebuild: RebuildConfig{
			QueueSize:        DefaultRebuildQueueSize,
			HistoryCacheSize: DefaultHistoryCacheSize,
		},
		Persister: PersisterConfig{
			QueueName:      DefaultPersisterQueueName,
			MaxElapsedTime: DefaultMaxElapsedTime,
		},
		StatusCache: StatusCacheConfig{
			TTL:             DefaultStatusTTL,
			PublishInterval: DefaultPublishInterval,
		},
		StatusHistory: StatusHistoryConfig{
			Retention:     DefaultStatusRetention,
			PruneInterval: DefaultPruneInterval,
		},
		DBLock: DBLockConfig{
			TTL:           DefaultDBLockTTL,
			RetryInterval: DefaultDBLockRetryInterval,
		},
	}
}

// LoadConfig overlays the YAML file at path onto the defaults. An empty path
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	conf := defaultConfig()
	if err := helpers.LoadYamlFile(path, &conf); err != nil {
		return nil, err
	}
	conf.Logging.Level = strings.ToLower(conf.Logging.Level)
	return &conf, nil
}

func (c *Config) Validate() error {
	validators := []func() error{
		c.validateDB,
		c.validateConfigPoller,
		c.validateRebuild,
		c.validatePersister,
		c.validateStatusCache,
		c.validateStatusHistory,
		c.validateDBLock,
		c.Health.Validate,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateDB() error {
	for name, dbConf := range map[string]db.DatabaseConfig{
		"config_db": c.DB.ConfigDB,
		"event_db":  c.DB.EventDB,
		"status_db": c.DB.StatusDB,
	} {
		if dbConf.URL == "" {
			return fmt.Errorf("Configuration error: db.%s.url is empty", name)
		}
	}
	return nil
}

func (c *Config) validateConfigPoller() error {
	if c.ConfigPoller.Interval <= 0 {
		return fmt.Errorf("Configuration error: config_poller.interval is less than or equal to 0")
	}
	return nil
}

func (c *Config) validateRebuild() error {
	if c.Rebuild.QueueSize <= 0 {
		return fmt.Errorf("Configuration error: rebuild.queue_size is less than or equal to 0")
	}
	if c.Rebuild.HistoryCacheSize <= 0 {
		return fmt.Errorf("Configuration error: rebuild.history_cache_size is less than or equal to 0")
	}
	return nil
}

func (c *Config) validatePersister() error {
	if c.Persister.QueueName == "" {
		return fmt.Errorf("Configuration error: persister.queue_name is empty")
	}
	if c.Persister.MaxElapsedTime <= 0 {
		return fmt.Errorf("Configuration error: persister.max_elapsed_time is less than or equal to 0")
	}
	return nil
}

func (c *Config) validateStatusCache() error {
	if c.StatusCache.PublishInterval <= 0 {
		return fmt.Errorf("Configuration error: status_cache.publish_interval is less than or equal to 0")
	}
	if c.StatusCache.TTL <= c.StatusCache.PublishInterval {
		return fmt.Errorf("Configuration error: status_cache.ttl must be greater than status_cache.publish_interval")
	}
	return nil
}

func (c *Config) validateStatusHistory() error {
	if c.StatusHistory.Retention <= 0 {
		return fmt.Errorf("Configuration error: status_history.retention is less than or equal to 0")
	}
	if c.StatusHistory.PruneInterval <= 0 {
		return fmt.Errorf("Configuration error: status_history.prune_interval is less than or equal to 0")
	}
	return nil
}

func (c *Config) validateDBLock() error {
	if !c.DBLock.Enabled {
		return nil
	}
	if c.DB.LockDB.URL == "" {
		return fmt.Errorf("Configuration error: db.lock_db.url is empty")
	}
	if c.DBLock.TTL <= 0 {
		return fmt.Errorf("Configuration error: db_lock.ttl is less than or equal to 0")
	}
	if c.DBLock.RetryInterval <= 0 {
		return fmt.Errorf("Configuration error: db_lock.retry_interval is less than or equal to 0")
	}
	return nil
}
