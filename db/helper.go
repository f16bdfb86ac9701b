package db

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"code.cloudfoundry.org/tlsconfig"
	"github.com/go-sql-driver/mysql"
)

var ErrMissingCACert = errors.New("sql ca file is not provided")

type Database struct {
	DriverName     string
	DataSourceName string
}

// GetConnection derives the driver and the data source name from a database
// url. Postgres urls are used as is. Mysql urls may carry a tls mode and an
// sslrootcert query parameter, e.g.
//
//	username:password@tcp(localhost:3306)/bam?tls=verify_identity&sslrootcert=db_ca.crt
func GetConnection(dbUrl string) (*Database, error) {
	if strings.Contains(dbUrl, "postgres") {
		return &Database{DriverName: PostgresDriverName, DataSourceName: dbUrl}, nil
	}

	config, caFile, err := parseMySQLURL(dbUrl)
	if err != nil {
		return nil, err
	}
	if err := registerMySQLTLS(config, caFile); err != nil {
		return nil, err
	}
	return &Database{DriverName: MysqlDriverName, DataSourceName: config.FormatDSN()}, nil
}

// parseMySQLURL strips tls and sslrootcert from the query, which the driver
// would reject as unknown parameters.
func parseMySQLURL(dbUrl string) (*mysql.Config, string, error) {
	base, rawQuery, _ := strings.Cut(dbUrl, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, "", err
	}
	tlsMode := query.Get("tls")
	caFile := query.Get("sslrootcert")
	query.Del("tls")
	query.Del("sslrootcert")

	dsn := base
	if len(query) > 0 {
		dsn = base + "?" + query.Encode()
	}
	config, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, "", err
	}
	config.ParseTime = true
	config.TLSConfig = tlsMode
	return config, caFile, nil
}

// registerMySQLTLS registers a verifying client config under the mode name
// for every mode the driver does not know by itself.
func registerMySQLTLS(config *mysql.Config, caFile string) error {
	mode := config.TLSConfig
	switch strings.ToLower(mode) {
	case "", "true", "false", "1", "0", "skip-verify", "preferred":
		return nil
	}
	if caFile == "" {
		return ErrMissingCACert
	}

	clientOptions := []tlsconfig.ClientOption{tlsconfig.WithAuthorityFromFile(caFile)}
	if mode == "verify_identity" {
		host, _, err := net.SplitHostPort(config.Addr)
		if err != nil {
			host = config.Addr
		}
		clientOptions = append(clientOptions, tlsconfig.WithServerName(host))
	}
	tlsConfig, err := tlsconfig.Build(tlsconfig.WithInternalServiceDefaults()).Client(clientOptions...)
	if err != nil {
		return fmt.Errorf("failed to load sql ca file %s: %w", caFile, err)
	}
	return mysql.RegisterTLSConfig(mode, tlsConfig)
}
