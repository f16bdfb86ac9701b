package helpers

import (
	"fmt"
	"net/http"

	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
)

type ServerConfig struct {
	Host string          `yaml:"host" json:"host"`
	Port int             `yaml:"port" json:"port"`
	TLS  models.TLSCerts `yaml:"tls" json:"tls"`
}

func (c ServerConfig) Addr() string {
	host := c.Host
	if host == "" {
		host = "0.0.0.0"
	}
	return fmt.Sprintf("%s:%d", host, c.Port)
}

func NewHTTPServer(logger lager.Logger, conf ServerConfig, handler http.Handler) (ifrit.Runner, error) {
	logger.Info("new-http-server", lager.Data{"addr": conf.Addr(), "tls": conf.TLS.Enabled()})

	if conf.TLS.Enabled() {
		tlsConfig, err := conf.TLS.CreateServerConfig()
		if err != nil {
			logger.Error("failed-new-server-new-tls-config", err, lager.Data{"tls": conf.TLS})
			return nil, fmt.Errorf("server tls config error: %w", err)
		}
		return http_server.NewTLSServer(conf.Addr(), handler, tlsConfig), nil
	}
	return http_server.New(conf.Addr(), handler), nil
}
