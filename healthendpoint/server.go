package healthendpoint

import (
	"net/http"

	"code.cloudfoundry.org/bam-broker/helpers"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
)

const (
	HealthPath    = "/health"
	ReadinessPath = "/health/readiness"
)

// NewServerWithBasicAuth serves the Prometheus metrics and the readiness
// report. Basic auth protects everything but the readiness report when
// credentials are configured.
func NewServerWithBasicAuth(conf helpers.HealthConfig, checkers []Checker, logger lager.Logger, gatherer prometheus.Gatherer) (ifrit.Runner, error) {
	router, err := NewHealthRouter(conf, checkers, logger, gatherer)
	if err != nil {
		return nil, err
	}
	return helpers.NewHTTPServer(logger.Session("health-server"), conf.ServerConfig, router)
}

func NewHealthRouter(conf helpers.HealthConfig, checkers []Checker, logger lager.Logger, gatherer prometheus.Gatherer) (*mux.Router, error) {
	auth, err := helpers.CreateBasicAuthMiddleware(logger, conf.BasicAuth)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	if conf.ReadinessCheckEnabled {
		router.Path(ReadinessPath).Methods(http.MethodGet).HandlerFunc(readiness(checkers))
	}

	protected := router.PathPrefix("").Subrouter()
	protected.Use(auth.Middleware)
	protected.PathPrefix("").Handler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return router, nil
}
