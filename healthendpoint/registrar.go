package healthendpoint

import (
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func RegisterCollectors(registrar prometheus.Registerer, cols []prometheus.Collector, includeDefault bool, logger lager.Logger) {
	if includeDefault {
		cols = append([]prometheus.Collector{
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		}, cols...)
	}
	for _, c := range cols {
		if err := registrar.Register(c); err != nil {
			logger.Error("failed-to-register-collector", err)
		}
	}
}
