package healthendpoint

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

type HTTPStatusCollector interface {
	prometheus.Collector
	IncConcurrentHTTPRequest()
	DecConcurrentHTTPRequest()
}

type httpStatusCollector struct {
	concurrentHTTPRequestGauge prometheus.Gauge
}

func NewHTTPStatusCollector(namespace, subSystem string) HTTPStatusCollector {
	return &httpStatusCollector{
		concurrentHTTPRequestGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "concurrent_http_request",
			Help:      "Number of concurrent http request",
		}),
	}
}

func (c *httpStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.concurrentHTTPRequestGauge.Desc()
}

func (c *httpStatusCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- c.concurrentHTTPRequestGauge
}

func (c *httpStatusCollector) IncConcurrentHTTPRequest() {
	c.concurrentHTTPRequestGauge.Inc()
}

func (c *httpStatusCollector) DecConcurrentHTTPRequest() {
	c.concurrentHTTPRequestGauge.Dec()
}

type HTTPStatusCollectMiddleware struct {
	httpStatusCollector HTTPStatusCollector
}

func NewHTTPStatusCollectMiddleware(httpStatusCollector HTTPStatusCollector) *HTTPStatusCollectMiddleware {
	return &HTTPStatusCollectMiddleware{httpStatusCollector: httpStatusCollector}
}

func (h *HTTPStatusCollectMiddleware) Collect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.httpStatusCollector.IncConcurrentHTTPRequest()
		defer h.httpStatusCollector.DecConcurrentHTTPRequest()
		next.ServeHTTP(w, r)
	})
}
