package healthendpoint_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/bam-broker/healthendpoint"
	"code.cloudfoundry.org/bam-broker/helpers"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
)

var _ = Describe("Health router", func() {
	var (
		conf     helpers.HealthConfig
		checkers []healthendpoint.Checker
		pinger   *testPinger
		server   *httptest.Server
	)

	get := func(path string, auth bool) (*http.Response, string) {
		req, err := http.NewRequest(http.MethodGet, server.URL+path, nil)
		Expect(err).NotTo(HaveOccurred())
		if auth {
			req.SetBasicAuth("monitor", "s3cret")
		}
		resp, err := http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		return resp, string(body)
	}

	BeforeEach(func() {
		conf = helpers.HealthConfig{
			BasicAuth:             models.BasicAuth{Username: "monitor", Password: "s3cret"},
			ReadinessCheckEnabled: true,
		}
		pinger = &testPinger{}
		checkers = []healthendpoint.Checker{
			healthendpoint.DbChecker("event_db", pinger),
			healthendpoint.ProcessChecker("pipeline", func() bool { return true }),
		}
	})

	JustBeforeEach(func() {
		registry := prometheus.NewRegistry()
		registry.MustRegister(healthendpoint.NewHTTPStatusCollector("bam", "broker"))
		router, err := healthendpoint.NewHealthRouter(conf, checkers, lagertest.NewTestLogger("health"), registry)
		Expect(err).NotTo(HaveOccurred())
		server = httptest.NewServer(router)
	})

	AfterEach(func() {
		server.Close()
	})

	It("requires basic auth for the metrics", func() {
		resp, _ := get(healthendpoint.HealthPath, false)
		Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))

		resp, body := get(healthendpoint.HealthPath, true)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring("bam_broker_concurrent_http_request"))
	})

	It("serves the readiness report without auth", func() {
		resp, body := get(healthendpoint.ReadinessPath, false)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{
			"overall_status": "UP",
			"checks": [
				{"name": "event_db", "type": "database", "status": "UP"},
				{"name": "pipeline", "type": "process", "status": "UP"}
			]
		}`))
		Expect(pinger.count).To(Equal(1))
	})

	When("a database does not answer", func() {
		BeforeEach(func() {
			pinger.err = errors.New("connection refused")
		})

		It("reports the broker as down", func() {
			resp, body := get(healthendpoint.ReadinessPath, false)
			Expect(resp.StatusCode).To(Equal(http.StatusServiceUnavailable))
			Expect(body).To(ContainSubstring(`"overall_status":"DOWN"`))
		})
	})

	When("readiness is disabled", func() {
		BeforeEach(func() {
			conf.ReadinessCheckEnabled = false
		})

		It("protects the readiness path like any other", func() {
			resp, _ := get(healthendpoint.ReadinessPath, false)
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})
	})

	When("basic auth is not configured", func() {
		BeforeEach(func() {
			conf.BasicAuth = models.BasicAuth{}
		})

		It("serves the metrics openly", func() {
			resp, _ := get(healthendpoint.HealthPath, false)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})
	})
})
