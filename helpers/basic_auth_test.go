package helpers_test

import (
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/bam-broker/helpers"
	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

var _ = Describe("BasicAuthenticationMiddleware", func() {
	var (
		server   *httptest.Server
		ba       models.BasicAuth
		resp     *http.Response
		username string
		password string
		logger   *lagertest.TestLogger
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("helper-test")
		ba = models.BasicAuth{}
		username, password = "", ""
	})

	AfterEach(func() {
		server.Close()
	})

	JustBeforeEach(func() {
		mw, err := helpers.CreateBasicAuthMiddleware(logger, ba)
		Expect(err).NotTo(HaveOccurred())

		server = httptest.NewServer(mw.Middleware(handler))

		req, err := http.NewRequest(http.MethodGet, server.URL+"/health", nil)
		Expect(err).NotTo(HaveOccurred())
		if username != "" || password != "" {
			req.SetBasicAuth(username, password)
		}

		resp, err = http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())

		defer resp.Body.Close()
	})

	When("basic auth is enabled", func() {
		BeforeEach(func() {
			ba = models.BasicAuth{
				Username: "username",
				Password: "password",
			}
		})

		When("credentials are correct", func() {
			BeforeEach(func() {
				username = ba.Username
				password = ba.Password
			})

			It("should return 200", func() {
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
			})
		})

		When("credentials are incorrect", func() {
			BeforeEach(func() {
				username = "wrong-username"
				password = "wrong-password"
			})

			It("should return 401", func() {
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	When("basic auth is configured with hashes", func() {
		BeforeEach(func() {
			userHash, err := bcrypt.GenerateFromPassword([]byte("monitor"), bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())
			passHash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())
			ba = models.BasicAuth{UsernameHash: string(userHash), PasswordHash: string(passHash)}
			username, password = "monitor", "s3cret"
		})

		It("should return 200", func() {
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})
	})

	When("credentials are missing from the request", func() {
		BeforeEach(func() {
			ba = models.BasicAuth{Username: "username", Password: "password"}
		})

		It("should return 401", func() {
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})
	})

	When("basic auth is not configured", func() {
		It("should let every request through", func() {
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})
	})
})
