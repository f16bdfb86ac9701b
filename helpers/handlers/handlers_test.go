package handlers_test

import (
	"net/http"
	"net/http/httptest"

	. "code.cloudfoundry.org/bam-broker/helpers/handlers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type response struct {
	Key string `json:"key"`
}

var _ = Describe("handlers", func() {
	var w *httptest.ResponseRecorder

	BeforeEach(func() {
		w = httptest.NewRecorder()
	})

	Context("WriteJSONResponse", func() {
		It("writes the encoded body with its length", func() {
			WriteJSONResponse(w, http.StatusAccepted, response{Key: "val"})
			Expect(w.Code).To(Equal(http.StatusAccepted))
			Expect(w.Result().Header.Values("Content-Length")).To(Equal([]string{"13"}))
			Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(w.Body.String()).To(Equal(`{"key":"val"}`))
		})

		It("returns an internal server error for unencodable values", func() {
			garbage := map[string]interface{}{"ch": make(chan int)}
			WriteJSONResponse(w, http.StatusOK, garbage)
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Context("WriteError", func() {
		It("writes an error response", func() {
			WriteError(w, http.StatusServiceUnavailable, "rebuild queue is full")
			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			Expect(w.Body.String()).To(MatchJSON(`{"code":"Service Unavailable","message":"rebuild queue is full"}`))
		})
	})
})
