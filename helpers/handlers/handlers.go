package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"code.cloudfoundry.org/bam-broker/models"
)

// WriteJSONResponse writes obj as the JSON body of a statusCode response.
// An unencodable obj turns into a plain 500.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, obj interface{}) {
	body, err := json.Marshal(obj)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSONResponse(w, statusCode, models.ErrorResponse{
		Code:    http.StatusText(statusCode),
		Message: message,
	})
}
