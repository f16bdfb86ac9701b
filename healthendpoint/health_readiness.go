package healthendpoint

import (
	"net/http"

	"code.cloudfoundry.org/bam-broker/helpers/handlers"
)

type (
	Pinger interface {
		Ping() error
	}

	ReadinessCheck struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}

	readinessResponse struct {
		OverallStatus string           `json:"overall_status"`
		Checks        []ReadinessCheck `json:"checks"`
	}

	Checker func() ReadinessCheck
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

func readiness(checkers []Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := readinessResponse{OverallStatus: StatusUp, Checks: make([]ReadinessCheck, 0, len(checkers))}
		for _, checker := range checkers {
			check := checker()
			resp.Checks = append(resp.Checks, check)
			if check.Status == StatusDown {
				resp.OverallStatus = StatusDown
			}
		}
		code := http.StatusOK
		if resp.OverallStatus == StatusDown {
			code = http.StatusServiceUnavailable
		}
		handlers.WriteJSONResponse(w, code, resp)
	}
}

func DbChecker(dbName string, pinger Pinger) Checker {
	return func() ReadinessCheck {
		status := StatusUp
		if pinger != nil && pinger.Ping() != nil {
			status = StatusDown
		}
		return ReadinessCheck{Name: dbName, Type: "database", Status: status}
	}
}

// ProcessChecker reports a component of the broker process as down while
// running returns false.
func ProcessChecker(name string, running func() bool) Checker {
	return func() ReadinessCheck {
		status := StatusUp
		if !running() {
			status = StatusDown
		}
		return ReadinessCheck{Name: name, Type: "process", Status: status}
	}
}
