package models

import (
	"errors"
	"fmt"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var (
	ErrNoContribution   = errors.New("no contributing indicator")
	ErrNoMetricValue    = errors.New("no metric value available")
	ErrNoOpenEvent      = errors.New("no open event to close")
	ErrEventAlreadyOpen = errors.New("an event is already open")
	ErrDependencyCycle  = errors.New("dependency cycle")
	ErrUnknownReference = errors.New("unknown reference")
)

// ConfigError marks a node that could not be configured as requested. The
// node still exists but computes an unknown state.
type ConfigError struct {
	Ref    NodeRef
	Reason error
}

func NewConfigError(ref NodeRef, reason error) *ConfigError {
	return &ConfigError{Ref: ref, Reason: reason}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error on %s: %s", e.Ref, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Reason
}
