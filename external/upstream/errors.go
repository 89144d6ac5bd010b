package upstream

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/matchday-mcp/internal/usecase"
)

// StatusError is a non-2xx answer from an upstream. It unwraps to
// usecase.ErrUpstreamUnavailable.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s status=%d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s status=%d body=%s", e.Service, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return usecase.ErrUpstreamUnavailable
}

// Transient reports whether the status should count against the circuit breaker.
func (e *StatusError) Transient() bool {
	return isTransientStatus(e.StatusCode)
}

func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
