package errs

import (
	"errors"
	"net/http"
)

// AI advisory errors
var (
	ErrAIUnavailable = errors.New("AI features not available")
	ErrAIUpstream    = errors.New("AI service error")
)

// NewAIUnavailableError is returned by every AI operation when no credential is configured
func NewAIUnavailableError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrAIUnavailable,
		Details:    "ANTHROPIC_API_KEY not configured",
	}
}

// NewAIUpstreamError wraps any failure of the text-generation service.
// The cause text becomes the details, so Cause is left unset.
func NewAIUpstreamError(cause error) *ApiErr {
	apiErr := &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrAIUpstream,
	}
	if cause != nil {
		apiErr.Details = cause.Error()
	}
	return apiErr
}

func IsAIUnavailable(err error) bool {
	return errors.Is(err, ErrAIUnavailable)
}

func IsAIUpstream(err error) bool {
	return errors.Is(err, ErrAIUpstream)
}
