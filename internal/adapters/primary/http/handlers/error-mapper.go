package handlers

import (
	"errors"
	"net/http"

	"phishing-url-service/internal/core/domain"
)

// verdictStatus maps the fault of an error verdict to an HTTP status.
func verdictStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Configuration faults: the service cannot classify anything.
	case errors.Is(err, domain.ErrArtifactUnavailable),
		errors.Is(err, domain.ErrNotReady):
		return http.StatusServiceUnavailable

	// Bad request / validation errors
	case errors.Is(err, domain.ErrMissingInput):
		return http.StatusBadRequest

	// Per-request faults
	case errors.Is(err, domain.ErrInferenceFault),
		errors.Is(err, domain.ErrUnrecognizedLabel):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}
