package domain

import "errors"

// ============================================================================
// Artifact Errors
// ============================================================================

var (
	ErrArtifactUnavailable = errors.New("artifact unavailable")
	ErrUnsupportedSource   = errors.New("unsupported artifact source")
	ErrInvalidArtifact     = errors.New("invalid artifact")
)

// ============================================================================
// Inference Errors
// ============================================================================

var (
	ErrNotReady          = errors.New("artifact not ready")
	ErrInferenceFault    = errors.New("inference fault")
	ErrUnrecognizedLabel = errors.New("unrecognized label")
)

// ============================================================================
// Request / Session Errors
// ============================================================================

var (
	ErrMissingInput    = errors.New("url is required")
	ErrSessionNotFound = errors.New("session not found")
)

// FaultKind names the taxonomy entry an error belongs to. It is shown to the
// user on error verdicts instead of the raw error text.
func FaultKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrArtifactUnavailable):
		return "ArtifactUnavailable"
	case errors.Is(err, ErrNotReady):
		return "NotReady"
	case errors.Is(err, ErrUnrecognizedLabel):
		return "UnrecognizedLabel"
	case errors.Is(err, ErrInferenceFault):
		return "InferenceFault"
	case errors.Is(err, ErrMissingInput):
		return "MissingInput"
	default:
		return "InternalError"
	}
}
