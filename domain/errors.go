package domain

import "errors"

var (
	// ErrMissingCredential is returned before any network call when the LLM or
	// TTS API key is absent from the environment.
	ErrMissingCredential = errors.New("AI api credential is not configured")

	// ErrStorageNotConfigured is returned before synthesis when no object
	// storage bucket is configured, so no audio is generated that could not be
	// persisted.
	ErrStorageNotConfigured = errors.New("object storage bucket is not configured")

	// ErrMalformedAnalysis is returned when the model responds with something
	// that is not the strict JSON shape the prompt demands.
	ErrMalformedAnalysis = errors.New("model returned malformed analysis")
)

// IsConfigurationError reports whether err stems from missing deployment
// configuration rather than an upstream failure.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrMissingCredential) || errors.Is(err, ErrStorageNotConfigured)
}
