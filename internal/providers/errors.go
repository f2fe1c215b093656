package providers

import (
	"errors"
	"fmt"
)

// ConfigurationError is returned when no backend has a credential.
type ConfigurationError struct{}

func (e *ConfigurationError) Error() string {
	return "No API key configured. Please set GROQ_API_KEY (free), GEMINI_API_KEY (free), OPENAI_API_KEY, or ANTHROPIC_API_KEY"
}

// ProviderError is a failed backend call. StatusCode is zero when the
// request never produced an HTTP response.
type ProviderError struct {
	Backend    BackendID
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s API error: %v", e.Backend.DisplayName(), e.Err)
	}
	return fmt.Sprintf("%s API error: %d - %s", e.Backend.DisplayName(), e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsAuthError reports whether err is a backend rejecting its credential.
func IsAuthError(err error) bool {
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.StatusCode == 401 || pe.StatusCode == 403
}

// IsConfigurationError reports whether err means no backend is configured.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
