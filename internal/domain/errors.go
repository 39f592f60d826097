package domain

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals that no model capability is configured.
var ErrProviderUnavailable = errors.New("model provider unavailable")

// ProviderError wraps a failed model call (network, auth, malformed reply, timeout).
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err for the named provider. A nil err yields nil.
func NewProviderError(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Provider: provider, Err: err}
}
