package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrProvider matches every *ProviderError via errors.Is.
	ErrProvider          = errors.New("provider request failed")
	ErrCredentialMissing = errors.New("api key is not configured")
)

// ProviderError reports a failed completion request: missing or rejected
// credential, network failure or a non-success response.
type ProviderError struct {
	Model string
	Err   error
}

func (e *ProviderError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("provider request failed: %v", e.Err)
	}
	return fmt.Sprintf("provider request failed (model %s): %v", e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is allows comparison with ErrProvider.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}
