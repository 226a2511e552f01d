package codegen

import "errors"

var (
	// ErrValidation marks descriptions rejected by a local syntactic check.
	ErrValidation = errors.New("invalid description")
	// ErrBackendUnavailable marks descriptions that passed validation but could not be served.
	ErrBackendUnavailable = errors.New("generation backend unavailable")
)

// ValidationError reports a description that is empty or below the minimum length.
type ValidationError struct {
	Message string
}

func (validationError *ValidationError) Error() string {
	return validationError.Message
}

func (validationError *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// BackendUnavailableError reports that no generation backend is configured.
// Request holds the description exactly as it was received.
type BackendUnavailableError struct {
	Message string
	Request string
}

func (backendError *BackendUnavailableError) Error() string {
	return backendError.Message
}

func (backendError *BackendUnavailableError) Is(target error) bool {
	return target == ErrBackendUnavailable
}
