package model

import "fmt"

// ValidationError reports caller input that was rejected before any external call.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProviderError reports a failed call to the weather provider. Cause is set for transport failures,
// Reason carries the message the provider returned otherwise.
type ProviderError struct {
	Message string
	Reason  string
	Cause   error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Transport reports whether the provider could not be reached or read.
func (e *ProviderError) Transport() bool {
	return e.Cause != nil
}

// ExtractionError reports a provider response without the expected forecast structure.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// NotFoundError reports an unknown weather request identity.
type NotFoundError struct {
	ID      int64
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}
