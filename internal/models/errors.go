package models

import "fmt"

// ExternalServiceError is returned when the model provider could not be reached
// or answered with an error. It aborts the current run.
type ExternalServiceError struct {
	Model string
	Err   error
}

func NewExternalServiceError(model string, err error) error {
	return &ExternalServiceError{Model: model, Err: err}
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("model '%v' failed: %v", e.Model, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
