package generate

import (
	"errors"
	"fmt"
)

// ErrDeclined indicates the user refused to continue without a valid method.
var ErrDeclined = errors.New("generate: declined")

// SubGeneratorError reports a failure of one of the collaborating generators.
type SubGeneratorError struct {
	Generator string // "model", "resource", "request", "route", "page" or "modal"
	Err       error
}

// Error implements the error interface.
func (e *SubGeneratorError) Error() string {
	return fmt.Sprintf("%s generator: %v", e.Generator, e.Err)
}

// Unwrap returns the underlying error.
func (e *SubGeneratorError) Unwrap() error {
	return e.Err
}
