package template

import (
	"errors"
	"fmt"
)

// Sentinel errors for template rendering and file emission.
var (
	// ErrTemplateNotFound indicates the named template does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the template referenced a missing key.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates a placeholder survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token")

	// ErrPathTraversal indicates a target path escapes the project root.
	ErrPathTraversal = errors.New("template: path escapes project root")

	// ErrFileExists indicates the target file already exists.
	ErrFileExists = errors.New("template: file already exists")
)

// ConflictError reports a target file that already exists while force
// was not requested.
type ConflictError struct {
	Kind string // artifact kind, e.g. "Controller"
	Path string // path relative to the project root
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Kind, e.Path)
}

// Unwrap returns ErrFileExists.
func (e *ConflictError) Unwrap() error {
	return ErrFileExists
}
