package stub

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

// ControllerStub is the file name of the controller stub.
const ControllerStub = "conquest.controller.stub"

//go:embed stubs/*.stub
var embedded embed.FS

// ErrStubNotFound indicates neither the project nor the binary provides a stub.
var ErrStubNotFound = errors.New("stub: not found")

// Resolver loads stubs, preferring a project-published copy over the
// embedded default.
type Resolver struct {
	custom fs.FS
}

// NewResolver creates a Resolver. custom may be nil, in which case only the
// embedded stubs are used.
func NewResolver(custom fs.FS) *Resolver {
	return &Resolver{custom: custom}
}

// Load returns the raw contents of the named stub.
func (r *Resolver) Load(name string) (string, error) {
	if r.custom != nil {
		data, err := fs.ReadFile(r.custom, name)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("read custom stub %s: %w", name, err)
		}
	}

	return Default(name)
}

// IsCustom reports whether the project overrides the named stub.
func (r *Resolver) IsCustom(name string) bool {
	if r.custom == nil {
		return false
	}
	_, err := fs.Stat(r.custom, name)
	return err == nil
}

// Default returns the embedded contents of the named stub.
func Default(name string) (string, error) {
	data, err := embedded.ReadFile("stubs/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrStubNotFound, name)
	}
	return string(data), nil
}
