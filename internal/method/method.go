// Package method defines the fixed CRUD method vocabulary and the
// classification table that decides which kind of view a generated
// endpoint renders.
package method

import (
	"errors"
	"fmt"
	"strings"
)

// Method is one of the seven CRUD endpoint names.
type Method string

// The CRUD vocabulary, in generation order.
const (
	Index   Method = "index"
	Create  Method = "create"
	Store   Method = "store"
	Show    Method = "show"
	Edit    Method = "edit"
	Update  Method = "update"
	Destroy Method = "destroy"
)

// Sentinel errors for method validation.
var (
	// ErrMissingMethod indicates no method was supplied. Callers must obtain
	// explicit confirmation before continuing without one.
	ErrMissingMethod = errors.New("method: no method supplied")

	// ErrInvalidMethod indicates a method outside the CRUD vocabulary.
	ErrInvalidMethod = errors.New("method: not a CRUD method")
)

// InvalidMethodError reports a method name that is not part of the vocabulary.
type InvalidMethodError struct {
	Value string
}

// Error implements the error interface.
func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("invalid method %q: must be one of: %s", e.Value, strings.Join(Names(), ", "))
}

// Unwrap returns ErrInvalidMethod so callers can use errors.Is.
func (e *InvalidMethodError) Unwrap() error {
	return ErrInvalidMethod
}

// Classification describes how an endpoint responds.
type Classification struct {
	IsPage       bool // renders a full page
	IsModal      bool // renders a modal over a base route
	IsForm       bool // the page or modal contains a form
	IsInertiable bool // responds with a rendered view instead of a redirect
}

// vocabulary keeps the generation order of the table below.
var vocabulary = []Method{Index, Create, Store, Show, Edit, Update, Destroy}

// table is the classification rule for every method. Store, update and
// destroy are pure actions that redirect back.
var table = map[Method]Classification{
	Index:   {IsPage: true, IsInertiable: true},
	Create:  {IsModal: true, IsForm: true, IsInertiable: true},
	Store:   {},
	Show:    {IsModal: true, IsInertiable: true},
	Edit:    {IsModal: true, IsForm: true, IsInertiable: true},
	Update:  {},
	Destroy: {},
}

// All returns the vocabulary in generation order.
func All() []Method {
	out := make([]Method, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// Names returns the vocabulary as plain strings.
func Names() []string {
	out := make([]string, len(vocabulary))
	for i, m := range vocabulary {
		out[i] = string(m)
	}
	return out
}

// Parse converts user input to a Method. Matching ignores case and
// surrounding whitespace. An empty value yields ErrMissingMethod.
func Parse(s string) (Method, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "", ErrMissingMethod
	}
	m := Method(v)
	if _, ok := table[m]; !ok {
		return "", &InvalidMethodError{Value: strings.TrimSpace(s)}
	}
	return m, nil
}

// Classify returns the classification of m.
func Classify(m Method) (Classification, error) {
	if m == "" {
		return Classification{}, ErrMissingMethod
	}
	c, ok := table[m]
	if !ok {
		return Classification{}, &InvalidMethodError{Value: string(m)}
	}
	return c, nil
}

// String implements fmt.Stringer.
func (m Method) String() string {
	return string(m)
}
