package ui

import "errors"

var (
	// ErrHeadless indicates a prompt was needed without a terminal and no
	// default was available.
	ErrHeadless = errors.New("ui: input required but running without a terminal")

	// ErrCancelled indicates the user aborted a prompt.
	ErrCancelled = errors.New("ui: cancelled")
)
