package ui

import (
	"fmt"
	"io"
	"os"
)

// Output prints status lines in the style of the framework's console
// components: a coloured badge followed by the message.
type Output struct {
	theme *Theme
	out   io.Writer
	err   io.Writer
}

// NewOutput creates an Output writing to stdout and stderr.
func NewOutput(theme *Theme) *Output {
	return NewOutputTo(theme, os.Stdout, os.Stderr)
}

// NewOutputTo creates an Output with explicit writers.
func NewOutputTo(theme *Theme, out, errOut io.Writer) *Output {
	return &Output{theme: theme, out: out, err: errOut}
}

// Success prints a success line.
func (o *Output) Success(format string, args ...any) {
	o.line(o.out, "DONE", o.theme.Colors.Success, format, args...)
}

// Warn prints a warning line.
func (o *Output) Warn(format string, args ...any) {
	o.line(o.err, "WARN", o.theme.Colors.Warning, format, args...)
}

// Error prints an error line.
func (o *Output) Error(format string, args ...any) {
	o.line(o.err, "ERROR", o.theme.Colors.Error, format, args...)
}

// Created prints the confirmation line of one artifact.
func (o *Output) Created(kind, path, action string) {
	_, _ = fmt.Fprintln(o.out, o.CreatedLine(kind, path, action))
}

// CreatedLine formats the confirmation line of one artifact.
func (o *Output) CreatedLine(kind, path, action string) string {
	var msg string
	switch action {
	case "skip":
		msg = fmt.Sprintf("%s [%s] already registered, skipped.", kind, o.theme.highlight(path))
	case "overwrite":
		msg = fmt.Sprintf("%s [%s] overwritten successfully.", kind, o.theme.highlight(path))
	case "update":
		msg = fmt.Sprintf("%s [%s] updated successfully.", kind, o.theme.highlight(path))
	default:
		msg = fmt.Sprintf("%s [%s] created successfully.", kind, o.theme.highlight(path))
	}
	return o.format("INFO", o.theme.Colors.Secondary, msg)
}

// Print writes s verbatim to stdout.
func (o *Output) Print(s string) {
	_, _ = io.WriteString(o.out, s)
}

// Muted prints a dimmed line to stdout.
func (o *Output) Muted(format string, args ...any) {
	_, _ = fmt.Fprintln(o.out, "  "+o.theme.muted(fmt.Sprintf(format, args...)))
}

func (o *Output) line(w io.Writer, label, color, format string, args ...any) {
	_, _ = fmt.Fprintln(w, o.format(label, color, fmt.Sprintf(format, args...)))
}

func (o *Output) format(label, color, msg string) string {
	return "  " + o.theme.badge(label, color) + " " + msg
}
