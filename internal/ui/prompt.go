package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Option is a labelled choice of a Select or MultiSelect prompt.
type Option struct {
	Label string
	Value string
}

// Prompter asks the user for input. In headless mode inputs and selects
// answer from the HeadlessManager defaults or fail with ErrHeadless, and
// confirmations are declined.
type Prompter interface {
	Input(key, title, placeholder string, validate func(string) error) (string, error)
	Select(key, title string, options []Option) (string, error)
	MultiSelect(key, title string, options []Option) ([]string, error)
	Confirm(question string) (bool, error)
}

// prompterImpl implements Prompter with huh forms.
type prompterImpl struct {
	theme    *Theme
	headless *HeadlessManager
	run      func(*huh.Form) error
}

// NewPrompter creates a Prompter backed by the given theme and headless manager.
func NewPrompter(theme *Theme, hm *HeadlessManager) Prompter {
	return &prompterImpl{theme: theme, headless: hm, run: (*huh.Form).Run}
}

// Input asks for a single line of text.
func (p *prompterImpl) Input(key, title, placeholder string, validate func(string) error) (string, error) {
	if p.headless.IsHeadless() {
		v, ok := p.headless.GetDefault(key)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrHeadless, key)
		}
		if validate != nil {
			if err := validate(v); err != nil {
				return "", err
			}
		}
		return v, nil
	}

	var value string
	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}
	if err := p.form(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// Select asks for one of options.
func (p *prompterImpl) Select(key, title string, options []Option) (string, error) {
	if p.headless.IsHeadless() {
		v, ok := p.headless.GetDefault(key)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrHeadless, key)
		}
		return v, nil
	}

	var value string
	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions(options)...).
		Value(&value)
	if err := p.form(field); err != nil {
		return "", err
	}
	return value, nil
}

// MultiSelect asks for any subset of options. Headless it returns the
// comma separated default for key, or nothing.
func (p *prompterImpl) MultiSelect(key, title string, options []Option) ([]string, error) {
	if p.headless.IsHeadless() {
		v, _ := p.headless.GetDefault(key)
		return splitList(v), nil
	}

	var values []string
	field := huh.NewMultiSelect[string]().
		Title(title).
		Options(huhOptions(options)...).
		Value(&values)
	if err := p.form(field); err != nil {
		return nil, err
	}
	return values, nil
}

// Confirm asks a yes/no question. Headless it always answers no.
func (p *prompterImpl) Confirm(question string) (bool, error) {
	if p.headless.IsHeadless() {
		return false, nil
	}

	var ok bool
	field := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)
	if err := p.form(field); err != nil {
		return false, err
	}
	return ok, nil
}

// form runs a single-field form with the themed style.
func (p *prompterImpl) form(field huh.Field) error {
	f := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme.huhTheme()).
		WithAccessible(false)
	if err := p.run(f); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}

func huhOptions(options []Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(options))
	for i, o := range options {
		out[i] = huh.NewOption(o.Label, o.Value)
	}
	return out
}

func splitList(v string) []string {
	var out []string
	for part := range strings.SplitSeq(v, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
