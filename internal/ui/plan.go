package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// planWrapWidth is the word wrap column of the rendered plan.
const planWrapWidth = 100

// RenderMarkdown renders md for the terminal. Headless output or a
// colourless theme returns md unchanged.
func RenderMarkdown(theme *Theme, hm *HeadlessManager, md string) (string, error) {
	if theme.NoColor || !hm.IsTerminal() {
		return md, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(planWrapWidth),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
