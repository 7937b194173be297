package generate

import (
	"fmt"
	"strings"

	"github.com/conquest-php/assemble/internal/template"
)

// Markdown renders the report as a Markdown table of planned artifacts.
func (r *Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Plan for %s\n\n", r.Name)
	if len(r.Entries) == 0 {
		b.WriteString("Nothing to generate.\n")
		return b.String()
	}
	b.WriteString("| Kind | Path | Action |\n")
	b.WriteString("|------|------|--------|\n")
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "| %s | `%s` | %s |\n", e.Kind, e.Path, e.Action)
	}
	return b.String()
}

// Count returns the number of entries with the given action.
func (r *Report) Count(action template.Action) int {
	n := 0
	for _, e := range r.Entries {
		if e.Action == action {
			n++
		}
	}
	return n
}
