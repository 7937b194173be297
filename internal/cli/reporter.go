package cli

import (
	"github.com/conquest-php/assemble/internal/method"
	"github.com/conquest-php/assemble/internal/template"
	"github.com/conquest-php/assemble/internal/ui"
)

// reporter prints orchestrator progress. A crud batch gets a progress bar
// and confirmation lines are printed above it.
type reporter struct {
	out      *ui.Output
	progress ui.Progress
	quiet    bool // dry run: the plan replaces confirmation lines
	bar      ui.ProgressBar
}

func newReporter(out *ui.Output, progress ui.Progress, quiet bool) *reporter {
	return &reporter{out: out, progress: progress, quiet: quiet}
}

// Created prints the confirmation line of e.
func (r *reporter) Created(e template.Entry) {
	if r.quiet {
		return
	}
	if r.bar != nil {
		r.bar.Println(r.out.CreatedLine(e.Kind, e.Path, string(e.Action)))
		return
	}
	r.out.Created(e.Kind, e.Path, string(e.Action))
}

// Warn prints msg as a warning.
func (r *reporter) Warn(msg string) {
	r.out.Warn("%s", msg)
}

// Pass advances the progress bar of a multi-pass run.
func (r *reporter) Pass(index, total int, m method.Method) {
	if r.quiet || total < 2 {
		return
	}
	if r.bar == nil {
		r.bar = r.progress.Start(passTitle(m), total)
		return
	}
	r.bar.Increment(1)
	r.bar.SetTitle(passTitle(m))
}

// Close completes the progress bar, if any.
func (r *reporter) Close() {
	if r.bar != nil {
		r.bar.Done()
		r.bar = nil
	}
}

func passTitle(m method.Method) string {
	if m == "" {
		return "controller"
	}
	return string(m)
}
