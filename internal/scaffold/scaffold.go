// Package scaffold renders the artifacts that surround a generated
// controller: models and their companions, form requests, API resources,
// route entries and frontend pages or modals.
//
// Every artifact is produced from an embedded text/template and emitted
// through a template.Writer, so existing files are never touched unless
// the caller forces it.
package scaffold

import (
	"context"
	"log/slog"
	"path"
	"time"

	"github.com/conquest-php/assemble/internal/config"
	"github.com/conquest-php/assemble/internal/method"
	"github.com/conquest-php/assemble/internal/naming"
	"github.com/conquest-php/assemble/internal/template"
)

// Artifact kinds reported in writer entries.
const (
	KindModel     = "Model"
	KindFactory   = "Factory"
	KindSeeder    = "Seeder"
	KindMigration = "Migration"
	KindPolicy    = "Policy"
	KindResource  = "Resource"
	KindRequest   = "Request"
	KindRoute     = "Route"
	KindPage      = "Page"
	KindModal     = "Modal"
)

// ModelOptions selects the companions generated with a model.
type ModelOptions struct {
	Factory   bool
	Seed      bool
	Migration bool
	Policy    bool
	Force     bool
}

// Endpoint describes one controller pass for the per-method artifacts.
type Endpoint struct {
	ID        naming.Identifiers
	Method    method.Method // empty when generated without a method
	Form      bool          // the page or modal wraps a form
	WithModel bool          // the controller receives the model
	RouteFile string        // overrides the configured route file
	Force     bool
}

// Generator implements every sub-generator on top of a shared writer.
type Generator struct {
	writer   template.Writer
	renderer template.Renderer
	cfg      *config.Config
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source used for migration timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New creates a Generator. cfg must not be nil.
func New(w template.Writer, r template.Renderer, cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		writer:   w,
		renderer: r,
		cfg:      cfg,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// emit renders tmpl with data and writes it to relPath.
func (g *Generator) emit(ctx context.Context, kind, tmpl, relPath string, data *template.TemplateContext, force bool) ([]template.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := g.renderer.Render(tmpl, data)
	if err != nil {
		return nil, err
	}
	if _, err := g.writer.Write(kind, relPath, content, force); err != nil {
		return nil, err
	}
	g.logger.Debug("artifact written", "kind", kind, "path", relPath)
	return []template.Entry{{Kind: kind, Path: relPath, Action: g.lastAction(relPath)}}, nil
}

// lastAction returns the action the writer recorded for relPath most recently.
func (g *Generator) lastAction(relPath string) template.Action {
	entries := g.writer.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Path == relPath {
			return entries[i].Action
		}
	}
	return template.ActionCreate
}

// classFile joins dir and a slash separated class path into a PHP file path.
func classFile(dir, class string) string {
	return path.Join(dir, class+".php")
}
