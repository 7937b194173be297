package scaffold

import (
	"context"
	"path"

	"github.com/conquest-php/assemble/internal/method"
	"github.com/conquest-php/assemble/internal/naming"
	"github.com/conquest-php/assemble/internal/template"
)

// MakePage creates the Inertia page component for the endpoint.
func (g *Generator) MakePage(ctx context.Context, ep Endpoint) ([]template.Entry, error) {
	return g.makeView(ctx, KindPage, "page", g.cfg.Paths.Pages, ep)
}

// MakeModal creates the modal component for the endpoint.
func (g *Generator) MakeModal(ctx context.Context, ep Endpoint) ([]template.Entry, error) {
	return g.makeView(ctx, KindModal, "modal", g.cfg.Paths.Modals, ep)
}

func (g *Generator) makeView(ctx context.Context, kind, tmpl, dir string, ep Endpoint) ([]template.Entry, error) {
	ext := g.cfg.Frontend.Extension
	verb, target := submitTarget(ep.Method)
	spec := Route(ep.ID.Name, target)

	data := template.NewTemplateContext(ep.ID.Name,
		template.WithClass("", naming.Base(ep.ID.View)),
		template.WithModel(naming.Qualified(g.cfg.Namespaces.Models, ep.ID.Base)),
		template.WithView(ep.ID.View, ep.Form),
		template.WithSubmit(verb, spec.Name),
	)
	relPath := path.Join(dir, ep.ID.View+"."+ext)
	return g.emit(ctx, kind, tmpl+"."+ext+".tmpl", relPath, data, ep.Force)
}

// submitTarget returns the verb and method a form on m submits to.
func submitTarget(m method.Method) (string, method.Method) {
	switch m {
	case method.Edit, method.Update:
		return "patch", method.Update
	case method.Destroy:
		return "delete", method.Destroy
	default:
		return "post", method.Store
	}
}
