package scaffold

import (
	"context"

	"github.com/conquest-php/assemble/internal/naming"
	"github.com/conquest-php/assemble/internal/template"
)

// MakeRequest creates the form request the endpoint's controller validates with.
func (g *Generator) MakeRequest(ctx context.Context, ep Endpoint) ([]template.Entry, error) {
	ns := g.cfg.Namespaces
	data := template.NewTemplateContext(ep.ID.Name,
		template.WithClass(naming.Namespace(ns.Requests, ep.ID.Request), ep.ID.RequestClass()),
		template.WithModel(naming.Qualified(ns.Models, ep.ID.Base)),
	)
	return g.emit(ctx, KindRequest, "request.php.tmpl", classFile(g.cfg.Paths.Requests, ep.ID.Request), data, ep.Force)
}
