package scaffold

import (
	"context"
	"strings"

	"github.com/conquest-php/assemble/internal/method"
	"github.com/conquest-php/assemble/internal/naming"
	"github.com/conquest-php/assemble/internal/template"
)

// RouteMarker is the comment before which new route lines are inserted.
const RouteMarker = "// assemble:routes"

// RouteSpec is the HTTP shape of one endpoint.
type RouteSpec struct {
	Verb string // get, post, patch or delete
	URI  string // e.g. "/admin/users/{user}/edit"
	Name string // e.g. "admin.users.edit"
}

type routeShape struct {
	verb   string
	suffix string
	param  bool
}

var routeShapes = map[method.Method]routeShape{
	method.Index:   {verb: "get"},
	method.Create:  {verb: "get", suffix: "/create"},
	method.Store:   {verb: "post"},
	method.Show:    {verb: "get", param: true},
	method.Edit:    {verb: "get", suffix: "/edit", param: true},
	method.Update:  {verb: "patch", param: true},
	method.Destroy: {verb: "delete", param: true},
}

// Route returns the verb, URI and route name for name and m. Nested names
// prefix the URI and the route name with their kebab-cased directories.
// An empty method yields a plain GET route on the collection URI.
func Route(name string, m method.Method) RouteSpec {
	base := naming.Base(name)
	var segments []string
	if dir := naming.Dir(name); dir != "" {
		for seg := range strings.SplitSeq(dir, "/") {
			segments = append(segments, naming.Kebab(seg))
		}
	}
	segments = append(segments, naming.Plural(naming.Kebab(base)))

	uri := "/" + strings.Join(segments, "/")
	routeName := strings.Join(segments, ".")

	shape, ok := routeShapes[m]
	if !ok {
		return RouteSpec{Verb: "get", URI: uri, Name: routeName}
	}
	if shape.param {
		uri += "/{" + naming.Camel(base) + "}"
	}
	return RouteSpec{
		Verb: shape.verb,
		URI:  uri + shape.suffix,
		Name: routeName + "." + string(m),
	}
}

// MakeRoute registers the endpoint's controller in the route file. The
// line goes before RouteMarker when the file has one and is appended
// otherwise. A route whose name is already registered is skipped. A
// missing route file is created from the routes template.
//
// The route parameter is named after the model variable, so with --model
// Laravel binds it to the controller's model argument implicitly.
func (g *Generator) MakeRoute(ctx context.Context, ep Endpoint) ([]template.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spec := Route(ep.ID.Name, ep.Method)
	data := template.NewTemplateContext(ep.ID.Name,
		template.WithRoute(string(ep.Method), spec.Verb, spec.URI, spec.Name,
			naming.Qualified(g.cfg.Namespaces.Controllers, ep.ID.Controller)),
	)
	rendered, err := g.renderer.Render("route.php.tmpl", data)
	if err != nil {
		return nil, err
	}
	line := strings.TrimRight(string(rendered), "\r\n")

	file := ep.RouteFile
	if file == "" {
		file = g.cfg.Paths.Routes
	}

	var content string
	if g.writer.Exists(file) {
		existing, err := g.writer.ReadFile(file)
		if err != nil {
			return nil, err
		}
		content = string(existing)
	} else {
		header, err := g.renderer.Render("routes.php.tmpl", data)
		if err != nil {
			return nil, err
		}
		content = string(header)
	}

	if strings.Contains(content, "->name('"+spec.Name+"')") {
		g.writer.Skip(KindRoute, file)
		g.logger.Debug("route already registered", "name", spec.Name, "file", file)
		return []template.Entry{{Kind: KindRoute, Path: file, Action: template.ActionSkip}}, nil
	}

	if _, err := g.writer.Update(KindRoute, file, []byte(InsertRoute(content, line))); err != nil {
		return nil, err
	}
	return []template.Entry{{Kind: KindRoute, Path: file, Action: g.lastAction(file)}}, nil
}

// InsertRoute places line before the RouteMarker line of content, or at
// the end of content when there is no marker. The content's line ending
// is kept.
func InsertRoute(content, line string) string {
	eol := "\n"
	if strings.Contains(content, "\r\n") {
		eol = "\r\n"
	}

	if i := strings.Index(content, RouteMarker); i >= 0 {
		start := strings.LastIndex(content[:i], "\n") + 1
		indent := content[start:i]
		if strings.TrimSpace(indent) == "" {
			return content[:start] + indent + line + eol + content[start:]
		}
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += eol
	}
	return content + line + eol
}
