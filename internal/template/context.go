package template

import (
	"github.com/conquest-php/assemble/internal/naming"
)

// TemplateContext provides data for artifact template rendering.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	// Class
	Namespace string // PHP namespace of the artifact, e.g. `App\Http\Requests\Admin`
	Class     string // short class name, e.g. "UserIndexRequest"

	// Resource
	Name  string // normalized resource name, e.g. "Admin/User"
	Base  string // last segment of Name, e.g. "User"
	Table string // database table, e.g. "users"

	// Model
	ModelClass string // e.g. "User"
	Model      string // fully qualified, e.g. `App\Models\User`
	Variable   string // lowerCamel model variable, e.g. "user"

	// Endpoint
	Method      string // lower-case CRUD method, e.g. "index"
	View        string // frontend component path, e.g. "Admin/UserIndex"
	Form        bool   // the page or modal wraps a form
	SubmitVerb  string // form submission verb, e.g. "post"
	SubmitRoute string // route the form submits to, e.g. "users.store"
	Controller  string // fully qualified controller class
	Verb        string // route verb: get, post, patch, delete
	URI         string // route URI, e.g. "/users/{user}"
	RouteName   string // e.g. "users.show"
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext for resource name and
// applies the provided options.
func NewTemplateContext(name string, opts ...ContextOption) *TemplateContext {
	base := naming.Base(name)
	ctx := &TemplateContext{
		Name:       name,
		Base:       base,
		ModelClass: base,
		Variable:   naming.Camel(base),
		Table:      naming.Plural(naming.Snake(base)),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithClass sets the namespace and short class name.
func WithClass(namespace, class string) ContextOption {
	return func(c *TemplateContext) {
		c.Namespace = namespace
		c.Class = class
	}
}

// WithModel sets the fully qualified model class.
func WithModel(fqn string) ContextOption {
	return func(c *TemplateContext) {
		c.Model = fqn
	}
}

// WithView sets the frontend component and whether it renders a form.
func WithView(view string, form bool) ContextOption {
	return func(c *TemplateContext) {
		c.View = view
		c.Form = form
	}
}

// WithSubmit sets where a form posts to.
func WithSubmit(verb, routeName string) ContextOption {
	return func(c *TemplateContext) {
		c.SubmitVerb = verb
		c.SubmitRoute = routeName
	}
}

// WithRoute sets the routing information of an endpoint.
func WithRoute(method, verb, uri, name, controller string) ContextOption {
	return func(c *TemplateContext) {
		c.Method = method
		c.Verb = verb
		c.URI = uri
		c.RouteName = name
		c.Controller = controller
	}
}
