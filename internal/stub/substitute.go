// Package stub turns the controller stub into final PHP source through an
// ordered pipeline of placeholder substitution passes.
//
// The pass order is part of the output contract:
//
//	namespace, request, inertia, model, invoke, response, empty lines, class
//
// Every pass is a pure function of the text and the bindings, so the same
// stub and bindings always produce byte-identical output.
package stub

import (
	"fmt"
	"strings"

	"github.com/conquest-php/assemble/internal/naming"
)

// Bindings are the resolved values a stub is rendered with.
type Bindings struct {
	// Namespace of the generated controller, e.g. `App\Http\Controllers\Admin`.
	Namespace string
	// RootNamespace of the application, e.g. `App`.
	RootNamespace string
	// Request is the fully qualified request class imported by the controller.
	Request string
	// RequestClass is the short request class used in the signature.
	RequestClass string
	// Model is the fully qualified model class; used only when WithModel is set.
	Model string
	// ModelClass is the short model class name, e.g. "User".
	ModelClass string
	// View is the component rendered by page and modal responses.
	View string
	// Class is the short controller class name.
	Class string
	// BaseRoute is the route name a modal renders over.
	BaseRoute string

	Inertiable bool // the method renders a view
	IsPage     bool // the method is classified as a page
	IsModal    bool // the method is classified as a modal
	WithModel  bool // --model
	AsPage     bool // --page
	AsModal    bool // --modal
}

// Pass is a single substitution step.
type Pass struct {
	Name  string
	Apply func(text string, b Bindings) string
}

// Placeholder tokens. Each is matched in both spacing variants.
const (
	TokenNamespace     = "namespace"
	TokenRootNamespace = "rootNamespace"
	TokenRequest       = "request"
	TokenInertia       = "inertia"
	TokenModel         = "model"
	TokenInvoke        = "invoke"
	TokenResponse      = "response"
	TokenClass         = "class"
)

// InertiaImport is the statement emitted for inertiable methods.
const InertiaImport = `use Inertia\Inertia;`

// Passes returns the substitution pipeline in its fixed order.
func Passes() []Pass {
	return []Pass{
		{Name: "namespace", Apply: ReplaceNamespace},
		{Name: "request", Apply: ReplaceRequest},
		{Name: "inertia", Apply: ReplaceInertia},
		{Name: "model", Apply: ReplaceModel},
		{Name: "invoke", Apply: ReplaceInvoke},
		{Name: "response", Apply: ReplaceResponse},
		{Name: "empty_lines", Apply: func(text string, _ Bindings) string { return CollapseBlankLines(text) }},
		{Name: "class", Apply: ReplaceClass},
	}
}

// Substitute runs every pass over template in order.
func Substitute(template string, b Bindings) string {
	text := template
	for _, p := range Passes() {
		text = p.Apply(text, b)
	}
	return text
}

// replaceToken replaces every spacing variant of token, plus any legacy
// aliases, with value.
func replaceToken(text, token, value string, aliases ...string) string {
	olds := append([]string{"{{ " + token + " }}", "{{" + token + "}}"}, aliases...)
	for _, old := range olds {
		text = strings.ReplaceAll(text, old, value)
	}
	return text
}

// ReplaceNamespace substitutes the controller namespace and the root namespace.
func ReplaceNamespace(text string, b Bindings) string {
	text = replaceToken(text, TokenNamespace, b.Namespace, "DummyNamespace")
	return replaceToken(text, TokenRootNamespace, b.RootNamespace, "DummyRootNamespace")
}

// ReplaceRequest substitutes the imported request class.
func ReplaceRequest(text string, b Bindings) string {
	return replaceToken(text, TokenRequest, b.Request, "DummyRequest")
}

// ReplaceInertia imports Inertia for methods that render a view.
// The statement carries its own line break so that an empty substitution
// leaves nothing behind but the blank line the collapse pass removes.
func ReplaceInertia(text string, b Bindings) string {
	value := ""
	if b.Inertiable {
		value = InertiaImport + lineEnding(text)
	}
	return replaceToken(text, TokenInertia, value)
}

// ReplaceModel imports the model when --model is set.
func ReplaceModel(text string, b Bindings) string {
	value := ""
	if b.WithModel {
		value = "use " + b.Model + ";" + lineEnding(text)
	}
	return replaceToken(text, TokenModel, value)
}

// ReplaceInvoke builds the __invoke signature. With --model the model is
// injected as a second, route-bound parameter.
func ReplaceInvoke(text string, b Bindings) string {
	var sig string
	if b.WithModel {
		sig = fmt.Sprintf("public function __invoke(%s $request, %s $%s)", b.RequestClass, b.ModelClass, naming.Camel(b.ModelClass))
	} else {
		sig = fmt.Sprintf("public function __invoke(%s $request)", b.RequestClass)
	}
	return replaceToken(text, TokenInvoke, sig)
}

// ReplaceResponse builds the response statement.
func ReplaceResponse(text string, b Bindings) string {
	return replaceToken(text, TokenResponse, Response(b))
}

// ResponseKind names the three response forms.
type ResponseKind string

const (
	ResponsePage     ResponseKind = "page"
	ResponseModal    ResponseKind = "modal"
	ResponseRedirect ResponseKind = "redirect"
)

// ResponseKindOf decides the response form. Classification wins over flags,
// and flags never turn a pure action into a view.
func ResponseKindOf(b Bindings) ResponseKind {
	switch {
	case b.IsPage || (b.AsPage && b.Inertiable):
		return ResponsePage
	case b.IsModal || (b.AsModal && b.Inertiable):
		return ResponseModal
	default:
		return ResponseRedirect
	}
}

// Response returns the PHP statement for the response body.
func Response(b Bindings) string {
	props := ""
	if b.WithModel {
		c := naming.Camel(b.ModelClass)
		props = fmt.Sprintf("'%s' => $%s", c, c)
	}

	switch ResponseKindOf(b) {
	case ResponsePage:
		return fmt.Sprintf("return Inertia::render('%s', [\n\t\t\t%s\n\t\t]);", b.View, props)
	case ResponseModal:
		return fmt.Sprintf("return Inertia::modal('%s', [\n\t\t\t%s\n\t\t])->baseRoute('%s');", b.View, props, b.BaseRoute)
	default:
		return "return back();"
	}
}

// ReplaceClass substitutes the final class name. It must run last.
func ReplaceClass(text string, b Bindings) string {
	return replaceToken(text, TokenClass, b.Class, "DummyClass")
}
