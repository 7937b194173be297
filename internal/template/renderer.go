package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"

	"github.com/conquest-php/assemble/internal/naming"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// Embedded returns the built-in artifact templates rooted at their directory.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	"studly": naming.Studly,
	"camel":  naming.Camel,
	"snake":  naming.Snake,
	"kebab":  naming.Kebab,
	"plural": naming.Plural,
	"lower":  strings.ToLower,
	// phpNamespace converts slash-separated paths to PHP namespace separators.
	"phpNamespace": func(s string) string {
		return strings.ReplaceAll(s, "/", `\`)
	},
}

// unexpandedTokenPattern detects compact stub placeholders such as {{class}}
// left over in rendered output. Spaced mustaches belong to the frontend
// templates and are not flagged.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// Renderer renders artifact templates with strict mode enabled.
type Renderer interface {
	// Render parses the named template and executes it with data.
	// Returns ErrMissingTemplateKey if a key is missing and
	// ErrUnexpandedToken if tokens remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// NewOverlayRenderer creates a Renderer that looks templates up in custom
// first and falls back to the embedded set. custom may be nil.
func NewOverlayRenderer(custom fs.FS) Renderer {
	if custom == nil {
		return NewRenderer(Embedded())
	}
	return NewRenderer(overlayFS{upper: custom, lower: Embedded()})
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, string(loc), templateName)
	}

	return result, nil
}

// overlayFS serves files from upper when present, otherwise from lower.
type overlayFS struct {
	upper fs.FS
	lower fs.FS
}

// Open implements fs.FS.
func (o overlayFS) Open(name string) (fs.File, error) {
	if f, err := o.upper.Open(name); err == nil {
		return f, nil
	}
	return o.lower.Open(name)
}
