// Package generate sequences one assemble invocation: it expands flags,
// validates the method, writes the controller for every pass and drives
// the sub-generators for models, requests, routes, resources and views.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/conquest-php/assemble/internal/config"
	"github.com/conquest-php/assemble/internal/method"
	"github.com/conquest-php/assemble/internal/naming"
	"github.com/conquest-php/assemble/internal/scaffold"
	"github.com/conquest-php/assemble/internal/stub"
	"github.com/conquest-php/assemble/internal/template"
)

// KindController is the writer entry kind of generated controllers.
const KindController = "Controller"

// Prompts shown when the method is missing or invalid.
const (
	WarnInvalidMethod = "You have not supplied a valid method."
	ConfirmProceed    = "Are you sure you want to proceed? This will limit some of the functionality available."
)

// SubGenerators creates the artifacts around a controller.
// *scaffold.Generator is the production implementation.
type SubGenerators interface {
	MakeModel(ctx context.Context, name string, opts scaffold.ModelOptions) ([]template.Entry, error)
	MakeResource(ctx context.Context, name string, force bool) ([]template.Entry, error)
	MakeRequest(ctx context.Context, ep scaffold.Endpoint) ([]template.Entry, error)
	MakeRoute(ctx context.Context, ep scaffold.Endpoint) ([]template.Entry, error)
	MakePage(ctx context.Context, ep scaffold.Endpoint) ([]template.Entry, error)
	MakeModal(ctx context.Context, ep scaffold.Endpoint) ([]template.Entry, error)
}

var _ SubGenerators = (*scaffold.Generator)(nil)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Reporter receives progress notifications.
type Reporter interface {
	// Created is called once per artifact written or skipped.
	Created(e template.Entry)
	// Warn is called for recoverable problems.
	Warn(msg string)
	// Pass is called before each controller pass.
	Pass(index, total int, m method.Method)
}

// Request is one generation request.
type Request struct {
	Name   string // resource name as typed
	Method string // raw method, may be empty or invalid
	Flags  Flags
}

// Report is the outcome of a Run.
type Report struct {
	Name    string          // normalized resource name
	Methods []method.Method // methods generated; a single "" for a method-less pass
	Reduced bool            // generated without a valid method
	Entries []template.Entry
}

// Orchestrator runs generation requests.
type Orchestrator struct {
	cfg      *config.Config
	writer   template.Writer
	stubs    *stub.Resolver
	subs     SubGenerators
	confirm  Confirmer
	reporter Reporter
	logger   *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithConfirmer sets the confirmation prompt. Without one every
// confirmation is declined.
func WithConfirmer(c Confirmer) Option {
	return func(o *Orchestrator) {
		o.confirm = c
	}
}

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(o *Orchestrator) {
		o.reporter = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// New creates an Orchestrator.
func New(cfg *config.Config, w template.Writer, stubs *stub.Resolver, subs SubGenerators, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:      cfg,
		writer:   w,
		stubs:    stubs,
		subs:     subs,
		confirm:  declineAll{},
		reporter: nopReporter{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes req. Nothing is written when the name is empty or reserved
// or when the user declines to continue without a method. A conflict or a
// sub-generator failure stops the run; files already written are kept.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Report, error) {
	name, err := naming.Normalize(req.Name)
	if err != nil {
		return nil, err
	}
	flags := Expand(req.Flags)
	report := &Report{Name: name}

	methods, reduced, err := o.methods(req.Method, flags)
	if err != nil {
		return nil, err
	}
	report.Methods = methods
	report.Reduced = reduced

	o.logger.Debug("generation started", "name", name, "methods", methods, "flags", fmt.Sprintf("%+v", flags))

	if flags.Model {
		entries, err := o.subs.MakeModel(ctx, naming.Base(name), scaffold.ModelOptions{
			Factory:   flags.Factory,
			Seed:      flags.Seed,
			Migration: flags.Migration,
			Policy:    flags.Policy,
			Force:     flags.Force,
		})
		o.collect(report, entries)
		if err != nil {
			return report, &SubGeneratorError{Generator: "model", Err: err}
		}
	}

	if flags.Resource {
		entries, err := o.subs.MakeResource(ctx, name, flags.Force)
		o.collect(report, entries)
		if err != nil {
			return report, &SubGeneratorError{Generator: "resource", Err: err}
		}
	}

	for i, m := range methods {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		o.reporter.Pass(i+1, len(methods), m)
		if err := o.pass(ctx, report, name, m, flags); err != nil {
			return report, err
		}
	}

	return report, nil
}

// methods returns the methods to generate. Outside crud mode a missing or
// invalid method needs confirmation and yields a single reduced pass.
func (o *Orchestrator) methods(raw string, flags Flags) ([]method.Method, bool, error) {
	if flags.Crud {
		return method.All(), false, nil
	}

	m, err := method.Parse(raw)
	if err == nil {
		return []method.Method{m}, false, nil
	}
	if !errors.Is(err, method.ErrMissingMethod) && !errors.Is(err, method.ErrInvalidMethod) {
		return nil, false, err
	}

	o.reporter.Warn(WarnInvalidMethod)
	ok, cerr := o.confirm.Confirm(ConfirmProceed)
	if cerr != nil {
		return nil, false, fmt.Errorf("confirm: %w", cerr)
	}
	if !ok {
		return nil, false, fmt.Errorf("%w: %w", ErrDeclined, err)
	}
	return []method.Method{""}, true, nil
}

// pass generates the controller of one method and its companions.
func (o *Orchestrator) pass(ctx context.Context, report *Report, name string, m method.Method, flags Flags) error {
	id, err := naming.Resolve(name, string(m))
	if err != nil {
		return err
	}

	// A method-less pass classifies as a non-inertiable action.
	var class method.Classification
	if m != "" {
		if class, err = method.Classify(m); err != nil {
			return err
		}
	}

	if err := o.writeController(report, id, class, flags); err != nil {
		return err
	}

	ep := scaffold.Endpoint{
		ID:        id,
		Method:    m,
		Form:      class.IsForm || flags.Form,
		WithModel: flags.Model,
		RouteFile: flags.File,
		Force:     flags.Force,
	}

	if err := o.sub(ctx, report, "request", o.subs.MakeRequest, ep); err != nil {
		return err
	}
	if flags.Route {
		if err := o.sub(ctx, report, "route", o.subs.MakeRoute, ep); err != nil {
			return err
		}
	}

	switch view := ViewFor(class, flags); view {
	case ViewPage:
		return o.sub(ctx, report, "page", o.subs.MakePage, ep)
	case ViewModal:
		return o.sub(ctx, report, "modal", o.subs.MakeModal, ep)
	}
	return nil
}

// writeController renders the controller stub and writes it. An existing
// controller is a *template.ConflictError unless flags.Force is set.
func (o *Orchestrator) writeController(report *Report, id naming.Identifiers, class method.Classification, flags Flags) error {
	raw, err := o.stubs.Load(stub.ControllerStub)
	if err != nil {
		return err
	}
	o.logger.Debug("controller stub loaded", "custom", o.stubs.IsCustom(stub.ControllerStub))

	content := stub.SortImports(stub.Substitute(raw, o.Bindings(id, class, flags)))
	relPath := path.Join(o.cfg.Paths.Controllers, id.Controller+".php")

	action := template.ActionCreate
	if o.writer.Exists(relPath) {
		action = template.ActionOverwrite
	}
	if _, err := o.writer.Write(KindController, relPath, []byte(content), flags.Force); err != nil {
		return err
	}
	o.collect(report, []template.Entry{{Kind: KindController, Path: relPath, Action: action}})
	return nil
}

// Bindings returns the stub bindings of a controller.
func (o *Orchestrator) Bindings(id naming.Identifiers, class method.Classification, flags Flags) stub.Bindings {
	ns := o.cfg.Namespaces
	return stub.Bindings{
		Namespace:     naming.Namespace(ns.Controllers, id.Controller),
		RootNamespace: strings.ReplaceAll(ns.Root, "/", `\`),
		Request:       naming.Qualified(ns.Requests, id.Request),
		RequestClass:  id.RequestClass(),
		Model:         naming.Qualified(ns.Models, id.Base),
		ModelClass:    id.Base,
		View:          id.View,
		Class:         id.ControllerClass(),
		BaseRoute:     o.cfg.BaseRoute,
		Inertiable:    class.IsInertiable,
		IsPage:        class.IsPage,
		IsModal:       class.IsModal,
		WithModel:     flags.Model,
		AsPage:        flags.Page,
		AsModal:       flags.Modal,
	}
}

func (o *Orchestrator) sub(ctx context.Context, report *Report, name string, fn func(context.Context, scaffold.Endpoint) ([]template.Entry, error), ep scaffold.Endpoint) error {
	entries, err := fn(ctx, ep)
	o.collect(report, entries)
	if err != nil {
		return &SubGeneratorError{Generator: name, Err: err}
	}
	return nil
}

func (o *Orchestrator) collect(report *Report, entries []template.Entry) {
	for _, e := range entries {
		report.Entries = append(report.Entries, e)
		o.reporter.Created(e)
	}
}

// View is the frontend artifact of a pass.
type View int

const (
	ViewNone View = iota
	ViewPage
	ViewModal
)

// ViewFor decides the frontend artifact: an explicit --page or --modal
// wins for inertiable methods, otherwise the classification decides.
func ViewFor(class method.Classification, flags Flags) View {
	switch {
	case flags.Page && class.IsInertiable:
		return ViewPage
	case flags.Modal && class.IsInertiable:
		return ViewModal
	case class.IsPage:
		return ViewPage
	case class.IsModal:
		return ViewModal
	default:
		return ViewNone
	}
}

type declineAll struct{}

func (declineAll) Confirm(string) (bool, error) { return false, nil }

type nopReporter struct{}

func (nopReporter) Created(template.Entry)       {}
func (nopReporter) Warn(string)                  {}
func (nopReporter) Pass(int, int, method.Method) {}
