package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conquest-php/assemble/internal/generate"
	"github.com/conquest-php/assemble/internal/method"
	"github.com/conquest-php/assemble/internal/naming"
	"github.com/conquest-php/assemble/internal/template"
	"github.com/conquest-php/assemble/internal/ui"
)

// SuccessMessage is printed after a run that wrote every artifact.
const SuccessMessage = "All Conquest components created successfully."

// ErrMissingName is returned when no name was given and none can be prompted for.
var ErrMissingName = errors.New(`not enough arguments (missing: "name")`)

// conquestFlags holds the generation switches of the root and conquest commands.
var conquestFlags generate.Flags

var conquestCmd = &cobra.Command{
	Use:   "conquest [name] [method]",
	Short: "Generate a controller with its companions (same as the root command)",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runConquest,
}

func init() {
	rootCmd.AddCommand(conquestCmd)
	addGenerationFlags(conquestCmd, &conquestFlags)
}

// addGenerationFlags registers the generation switches on cmd.
func addGenerationFlags(cmd *cobra.Command, f *generate.Flags) {
	fs := cmd.Flags()
	fs.BoolVar(&f.Force, "force", false, "Create the class even if it already exists")
	fs.BoolVarP(&f.Modal, "modal", "M", false, "Render a modal for inertiable methods")
	fs.BoolVarP(&f.Page, "page", "P", false, "Render a page for inertiable methods")
	fs.BoolVarP(&f.Form, "form", "F", false, "Wrap the page or modal in a form")
	fs.BoolVarP(&f.Model, "model", "m", false, "Generate the model and bind it to the controller")
	fs.BoolVarP(&f.Policy, "policy", "p", false, "Generate a policy for the model")
	fs.BoolVarP(&f.Migration, "migration", "i", false, "Generate a migration for the model")
	fs.BoolVarP(&f.Seed, "seed", "s", false, "Generate a seeder for the model")
	fs.BoolVarP(&f.Factory, "factory", "f", false, "Generate a factory for the model")
	fs.BoolVarP(&f.Resource, "resource", "r", false, "Generate an API resource")
	fs.BoolVarP(&f.Crud, "crud", "c", false, "Generate all seven CRUD endpoints")
	fs.BoolVarP(&f.Route, "route", "R", false, "Register a route for every endpoint")
	fs.StringVarP(&f.File, "file", "W", "", "Route file to register routes in")
	fs.BoolVarP(&f.All, "all", "a", false, "Model, factory, seeder, migration, policy, resource, crud and route")
}

// invocation is one conquest request before prompting fills the gaps.
type invocation struct {
	Name   string
	Method string
	Flags  generate.Flags
}

func runConquest(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	inv := invocation{Flags: conquestFlags}
	if len(args) > 0 {
		inv.Name = args[0]
	}
	if len(args) > 1 {
		inv.Method = args[1]
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return conquest(ctx, deps, inv)
}

// conquest completes inv interactively, runs the orchestrator and prints
// the outcome.
func conquest(ctx context.Context, d *Dependencies, inv invocation) error {
	inv, err := completeInvocation(d.Prompter, inv, d.Config.Paths.Routes)
	if err != nil {
		return err
	}

	r := newReporter(d.Output, d.Progress, d.DryRun)
	report, err := d.Orchestrator(r).Run(ctx, generate.Request{
		Name:   inv.Name,
		Method: inv.Method,
		Flags:  inv.Flags,
	})
	r.Close()
	if err != nil {
		return err
	}

	if d.DryRun {
		return printPlan(d, report)
	}
	d.Output.Success(SuccessMessage)
	return nil
}

// completeInvocation prompts for a missing name and method. When either
// was prompted and no switch was given, the switches are prompted too.
func completeInvocation(p ui.Prompter, inv invocation, routeFile string) (invocation, error) {
	prompted := false

	if strings.TrimSpace(inv.Name) == "" {
		name, err := p.Input("name", "What should the controller be named?", "E.g. User", validateName)
		if err != nil {
			if errors.Is(err, ui.ErrHeadless) {
				return inv, ErrMissingName
			}
			return inv, err
		}
		inv.Name = name
		prompted = true
	}

	if strings.TrimSpace(inv.Method) == "" && !generate.Expand(inv.Flags).Crud {
		m, err := p.Select("method", "Which method should the controller handle?", methodOptions())
		switch {
		case errors.Is(err, ui.ErrHeadless):
			// The orchestrator warns and asks to continue without a method.
		case err != nil:
			return inv, err
		default:
			inv.Method = m
			prompted = true
		}
	}

	if prompted && !inv.Flags.Any() {
		flags, err := promptFlags(p, routeFile)
		if err != nil {
			return inv, err
		}
		inv.Flags = flags
	}
	return inv, nil
}

func validateName(s string) error {
	_, err := naming.Normalize(s)
	return err
}

func methodOptions() []ui.Option {
	opts := make([]ui.Option, 0, len(method.Names())+1)
	for _, n := range method.Names() {
		opts = append(opts, ui.Option{Label: n, Value: n})
	}
	return append(opts, ui.Option{Label: "none", Value: ""})
}

// promptFlags asks for the generation switches in three groups and, when a
// route is requested, for the route file.
func promptFlags(p ui.Prompter, routeFile string) (generate.Flags, error) {
	var f generate.Flags

	picked, err := p.MultiSelect("flags", "Would you like any of the following?", []ui.Option{
		{Label: "All (model, factory, seeder, migration, policy, resource, crud, route)", Value: "all"},
		{Label: "CRUD (all seven methods)", Value: "crud"},
		{Label: "Force (overwrite existing files)", Value: "force"},
		{Label: "Model", Value: "model"},
		{Label: "Route", Value: "route"},
	})
	if err != nil {
		return f, err
	}
	setFlags(&f, picked)

	if f.Model && !f.All {
		picked, err = p.MultiSelect("model", "Which model companions should be generated?", []ui.Option{
			{Label: "Factory", Value: "factory"},
			{Label: "Migration", Value: "migration"},
			{Label: "Policy", Value: "policy"},
			{Label: "Resource", Value: "resource"},
			{Label: "Seeder", Value: "seed"},
		})
		if err != nil {
			return f, err
		}
		setFlags(&f, picked)
	}

	picked, err = p.MultiSelect("ui", "How should the frontend respond?", []ui.Option{
		{Label: "Page", Value: "page"},
		{Label: "Modal", Value: "modal"},
		{Label: "Form", Value: "form"},
	})
	if err != nil {
		return f, err
	}
	setFlags(&f, picked)

	if f.Route || f.All {
		file, err := p.Input("file", "Which route file should routes be added to?", routeFile, nil)
		switch {
		case errors.Is(err, ui.ErrHeadless):
		case err != nil:
			return f, err
		default:
			f.File = file
		}
	}
	return f, nil
}

// setFlags turns on the switches named in picked. Unknown names are ignored.
func setFlags(f *generate.Flags, picked []string) {
	for _, name := range picked {
		switch name {
		case "all":
			f.All = true
		case "crud":
			f.Crud = true
		case "force":
			f.Force = true
		case "model":
			f.Model = true
		case "route":
			f.Route = true
		case "factory":
			f.Factory = true
		case "migration":
			f.Migration = true
		case "policy":
			f.Policy = true
		case "resource":
			f.Resource = true
		case "seed":
			f.Seed = true
		case "page":
			f.Page = true
		case "modal":
			f.Modal = true
		case "form":
			f.Form = true
		}
	}
}

// printPlan renders the dry-run report.
func printPlan(d *Dependencies, report *generate.Report) error {
	rendered, err := ui.RenderMarkdown(d.Theme, d.Headless, report.Markdown())
	if err != nil {
		return err
	}
	d.Output.Print(rendered)
	d.Output.Muted("Dry run: %d to create, %d to overwrite, %d to update, %d skipped.",
		report.Count(template.ActionCreate),
		report.Count(template.ActionOverwrite),
		report.Count(template.ActionUpdate),
		report.Count(template.ActionSkip),
	)
	return nil
}
