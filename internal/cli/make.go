package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conquest-php/assemble/internal/method"
	"github.com/conquest-php/assemble/internal/naming"
	"github.com/conquest-php/assemble/internal/scaffold"
	"github.com/conquest-php/assemble/internal/template"
)

// makeOptions holds the flags of the make subcommands.
type makeOptions struct {
	Force     bool
	Factory   bool
	Seed      bool
	Migration bool
	Policy    bool
	Form      bool
	Model     bool
	File      string
}

var makeOpts makeOptions

var makeCmd = &cobra.Command{
	Use:   "make",
	Short: "Generate a single artifact",
	Long: `Generate one artifact without a controller. The request, route, page
and modal generators take the same optional method as the root command.`,
}

var makeModelCmd = &cobra.Command{
	Use:   "model <name>",
	Short: "Generate an Eloquent model and, optionally, its companions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMake(cmd, args, func(ctx context.Context, g *scaffold.Generator, name string, _ scaffold.Endpoint) ([]template.Entry, error) {
			return g.MakeModel(ctx, name, scaffold.ModelOptions{
				Factory:   makeOpts.Factory,
				Seed:      makeOpts.Seed,
				Migration: makeOpts.Migration,
				Policy:    makeOpts.Policy,
				Force:     makeOpts.Force,
			})
		})
	},
}

var makeResourceCmd = &cobra.Command{
	Use:   "resource <name>",
	Short: "Generate an API resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMake(cmd, args, func(ctx context.Context, g *scaffold.Generator, name string, _ scaffold.Endpoint) ([]template.Entry, error) {
			return g.MakeResource(ctx, name, makeOpts.Force)
		})
	},
}

var makeRequestCmd = newEndpointCmd("request", "Generate the form request of an endpoint", (*scaffold.Generator).MakeRequest)
var makeRouteCmd = newEndpointCmd("route", "Register the route of an endpoint", (*scaffold.Generator).MakeRoute)
var makePageCmd = newEndpointCmd("page", "Generate the page component of an endpoint", (*scaffold.Generator).MakePage)
var makeModalCmd = newEndpointCmd("modal", "Generate the modal component of an endpoint", (*scaffold.Generator).MakeModal)

func init() {
	rootCmd.AddCommand(makeCmd)
	makeCmd.AddCommand(makeModelCmd, makeResourceCmd, makeRequestCmd, makeRouteCmd, makePageCmd, makeModalCmd)

	for _, c := range makeCmd.Commands() {
		c.Flags().BoolVar(&makeOpts.Force, "force", false, "Create the file even if it already exists")
	}

	mf := makeModelCmd.Flags()
	mf.BoolVarP(&makeOpts.Factory, "factory", "f", false, "Generate a factory for the model")
	mf.BoolVarP(&makeOpts.Seed, "seed", "s", false, "Generate a seeder for the model")
	mf.BoolVarP(&makeOpts.Migration, "migration", "i", false, "Generate a migration for the model")
	mf.BoolVarP(&makeOpts.Policy, "policy", "p", false, "Generate a policy for the model")

	for _, c := range []*cobra.Command{makePageCmd, makeModalCmd} {
		c.Flags().BoolVarP(&makeOpts.Form, "form", "F", false, "Wrap the component in a form")
	}
	for _, c := range []*cobra.Command{makeRequestCmd, makeRouteCmd} {
		c.Flags().BoolVarP(&makeOpts.Model, "model", "m", false, "Bind the model to the endpoint")
	}
	makeRouteCmd.Flags().StringVarP(&makeOpts.File, "file", "W", "", "Route file to register the route in")
}

type endpointFunc func(*scaffold.Generator, context.Context, scaffold.Endpoint) ([]template.Entry, error)

// newEndpointCmd creates a make subcommand for a per-method artifact.
func newEndpointCmd(use, short string, fn endpointFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name> [method]",
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMake(cmd, args, func(ctx context.Context, g *scaffold.Generator, _ string, ep scaffold.Endpoint) ([]template.Entry, error) {
				return fn(g, ctx, ep)
			})
		},
	}
}

type makeFunc func(ctx context.Context, g *scaffold.Generator, name string, ep scaffold.Endpoint) ([]template.Entry, error)

func runMake(cmd *cobra.Command, args []string, fn makeFunc) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	var raw string
	if len(args) > 1 {
		raw = args[1]
	}
	return makeArtifact(ctx, deps, args[0], raw, makeOpts, fn)
}

// makeArtifact resolves the endpoint of name and rawMethod, runs fn and
// reports its entries. An empty method is allowed; an invalid one is not.
func makeArtifact(ctx context.Context, d *Dependencies, name, rawMethod string, opts makeOptions, fn makeFunc) error {
	normalized, err := naming.Normalize(name)
	if err != nil {
		return err
	}

	var m method.Method
	var class method.Classification
	if rawMethod != "" {
		if m, err = method.Parse(rawMethod); err != nil {
			return err
		}
		if class, err = method.Classify(m); err != nil {
			return err
		}
	}

	id, err := naming.Resolve(normalized, string(m))
	if err != nil {
		return err
	}
	ep := scaffold.Endpoint{
		ID:        id,
		Method:    m,
		Form:      class.IsForm || opts.Form,
		WithModel: opts.Model,
		RouteFile: opts.File,
		Force:     opts.Force,
	}

	entries, err := fn(ctx, d.Generator, normalized, ep)
	r := newReporter(d.Output, d.Progress, d.DryRun)
	for _, e := range entries {
		r.Created(e)
	}
	if err != nil {
		return err
	}
	if d.DryRun {
		d.Output.Muted("Dry run: nothing was written.")
	}
	return nil
}
