package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/conquest-php/assemble/internal/ui"
	"github.com/conquest-php/assemble/pkg/version"
)

// globals holds the persistent flag values of the current invocation.
var globals globalOptions

var rootCmd = &cobra.Command{
	Use:   "assemble [name] [method]",
	Short: "Scaffold Inertia CRUD controllers and their companions",
	Long: `assemble generates single-action Laravel controllers for Inertia
applications, together with the form request, route, page or modal and,
on request, the model with its factory, seeder, migration and policy.

Examples:
  assemble User index               Controller, request and page for users.index
  assemble Admin/User create -m -R  Nested controller with model binding and route
  assemble Post --crud --page       All seven endpoints rendering full pages
  assemble Post --all --dry-run     Show everything --all would generate

A name that matches a subcommand (make, version, conquest, help or
completion) runs that subcommand. Use the conquest subcommand for such
resources, e.g. "assemble conquest version index".`,
	Args:              cobra.MaximumNArgs(2),
	Version:           version.GetVersion(),
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initDeps,
	RunE:              runConquest,
}

// Execute runs the root command. A failure is printed as a styled error
// line and returned so main can exit non-zero.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errorOutput().Error("%s", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("assemble %s\n", version.GetVersion()))

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&globals.Root, "root", "", "Project root directory (default: current directory)")
	pf.StringVar(&globals.ConfigPath, "config", "", "Config file (default: <root>/assemble.yaml)")
	pf.BoolVarP(&globals.NoInteraction, "no-interaction", "n", false, "Never prompt; missing answers fall back to defaults")
	pf.BoolVar(&globals.DryRun, "dry-run", false, "Print the generation plan without writing files")
	pf.BoolVarP(&globals.Verbose, "verbose", "v", false, "Write debug logs to stderr")
	pf.BoolVar(&globals.NoColor, "no-color", false, "Disable coloured output")

	addGenerationFlags(rootCmd, &conquestFlags)
}

// initDeps wires the composition root unless a test already did.
func initDeps(_ *cobra.Command, _ []string) error {
	if deps != nil {
		return nil
	}
	return InitDependencies(globals)
}

// errorOutput returns the Output used for the final error line, falling
// back to a bare one when dependency wiring itself failed.
func errorOutput() *ui.Output {
	if deps != nil && deps.Output != nil {
		return deps.Output
	}
	return ui.NewOutput(ui.NewTheme(globals.NoColor))
}
