// Package cli provides the Cobra command tree and dependency injection
// wiring for the assemble CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/conquest-php/assemble/internal/config"
	"github.com/conquest-php/assemble/internal/generate"
	"github.com/conquest-php/assemble/internal/scaffold"
	"github.com/conquest-php/assemble/internal/stub"
	"github.com/conquest-php/assemble/internal/template"
	"github.com/conquest-php/assemble/internal/ui"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	Root          string
	ConfigPath    string
	NoInteraction bool
	DryRun        bool
	Verbose       bool
	NoColor       bool
}

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config    *config.Config
	Loader    *config.Loader
	Theme     *ui.Theme
	Headless  *ui.HeadlessManager
	Prompter  ui.Prompter
	Progress  ui.Progress
	Output    *ui.Output
	Writer    template.Writer
	Stubs     *stub.Resolver
	Generator *scaffold.Generator
	DryRun    bool
	Logger    *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
// CLI commands access this through the package-level variable.
var deps *Dependencies

// InitDependencies creates and wires all domain dependencies for the
// project selected by opts. It is called once per invocation from the
// root command's PersistentPreRunE.
func InitDependencies(opts globalOptions) error {
	d, err := newDependencies(opts, os.Stdout, os.Stderr, time.Now)
	if err != nil {
		return err
	}
	deps = d
	return nil
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// newDependencies builds the composition root with explicit output writers
// and clock.
func newDependencies(opts globalOptions, out, errOut io.Writer, now func() time.Time) (*Dependencies, error) {
	root := opts.Root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		root = cwd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = filepath.Join(root, config.DefaultFileName)
	}
	// The log level comes from the flag or the environment, never the
	// file, so the logger can exist before the file is read.
	logger := newLogger(os.Getenv(config.EnvLogLevel), opts.Verbose, errOut)
	slog.SetDefault(logger)

	loader := config.NewLoader(config.WithLogger(logger))
	cfg, err := loader.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", loader.Path(), "from_file", loader.Loaded())

	theme := ui.NewTheme(opts.NoColor || cfg.System.NoColor)
	hm := ui.NewHeadlessManager()
	if opts.NoInteraction || cfg.System.NonInteractive {
		hm.ForceHeadless(true)
	}
	hm.SetDefaults(cfg.Prompts)

	var w template.Writer
	if opts.DryRun {
		w, err = template.NewDryRunWriter(root)
	} else {
		w, err = template.NewWriter(root)
	}
	if err != nil {
		return nil, err
	}

	custom := os.DirFS(filepath.Join(root, filepath.FromSlash(cfg.Paths.Stubs)))
	gen := scaffold.New(w, template.NewOverlayRenderer(custom), cfg,
		scaffold.WithClock(now),
		scaffold.WithLogger(logger),
	)

	return &Dependencies{
		Config:    cfg,
		Loader:    loader,
		Theme:     theme,
		Headless:  hm,
		Prompter:  ui.NewPrompter(theme, hm),
		Progress:  ui.NewProgress(theme, hm, out),
		Output:    ui.NewOutputTo(theme, out, errOut),
		Writer:    w,
		Stubs:     stub.NewResolver(custom),
		Generator: gen,
		DryRun:    opts.DryRun,
		Logger:    logger,
	}, nil
}

// newLogger discards log output unless --verbose or a level from
// ASSEMBLE_LOG_LEVEL asks for it.
func newLogger(level string, verbose bool, w io.Writer) *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if level == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Orchestrator returns a generation orchestrator reporting to r.
func (d *Dependencies) Orchestrator(r generate.Reporter) *generate.Orchestrator {
	return generate.New(d.Config, d.Writer, d.Stubs, d.Generator,
		generate.WithConfirmer(d.Prompter),
		generate.WithReporter(r),
		generate.WithLogger(d.Logger),
	)
}
