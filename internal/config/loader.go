package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvLogLevel       = "ASSEMBLE_LOG_LEVEL"
	EnvNoColor        = "ASSEMBLE_NO_COLOR"
	EnvNoColorStd     = "NO_COLOR"
	EnvNonInteractive = "ASSEMBLE_NO_INTERACTION"
)

// Loader reads configuration from an assemble.yaml file.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu     sync.RWMutex
	loaded bool
	path   string
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger Load reports skipped files to.
func WithLogger(l *slog.Logger) LoaderOption {
	return func(ld *Loader) { ld.logger = l }
}

// NewLoader creates a new Loader instance.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the configuration file at path and returns a Config with
// defaults applied for missing fields. A missing file yields the defaults.
// An unreadable file is skipped with a warning. Invalid YAML is returned
// as ErrInvalidYAML since a half-applied layout would write files to the
// wrong place.
func (l *Loader) Load(path string) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loaded = false
	l.path = filepath.Clean(path)
	cfg := NewDefaultConfig()

	data, err := os.ReadFile(l.path)
	switch {
	case os.IsNotExist(err):
		l.logger.Debug("config file not found, using defaults", "path", l.path)
	case err != nil:
		l.logger.Warn("failed to read config, using defaults", "path", l.path, "error", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(l.path), ErrInvalidYAML)
		}
		l.loaded = true
	}

	fillEmpty(cfg)
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Loaded reports whether the last Load call read a file.
func (l *Loader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Path returns the file path of the last Load call.
func (l *Loader) Path() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.path
}

// fillEmpty restores defaults for keys explicitly set to empty strings.
func fillEmpty(cfg *Config) {
	def := NewDefaultConfig()
	setIfEmpty(&cfg.BaseRoute, def.BaseRoute)

	ns, dns := &cfg.Namespaces, def.Namespaces
	setIfEmpty(&ns.Root, dns.Root)
	setIfEmpty(&ns.Controllers, dns.Controllers)
	setIfEmpty(&ns.Requests, dns.Requests)
	setIfEmpty(&ns.Models, dns.Models)
	setIfEmpty(&ns.Resources, dns.Resources)
	setIfEmpty(&ns.Policies, dns.Policies)
	setIfEmpty(&ns.Factories, dns.Factories)
	setIfEmpty(&ns.Seeders, dns.Seeders)

	p, dp := &cfg.Paths, def.Paths
	setIfEmpty(&p.Controllers, dp.Controllers)
	setIfEmpty(&p.Requests, dp.Requests)
	setIfEmpty(&p.Models, dp.Models)
	setIfEmpty(&p.Resources, dp.Resources)
	setIfEmpty(&p.Policies, dp.Policies)
	setIfEmpty(&p.Factories, dp.Factories)
	setIfEmpty(&p.Seeders, dp.Seeders)
	setIfEmpty(&p.Migrations, dp.Migrations)
	setIfEmpty(&p.Pages, dp.Pages)
	setIfEmpty(&p.Modals, dp.Modals)
	setIfEmpty(&p.Routes, dp.Routes)
	setIfEmpty(&p.Stubs, dp.Stubs)

	setIfEmpty(&cfg.Frontend.Extension, def.Frontend.Extension)
	setIfEmpty(&cfg.System.LogLevel, def.System.LogLevel)
}

func setIfEmpty(dst *string, def string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = def
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.System.LogLevel = strings.ToLower(level)
	}
	if v := os.Getenv(EnvNoColor); v == "true" || v == "1" {
		cfg.System.NoColor = true
	}
	if os.Getenv(EnvNoColorStd) != "" {
		cfg.System.NoColor = true
	}
	if v := os.Getenv(EnvNonInteractive); v == "true" || v == "1" {
		cfg.System.NonInteractive = true
	}
}
