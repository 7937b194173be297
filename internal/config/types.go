package config

import "slices"

// Config is the root configuration aggregate read from assemble.yaml.
type Config struct {
	BaseRoute  string           `yaml:"base_route"`
	Namespaces NamespacesConfig `yaml:"namespaces"`
	Paths      PathsConfig      `yaml:"paths"`
	Frontend   FrontendConfig   `yaml:"frontend"`
	System     SystemConfig     `yaml:"system"`

	// Prompts answers prompts when no terminal is attached, keyed by
	// prompt ("name", "method", ...). Multi-select answers are comma separated.
	Prompts map[string]string `yaml:"prompts"`
}

// NamespacesConfig holds the PHP namespaces of generated classes.
// Values are slash separated ("App/Http/Controllers") and converted to
// PHP separators when rendered.
type NamespacesConfig struct {
	Root        string `yaml:"root"`
	Controllers string `yaml:"controllers"`
	Requests    string `yaml:"requests"`
	Models      string `yaml:"models"`
	Resources   string `yaml:"resources"`
	Policies    string `yaml:"policies"`
	Factories   string `yaml:"factories"`
	Seeders     string `yaml:"seeders"`
}

// PathsConfig holds the project-relative directories artifacts are written to.
type PathsConfig struct {
	Controllers string `yaml:"controllers"`
	Requests    string `yaml:"requests"`
	Models      string `yaml:"models"`
	Resources   string `yaml:"resources"`
	Policies    string `yaml:"policies"`
	Factories   string `yaml:"factories"`
	Seeders     string `yaml:"seeders"`
	Migrations  string `yaml:"migrations"`
	Pages       string `yaml:"pages"`
	Modals      string `yaml:"modals"`
	Routes      string `yaml:"routes"` // route file, not a directory
	Stubs       string `yaml:"stubs"`
}

// FrontendConfig represents the frontend section.
type FrontendConfig struct {
	Extension string `yaml:"extension"` // "vue" or "tsx"
}

// SystemConfig represents the system configuration section.
type SystemConfig struct {
	LogLevel       string `yaml:"log_level"`
	NoColor        bool   `yaml:"no_color"`
	NonInteractive bool   `yaml:"non_interactive"`
}

// ValidExtensions returns the supported frontend file extensions.
func ValidExtensions() []string {
	return []string{"vue", "tsx"}
}

// IsValidExtension reports whether ext is a supported frontend extension.
func IsValidExtension(ext string) bool {
	return slices.Contains(ValidExtensions(), ext)
}

// PromptKeys returns the prompts that accept a configured answer.
func PromptKeys() []string {
	return []string{"name", "method", "flags", "model", "ui", "file"}
}

// ValidLogLevels returns the accepted system.log_level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// pathFields lists every configured path for validation.
func (p PathsConfig) pathFields() map[string]string {
	return map[string]string{
		"paths.controllers": p.Controllers,
		"paths.requests":    p.Requests,
		"paths.models":      p.Models,
		"paths.resources":   p.Resources,
		"paths.policies":    p.Policies,
		"paths.factories":   p.Factories,
		"paths.seeders":     p.Seeders,
		"paths.migrations":  p.Migrations,
		"paths.pages":       p.Pages,
		"paths.modals":      p.Modals,
		"paths.routes":      p.Routes,
		"paths.stubs":       p.Stubs,
	}
}
