package config

import (
	"fmt"
	"maps"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// namespacePattern accepts slash or backslash separated PHP identifiers.
var namespacePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*([/\\][A-Za-z_][A-Za-z0-9_]*)*$`)

// Validate checks the configuration for correctness and returns a
// *ValidationErrors listing every problem found.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateNamespaces(&cfg.Namespaces)...)
	errs = append(errs, validatePaths(&cfg.Paths)...)
	errs = append(errs, validateFrontend(&cfg.Frontend)...)
	errs = append(errs, validateSystem(&cfg.System)...)
	errs = append(errs, validatePrompts(cfg.Prompts)...)

	if strings.ContainsAny(cfg.BaseRoute, `'\`) {
		errs = append(errs, ValidationError{
			Field:   "base_route",
			Message: "must not contain quotes or backslashes",
			Value:   cfg.BaseRoute,
			Wrapped: ErrInvalidConfig,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateNamespaces checks that every namespace is a valid PHP namespace.
func validateNamespaces(ns *NamespacesConfig) []ValidationError {
	fields := map[string]string{
		"namespaces.root":        ns.Root,
		"namespaces.controllers": ns.Controllers,
		"namespaces.requests":    ns.Requests,
		"namespaces.models":      ns.Models,
		"namespaces.resources":   ns.Resources,
		"namespaces.policies":    ns.Policies,
		"namespaces.factories":   ns.Factories,
		"namespaces.seeders":     ns.Seeders,
	}

	var errs []ValidationError
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		if v := fields[field]; !namespacePattern.MatchString(v) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must be a PHP namespace such as App/Http/Controllers",
				Value:   v,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}

// validatePaths checks that every configured path stays inside the project.
func validatePaths(p *PathsConfig) []ValidationError {
	fields := p.pathFields()

	var errs []ValidationError
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		v := fields[field]
		cleaned := filepath.Clean(filepath.FromSlash(v))
		if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must be relative to the project root",
				Value:   v,
				Wrapped: ErrAbsolutePath,
			})
		}
	}
	return errs
}

// validateFrontend checks the frontend extension.
func validateFrontend(f *FrontendConfig) []ValidationError {
	if IsValidExtension(f.Extension) {
		return nil
	}
	return []ValidationError{{
		Field:   "frontend.extension",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidExtensions(), ", ")),
		Value:   f.Extension,
		Wrapped: ErrInvalidExtension,
	}}
}

// validateSystem checks the system section.
func validateSystem(s *SystemConfig) []ValidationError {
	if slices.Contains(ValidLogLevels(), s.LogLevel) {
		return nil
	}
	return []ValidationError{{
		Field:   "system.log_level",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		Value:   s.LogLevel,
		Wrapped: ErrInvalidLogLevel,
	}}
}

// validatePrompts rejects answers for prompts that do not exist.
func validatePrompts(prompts map[string]string) []ValidationError {
	var errs []ValidationError
	for _, key := range slices.Sorted(maps.Keys(prompts)) {
		if !slices.Contains(PromptKeys(), key) {
			errs = append(errs, ValidationError{
				Field:   "prompts." + key,
				Message: fmt.Sprintf("unknown prompt, must be one of: %s", strings.Join(PromptKeys(), ", ")),
				Value:   prompts[key],
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}
