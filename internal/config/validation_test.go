package config

import (
	"errors"
	"testing"
)

func TestValidate_Defaults(t *testing.T) {
	if err := Validate(NewDefaultConfig()); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr error
	}{
		{
			name:    "bad_extension",
			mutate:  func(c *Config) { c.Frontend.Extension = "svelte" },
			field:   "frontend.extension",
			wantErr: ErrInvalidExtension,
		},
		{
			name:    "bad_log_level",
			mutate:  func(c *Config) { c.System.LogLevel = "trace" },
			field:   "system.log_level",
			wantErr: ErrInvalidLogLevel,
		},
		{
			name:    "absolute_path",
			mutate:  func(c *Config) { c.Paths.Pages = "/var/www/Pages" },
			field:   "paths.pages",
			wantErr: ErrAbsolutePath,
		},
		{
			name:    "escaping_path",
			mutate:  func(c *Config) { c.Paths.Routes = "../routes/web.php" },
			field:   "paths.routes",
			wantErr: ErrAbsolutePath,
		},
		{
			name:    "unknown_prompt",
			mutate:  func(c *Config) { c.Prompts = map[string]string{"name": "User", "colour": "red"} },
			field:   "prompts.colour",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "bad_namespace",
			mutate:  func(c *Config) { c.Namespaces.Models = "App/1Models" },
			field:   "namespaces.models",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "quoted_base_route",
			mutate:  func(c *Config) { c.BaseRoute = "it's" },
			field:   "base_route",
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("ValidationErrors should match ErrInvalidConfig")
			}

			var ve *ValidationErrors
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationErrors, got %T", err)
			}
			if len(ve.Errors) != 1 || ve.Errors[0].Field != tt.field {
				t.Errorf("errors = %+v, want one error on %s", ve.Errors, tt.field)
			}
		})
	}
}

func TestValidate_BackslashNamespace(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Namespaces.Controllers = `App\Http\Controllers`
	if err := Validate(cfg); err != nil {
		t.Errorf("backslash namespace rejected: %v", err)
	}
}

func TestValidationErrors_Empty(t *testing.T) {
	e := &ValidationErrors{}
	if e.Error() != "validation: no errors" {
		t.Errorf("Error() = %q", e.Error())
	}
}
