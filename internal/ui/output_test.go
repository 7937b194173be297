package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutput_NoColor(t *testing.T) {
	var out, errOut bytes.Buffer
	o := NewOutputTo(testTheme(), &out, &errOut)

	o.Created("Controller", "a.php", "create")
	o.Success("All components created successfully.")
	o.Warn("You have not supplied a valid method.")
	o.Error("Controller already exists.")

	wantOut := "  INFO Controller [a.php] created successfully.\n" +
		"  DONE All components created successfully.\n"
	if out.String() != wantOut {
		t.Errorf("stdout = %q, want %q", out.String(), wantOut)
	}
	wantErr := "  WARN You have not supplied a valid method.\n" +
		"  ERROR Controller already exists.\n"
	if errOut.String() != wantErr {
		t.Errorf("stderr = %q, want %q", errOut.String(), wantErr)
	}
}

func TestOutput_CreatedLine(t *testing.T) {
	o := NewOutputTo(testTheme(), &bytes.Buffer{}, &bytes.Buffer{})

	tests := []struct {
		action string
		want   string
	}{
		{"create", "  INFO Request [r.php] created successfully."},
		{"overwrite", "  INFO Request [r.php] overwritten successfully."},
		{"update", "  INFO Request [r.php] updated successfully."},
		{"skip", "  INFO Request [r.php] already registered, skipped."},
	}
	for _, tt := range tests {
		if got := o.CreatedLine("Request", "r.php", tt.action); got != tt.want {
			t.Errorf("CreatedLine(%s) = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestOutput_Color(t *testing.T) {
	var out bytes.Buffer
	o := NewOutputTo(&Theme{Colors: NewTheme(false).Colors}, &out, &bytes.Buffer{})

	o.Created("Model", "app/Models/User.php", "create")
	if !strings.Contains(out.String(), "app/Models/User.php") {
		t.Errorf("output = %q", out.String())
	}
}

func TestNewTheme_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !NewTheme(false).NoColor {
		t.Error("NO_COLOR not honoured")
	}
}

func TestTheme_HuhTheme(t *testing.T) {
	if (&Theme{NoColor: true}).huhTheme() == nil {
		t.Error("nil huh theme without colour")
	}
	if (&Theme{Colors: NewTheme(false).Colors}).huhTheme() == nil {
		t.Error("nil huh theme with colour")
	}
}
