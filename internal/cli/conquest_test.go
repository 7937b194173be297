package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/conquest-php/assemble/internal/generate"
	"github.com/conquest-php/assemble/internal/naming"
	"github.com/conquest-php/assemble/internal/template"
	"github.com/conquest-php/assemble/internal/ui"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 5, 14, 30, 15, 0, time.UTC)
}

// newTestDeps wires headless, colourless dependencies for a project in root.
func newTestDeps(t *testing.T, root string, dryRun bool) (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	d, err := newDependencies(globalOptions{
		Root:          root,
		NoInteraction: true,
		NoColor:       true,
		DryRun:        dryRun,
	}, &out, &errOut, fixedClock)
	if err != nil {
		t.Fatalf("newDependencies: %v", err)
	}
	return d, &out, &errOut
}

func assertFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("expected %s: %v", rel, err)
	}
	return string(data)
}

func assertNoFile(t *testing.T, root, rel string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err == nil {
		t.Errorf("%s should not exist", rel)
	}
}

func TestConquest_IndexPage(t *testing.T) {
	root := t.TempDir()
	d, out, _ := newTestDeps(t, root, false)

	err := conquest(context.Background(), d, invocation{Name: "user", Method: "index"})
	if err != nil {
		t.Fatalf("conquest error: %v", err)
	}

	controller := assertFile(t, root, "app/Http/Controllers/UserIndexController.php")
	if !strings.Contains(controller, "class UserIndexController") {
		t.Errorf("controller class missing:\n%s", controller)
	}
	assertFile(t, root, "app/Http/Requests/UserIndexRequest.php")
	assertFile(t, root, "resources/js/Pages/UserIndex.vue")
	assertNoFile(t, root, "routes/web.php")
	assertNoFile(t, root, "app/Models/User.php")

	got := out.String()
	for _, want := range []string{
		"Controller [app/Http/Controllers/UserIndexController.php] created successfully.",
		"Request [app/Http/Requests/UserIndexRequest.php] created successfully.",
		"Page [resources/js/Pages/UserIndex.vue] created successfully.",
		SuccessMessage,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestConquest_ModelAndRoute(t *testing.T) {
	root := t.TempDir()
	d, _, _ := newTestDeps(t, root, false)

	err := conquest(context.Background(), d, invocation{
		Name:   "Admin/User",
		Method: "edit",
		Flags:  generate.Flags{Model: true, Route: true, Factory: true},
	})
	if err != nil {
		t.Fatalf("conquest error: %v", err)
	}

	assertFile(t, root, "app/Http/Controllers/Admin/UserEditController.php")
	assertFile(t, root, "app/Models/User.php")
	assertFile(t, root, "database/factories/UserFactory.php")
	assertFile(t, root, "resources/js/Modals/Admin/UserEdit.vue")

	routes := assertFile(t, root, "routes/web.php")
	want := `Route::get('/admin/users/{user}/edit', \App\Http\Controllers\Admin\UserEditController::class)->name('admin.users.edit');`
	if !strings.Contains(routes, want) {
		t.Errorf("routes missing %q:\n%s", want, routes)
	}
}

func TestConquest_CrudReportsProgress(t *testing.T) {
	root := t.TempDir()
	d, out, _ := newTestDeps(t, root, false)

	if err := conquest(context.Background(), d, invocation{Name: "Post", Flags: generate.Flags{Crud: true}}); err != nil {
		t.Fatalf("conquest error: %v", err)
	}

	for _, m := range []string{"Index", "Create", "Store", "Show", "Edit", "Update", "Destroy"} {
		assertFile(t, root, "app/Http/Controllers/Post"+m+"Controller.php")
	}
	assertFile(t, root, "resources/js/Pages/PostIndex.vue")
	assertFile(t, root, "resources/js/Modals/PostCreate.vue")
	assertNoFile(t, root, "resources/js/Pages/PostStore.vue")

	got := out.String()
	if !strings.Contains(got, "[1/7] index") || !strings.Contains(got, "[7/7] destroy") {
		t.Errorf("progress lines missing:\n%s", got)
	}
}

func TestConquest_MissingMethodDeclined(t *testing.T) {
	root := t.TempDir()
	d, _, errOut := newTestDeps(t, root, false)

	err := conquest(context.Background(), d, invocation{Name: "User"})
	if !errors.Is(err, generate.ErrDeclined) {
		t.Fatalf("error = %v, want ErrDeclined", err)
	}
	if !strings.Contains(errOut.String(), generate.WarnInvalidMethod) {
		t.Errorf("warning missing:\n%s", errOut.String())
	}
	assertNoFile(t, root, "app/Http/Controllers/UserController.php")
}

func TestConquest_MissingNameHeadless(t *testing.T) {
	d, _, _ := newTestDeps(t, t.TempDir(), false)

	err := conquest(context.Background(), d, invocation{Method: "index"})
	if !errors.Is(err, ErrMissingName) {
		t.Errorf("error = %v, want ErrMissingName", err)
	}
}

func TestConquest_ReservedName(t *testing.T) {
	root := t.TempDir()
	d, _, _ := newTestDeps(t, root, false)

	err := conquest(context.Background(), d, invocation{Name: "class", Method: "index"})
	if !errors.Is(err, naming.ErrReservedName) {
		t.Fatalf("error = %v, want ErrReservedName", err)
	}
	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Errorf("reserved name wrote %d entries", len(entries))
	}
}

func TestConquest_KeepsAcronyms(t *testing.T) {
	root := t.TempDir()
	d, _, _ := newTestDeps(t, root, false)

	if err := conquest(context.Background(), d, invocation{Name: "APIKey", Method: "index"}); err != nil {
		t.Fatalf("conquest error: %v", err)
	}
	got := assertFile(t, root, "app/Http/Controllers/APIKeyIndexController.php")
	if !strings.Contains(got, "class APIKeyIndexController") {
		t.Errorf("controller class not preserved:\n%s", got)
	}
}

func TestConquest_InvalidName(t *testing.T) {
	for _, name := range []string{"1User", "über", "User-Profile!"} {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			d, _, _ := newTestDeps(t, root, false)

			err := conquest(context.Background(), d, invocation{Name: name, Method: "index"})
			if !errors.Is(err, naming.ErrInvalidName) {
				t.Fatalf("error = %v, want ErrInvalidName", err)
			}
			entries, _ := os.ReadDir(root)
			if len(entries) != 0 {
				t.Errorf("invalid name wrote %d entries", len(entries))
			}
		})
	}
}

func TestConquest_Conflict(t *testing.T) {
	root := t.TempDir()
	d, _, _ := newTestDeps(t, root, false)
	inv := invocation{Name: "User", Method: "show"}

	if err := conquest(context.Background(), d, inv); err != nil {
		t.Fatalf("first run: %v", err)
	}

	d2, _, _ := newTestDeps(t, root, false)
	err := conquest(context.Background(), d2, inv)
	var conflict *template.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("error = %v, want *template.ConflictError", err)
	}
	if conflict.Kind != "Controller" {
		t.Errorf("conflict kind = %q", conflict.Kind)
	}

	inv.Flags.Force = true
	d3, _, _ := newTestDeps(t, root, false)
	if err := conquest(context.Background(), d3, inv); err != nil {
		t.Errorf("forced run: %v", err)
	}
}

func TestConquest_DryRun(t *testing.T) {
	root := t.TempDir()
	d, out, _ := newTestDeps(t, root, true)

	err := conquest(context.Background(), d, invocation{Name: "User", Flags: generate.Flags{All: true}})
	if err != nil {
		t.Fatalf("conquest error: %v", err)
	}

	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Errorf("dry run wrote %d entries", len(entries))
	}
	got := out.String()
	for _, want := range []string{
		"# Plan for User",
		"| Controller | `app/Http/Controllers/UserIndexController.php` | create |",
		"| Migration | `database/migrations/2024_03_05_143015_create_users_table.php` | create |",
		"| Route | `routes/web.php` | update |",
		"Dry run:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("plan missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "created successfully") {
		t.Error("dry run printed confirmation lines")
	}
}

func TestConquest_ConfigLayout(t *testing.T) {
	root := t.TempDir()
	cfg := "paths:\n  pages: resources/ts/pages\nfrontend:\n  extension: tsx\n"
	if err := os.WriteFile(filepath.Join(root, "assemble.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	d, _, _ := newTestDeps(t, root, false)

	if err := conquest(context.Background(), d, invocation{Name: "User", Method: "index"}); err != nil {
		t.Fatalf("conquest error: %v", err)
	}
	assertFile(t, root, "resources/ts/pages/UserIndex.tsx")
}

func TestNewDependencies_InvalidConfig(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "assemble.yaml"), []byte("frontend:\n  extension: svelte\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := newDependencies(globalOptions{Root: root, NoInteraction: true}, &bytes.Buffer{}, &bytes.Buffer{}, fixedClock)
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestNewDependencies_VerboseLogsConfigRead(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	var errOut bytes.Buffer
	_, err := newDependencies(globalOptions{
		Root:          t.TempDir(),
		ConfigPath:    t.TempDir(), // a directory cannot be read as a file
		NoInteraction: true,
		Verbose:       true,
	}, &bytes.Buffer{}, &errOut, fixedClock)
	if err != nil {
		t.Fatalf("newDependencies: %v", err)
	}
	if !strings.Contains(errOut.String(), "failed to read config") {
		t.Errorf("stderr = %q, want the config read warning", errOut.String())
	}
}

func TestConquest_ConfiguredPromptAnswers(t *testing.T) {
	root := t.TempDir()
	cfg := "prompts:\n  name: Team\n  method: show\n"
	if err := os.WriteFile(filepath.Join(root, "assemble.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	d, _, _ := newTestDeps(t, root, false)

	if err := conquest(context.Background(), d, invocation{}); err != nil {
		t.Fatalf("conquest error: %v", err)
	}
	assertFile(t, root, "app/Http/Controllers/TeamShowController.php")
}

// fakePrompter answers prompts from maps and records the keys asked.
type fakePrompter struct {
	inputs  map[string]string
	selects map[string]string
	multi   map[string][]string
	asked   []string
}

func (p *fakePrompter) Input(key, _, _ string, validate func(string) error) (string, error) {
	p.asked = append(p.asked, key)
	v, ok := p.inputs[key]
	if !ok {
		return "", ui.ErrHeadless
	}
	if validate != nil {
		if err := validate(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (p *fakePrompter) Select(key, _ string, _ []ui.Option) (string, error) {
	p.asked = append(p.asked, key)
	v, ok := p.selects[key]
	if !ok {
		return "", ui.ErrHeadless
	}
	return v, nil
}

func (p *fakePrompter) MultiSelect(key, _ string, _ []ui.Option) ([]string, error) {
	p.asked = append(p.asked, key)
	return p.multi[key], nil
}

func (p *fakePrompter) Confirm(string) (bool, error) {
	return false, nil
}

func TestCompleteInvocation(t *testing.T) {
	tests := []struct {
		name      string
		prompter  *fakePrompter
		in        invocation
		want      invocation
		wantAsked []string
		wantErr   error
	}{
		{
			name:      "nothing missing",
			prompter:  &fakePrompter{},
			in:        invocation{Name: "User", Method: "index"},
			want:      invocation{Name: "User", Method: "index"},
			wantAsked: nil,
		},
		{
			name:      "crud skips method",
			prompter:  &fakePrompter{},
			in:        invocation{Name: "User", Flags: generate.Flags{Crud: true}},
			want:      invocation{Name: "User", Flags: generate.Flags{Crud: true}},
			wantAsked: nil,
		},
		{
			name: "prompted arguments ask for switches",
			prompter: &fakePrompter{
				inputs:  map[string]string{"name": "Post", "file": "routes/admin.php"},
				selects: map[string]string{"method": "create"},
				multi: map[string][]string{
					"flags": {"model", "route"},
					"model": {"factory", "policy"},
					"ui":    {"page", "form"},
				},
			},
			in: invocation{},
			want: invocation{Name: "Post", Method: "create", Flags: generate.Flags{
				Model: true, Route: true, Factory: true, Policy: true, Page: true, Form: true, File: "routes/admin.php",
			}},
			wantAsked: []string{"name", "method", "flags", "model", "ui", "file"},
		},
		{
			name: "all skips model extras",
			prompter: &fakePrompter{
				selects: map[string]string{"method": "index"},
				multi:   map[string][]string{"flags": {"all"}},
			},
			in:        invocation{Name: "Post"},
			want:      invocation{Name: "Post", Method: "index", Flags: generate.Flags{All: true}},
			wantAsked: []string{"method", "flags", "ui", "file"},
		},
		{
			name:     "given switches are kept",
			prompter: &fakePrompter{selects: map[string]string{"method": "show"}},
			in:       invocation{Name: "Post", Flags: generate.Flags{Modal: true}},
			want:     invocation{Name: "Post", Method: "show", Flags: generate.Flags{Modal: true}},
			wantAsked: []string{"method"},
		},
		{
			name:      "headless method left empty",
			prompter:  &fakePrompter{},
			in:        invocation{Name: "Post"},
			want:      invocation{Name: "Post"},
			wantAsked: []string{"method"},
		},
		{
			name:      "headless name",
			prompter:  &fakePrompter{},
			in:        invocation{Method: "index"},
			wantAsked: []string{"name"},
			wantErr:   ErrMissingName,
		},
		{
			name:      "invalid prompted name",
			prompter:  &fakePrompter{inputs: map[string]string{"name": "class"}},
			in:        invocation{Method: "index"},
			wantAsked: []string{"name"},
			wantErr:   naming.ErrReservedName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := completeInvocation(tt.prompter, tt.in, "routes/web.php")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("invocation = %+v, want %+v", got, tt.want)
				}
			}
			if strings.Join(tt.prompter.asked, ",") != strings.Join(tt.wantAsked, ",") {
				t.Errorf("asked = %v, want %v", tt.prompter.asked, tt.wantAsked)
			}
		})
	}
}

func TestMethodOptions(t *testing.T) {
	opts := methodOptions()
	if len(opts) != 8 {
		t.Fatalf("len = %d, want 8", len(opts))
	}
	if opts[0].Value != "index" || opts[7].Label != "none" || opts[7].Value != "" {
		t.Errorf("options = %+v", opts)
	}
}
