package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/conquest-php/assemble/internal/method"
	"github.com/conquest-php/assemble/internal/scaffold"
	"github.com/conquest-php/assemble/internal/template"
)

func TestMakeArtifact_Model(t *testing.T) {
	root := t.TempDir()
	d, out, _ := newTestDeps(t, root, false)

	err := makeArtifact(context.Background(), d, "post", "", makeOptions{Factory: true, Migration: true},
		func(ctx context.Context, g *scaffold.Generator, name string, _ scaffold.Endpoint) ([]template.Entry, error) {
			return g.MakeModel(ctx, name, scaffold.ModelOptions{Factory: true, Migration: true})
		})
	if err != nil {
		t.Fatalf("makeArtifact error: %v", err)
	}

	assertFile(t, root, "app/Models/Post.php")
	assertFile(t, root, "database/factories/PostFactory.php")
	assertFile(t, root, "database/migrations/2024_03_05_143015_create_posts_table.php")
	if !strings.Contains(out.String(), "Model [app/Models/Post.php] created successfully.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestMakeArtifact_Endpoint(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		opts     makeOptions
		wantID   string
		wantForm bool
		wantErr  error
	}{
		{name: "index", raw: "index", wantID: "UserIndex"},
		{name: "create is a form", raw: "create", wantID: "UserCreate", wantForm: true},
		{name: "form flag", raw: "show", opts: makeOptions{Form: true}, wantID: "UserShow", wantForm: true},
		{name: "no method", raw: "", wantID: "User"},
		{name: "invalid method", raw: "archive", wantErr: method.ErrInvalidMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, _ := newTestDeps(t, t.TempDir(), false)

			var got scaffold.Endpoint
			called := false
			err := makeArtifact(context.Background(), d, "User", tt.raw, tt.opts,
				func(_ context.Context, _ *scaffold.Generator, _ string, ep scaffold.Endpoint) ([]template.Entry, error) {
					got, called = ep, true
					return nil, nil
				})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || called {
					t.Fatalf("error = %v, called = %v", err, called)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID.View != tt.wantID || got.Form != tt.wantForm {
				t.Errorf("endpoint = %+v", got)
			}
		})
	}
}

func TestMakeArtifact_RouteSkipsDuplicate(t *testing.T) {
	root := t.TempDir()
	route := func(ctx context.Context, g *scaffold.Generator, _ string, ep scaffold.Endpoint) ([]template.Entry, error) {
		return g.MakeRoute(ctx, ep)
	}

	d, _, _ := newTestDeps(t, root, false)
	if err := makeArtifact(context.Background(), d, "User", "show", makeOptions{}, route); err != nil {
		t.Fatalf("first route: %v", err)
	}

	d2, out, _ := newTestDeps(t, root, false)
	if err := makeArtifact(context.Background(), d2, "User", "show", makeOptions{}, route); err != nil {
		t.Fatalf("second route: %v", err)
	}
	if !strings.Contains(out.String(), "Route [routes/web.php] already registered, skipped.") {
		t.Errorf("output = %q", out.String())
	}
	routes := assertFile(t, root, "routes/web.php")
	if strings.Count(routes, "->name('users.show')") != 1 {
		t.Errorf("route registered twice:\n%s", routes)
	}
}

func TestMakeCmd_Subcommands(t *testing.T) {
	want := map[string]bool{"model": false, "resource": false, "request": false, "route": false, "page": false, "modal": false}
	for _, c := range makeCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
		if c.Flags().Lookup("force") == nil {
			t.Errorf("make %s has no --force flag", c.Name())
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("make %s not registered", name)
		}
	}
	if makeModelCmd.Flags().ShorthandLookup("f") == nil {
		t.Error("make model should have -f")
	}
	if makeRouteCmd.Flags().Lookup("file") == nil {
		t.Error("make route should have --file")
	}
}
