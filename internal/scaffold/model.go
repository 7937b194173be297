package scaffold

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/conquest-php/assemble/internal/naming"
	"github.com/conquest-php/assemble/internal/template"
)

// migrationTimeLayout is the timestamp prefix of migration files.
const migrationTimeLayout = "2006_01_02_150405"

// MakeModel creates the Eloquent model for name and, depending on opts, its
// factory, seeder, migration and policy. It stops at the first failure.
func (g *Generator) MakeModel(ctx context.Context, name string, opts ModelOptions) ([]template.Entry, error) {
	ns, paths := g.cfg.Namespaces, g.cfg.Paths
	base := naming.Base(name)
	model := naming.Qualified(ns.Models, name)

	steps := []struct {
		enabled bool
		run     func() ([]template.Entry, error)
	}{
		{true, func() ([]template.Entry, error) {
			data := template.NewTemplateContext(name,
				template.WithClass(naming.Namespace(ns.Models, name), base),
				template.WithModel(model),
			)
			return g.emit(ctx, KindModel, "model.php.tmpl", classFile(paths.Models, name), data, opts.Force)
		}},
		{opts.Factory, func() ([]template.Entry, error) {
			class := name + "Factory"
			data := template.NewTemplateContext(name,
				template.WithClass(naming.Namespace(ns.Factories, class), naming.Base(class)),
				template.WithModel(model),
			)
			return g.emit(ctx, KindFactory, "factory.php.tmpl", classFile(paths.Factories, class), data, opts.Force)
		}},
		{opts.Seed, func() ([]template.Entry, error) {
			class := name + "Seeder"
			data := template.NewTemplateContext(name,
				template.WithClass(naming.Namespace(ns.Seeders, class), naming.Base(class)),
				template.WithModel(model),
			)
			return g.emit(ctx, KindSeeder, "seeder.php.tmpl", classFile(paths.Seeders, class), data, opts.Force)
		}},
		{opts.Migration, func() ([]template.Entry, error) {
			return g.makeMigration(ctx, name, opts.Force)
		}},
		{opts.Policy, func() ([]template.Entry, error) {
			class := name + "Policy"
			data := template.NewTemplateContext(name,
				template.WithClass(naming.Namespace(ns.Policies, class), naming.Base(class)),
				template.WithModel(model),
			)
			return g.emit(ctx, KindPolicy, "policy.php.tmpl", classFile(paths.Policies, class), data, opts.Force)
		}},
	}

	var created []template.Entry
	for _, step := range steps {
		if !step.enabled {
			continue
		}
		entries, err := step.run()
		if err != nil {
			return created, err
		}
		created = append(created, entries...)
	}
	return created, nil
}

// MakeResource creates the API resource for name.
func (g *Generator) MakeResource(ctx context.Context, name string, force bool) ([]template.Entry, error) {
	class := name + "Resource"
	data := template.NewTemplateContext(name,
		template.WithClass(naming.Namespace(g.cfg.Namespaces.Resources, class), naming.Base(class)),
		template.WithModel(naming.Qualified(g.cfg.Namespaces.Models, naming.Base(name))),
	)
	return g.emit(ctx, KindResource, "resource.php.tmpl", classFile(g.cfg.Paths.Resources, class), data, force)
}

// makeMigration writes the create-table migration. A migration that already
// creates the same table counts as a conflict; with force it is rewritten
// in place instead of adding a second one.
func (g *Generator) makeMigration(ctx context.Context, name string, force bool) ([]template.Entry, error) {
	data := template.NewTemplateContext(name)
	suffix := "_create_" + data.Table + "_table.php"

	existing, err := g.findMigration(suffix)
	if err != nil {
		return nil, err
	}

	relPath := path.Join(g.cfg.Paths.Migrations, g.now().Format(migrationTimeLayout)+suffix)
	if existing != "" {
		if !force {
			return nil, &template.ConflictError{Kind: KindMigration, Path: existing}
		}
		relPath = existing
	}
	return g.emit(ctx, KindMigration, "migration.php.tmpl", relPath, data, force)
}

// findMigration returns the project-relative path of a migration whose file
// name ends in suffix, or "" when there is none.
func (g *Generator) findMigration(suffix string) (string, error) {
	dir := g.cfg.Paths.Migrations
	entries, err := os.ReadDir(filepath.Join(g.writer.Root(), filepath.FromSlash(dir)))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read migrations: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			return path.Join(dir, e.Name()), nil
		}
	}
	return "", nil
}
