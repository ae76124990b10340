package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every up migration in file name order. All statements
// are idempotent, so it is safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	names, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := execMigration(ctx, db, name); err != nil {
			return err
		}
	}
	return nil
}

// MigrateOne applies the single migration file whose name ends with
// "<name>.sql", e.g. "create_choices.up".
func MigrateOne(ctx context.Context, db *sql.DB, name string) error {
	path, err := migrationFilePath(name)
	if err != nil {
		return err
	}
	return execMigration(ctx, db, path)
}

func migrationFilePath(name string) (string, error) {
	pattern, err := regexp.Compile(fmt.Sprintf(`^.*%s\.sql$`, regexp.QuoteMeta(name)))
	if err != nil {
		return "", fmt.Errorf("invalid migration name: %w", err)
	}

	entries, err := migrations.ReadDir("migrations")
	if err != nil {
		return "", fmt.Errorf("failed to read migrations: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() && pattern.MatchString(e.Name()) {
			return "migrations/" + e.Name(), nil
		}
	}
	return "", fmt.Errorf("migration file not found: %s", name)
}

func execMigration(ctx context.Context, db *sql.DB, path string) error {
	content, err := migrations.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read migration %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", strings.TrimPrefix(path, "migrations/"), err)
	}
	return nil
}
