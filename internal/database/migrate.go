package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
  version VARCHAR(255) NOT NULL,
  applied_at DATETIME(6) NOT NULL,
  PRIMARY KEY (version)
)`

// Migrate applies the *.sql files under dir in fsys that are not recorded in schema_migrations yet.
// Files are applied in name order. It returns the versions applied by this call.
func Migrate(ctx context.Context, db *sqlx.DB, fsys fs.FS, dir string) ([]string, error) {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("db.ExecContext(create schema_migrations) > %w", err)
	}

	var versions []string
	if err := db.SelectContext(ctx, &versions, "SELECT version FROM schema_migrations"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(schema_migrations) > %w", err)
	}
	done := make(map[string]struct{}, len(versions))
	for _, v := range versions {
		done[v] = struct{}{}
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("fs.Glob(%s) > %w", dir, err)
	}
	sort.Strings(files)

	var applied []string
	for _, file := range files {
		version := strings.TrimSuffix(path.Base(file), ".sql")
		if _, ok := done[version]; ok {
			continue
		}

		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return applied, fmt.Errorf("fs.ReadFile(%s) > %w", file, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return applied, fmt.Errorf("db.ExecContext(%s) > %w", file, err)
		}
		if _, err := db.ExecContext(ctx,
			"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
			version, time.Now().UTC()); err != nil {
			return applied, fmt.Errorf("db.ExecContext(record %s) > %w", version, err)
		}
		slog.Default().Info("applied a migration", "version", version)
		applied = append(applied, version)
	}
	return applied, nil
}
