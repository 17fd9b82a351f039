package database

import (
	"context"
	"fmt"
	"log/slog"

	"postboard/internal/observability"

	"gorm.io/gorm"
)

var sqliteSchema = []string{
	"CREATE TABLE IF NOT EXISTS users (id INTEGER PRIMARY KEY, name TEXT, email TEXT)",
	"CREATE TABLE IF NOT EXISTS posts (id INTEGER PRIMARY KEY, userId INTEGER, content TEXT)",
}

// Postgres folds unquoted identifiers to lower case, so userId is quoted.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (id SERIAL PRIMARY KEY, name TEXT, email TEXT)`,
	`CREATE TABLE IF NOT EXISTS posts (id SERIAL PRIMARY KEY, "userId" INTEGER, content TEXT)`,
}

// SchemaStatements returns the DDL run at startup for the given dialect.
func SchemaStatements(dialect string) ([]string, error) {
	switch dialect {
	case "sqlite":
		return sqliteSchema, nil
	case "postgres":
		return postgresSchema, nil
	default:
		return nil, fmt.Errorf("no schema for dialect %q", dialect)
	}
}

// ApplySchema creates the users and posts tables if they do not exist.
// Running it again is a no-op.
func ApplySchema(ctx context.Context, db *gorm.DB) error {
	stmts, err := SchemaStatements(db.Dialector.Name())
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	observability.Logger.InfoContext(ctx, "Database schema ready",
		slog.String("dialect", db.Dialector.Name()),
		slog.Int("statements", len(stmts)),
	)
	return nil
}
