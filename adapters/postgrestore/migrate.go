package postgrestore

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFS,
		Root:       "migrations",
	}
}

// Migrate applies every pending migration and returns how many ran.
func Migrate(db *sql.DB, dialect string) (int, error) {
	n, err := migrate.Exec(db, dialect, migrationSource(), migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("cannot apply migrations: %w", err)
	}

	return n, nil
}

// Rollback undoes up to max applied migrations; max 0 means all.
func Rollback(db *sql.DB, dialect string, max int) (int, error) {
	n, err := migrate.ExecMax(db, dialect, migrationSource(), migrate.Down, max)
	if err != nil {
		return 0, fmt.Errorf("cannot roll back migrations: %w", err)
	}

	return n, nil
}
