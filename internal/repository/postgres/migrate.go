package postgres

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const dialect = "postgres"

func init() {
	migrate.SetTable("schema_migrations")
}

// MigrationSource exposes the embedded schema to tooling.
func MigrationSource() migrate.MigrationSource {
	return migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// MigrateUp applies every pending migration and returns how many ran.
func MigrateUp(db *sqlx.DB) (int, error) {
	n, err := migrate.Exec(db.DB, dialect, MigrationSource(), migrate.Up)
	if err != nil {
		return n, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return n, nil
}

// MigrateDown rolls back at most steps migrations. steps <= 0 rolls back all.
func MigrateDown(db *sqlx.DB, steps int) (int, error) {
	n, err := migrate.ExecMax(db.DB, dialect, MigrationSource(), migrate.Down, steps)
	if err != nil {
		return n, fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return n, nil
}

// MigrationStatus pairs a known migration with its applied state.
type MigrationStatus struct {
	ID      string
	Applied bool
}

func MigrationStatuses(db *sqlx.DB) ([]MigrationStatus, error) {
	known, err := MigrationSource().FindMigrations()
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}
	records, err := migrate.GetMigrationRecords(db.DB, dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration records: %w", err)
	}

	applied := make(map[string]bool, len(records))
	for _, r := range records {
		applied[r.Id] = true
	}

	statuses := make([]MigrationStatus, 0, len(known))
	for _, m := range known {
		statuses = append(statuses, MigrationStatus{ID: m.Id, Applied: applied[m.Id]})
	}
	return statuses, nil
}
