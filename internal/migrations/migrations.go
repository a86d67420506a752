package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var MigrationFiles embed.FS

// Source returns the embedded migrations as a golang-migrate source driver.
func Source() (source.Driver, error) {
	d, err := iofs.New(MigrationFiles, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}
	return d, nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	sourceDriver, err := Source()
	if err != nil {
		return nil, err
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// RunMigrations brings db up to the latest embedded schema version.
// With autoMigrate false it only logs where the schema stands.
func RunMigrations(db *sql.DB, autoMigrate bool) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}
	return migrateUp(m, autoMigrate)
}

func migrateUp(m *migrate.Migrate, autoMigrate bool) error {
	from, err := currentVersion(m)
	if err != nil {
		return err
	}

	if !autoMigrate {
		slog.Info("Schema migration skipped by config", "schema_version", from)
		return nil
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("Schema already at latest version", "schema_version", from)
		return nil
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	to, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version after migrating: %w", err)
	}
	slog.Info("Schema migrated", "from_version", from, "to_version", to)
	return nil
}

// currentVersion returns the applied schema version, 0 for an empty
// database. A dirty version left by a crashed run is cleared so the next
// Up retries it; each migration file is written to be re-runnable.
func currentVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if !dirty {
		return version, nil
	}

	slog.Warn("Previous schema migration did not finish, retrying it", "schema_version", version)
	retry, err := previousVersion(version)
	if err != nil {
		return 0, err
	}
	if err := m.Force(retry); err != nil {
		return 0, fmt.Errorf("failed to reset dirty schema version %d: %w", version, err)
	}
	if retry < 0 {
		return 0, nil
	}
	return uint(retry), nil
}

// previousVersion returns the migration before version, or -1 when
// version is the first one.
func previousVersion(version uint) (int, error) {
	src, err := Source()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	prev, err := src.Prev(version)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return -1, nil
	case err != nil:
		return 0, fmt.Errorf("failed to find migration before version %d: %w", version, err)
	}
	return int(prev), nil
}

// Rollback reverts every applied migration. Used by integration tests to
// start from an empty schema.
func Rollback(db *sql.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}
