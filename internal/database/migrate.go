package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// migrationFS embeds the SQL migration files applied at startup.
//
//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies all pending schema migrations against the given DSN.
// Already being at the latest version is not an error.  The DSN is the same
// one used by Open, prefixed with the mysql:// scheme golang-migrate expects.
func Migrate(dsn string) error {
	if dsn == "" {
		return errors.New("database DSN is empty")
	}
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "mysql://"+dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
