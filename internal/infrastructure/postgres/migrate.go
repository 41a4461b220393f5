package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/stockflow/stockflow-api/pkg/config"
)

// Migrate applies pending schema migrations from cfg.MigrationsDir.
// A no-change run is not an error.
func Migrate(cfg config.DBConfig) error {
	m, err := migrate.New(cfg.MigrationsDir, cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
