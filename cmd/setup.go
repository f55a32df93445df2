package main

import (
	"context"
	"fmt"

	"github.com/soundctl/mak/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase creates the scan cache database and runs all migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	cfg := r.config
	if path := cmd.String("config"); path != "" {
		loaded, err := shared.LoadConfig(path)
		if err == nil {
			cfg = loaded
		} else {
			r.logger.Warnf("config %s not loaded, using defaults: %v", path, err)
		}
	}

	db, err := shared.NewDatabase(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)

	if err := shared.MigrateUp(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	r.logger.Infof("database ready at %s", cfg.Database.Path)
	r.writePlainln("✓ Database initialized: %s", cfg.Database.Path)
	return nil
}

// SetupConfig writes a starter configuration file.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")

	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	r.writePlainln("✓ Config written: %s", path)
	return nil
}
