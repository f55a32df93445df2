package main

import (
	"context"
	"database/sql"
	"errors"
	"os"

	"github.com/soundctl/mak/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	// The scan cache is optional; commands degrade to uncached scans
	// when the database is absent.
	var db *sql.DB
	if _, err := os.Stat(config.Database.Path); err == nil {
		if opened, err := shared.NewDatabase(config.Database.Path); err == nil {
			shared.ConfigureDatabase(opened, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
			db = opened
			defer opened.Close()
		} else {
			logger.Warnf("scan cache unavailable: %v", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
		DB:     db,
	})

	app := &cli.Command{
		Name:    "mak",
		Usage:   "Terminal audio tag editor for mp3, m4a, and flac",
		Version: "0.3.0",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "dir",
			},
		},
		Commands: runner.register(),
		// Bare `mak [dir]` drops straight into the interactive editor.
		Action: runner.TUI,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
