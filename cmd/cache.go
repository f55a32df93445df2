package main

import (
	"context"
	"fmt"

	"github.com/soundctl/mak/internal/repositories"
	"github.com/soundctl/mak/internal/shared"
	"github.com/urfave/cli/v3"
)

// CacheStats reports how many tracks the scan cache holds.
func (r *Runner) CacheStats(ctx context.Context, cmd *cli.Command) error {
	if r.db == nil {
		return fmt.Errorf("%w: no database configured, run `mak setup database` first", shared.ErrMissingConfig)
	}

	repo := repositories.NewTrackRepository(r.db)
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count cached tracks: %w", err)
	}

	r.writePlain("Cached tracks: %d\n", count)
	return nil
}

// CacheClear removes every row from the scan cache.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	if r.db == nil {
		return fmt.Errorf("%w: no database configured, run `mak setup database` first", shared.ErrMissingConfig)
	}

	repo := repositories.NewTrackRepository(r.db)
	before, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count cached tracks: %w", err)
	}

	if err := repo.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	r.logger.Infof("cleared %d cached track(s)", before)
	r.writePlainln("✓ Cache cleared (%d rows)", before)
	return nil
}
