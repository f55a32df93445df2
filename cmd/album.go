package main

import (
	"context"
	"fmt"

	"github.com/soundctl/mak/internal/formatter"
	"github.com/soundctl/mak/internal/library"
	"github.com/soundctl/mak/internal/shared"
	"github.com/soundctl/mak/internal/tasks"
	"github.com/urfave/cli/v3"
)

// AlbumHealth reports tag health across an album directory.
func (r *Runner) AlbumHealth(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.StringArg("dir")
	if dir == "" {
		return fmt.Errorf("%w: dir", shared.ErrMissingArgument)
	}

	album, err := r.loadAlbum(dir)
	if err != nil {
		return err
	}

	health := library.AlbumHealth(album)

	if cmd.Bool("json") {
		return r.writeJSON(health, true)
	}

	r.writePlain("Album: %s\n", album.Name())
	r.writePlain("Overall: %s\n\n", health.Overall)

	for _, field := range []string{"album", "album_artist", "genre"} {
		c := health.Consistency[field]
		switch {
		case c.Consistent && !c.NearMiss:
			r.writePlain("%-14s consistent\n", field)
		case c.NearMiss:
			r.writePlain("%-14s near miss %v\n", field, c.Values)
		default:
			r.writePlain("%-14s inconsistent %v\n", field, c.Values)
		}
	}

	r.writePlain("\n%s\n", formatter.RenderHealthTable(health, album.TrackNames()))
	return nil
}

// AlbumExport zips selected tracks from an album directory.
func (r *Runner) AlbumExport(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.StringArg("dir")
	if dir == "" {
		return fmt.Errorf("%w: dir", shared.ErrMissingArgument)
	}

	album, err := r.loadAlbum(dir)
	if err != nil {
		return err
	}

	if cmd.Bool("all") {
		album.SelectAllForExport()
	} else {
		for _, name := range cmd.StringSlice("track") {
			if _, err := album.AddToExport(name); err != nil {
				return fmt.Errorf("failed to select track: %w", err)
			}
		}
	}

	path, err := r.engine.ExportZip(ctx, nil, album, cmd.String("output"), r.config.Export.OutputDir)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.logger.Infof("exported %d track(s) to %s", len(album.ExportSelection()), path)
	r.writePlainln("✓ Archive written: %s (%d tracks)", path, len(album.ExportSelection()))
	return nil
}

// AlbumRetag applies one edit across every track in a directory.
func (r *Runner) AlbumRetag(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.StringArg("dir")
	if dir == "" {
		return fmt.Errorf("%w: dir", shared.ErrMissingArgument)
	}

	edit := editFromFlags(cmd)
	if edit.IsEmpty() {
		return fmt.Errorf("%w: no tag flags provided", shared.ErrInvalidInput)
	}

	album, err := r.loadAlbum(dir)
	if err != nil {
		return err
	}

	opts := tasks.BulkRetagOpts{NumWorkers: int(cmd.Int("workers"))}
	result, err := r.engine.BulkRetag(ctx, nil, album, edit, opts)
	if err != nil {
		return fmt.Errorf("bulk retag failed: %w", err)
	}

	r.writePlainln("✓ Retagged %d/%d track(s)", result.SuccessCount, result.TotalFiles)
	for _, res := range result.Results {
		if !res.Success {
			r.writePlain("  ✗ %s: %v\n", res.Path, res.Error)
		}
	}
	return nil
}

func (r *Runner) loadAlbum(dir string) (*library.Album, error) {
	data, err := r.scanner().Scan(dir)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	for _, notice := range data.Notices {
		r.logger.Warnf("skipped %s: %s", notice.Path, notice.Err)
	}
	return library.NewAlbum(data), nil
}
