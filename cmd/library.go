package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/soundctl/mak/internal/formatter"
	"github.com/soundctl/mak/internal/shared"
	"github.com/urfave/cli/v3"
)

// LibraryScan scans a directory and prints the tracks found.
func (r *Runner) LibraryScan(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.StringArg("dir")
	if dir == "" {
		dir = r.config.Library.Root
	}

	scanner := r.scanner()
	if cmd.Bool("no-cache") {
		scanner = r.uncachedScanner()
	}

	r.logger.Infof("scanning %s", dir)

	album, err := scanner.Scan(dir)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	for _, notice := range album.Notices {
		r.logger.Warnf("skipped %s: %s", notice.Path, notice.Err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(album, true)
	}

	if cmd.Bool("table") {
		r.writePlain("%s\n", formatter.RenderTrackTable(album))
		return nil
	}

	for _, track := range album.Tracks {
		r.writePlain("%s - %s (%s)\n", track.Artist, track.Title, track.Name())
	}
	return nil
}

// LibraryList exports an album listing as csv, markdown, or text.
func (r *Runner) LibraryList(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.StringArg("dir")
	if dir == "" {
		return fmt.Errorf("%w: dir", shared.ErrMissingArgument)
	}

	album, err := r.scanner().Scan(dir)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	var data []byte
	switch strings.ToLower(cmd.String("format")) {
	case "csv":
		data, err = formatter.ExportToCSV(album)
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown(album, "")
	case "text", "txt":
		data, err = formatter.ExportToText(album)
	default:
		return fmt.Errorf("%w: format %q", shared.ErrInvalidFlag, cmd.String("format"))
	}
	if err != nil {
		return fmt.Errorf("failed to format listing: %w", err)
	}

	if out := cmd.String("output"); out != "" {
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write listing: %w", err)
		}
		r.writePlainln("✓ Listing written: %s", out)
		return nil
	}

	r.writePlain("%s", data)
	return nil
}
