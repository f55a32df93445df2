package tasks

import (
	"context"
	"fmt"

	"github.com/soundctl/mak/internal/library"
	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/tags"
)

// RetagResult records the outcome of one file in a bulk retag.
type RetagResult struct {
	Path    string // File the edit was applied to
	Success bool
	Error   error
}

// BulkRetagResult contains all data from a bulk retag operation.
type BulkRetagResult struct {
	TotalFiles   int
	SuccessCount int
	FailedCount  int
	Results      []RetagResult
}

// ConvertResult describes a completed audio conversion.
type ConvertResult struct {
	SourcePath string
	OutputPath string
	Format     string       // target container/codec
	Track      models.Track // tags re-read from the converted file
}

// Engine defines library-wide operations emitting progress over channels.
type Engine interface {
	// BulkRetag applies one edit across every track in an album.
	BulkRetag(ctx context.Context, progress chan<- ProgressUpdate, album *library.Album, edit models.TagEdit, opts BulkRetagOpts) (*BulkRetagResult, error)

	// ExportZip writes the album's export selection into a zip archive.
	// parentDir hosts the default-named archive when outPath is empty.
	ExportZip(ctx context.Context, progress chan<- ProgressUpdate, album *library.Album, outPath, parentDir string) (string, error)

	// Convert transcodes a file to a different encoding, preserving tags.
	Convert(ctx context.Context, progress chan<- ProgressUpdate, path, format, outPath string) (*ConvertResult, error)
}

// LibraryEngine implements Engine over a tag reader/writer pair.
type LibraryEngine struct {
	reader tags.Reader
	writer tags.Writer
}

var _ Engine = (*LibraryEngine)(nil)

// NewLibraryEngine creates a LibraryEngine with the provided tag accessors.
// Nil arguments default to the file-backed implementations.
func NewLibraryEngine(reader tags.Reader, writer tags.Writer) *LibraryEngine {
	if reader == nil {
		reader = tags.FileReader{}
	}
	if writer == nil {
		writer = tags.FileWriter{}
	}
	return &LibraryEngine{reader: reader, writer: writer}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *LibraryEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// ExportZip streams the album's export selection into a zip, emitting one
// update per entry.
func (e *LibraryEngine) ExportZip(ctx context.Context, progress chan<- ProgressUpdate, album *library.Album, outPath, parentDir string) (string, error) {
	selection := album.ExportSelection()
	total := len(selection)

	for i, name := range selection {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		e.sendProgress(progress, zipEntryUpdate(i+1, total, name))
	}

	path, err := library.CreateExportZip(album, outPath, parentDir)
	if err != nil {
		return "", fmt.Errorf("failed to create export zip: %w", err)
	}

	e.sendProgress(progress, zipDoneUpdate(total, path))
	return path, nil
}
