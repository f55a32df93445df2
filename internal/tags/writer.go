package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
)

// FileWriter implements Writer, dispatching on the file's container format.
type FileWriter struct{}

var _ Writer = FileWriter{}

// Write applies the edit to the file's tags. Nil edit fields are untouched;
// the audio stream is never modified.
func (FileWriter) Write(path string, edit models.TagEdit) error {
	if edit.IsEmpty() {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return writeID3(path, edit)
	case ".flac":
		return writeFLAC(path, edit)
	case ".m4a", ".mp4":
		return writeMP4(path, edit)
	default:
		return fmt.Errorf("%w: %s", shared.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// SetArtwork embeds img as the file's front cover, replacing any existing
// artwork. mimeType must be image/jpeg or image/png.
func (FileWriter) SetArtwork(path string, img []byte, mimeType string) error {
	if mimeType != "image/jpeg" && mimeType != "image/png" {
		return fmt.Errorf("%w: %s", shared.ErrInvalidImage, mimeType)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return setArtworkID3(path, img, mimeType)
	case ".flac":
		return setArtworkFLAC(path, img, mimeType)
	case ".m4a", ".mp4":
		return setArtworkMP4(path, img)
	default:
		return fmt.Errorf("%w: %s", shared.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// RemoveArtwork strips all embedded artwork from the file.
func (FileWriter) RemoveArtwork(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return removeArtworkID3(path)
	case ".flac":
		return removeArtworkFLAC(path)
	case ".m4a", ".mp4":
		return removeArtworkMP4(path)
	default:
		return fmt.Errorf("%w: %s", shared.ErrUnsupportedFormat, filepath.Ext(path))
	}
}
