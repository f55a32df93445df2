package tags

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
)

// SupportedExtensions lists the file extensions the editor accepts,
// lowercase with leading dot.
var SupportedExtensions = []string{".mp3", ".m4a", ".flac"}

// Supported reports whether the path has a supported audio extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// Reader reads a track's tag state from disk.
type Reader interface {
	Read(path string) (models.Track, error)
}

// Writer applies tag edits and artwork changes to a file on disk.
type Writer interface {
	Write(path string, edit models.TagEdit) error
	SetArtwork(path string, img []byte, mimeType string) error
	RemoveArtwork(path string) error
}

// FileReader implements Reader over local files using dhowden/tag.
type FileReader struct{}

var _ Reader = FileReader{}

// Read parses the file's tags into a [models.Track]. A missing file returns
// the underlying fs error; a file that exists but cannot be parsed returns
// [shared.ErrNotAudioFile].
func (FileReader) Read(path string) (models.Track, error) {
	if !Supported(path) {
		return models.Track{}, fmt.Errorf("%w: %s", shared.ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return models.Track{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return models.Track{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	m, err := tag.ReadFrom(f)
	if err != nil {
		return models.Track{}, fmt.Errorf("%w: %s: %v", shared.ErrNotAudioFile, path, err)
	}

	format, encoding, err := classify(m.FileType())
	if err != nil {
		return models.Track{}, fmt.Errorf("%w: %s", err, path)
	}

	trackNum, trackTotal := m.Track()
	discNum, discTotal := m.Disc()

	t := models.Track{
		Path:        path,
		Format:      format,
		Encoding:    encoding,
		Title:       m.Title(),
		Artist:      m.Artist(),
		Album:       m.Album(),
		AlbumArtist: m.AlbumArtist(),
		Genre:       m.Genre(),
		Year:        m.Year(),
		TrackNumber: trackNum,
		TrackTotal:  trackTotal,
		DiscNumber:  discNum,
		DiscTotal:   discTotal,
		Size:        info.Size(),
	}

	if pic := m.Picture(); pic != nil {
		t.HasArtwork = true
		t.Artwork = artworkInfo(pic)
	}

	return t, nil
}

// classify maps a dhowden file type to (container, codec).
func classify(ft tag.FileType) (string, string, error) {
	switch ft {
	case tag.MP3:
		return "mp3", "mp3", nil
	case tag.FLAC:
		return "flac", "flac", nil
	case tag.ALAC:
		return "m4a", "alac", nil
	case tag.M4A, tag.M4B, tag.M4P:
		return "m4a", "aac", nil
	default:
		return "", "", shared.ErrUnsupportedFormat
	}
}

func artworkInfo(pic *tag.Picture) *models.ArtworkInfo {
	info := &models.ArtworkInfo{
		MIMEType:    pic.MIMEType,
		Size:        len(pic.Data),
		Type:        pic.Type,
		Description: pic.Description,
	}

	// Dimensions are best-effort; not every embedded image decodes.
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(pic.Data)); err == nil {
		info.Width = cfg.Width
		info.Height = cfg.Height
	}

	return info
}
