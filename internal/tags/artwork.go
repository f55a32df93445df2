package tags

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/soundctl/mak/internal/shared"
)

// LoadImage reads an image file and returns its bytes and sniffed MIME type.
// Only jpeg and png are accepted for embedding.
func LoadImage(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", shared.ErrInvalidImage, path, err)
	}

	switch format {
	case "jpeg":
		return data, "image/jpeg", nil
	case "png":
		return data, "image/png", nil
	default:
		return nil, "", fmt.Errorf("%w: unsupported image format %q", shared.ErrInvalidImage, format)
	}
}

// ExtractArtwork writes the file's embedded front cover to destPath. When
// destPath is empty the image lands next to the audio file as
// "<stem>_cover.<ext>", extension taken from the picture's MIME type.
// Returns the path written. No embedded artwork returns [shared.ErrNoArtwork].
func ExtractArtwork(audioPath, destPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", audioPath, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", shared.ErrNotAudioFile, audioPath, err)
	}

	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return "", fmt.Errorf("%w: %s", shared.ErrNoArtwork, audioPath)
	}

	if destPath == "" {
		stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
		destPath = filepath.Join(filepath.Dir(audioPath), stem+"_cover"+extForMIME(pic.MIMEType, pic.Ext))
	}

	if err := os.WriteFile(destPath, pic.Data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artwork: %w", err)
	}
	return destPath, nil
}

func extForMIME(mimeType, fallback string) string {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	}
	if fallback != "" {
		return "." + strings.TrimPrefix(fallback, ".")
	}
	return ".jpg"
}
