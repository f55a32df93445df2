package library

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/soundctl/mak/internal/shared"
)

// CreateExportZip writes the album's export selection into a zip archive
// holding the selected files by base name, in selection order. When outPath
// is empty the archive is named "<AlbumDir>.zip" under parentDir (or the
// album's parent when parentDir is also empty). Returns the archive path.
func CreateExportZip(a *Album, outPath, parentDir string) (string, error) {
	selection := a.ExportSelection()
	if len(selection) == 0 {
		return "", fmt.Errorf("%w: %s", shared.ErrEmptySelection, a.Name())
	}

	if outPath == "" {
		if parentDir == "" {
			parentDir = filepath.Dir(a.Data().Dir)
		}
		outPath = filepath.Join(parentDir, a.Name()+".zip")
	}

	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create zip: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, name := range selection {
		track, err := a.Track(name)
		if err != nil {
			return "", err
		}
		if err := addFileToZip(zw, track.Path, name); err != nil {
			return "", err
		}
	}

	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize zip: %w", err)
	}
	return outPath, nil
}

func addFileToZip(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to add %s to zip: %w", name, err)
	}

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to copy %s into zip: %w", name, err)
	}
	return nil
}
