package library

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
	th "github.com/soundctl/mak/internal/testing"
)

// zipAlbum writes real files under a temp dir and builds an Album over them.
func zipAlbum(t *testing.T, names ...string) *Album {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "Song X")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("failed to create album dir: %v", err)
	}

	data := &models.Album{Dir: dir}
	for _, name := range names {
		path := th.WriteDummyFile(t, dir, name)
		data.Tracks = append(data.Tracks, models.Track{Path: path, Format: "mp3"})
	}
	return NewAlbum(data)
}

func zipEntryNames(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open zip: %v", err)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

func TestCreateExportZip(t *testing.T) {
	t.Run("SelectionOrder", func(t *testing.T) {
		album := zipAlbum(t, "01.mp3", "02.mp3", "03.mp3")

		album.AddToExport("03.mp3")
		album.AddToExport("01.mp3")

		outPath := filepath.Join(t.TempDir(), "out.zip")
		got, err := CreateExportZip(album, outPath, "")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if got != outPath {
			t.Errorf("expected returned path %s, got %s", outPath, got)
		}

		names := zipEntryNames(t, got)
		if len(names) != 2 || names[0] != "03.mp3" || names[1] != "01.mp3" {
			t.Errorf("unexpected entries %v", names)
		}
	})

	t.Run("EntriesAreBaseNames", func(t *testing.T) {
		album := zipAlbum(t, "01.mp3")
		album.SelectAllForExport()

		got, err := CreateExportZip(album, filepath.Join(t.TempDir(), "out.zip"), "")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}

		for _, name := range zipEntryNames(t, got) {
			if filepath.Dir(name) != "." {
				t.Errorf("entry %s should carry no directory", name)
			}
		}
	})

	t.Run("EntryContent", func(t *testing.T) {
		album := zipAlbum(t, "01.mp3")
		album.SelectAllForExport()

		got, err := CreateExportZip(album, filepath.Join(t.TempDir(), "out.zip"), "")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}

		r, err := zip.OpenReader(got)
		if err != nil {
			t.Fatalf("failed to open zip: %v", err)
		}
		defer r.Close()

		f, err := r.File[0].Open()
		if err != nil {
			t.Fatalf("failed to open entry: %v", err)
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("failed to read entry: %v", err)
		}
		if string(content) != "dummy content" {
			t.Errorf("unexpected entry content %q", content)
		}
	})

	t.Run("DefaultName", func(t *testing.T) {
		album := zipAlbum(t, "01.mp3")
		album.SelectAllForExport()

		got, err := CreateExportZip(album, "", "")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}

		if filepath.Base(got) != "Song X.zip" {
			t.Errorf("expected default name Song X.zip, got %s", filepath.Base(got))
		}
		if filepath.Dir(got) != filepath.Dir(album.Data().Dir) {
			t.Errorf("default zip should sit beside the album dir, got %s", got)
		}
		th.AssertFileExists(t, got)
	})

	t.Run("ParentDirOverride", func(t *testing.T) {
		album := zipAlbum(t, "01.mp3")
		album.SelectAllForExport()

		parent := t.TempDir()
		got, err := CreateExportZip(album, "", parent)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if filepath.Dir(got) != parent {
			t.Errorf("expected zip under %s, got %s", parent, got)
		}
	})

	t.Run("EmptySelection", func(t *testing.T) {
		album := zipAlbum(t, "01.mp3")

		_, err := CreateExportZip(album, "", "")
		if !errors.Is(err, shared.ErrEmptySelection) {
			t.Errorf("expected ErrEmptySelection, got %v", err)
		}
	})
}
