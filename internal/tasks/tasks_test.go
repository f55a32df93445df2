package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soundctl/mak/internal/library"
	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
	th "github.com/soundctl/mak/internal/testing"
)

func retagAlbum(names ...string) *library.Album {
	data := &models.Album{Dir: "/music/Song X"}
	for _, name := range names {
		data.Tracks = append(data.Tracks, models.Track{
			Path:   "/music/Song X/" + name,
			Format: "mp3",
		})
	}
	return library.NewAlbum(data)
}

func strPtr(s string) *string { return &s }

func TestBulkRetag(t *testing.T) {
	t.Run("AllSucceed", func(t *testing.T) {
		writer := th.NewMockWriter()
		engine := NewLibraryEngine(&th.MockReader{}, writer)

		album := retagAlbum("01.mp3", "02.mp3", "03.mp3")
		edit := models.TagEdit{Album: strPtr("Song X")}

		result, err := engine.BulkRetag(context.Background(), nil, album, edit, BulkRetagOpts{})
		if err != nil {
			t.Fatalf("bulk retag failed: %v", err)
		}

		if result.TotalFiles != 3 || result.SuccessCount != 3 || result.FailedCount != 0 {
			t.Errorf("unexpected result %+v", result)
		}
		for _, name := range []string{"01.mp3", "02.mp3", "03.mp3"} {
			if writer.WriteCount("/music/Song X/"+name) != 1 {
				t.Errorf("expected exactly one write for %s", name)
			}
		}
	})

	t.Run("FailuresAreCollected", func(t *testing.T) {
		writer := th.NewMockWriter()
		writer.Err = errors.New("disk full")
		engine := NewLibraryEngine(&th.MockReader{}, writer)

		album := retagAlbum("01.mp3", "02.mp3")
		edit := models.TagEdit{Album: strPtr("Song X")}

		result, err := engine.BulkRetag(context.Background(), nil, album, edit, BulkRetagOpts{})
		if err != nil {
			t.Fatalf("per-file failures should not fail the operation: %v", err)
		}

		if result.SuccessCount != 0 || result.FailedCount != 2 {
			t.Errorf("unexpected result %+v", result)
		}
		for _, res := range result.Results {
			if res.Success || res.Error == nil {
				t.Errorf("expected a recorded failure, got %+v", res)
			}
		}
	})

	t.Run("EmptyEdit", func(t *testing.T) {
		engine := NewLibraryEngine(&th.MockReader{}, th.NewMockWriter())
		album := retagAlbum("01.mp3")

		if _, err := engine.BulkRetag(context.Background(), nil, album, models.TagEdit{}, BulkRetagOpts{}); err == nil {
			t.Error("an empty edit should be rejected")
		}
	})

	t.Run("ProgressUpdates", func(t *testing.T) {
		writer := th.NewMockWriter()
		engine := NewLibraryEngine(&th.MockReader{}, writer)

		album := retagAlbum("01.mp3", "02.mp3")
		edit := models.TagEdit{Album: strPtr("Song X")}

		progress := make(chan ProgressUpdate, 16)
		if _, err := engine.BulkRetag(context.Background(), progress, album, edit, BulkRetagOpts{NumWorkers: 1}); err != nil {
			t.Fatalf("bulk retag failed: %v", err)
		}
		close(progress)

		count := 0
		for update := range progress {
			if update.Phase != WriteTags {
				t.Errorf("expected write_tags phase, got %s", update.Phase)
			}
			count++
		}
		if count != 2 {
			t.Errorf("expected 2 progress updates, got %d", count)
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		engine := NewLibraryEngine(&th.MockReader{}, th.NewMockWriter())
		album := retagAlbum("01.mp3", "02.mp3")
		edit := models.TagEdit{Album: strPtr("Song X")}

		_, err := engine.BulkRetag(ctx, nil, album, edit, BulkRetagOpts{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestExportZipTask(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Song X")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("failed to create album dir: %v", err)
	}

	data := &models.Album{Dir: dir}
	for _, name := range []string{"01.mp3", "02.mp3"} {
		path := th.WriteDummyFile(t, dir, name)
		data.Tracks = append(data.Tracks, models.Track{Path: path, Format: "mp3"})
	}
	album := library.NewAlbum(data)
	album.SelectAllForExport()

	engine := NewLibraryEngine(&th.MockReader{}, th.NewMockWriter())

	progress := make(chan ProgressUpdate, 16)
	outPath := filepath.Join(t.TempDir(), "export.zip")
	got, err := engine.ExportZip(context.Background(), progress, album, outPath, "")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	close(progress)

	if got != outPath {
		t.Errorf("expected path %s, got %s", outPath, got)
	}
	th.AssertFileExists(t, got)

	// One update per entry plus the completion update.
	count := 0
	for update := range progress {
		if update.Phase != ExportZip {
			t.Errorf("expected export_zip phase, got %s", update.Phase)
		}
		count++
	}
	if count != 3 {
		t.Errorf("expected 3 progress updates, got %d", count)
	}
}

func TestExportZipEmptySelection(t *testing.T) {
	album := retagAlbum("01.mp3")
	engine := NewLibraryEngine(&th.MockReader{}, th.NewMockWriter())

	_, err := engine.ExportZip(context.Background(), nil, album, "", "")
	if !errors.Is(err, shared.ErrEmptySelection) {
		t.Errorf("expected ErrEmptySelection, got %v", err)
	}
}

func TestExportZipConfiguredOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Song X")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("failed to create album dir: %v", err)
	}
	path := th.WriteDummyFile(t, dir, "01.mp3")

	album := library.NewAlbum(&models.Album{
		Dir:    dir,
		Tracks: []models.Track{{Path: path, Format: "mp3"}},
	})
	album.SelectAllForExport()

	engine := NewLibraryEngine(&th.MockReader{}, th.NewMockWriter())

	// No explicit output path: the default-named archive lands in the
	// configured output dir rather than beside the album.
	outDir := t.TempDir()
	got, err := engine.ExportZip(context.Background(), nil, album, "", outDir)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	want := filepath.Join(outDir, "Song X.zip")
	if got != want {
		t.Errorf("expected path %s, got %s", want, got)
	}
	th.AssertFileExists(t, got)
}

func TestConvert(t *testing.T) {
	t.Run("UnknownFormat", func(t *testing.T) {
		engine := NewLibraryEngine(&th.MockReader{}, th.NewMockWriter())

		_, err := engine.Convert(context.Background(), nil, "/music/a.mp3", "ogg", "")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("ConvertFormats", func(t *testing.T) {
		formats := ConvertFormats()
		want := map[string]bool{"aac": true, "alac": true, "flac": true, "mp3": true}
		if len(formats) != len(want) {
			t.Fatalf("expected %d formats, got %v", len(want), formats)
		}
		for _, f := range formats {
			if !want[f] {
				t.Errorf("unexpected format %s", f)
			}
		}
	})
}

func TestSameFile(t *testing.T) {
	if !sameFile("/music/a.mp3", "/music/a.mp3") {
		t.Error("identical paths should match")
	}
	if !sameFile("/music/../music/a.mp3", "/music/a.mp3") {
		t.Error("equivalent paths should match")
	}
	if sameFile("/music/a.mp3", "/music/b.mp3") {
		t.Error("different paths should not match")
	}
}

func TestTail(t *testing.T) {
	short := "one line"
	if got := tail(short); got != short {
		t.Errorf("tail(%q) = %q", short, got)
	}

	long := "a\nb\nc\nd\ne"
	got := tail(long)
	if got != "c | d | e" {
		t.Errorf("tail should keep the last three lines, got %q", got)
	}
	if strings.Contains(got, "a") {
		t.Errorf("tail should drop leading lines, got %q", got)
	}
}

func TestPhaseString(t *testing.T) {
	tc := []struct {
		phase Phase
		want  string
	}{
		{ScanLibrary, "scan_library"},
		{WriteTags, "write_tags"},
		{ExportZip, "export_zip"},
		{ConvertAudio, "convert_audio"},
		{Phase(99), ""},
	}

	for _, tt := range tc {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
