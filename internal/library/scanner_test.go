package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
	th "github.com/soundctl/mak/internal/testing"
)

// memCache is an in-memory TrackCacher recording lookups and stores.
type memCache struct {
	tracks  map[string]models.Track
	mtimes  map[string]int64
	lookups int
	hits    int
	stores  int
}

func newMemCache() *memCache {
	return &memCache{tracks: map[string]models.Track{}, mtimes: map[string]int64{}}
}

func (c *memCache) Lookup(path string, mtime, size int64) (*models.Track, bool) {
	c.lookups++
	track, ok := c.tracks[path]
	if !ok || c.mtimes[path] != mtime || track.Size != size {
		return nil, false
	}
	c.hits++
	return &track, true
}

func (c *memCache) Store(track models.Track, mtime int64) error {
	c.stores++
	c.tracks[track.Path] = track
	c.mtimes[track.Path] = mtime
	return nil
}

func TestScan(t *testing.T) {
	t.Run("SortedSupportedFiles", func(t *testing.T) {
		dir := t.TempDir()
		reader := &th.MockReader{Tracks: map[string]models.Track{}}

		for _, name := range []string{"02.mp3", "01.flac", "03.m4a", "notes.txt", "cover.jpg"} {
			path := th.WriteDummyFile(t, dir, name)
			reader.Tracks[path] = models.Track{Path: path, Format: "mp3", Title: name}
		}

		album, err := NewScanner(reader, nil).Scan(dir)
		if err != nil {
			t.Fatalf("scan failed: %v", err)
		}

		want := []string{"01.flac", "02.mp3", "03.m4a"}
		if len(album.Tracks) != len(want) {
			t.Fatalf("expected %d tracks, got %d", len(want), len(album.Tracks))
		}
		for i, name := range want {
			if album.Tracks[i].Name() != name {
				t.Errorf("expected %s at %d, got %s", name, i, album.Tracks[i].Name())
			}
		}
	})

	t.Run("UnreadableFileBecomesNotice", func(t *testing.T) {
		dir := t.TempDir()
		reader := &th.MockReader{Tracks: map[string]models.Track{}}

		good := th.WriteDummyFile(t, dir, "01.mp3")
		reader.Tracks[good] = models.Track{Path: good, Format: "mp3"}
		th.WriteDummyFile(t, dir, "02.mp3") // not in the reader's map

		album, err := NewScanner(reader, nil).Scan(dir)
		if err != nil {
			t.Fatalf("scan failed: %v", err)
		}

		if len(album.Tracks) != 1 {
			t.Errorf("expected 1 track, got %d", len(album.Tracks))
		}
		if len(album.Notices) != 1 {
			t.Fatalf("expected 1 notice, got %d", len(album.Notices))
		}
		if album.Notices[0].Path != filepath.Join(dir, "02.mp3") {
			t.Errorf("unexpected notice path %s", album.Notices[0].Path)
		}
	})

	t.Run("NoAudioFiles", func(t *testing.T) {
		dir := t.TempDir()
		th.WriteDummyFile(t, dir, "notes.txt")

		reader := &th.MockReader{Tracks: map[string]models.Track{}}
		_, err := NewScanner(reader, nil).Scan(dir)
		if !errors.Is(err, shared.ErrNoAudioFiles) {
			t.Errorf("expected ErrNoAudioFiles, got %v", err)
		}
	})

	t.Run("NothingReadable", func(t *testing.T) {
		dir := t.TempDir()
		th.WriteDummyFile(t, dir, "01.mp3")

		reader := &th.MockReader{Tracks: map[string]models.Track{}}
		_, err := NewScanner(reader, nil).Scan(dir)
		if !errors.Is(err, shared.ErrNoAudioFiles) {
			t.Errorf("expected ErrNoAudioFiles, got %v", err)
		}
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		reader := &th.MockReader{Tracks: map[string]models.Track{}}
		_, err := NewScanner(reader, nil).Scan(filepath.Join(t.TempDir(), "nope"))
		if err == nil {
			t.Error("expected error for missing directory")
		}
	})

	t.Run("SubdirectoriesIgnored", func(t *testing.T) {
		dir := t.TempDir()
		reader := &th.MockReader{Tracks: map[string]models.Track{}}

		path := th.WriteDummyFile(t, dir, "01.mp3")
		reader.Tracks[path] = models.Track{Path: path, Format: "mp3"}

		sub := filepath.Join(dir, "disc2")
		if err := os.Mkdir(sub, 0755); err != nil {
			t.Fatalf("failed to create subdir: %v", err)
		}
		th.WriteDummyFile(t, sub, "99.mp3")

		album, err := NewScanner(reader, nil).Scan(dir)
		if err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if len(album.Tracks) != 1 {
			t.Errorf("expected nested files to be skipped, got %d tracks", len(album.Tracks))
		}
	})

	t.Run("ConfiguredExtensions", func(t *testing.T) {
		dir := t.TempDir()
		reader := &th.MockReader{Tracks: map[string]models.Track{}}

		for _, name := range []string{"01.mp3", "02.flac", "03.m4a"} {
			path := th.WriteDummyFile(t, dir, name)
			reader.Tracks[path] = models.Track{Path: path, Format: "mp3", Title: name}
		}

		scanner := NewScanner(reader, nil)
		scanner.SetExtensions([]string{".MP3", ".flac"})

		album, err := scanner.Scan(dir)
		if err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if len(album.Tracks) != 2 {
			t.Fatalf("expected 2 tracks, got %d", len(album.Tracks))
		}
		for i, name := range []string{"01.mp3", "02.flac"} {
			if album.Tracks[i].Name() != name {
				t.Errorf("expected %s at %d, got %s", name, i, album.Tracks[i].Name())
			}
		}
	})

	t.Run("ExtensionsNeverAdmitUnsupported", func(t *testing.T) {
		dir := t.TempDir()
		reader := &th.MockReader{Tracks: map[string]models.Track{}}

		path := th.WriteDummyFile(t, dir, "01.mp3")
		reader.Tracks[path] = models.Track{Path: path, Format: "mp3"}
		th.WriteDummyFile(t, dir, "notes.txt")

		scanner := NewScanner(reader, nil)
		scanner.SetExtensions([]string{".mp3", ".txt"})

		album, err := scanner.Scan(dir)
		if err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if len(album.Tracks) != 1 {
			t.Errorf("expected the txt file to stay excluded, got %d tracks", len(album.Tracks))
		}
	})

	t.Run("CacheHitSkipsReader", func(t *testing.T) {
		dir := t.TempDir()
		reader := &th.MockReader{Tracks: map[string]models.Track{}}
		cache := newMemCache()

		path := th.WriteDummyFile(t, dir, "01.mp3")
		reader.Tracks[path] = models.Track{Path: path, Format: "mp3", Title: "fresh read", Size: 13}

		scanner := NewScanner(reader, cache)

		// First scan parses and stores.
		if _, err := scanner.Scan(dir); err != nil {
			t.Fatalf("first scan failed: %v", err)
		}
		if cache.stores != 1 {
			t.Errorf("expected 1 store, got %d", cache.stores)
		}

		// Second scan hits the cache even if the reader changed.
		reader.Tracks[path] = models.Track{Path: path, Format: "mp3", Title: "changed", Size: 13}
		album, err := scanner.Scan(dir)
		if err != nil {
			t.Fatalf("second scan failed: %v", err)
		}
		if cache.hits != 1 {
			t.Errorf("expected 1 cache hit, got %d", cache.hits)
		}
		if album.Tracks[0].Title != "fresh read" {
			t.Errorf("expected cached title, got %s", album.Tracks[0].Title)
		}
	})
}
