// package testing contains shared testing utilities
package testing

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/soundctl/mak/internal/models"
)

// MockReader is a test double for tags.Reader backed by a fixed track map
// keyed by path.
type MockReader struct {
	mu     sync.Mutex
	Tracks map[string]models.Track
	Err    error
}

func (m *MockReader) Read(path string) (models.Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.Track{}, m.Err
	}
	track, ok := m.Tracks[path]
	if !ok {
		return models.Track{}, errors.New("no track for " + path)
	}
	return track, nil
}

// MockWriter is a test double for tags.Writer recording every call.
type MockWriter struct {
	mu      sync.Mutex
	Edits   map[string][]models.TagEdit
	Artwork map[string][]byte
	Err     error
}

func NewMockWriter() *MockWriter {
	return &MockWriter{
		Edits:   map[string][]models.TagEdit{},
		Artwork: map[string][]byte{},
	}
}

func (m *MockWriter) Write(path string, edit models.TagEdit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Edits[path] = append(m.Edits[path], edit)
	return nil
}

func (m *MockWriter) SetArtwork(path string, img []byte, mimeType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Artwork[path] = img
	return nil
}

func (m *MockWriter) RemoveArtwork(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.Artwork, path)
	return nil
}

// WriteCount returns how many edits were recorded for path.
func (m *MockWriter) WriteCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Edits[path])
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// SampleTrack builds a fully populated track for tests.
func SampleTrack(path string) models.Track {
	return models.Track{
		Path:        path,
		Format:      "mp3",
		Encoding:    "mp3",
		Title:       "Compute",
		Artist:      "Pat Metheny/Ornette Coleman",
		Album:       "Song X",
		Genre:       "Jazz",
		Year:        1986,
		TrackNumber: 5,
		TrackTotal:  8,
		Size:        4 << 20,
		HasArtwork:  true,
		Artwork:     &models.ArtworkInfo{MIMEType: "image/jpeg", Size: 1024},
	}
}

// WriteDummyFile creates a file with throwaway content under dir.
func WriteDummyFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("dummy content"), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
