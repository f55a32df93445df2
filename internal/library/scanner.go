package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
	"github.com/soundctl/mak/internal/tags"
)

// TrackCacher lets the scanner reuse previously parsed tags for unchanged
// files. Implementations live in the repositories package; a nil cacher
// disables caching.
type TrackCacher interface {
	Lookup(path string, mtime, size int64) (*models.Track, bool)
	Store(track models.Track, mtime int64) error
}

// Scanner reads directories into Album values.
type Scanner struct {
	reader tags.Reader
	cache  TrackCacher
	exts   map[string]bool
}

// NewScanner creates a Scanner with the given tag reader. cache may be nil.
func NewScanner(reader tags.Reader, cache TrackCacher) *Scanner {
	if reader == nil {
		reader = tags.FileReader{}
	}
	return &Scanner{reader: reader, cache: cache}
}

// SetExtensions limits the scan to the given file extensions, as configured
// under [library] extensions. Unknown formats stay excluded; an empty list
// restores the full supported set.
func (s *Scanner) SetExtensions(exts []string) {
	if len(exts) == 0 {
		s.exts = nil
		return
	}
	s.exts = make(map[string]bool, len(exts))
	for _, ext := range exts {
		s.exts[strings.ToLower(ext)] = true
	}
}

func (s *Scanner) supported(name string) bool {
	if !tags.Supported(name) {
		return false
	}
	if s.exts == nil {
		return true
	}
	return s.exts[strings.ToLower(filepath.Ext(name))]
}

// Scan reads every supported audio file directly inside dir, sorted by file
// name. Unreadable files become notices on the album. A directory with no
// readable audio files returns [shared.ErrNoAudioFiles].
func (s *Scanner) Scan(dir string) (*models.Album, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	album := &models.Album{Dir: dir}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !s.supported(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		track, err := s.readTrack(path)
		if err != nil {
			album.Notices = append(album.Notices, models.ScanNotice{Path: path, Err: err.Error()})
			continue
		}
		album.Tracks = append(album.Tracks, track)
	}

	if len(album.Tracks) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrNoAudioFiles, dir)
	}
	return album, nil
}

func (s *Scanner) readTrack(path string) (models.Track, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.Track{}, err
	}
	mtime, size := info.ModTime().Unix(), info.Size()

	if s.cache != nil {
		if track, ok := s.cache.Lookup(path, mtime, size); ok {
			return *track, nil
		}
	}

	track, err := s.reader.Read(path)
	if err != nil {
		return models.Track{}, err
	}

	if s.cache != nil {
		// Cache failures degrade to uncached scans, nothing more.
		_ = s.cache.Store(track, mtime)
	}
	return track, nil
}
