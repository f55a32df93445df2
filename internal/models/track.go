package models

import (
	"path/filepath"
	"strings"
)

// Track represents the tag state of a single audio file on disk.
type Track struct {
	Path        string       `json:"path"`
	Format      string       `json:"format"`   // container: mp3, m4a, flac
	Encoding    string       `json:"encoding"` // codec: mp3, aac, alac, flac
	Title       string       `json:"title"`
	Artist      string       `json:"artist"`
	Album       string       `json:"album"`
	AlbumArtist string       `json:"album_artist,omitempty"`
	Genre       string       `json:"genre,omitempty"`
	Year        int          `json:"year,omitempty"`
	TrackNumber int          `json:"track_number,omitempty"`
	TrackTotal  int          `json:"track_total,omitempty"`
	DiscNumber  int          `json:"disc_number,omitempty"`
	DiscTotal   int          `json:"disc_total,omitempty"`
	Size        int64        `json:"size"`
	HasArtwork  bool         `json:"has_artwork"`
	Artwork     *ArtworkInfo `json:"artwork,omitempty"`
}

// Name returns the track's file base name, the identity used by album
// aggregates and export selections.
func (t Track) Name() string {
	return filepath.Base(t.Path)
}

// ArtworkInfo describes embedded artwork without carrying the image bytes.
type ArtworkInfo struct {
	MIMEType    string `json:"mime_type"`
	Size        int    `json:"size"`
	Type        string `json:"type,omitempty"` // picture type, e.g. "Front cover" (mp3/flac)
	Description string `json:"description,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// TagEdit is a patch applied to a track's tags. Nil fields are left untouched.
type TagEdit struct {
	Title       *string
	Artist      *string
	Album       *string
	AlbumArtist *string
	Genre       *string
	Year        *int
	TrackNumber *int
	TrackTotal  *int
	DiscNumber  *int
	DiscTotal   *int
}

// IsEmpty reports whether the edit contains no changes.
func (e TagEdit) IsEmpty() bool {
	return e.Title == nil && e.Artist == nil && e.Album == nil &&
		e.AlbumArtist == nil && e.Genre == nil && e.Year == nil &&
		e.TrackNumber == nil && e.TrackTotal == nil &&
		e.DiscNumber == nil && e.DiscTotal == nil
}

// Apply returns a copy of the track with the edit applied, mirroring what a
// write followed by a re-read should produce.
func (e TagEdit) Apply(t Track) Track {
	if e.Title != nil {
		t.Title = *e.Title
	}
	if e.Artist != nil {
		t.Artist = *e.Artist
	}
	if e.Album != nil {
		t.Album = *e.Album
	}
	if e.AlbumArtist != nil {
		t.AlbumArtist = *e.AlbumArtist
	}
	if e.Genre != nil {
		t.Genre = *e.Genre
	}
	if e.Year != nil {
		t.Year = *e.Year
	}
	if e.TrackNumber != nil {
		t.TrackNumber = *e.TrackNumber
	}
	if e.TrackTotal != nil {
		t.TrackTotal = *e.TrackTotal
	}
	if e.DiscNumber != nil {
		t.DiscNumber = *e.DiscNumber
	}
	if e.DiscTotal != nil {
		t.DiscTotal = *e.DiscTotal
	}
	return t
}

// HealthStatus grades a track or album: green is clean, amber has cosmetic
// gaps, red is missing identity fields.
type HealthStatus string

const (
	HealthGreen HealthStatus = "green"
	HealthAmber HealthStatus = "amber"
	HealthRed   HealthStatus = "red"
)

// worse reports whether a outranks b in severity.
func (a HealthStatus) worse(b HealthStatus) bool {
	rank := map[HealthStatus]int{HealthGreen: 0, HealthAmber: 1, HealthRed: 2}
	return rank[a] > rank[b]
}

// Worst returns the more severe of the two statuses.
func (a HealthStatus) Worst(b HealthStatus) HealthStatus {
	if a.worse(b) {
		return a
	}
	return b
}

// TrackHealth describes tag completeness for a single track.
type TrackHealth struct {
	Status HealthStatus `json:"status"`
	Issues []string     `json:"issues"`
}

// FieldConsistency reports whether a tag field agrees across an album's tracks.
type FieldConsistency struct {
	Consistent bool     `json:"consistent"`
	Values     []string `json:"values,omitempty"` // distinct values seen when inconsistent
	NearMiss   bool     `json:"near_miss,omitempty"`
}

// AlbumHealth aggregates per-track health with album-wide consistency checks.
type AlbumHealth struct {
	Overall     HealthStatus                `json:"overall"`
	Consistency map[string]FieldConsistency `json:"consistency"`
	Tracks      map[string]TrackHealth      `json:"tracks"`
}

// ScanNotice records a per-file failure during a directory scan. Notices are
// informational; a scan only fails when no file in the directory is readable.
type ScanNotice struct {
	Path string `json:"path"`
	Err  string `json:"error"`
}

// Album is an ordered collection of tracks scanned from one directory.
type Album struct {
	Dir     string       `json:"dir"`
	Tracks  []Track      `json:"tracks"`
	Notices []ScanNotice `json:"notices,omitempty"`
}

// Name returns the album's display name, the base name of its directory.
func (a Album) Name() string {
	return filepath.Base(strings.TrimRight(a.Dir, string(filepath.Separator)))
}
