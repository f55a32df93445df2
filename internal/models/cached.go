package models

import (
	"fmt"
	"time"
)

// CachedTrack is the persisted scan-cache row for a scanned file. Rows are
// keyed by absolute path and invalidated by (mtime, size) drift.
type CachedTrack struct {
	id        string
	sequence  int
	path      string
	mtime     int64
	size      int64
	track     Track
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

var _ Model = (*CachedTrack)(nil)

// NewCachedTrack builds a cache row from a scanned track and its file mtime
// (unix seconds). The ID is assigned by the repository on create.
func NewCachedTrack(track Track, mtime int64) *CachedTrack {
	now := time.Now()
	return &CachedTrack{
		path:      track.Path,
		mtime:     mtime,
		size:      track.Size,
		track:     track,
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreCachedTrack rebuilds a row scanned from the database.
func RestoreCachedTrack(id string, sequence int, track Track, mtime int64, createdAt, updatedAt time.Time, deletedAt *time.Time) *CachedTrack {
	return &CachedTrack{
		id:        id,
		sequence:  sequence,
		path:      track.Path,
		mtime:     mtime,
		size:      track.Size,
		track:     track,
		createdAt: createdAt,
		updatedAt: updatedAt,
		deletedAt: deletedAt,
	}
}

func (c *CachedTrack) ID() string            { return c.id }
func (c *CachedTrack) Sequence() int         { return c.sequence }
func (c *CachedTrack) Path() string          { return c.path }
func (c *CachedTrack) Mtime() int64          { return c.mtime }
func (c *CachedTrack) Size() int64           { return c.size }
func (c *CachedTrack) Track() Track          { return c.track }
func (c *CachedTrack) CreatedAt() time.Time  { return c.createdAt }
func (c *CachedTrack) UpdatedAt() time.Time  { return c.updatedAt }
func (c *CachedTrack) DeletedAt() *time.Time { return c.deletedAt }

func (c *CachedTrack) SetID(id string)          { c.id = id }
func (c *CachedTrack) SetSequence(n int)        { c.sequence = n }
func (c *CachedTrack) SetUpdatedAt(t time.Time) { c.updatedAt = t }
func (c *CachedTrack) SetTrack(t Track, mtime int64) {
	c.track = t
	c.path = t.Path
	c.mtime = mtime
	c.size = t.Size
}

// Fresh reports whether the cached row still matches the file's current
// mtime and size.
func (c *CachedTrack) Fresh(mtime, size int64) bool {
	return c.mtime == mtime && c.size == size
}

// Validate checks the row's required fields.
func (c *CachedTrack) Validate() error {
	if c.path == "" {
		return fmt.Errorf("cached track requires a path")
	}
	if c.track.Format == "" {
		return fmt.Errorf("cached track requires a format")
	}
	return nil
}
