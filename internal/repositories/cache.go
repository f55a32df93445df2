package repositories

import (
	"fmt"

	"github.com/soundctl/mak/internal/models"
)

// CacheAdapter implements library.TrackCacher using TrackRepository.
//
// Lookup only returns rows whose (mtime, size) still match the file on disk,
// so edits through any tool invalidate the cache naturally. Store refreshes
// the existing row when the path is already cached.
type CacheAdapter struct {
	repo *TrackRepository
}

// NewCacheAdapter creates a new CacheAdapter with the given repository
func NewCacheAdapter(repo *TrackRepository) *CacheAdapter {
	return &CacheAdapter{repo: repo}
}

// Lookup returns the cached track for path when the row is still fresh.
func (a *CacheAdapter) Lookup(path string, mtime, size int64) (*models.Track, bool) {
	cached, err := a.repo.GetByPath(path)
	if err != nil || cached == nil {
		return nil, false
	}
	if !cached.Fresh(mtime, size) {
		return nil, false
	}
	track := cached.Track()
	return &track, true
}

// Store caches a freshly parsed track, updating the row if the path exists.
func (a *CacheAdapter) Store(track models.Track, mtime int64) error {
	cached := models.NewCachedTrack(track, mtime)

	if existing, err := a.repo.GetByPath(track.Path); err == nil && existing != nil {
		existing.SetTrack(track, mtime)
		if err := a.repo.Update(existing); err != nil {
			return fmt.Errorf("failed to refresh cached track: %w", err)
		}
		return nil
	}

	if err := a.repo.Create(cached); err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("failed to cache track: %w", err)
	}

	return nil
}
