// Package repositories provides the persistence layer for the scan cache.
//
// TrackRepository implements models.Repository[*models.CachedTrack] over
// SQLite, handling CRUD, soft deletes, and sequence generation. CacheAdapter
// bridges the repository to the scanner's TrackCacher interface so rescans
// of unchanged files skip tag parsing.
package repositories
