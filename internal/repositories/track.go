package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
)

const trackColumns = `id, sequence, path, mtime, size, format, encoding, title, artist, album,
		album_artist, genre, year, track_number, track_total, disc_number, disc_total,
		has_artwork, created_at, updated_at, deleted_at`

// TrackRepository implements models.Repository[*models.CachedTrack] for the scan cache.
//
// Rows are keyed by path with soft delete support; (mtime, size) freshness
// checks belong to the caller.
type TrackRepository struct {
	db *sql.DB
}

var _ models.Repository[*models.CachedTrack] = (*TrackRepository)(nil)

// NewTrackRepository creates a new TrackRepository with the given database connection
func NewTrackRepository(db *sql.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

// Create inserts a new [models.CachedTrack] into the database with generated ID and sequence
func (r *TrackRepository) Create(cached *models.CachedTrack) error {
	sequence, err := NextSequence(r.db, "tracks")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	cached.SetID(id)
	cached.SetSequence(sequence)

	if err := cached.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	track := cached.Track()
	query := `
		INSERT INTO tracks (` + trackColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		cached.Path(),
		cached.Mtime(),
		cached.Size(),
		track.Format,
		track.Encoding,
		track.Title,
		track.Artist,
		track.Album,
		track.AlbumArtist,
		track.Genre,
		track.Year,
		track.TrackNumber,
		track.TrackTotal,
		track.DiscNumber,
		track.DiscTotal,
		track.HasArtwork,
		cached.CreatedAt(),
		cached.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert track: %w", err)
	}

	return nil
}

// Get retrieves a cached track by ID, excluding soft-deleted rows
func (r *TrackRepository) Get(id string) (*models.CachedTrack, error) {
	query := `
		SELECT ` + trackColumns + `
		FROM tracks
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByPath retrieves a cached track by absolute file path
func (r *TrackRepository) GetByPath(path string) (*models.CachedTrack, error) {
	query := `
		SELECT ` + trackColumns + `
		FROM tracks
		WHERE path = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, path))
}

// Update modifies an existing cached track in the database
func (r *TrackRepository) Update(cached *models.CachedTrack) error {
	if err := cached.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	cached.SetUpdatedAt(now)

	track := cached.Track()
	query := `
		UPDATE tracks
		SET mtime = ?, size = ?, format = ?, encoding = ?, title = ?, artist = ?, album = ?,
			album_artist = ?, genre = ?, year = ?, track_number = ?, track_total = ?,
			disc_number = ?, disc_total = ?, has_artwork = ?, updated_at = ?
		WHERE path = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		cached.Mtime(),
		cached.Size(),
		track.Format,
		track.Encoding,
		track.Title,
		track.Artist,
		track.Album,
		track.AlbumArtist,
		track.Genre,
		track.Year,
		track.TrackNumber,
		track.TrackTotal,
		track.DiscNumber,
		track.DiscTotal,
		track.HasArtwork,
		now,
		cached.Path(),
	)
	if err != nil {
		return fmt.Errorf("failed to update track: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, cached.Path())
	}

	return nil
}

// Delete soft deletes a cached track by ID
func (r *TrackRepository) Delete(id string) error {
	query := `UPDATE tracks SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, id)
	}

	return nil
}

// List retrieves cached tracks matching the given criteria (format, artist, album).
func (r *TrackRepository) List(criteria map[string]any) ([]*models.CachedTrack, error) {
	query := `
		SELECT ` + trackColumns + `
		FROM tracks
		WHERE deleted_at IS NULL
	`
	args := []any{}

	for _, col := range []string{"format", "artist", "album"} {
		if v, ok := criteria[col]; ok {
			query += fmt.Sprintf(" AND %s = ?", col)
			args = append(args, v)
		}
	}
	query += " ORDER BY sequence"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	defer rows.Close()

	var tracks []*models.CachedTrack
	for rows.Next() {
		cached, err := r.scanRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, cached)
	}

	return tracks, rows.Err()
}

// Count returns the number of live cache rows.
func (r *TrackRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM tracks WHERE deleted_at IS NULL").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count tracks: %w", err)
	}
	return n, nil
}

// Clear hard deletes every cache row and resets the sequence counter.
func (r *TrackRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM tracks"); err != nil {
		return fmt.Errorf("failed to clear tracks: %w", err)
	}
	if _, err := r.db.Exec("UPDATE tracks_sequence SET value = 0 WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to reset sequence: %w", err)
	}
	return nil
}

func (r *TrackRepository) scanOne(row *sql.Row) (*models.CachedTrack, error) {
	cached, err := r.scanRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w", shared.ErrTrackNotFound)
	}
	return cached, err
}

func (r *TrackRepository) scanRow(scan func(...any) error) (*models.CachedTrack, error) {
	var (
		id, path, format, encoding                  string
		title, artist, album, albumArtist, genre    sql.NullString
		sequence, year, trackNum, trackTot, discNum int
		discTot                                     int
		mtime, size                                 int64
		hasArtwork                                  bool
		createdAt, updatedAt                        time.Time
		deletedAt                                   sql.NullTime
	)

	err := scan(&id, &sequence, &path, &mtime, &size, &format, &encoding,
		&title, &artist, &album, &albumArtist, &genre, &year,
		&trackNum, &trackTot, &discNum, &discTot, &hasArtwork,
		&createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}

	track := models.Track{
		Path:        path,
		Format:      format,
		Encoding:    encoding,
		Title:       title.String,
		Artist:      artist.String,
		Album:       album.String,
		AlbumArtist: albumArtist.String,
		Genre:       genre.String,
		Year:        year,
		TrackNumber: trackNum,
		TrackTotal:  trackTot,
		DiscNumber:  discNum,
		DiscTotal:   discTot,
		Size:        size,
		HasArtwork:  hasArtwork,
	}

	var deleted *time.Time
	if deletedAt.Valid {
		deleted = &deletedAt.Time
	}

	return models.RestoreCachedTrack(id, sequence, track, mtime, createdAt, updatedAt, deleted), nil
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}
