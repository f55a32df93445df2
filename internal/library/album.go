package library

import (
	"fmt"
	"sort"

	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
)

// Album wraps a scanned [models.Album] with track lookup by name and an
// ordered export selection. It is not safe for concurrent use; the TUI owns
// one instance on its update loop.
type Album struct {
	data      *models.Album
	tracks    map[string]models.Track
	selection []string
}

// NewAlbum builds the aggregate from a scanned album.
func NewAlbum(data *models.Album) *Album {
	tracks := make(map[string]models.Track, len(data.Tracks))
	for _, t := range data.Tracks {
		tracks[t.Name()] = t
	}
	return &Album{data: data, tracks: tracks}
}

// Data returns the underlying scanned album.
func (a *Album) Data() *models.Album { return a.data }

// Name returns the album's display name.
func (a *Album) Name() string { return a.data.Name() }

// TrackCount returns the number of scanned tracks.
func (a *Album) TrackCount() int { return len(a.tracks) }

// TrackNames returns all track file names in sorted order.
func (a *Album) TrackNames() []string {
	names := make([]string, 0, len(a.tracks))
	for name := range a.tracks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Track returns the track with the given file name.
func (a *Album) Track(name string) (models.Track, error) {
	t, ok := a.tracks[name]
	if !ok {
		return models.Track{}, fmt.Errorf("%w: %s", shared.ErrTrackNotFound, name)
	}
	return t, nil
}

// ReplaceTrack swaps the stored track state after a tag write, keeping the
// aggregate in sync with the file on disk.
func (a *Album) ReplaceTrack(track models.Track) error {
	name := track.Name()
	if _, ok := a.tracks[name]; !ok {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, name)
	}
	a.tracks[name] = track
	for i, t := range a.data.Tracks {
		if t.Name() == name {
			a.data.Tracks[i] = track
			break
		}
	}
	return nil
}

// AddToExport inserts the named track into the export selection and returns
// its resulting position. With no position the track appends; a position is
// clamped to the selection bounds. Re-adding an already selected track moves
// it to the requested position.
func (a *Album) AddToExport(name string, position ...int) (int, error) {
	if _, ok := a.tracks[name]; !ok {
		return 0, fmt.Errorf("%w: %s", shared.ErrTrackNotFound, name)
	}

	// Re-adding moves rather than duplicates.
	for i, sel := range a.selection {
		if sel == name {
			a.selection = append(a.selection[:i], a.selection[i+1:]...)
			break
		}
	}

	pos := len(a.selection)
	if len(position) > 0 {
		pos = position[0]
		if pos < 0 {
			pos = 0
		}
		if pos > len(a.selection) {
			pos = len(a.selection)
		}
	}

	a.selection = append(a.selection, "")
	copy(a.selection[pos+1:], a.selection[pos:])
	a.selection[pos] = name
	return pos, nil
}

// RemoveFromExport drops the named track from the selection, reporting
// whether it was present.
func (a *Album) RemoveFromExport(name string) bool {
	for i, sel := range a.selection {
		if sel == name {
			a.selection = append(a.selection[:i], a.selection[i+1:]...)
			return true
		}
	}
	return false
}

// ClearExport empties the selection.
func (a *Album) ClearExport() {
	a.selection = nil
}

// SelectAllForExport replaces the selection with every track in name order.
func (a *Album) SelectAllForExport() {
	a.selection = a.TrackNames()
}

// ExportSelection returns a copy of the current selection in order.
func (a *Album) ExportSelection() []string {
	out := make([]string, len(a.selection))
	copy(out, a.selection)
	return out
}
