package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/soundctl/mak/internal/models"
)

var _ list.Item = trackItem{}

// trackItem wraps [models.Track] to implement [list.Item].
type trackItem struct {
	track models.Track
}

func (i trackItem) FilterValue() string { return i.track.Title + " " + i.track.Name() }

func (i trackItem) Title() string {
	if i.track.Title == "" {
		return i.track.Name()
	}
	return i.track.Title
}

func (i trackItem) Description() string {
	desc := i.track.Artist
	if desc == "" {
		desc = "Unknown artist"
	}
	if i.track.Album != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.Album)
	}
	desc = fmt.Sprintf("%s • %s", desc, i.track.Encoding)
	if !i.track.HasArtwork {
		desc = fmt.Sprintf("%s • no art", desc)
	}
	return desc
}
