package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/soundctl/mak/internal/models"
)

// field indices in the edit form, in display order.
const (
	fieldTitle = iota
	fieldArtist
	fieldAlbum
	fieldAlbumArtist
	fieldGenre
	fieldYear
	fieldTrackNumber
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title", "Artist", "Album", "Album artist", "Genre", "Year", "Track #",
}

// editForm holds the text inputs for one track's editable fields and the
// original values used to compute the minimal edit on save.
type editForm struct {
	inputs   [fieldCount]textinput.Model
	original models.Track
	focus    int
}

func newEditForm(track models.Track) editForm {
	f := editForm{original: track}

	values := [fieldCount]string{
		track.Title,
		track.Artist,
		track.Album,
		track.AlbumArtist,
		track.Genre,
		intField(track.Year),
		intField(track.TrackNumber),
	}

	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Width = 40
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}
	f.inputs[f.focus].Focus()

	return f
}

func intField(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// Update routes key events to the focused input and handles focus cycling.
func (f editForm) Update(msg tea.Msg) (editForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % fieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *editForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// Edit builds the minimal TagEdit covering only the fields the user changed.
func (f editForm) Edit() models.TagEdit {
	edit := models.TagEdit{}

	setStr := func(dst **string, value, original string) {
		value = strings.TrimSpace(value)
		if value != original {
			v := value
			*dst = &v
		}
	}
	setInt := func(dst **int, value string, original int) {
		value = strings.TrimSpace(value)
		n, err := strconv.Atoi(value)
		if value == "" {
			n = 0
		} else if err != nil {
			return // non-numeric input is ignored rather than written
		}
		if n != original {
			*dst = &n
		}
	}

	setStr(&edit.Title, f.inputs[fieldTitle].Value(), f.original.Title)
	setStr(&edit.Artist, f.inputs[fieldArtist].Value(), f.original.Artist)
	setStr(&edit.Album, f.inputs[fieldAlbum].Value(), f.original.Album)
	setStr(&edit.AlbumArtist, f.inputs[fieldAlbumArtist].Value(), f.original.AlbumArtist)
	setStr(&edit.Genre, f.inputs[fieldGenre].Value(), f.original.Genre)
	setInt(&edit.Year, f.inputs[fieldYear].Value(), f.original.Year)
	setInt(&edit.TrackNumber, f.inputs[fieldTrackNumber].Value(), f.original.TrackNumber)

	return edit
}

// View renders the form with the focused field highlighted.
func (f editForm) View() string {
	var b strings.Builder
	for i, ti := range f.inputs {
		label := fieldLabels[i]
		if i == f.focus {
			label = styles.ok.Render("> " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(fmt.Sprintf("%s\n  %s\n", label, ti.View()))
	}
	return b.String()
}
