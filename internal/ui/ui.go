package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/soundctl/mak/internal/library"
	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
	"github.com/soundctl/mak/internal/tags"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	TrackListView ViewState = iota
	DetailView
	EditView
	ConfirmView
	ResultView
	HealthView
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	scanner *library.Scanner
	reader  tags.Reader
	writer  tags.Writer
	dir     string
	width   int
	height  int

	album     *library.Album
	trackList list.Model
	selected  string // selected track name
	form      editForm
	pending   models.TagEdit
	saved     *models.Track
	health    *models.AlbumHealth
	notice    string
	err       error

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, scanner *library.Scanner, reader tags.Reader, writer tags.Writer, dir string) *Model {
	if reader == nil {
		reader = tags.FileReader{}
	}
	if writer == nil {
		writer = tags.FileWriter{}
	}
	return &Model{
		ctx:     ctx,
		view:    TrackListView,
		scanner: scanner,
		reader:  reader,
		writer:  writer,
		dir:     dir,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

type albumScannedMsg struct {
	album *library.Album
	err   error
}

type trackSavedMsg struct {
	track models.Track
	err   error
}

// Init starts the initial directory scan.
func (m *Model) Init() tea.Cmd {
	return m.scanAlbum()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.trackList.Width() == 0 {
			m.trackList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case TrackListView:
			return m.handleTrackListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case EditView:
			return m.handleEditKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		case HealthView:
			return m.handleHealthKeys(msg)
		}

	case albumScannedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.album = msg.album
		m.health = nil
		m.rebuildTrackList()
		if n := len(msg.album.Data().Notices); n > 0 {
			m.notice = fmt.Sprintf("%d file(s) skipped during scan", n)
		}
		return m, nil

	case trackSavedMsg:
		if msg.err != nil {
			// Per-file failures are a notice, not a session end.
			m.notice = fmt.Sprintf("save failed: %v", msg.err)
			m.saved = nil
			m.view = ResultView
			return m, nil
		}
		m.saved = &msg.track
		m.notice = ""
		if err := m.album.ReplaceTrack(msg.track); err == nil {
			m.rebuildTrackList()
		}
		m.view = ResultView
		return m, nil
	}

	return m.updateActive(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}
	if m.album == nil {
		return fmt.Sprintf("Scanning %s...", m.dir)
	}

	switch m.view {
	case TrackListView:
		return m.renderTrackList()
	case DetailView:
		return m.renderDetail()
	case EditView:
		return m.renderEdit()
	case ConfirmView:
		return m.renderConfirm()
	case ResultView:
		return m.renderResult()
	case HealthView:
		return m.renderHealth()
	default:
		return ""
	}
}

func (m *Model) handleTrackListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.rescan):
		return m, m.scanAlbum()
	case key.Matches(msg, m.keys.health):
		h := library.AlbumHealth(m.album)
		m.health = &h
		m.view = HealthView
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.trackList.SelectedItem().(trackItem); ok {
			m.selected = item.track.Name()
			m.view = DetailView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = TrackListView
		return m, nil
	case key.Matches(msg, m.keys.edit):
		track, err := m.album.Track(m.selected)
		if err != nil {
			m.notice = err.Error()
			m.view = TrackListView
			return m, nil
		}
		m.form = newEditForm(track)
		m.view = EditView
		return m, nil
	}
	return m, nil
}

func (m *Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = DetailView
		return m, nil
	case "enter":
		edit := m.form.Edit()
		if edit.IsEmpty() {
			m.notice = "no changes to save"
			m.view = DetailView
			return m, nil
		}
		m.pending = edit
		m.view = ConfirmView
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.back):
		m.view = EditView
		return m, nil
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.yes):
		return m, m.saveTrack()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.enter):
		m.saved = nil
		m.notice = ""
		m.view = TrackListView
		return m, nil
	}
	return m, nil
}

func (m *Model) handleHealthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = TrackListView
		return m, nil
	}
	return m, nil
}

func (m *Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case TrackListView:
		m.trackList, cmd = m.trackList.Update(msg)
	case EditView:
		m.form, cmd = m.form.Update(msg)
	}
	return m, cmd
}

func (m *Model) rebuildTrackList() {
	data := m.album.Data()
	items := make([]list.Item, len(data.Tracks))
	for i, track := range data.Tracks {
		items[i] = trackItem{track: track}
	}
	m.trackList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.trackList.Title = fmt.Sprintf("%s (%d tracks)", m.album.Name(), len(data.Tracks))
	m.trackList.SetSize(m.width-4, m.height-8)
}

func (m *Model) scanAlbum() tea.Cmd {
	return func() tea.Msg {
		album, err := m.scanner.Scan(m.dir)
		if err != nil {
			return albumScannedMsg{err: err}
		}
		return albumScannedMsg{album: library.NewAlbum(album)}
	}
}

func (m *Model) saveTrack() tea.Cmd {
	name, edit := m.selected, m.pending
	return func() tea.Msg {
		track, err := m.album.Track(name)
		if err != nil {
			return trackSavedMsg{err: err}
		}
		if err := m.writer.Write(track.Path, edit); err != nil {
			return trackSavedMsg{err: err}
		}
		updated, err := m.reader.Read(track.Path)
		if err != nil {
			return trackSavedMsg{err: fmt.Errorf("saved but re-read failed: %w", err)}
		}
		return trackSavedMsg{track: updated}
	}
}

func (m *Model) renderTrackList() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.health, m.keys.rescan, m.keys.quit})
	body := fmt.Sprintf("%s\n\n%s", m.trackList.View(), helpView)
	if m.notice != "" {
		body = fmt.Sprintf("%s\n%s", styles.warn.Render(m.notice), body)
	}
	return body
}

func (m *Model) renderDetail() string {
	track, err := m.album.Track(m.selected)
	if err != nil {
		return styles.err.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(track.Name()) + "\n")

	rows := []struct{ label, value string }{
		{"Title", track.Title},
		{"Artist", track.Artist},
		{"Album", track.Album},
		{"Album artist", track.AlbumArtist},
		{"Genre", track.Genre},
		{"Year", intField(track.Year)},
		{"Track", shared.FormatTrackNumber(track.TrackNumber, track.TrackTotal)},
		{"Disc", shared.FormatTrackNumber(track.DiscNumber, track.DiscTotal)},
		{"Codec", track.Encoding},
		{"Size", shared.FormatSize(track.Size)},
	}
	for _, row := range rows {
		value := row.value
		if value == "" {
			value = styles.help.Render("—")
		}
		b.WriteString(fmt.Sprintf("%-14s %s\n", row.label, value))
	}

	if track.Artwork != nil {
		art := fmt.Sprintf("%s, %s", track.Artwork.MIMEType, shared.FormatSize(int64(track.Artwork.Size)))
		if track.Artwork.Width > 0 {
			art = fmt.Sprintf("%s, %dx%d", art, track.Artwork.Width, track.Artwork.Height)
		}
		b.WriteString(fmt.Sprintf("%-14s %s\n", "Artwork", art))
	} else {
		b.WriteString(fmt.Sprintf("%-14s %s\n", "Artwork", styles.warn.Render("none")))
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.edit, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s", b.String(), helpView)
}

func (m *Model) renderEdit() string {
	title := styles.title.Render(fmt.Sprintf("Editing %s", m.selected))
	saveKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save"))
	helpView := m.help.ShortHelpView([]key.Binding{saveKey, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n%s", title, m.form.View(), helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Write changes to '%s'?", m.selected))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n", title, helpView)
}

func (m *Model) renderResult() string {
	if m.saved == nil {
		body := styles.err.Render(m.notice)
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
		return fmt.Sprintf("%s\n\n%s", body, helpView)
	}

	title := styles.ok.Render("✓ Tags written")
	info := fmt.Sprintf("\n%s\n%s - %s\n", m.saved.Name(), m.saved.Artist, m.saved.Title)
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s%s\n%s", title, info, helpView)
}

func (m *Model) renderHealth() string {
	if m.health == nil {
		return ""
	}

	var b strings.Builder
	overall := statusStyle(string(m.health.Overall)).Render(strings.ToUpper(string(m.health.Overall)))
	b.WriteString(styles.title.Render(fmt.Sprintf("Album health: %s", m.album.Name())) + "\n")
	b.WriteString(fmt.Sprintf("Overall: %s\n\n", overall))

	for _, field := range []string{"album", "album_artist", "genre"} {
		c := m.health.Consistency[field]
		switch {
		case c.Consistent && !c.NearMiss:
			b.WriteString(fmt.Sprintf("%-14s %s\n", field, styles.ok.Render("consistent")))
		case c.NearMiss:
			b.WriteString(fmt.Sprintf("%-14s %s %v\n", field, styles.warn.Render("near miss"), c.Values))
		default:
			b.WriteString(fmt.Sprintf("%-14s %s %v\n", field, styles.err.Render("inconsistent"), c.Values))
		}
	}
	b.WriteString("\n")

	for _, name := range m.albumTrackNames() {
		th := m.health.Tracks[name]
		line := fmt.Sprintf("%s %s", statusStyle(string(th.Status)).Render("●"), name)
		if len(th.Issues) > 0 {
			line += styles.help.Render(" (" + strings.Join(th.Issues, ", ") + ")")
		}
		b.WriteString(line + "\n")
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s", b.String(), helpView)
}

func (m *Model) albumTrackNames() []string {
	return m.album.TrackNames()
}
