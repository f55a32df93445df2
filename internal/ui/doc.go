// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for tag editing:
//  1. [TrackListView] : Browse the scanned directory's tracks
//  2. [DetailView] : Inspect a track's full tag state and artwork info
//  3. [EditView] : Edit tag fields in a form
//  4. [ConfirmView] : Confirm the pending write
//  5. [ResultView] : Show the write outcome
//  6. [HealthView] : Album-wide tag health report
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. File
// I/O runs inside tea.Cmd closures; track state is mutated only on the update
// loop, and per-file errors surface as notices without ending the session.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
