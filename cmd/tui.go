package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/soundctl/mak/internal/shared"
	"github.com/soundctl/mak/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for album tag editing.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.StringArg("dir")
	if dir == "" {
		dir = r.config.Library.Root
	}
	if dir == "" {
		return fmt.Errorf("%w: dir (or set library.root in config.toml)", shared.ErrMissingArgument)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/mak-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.scanner(), r.reader, r.writer, dir)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
