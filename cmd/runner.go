package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/soundctl/mak/internal/library"
	"github.com/soundctl/mak/internal/repositories"
	"github.com/soundctl/mak/internal/shared"
	"github.com/soundctl/mak/internal/tags"
	"github.com/soundctl/mak/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	reader tags.Reader
	writer tags.Writer
	logger *log.Logger
	output io.Writer
	engine *tasks.LibraryEngine
	db     *sql.DB
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Reader tags.Reader
	Writer tags.Writer
	Logger *log.Logger
	Output io.Writer
	DB     *sql.DB
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Reader == nil {
		opts.Reader = tags.FileReader{}
	}
	if opts.Writer == nil {
		opts.Writer = tags.FileWriter{}
	}

	return &Runner{
		config: opts.Config,
		reader: opts.Reader,
		writer: opts.Writer,
		logger: opts.Logger,
		output: opts.Output,
		engine: tasks.NewLibraryEngine(opts.Reader, opts.Writer),
		db:     opts.DB,
	}
}

// SetLogger swaps the runner's logger, used when the TUI redirects logs to a file.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		libraryCommand, trackCommand, albumCommand, setupCommand, cacheCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// scanner builds a Scanner wired to the scan cache when a database is open.
func (r *Runner) scanner() *library.Scanner {
	var cache library.TrackCacher
	if r.db != nil {
		cache = repositories.NewCacheAdapter(repositories.NewTrackRepository(r.db))
	}
	s := library.NewScanner(r.reader, cache)
	s.SetExtensions(r.config.Library.Extensions)
	return s
}

// uncachedScanner builds a Scanner that always parses tags from disk.
func (r *Runner) uncachedScanner() *library.Scanner {
	s := library.NewScanner(r.reader, nil)
	s.SetExtensions(r.config.Library.Extensions)
	return s
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
