// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// libraryCommand handles directory scanning and listings
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "Scan and list audio libraries",
		Commands: []*cli.Command{
			{
				Name:  "scan",
				Usage: "Scan a directory for audio files",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "dir",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "table",
						Usage: "Render results as a table",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "no-cache",
						Usage: "Bypass the scan cache",
					},
				},
				Action: r.LibraryScan,
			},
			{
				Name:  "list",
				Usage: "Export an album listing",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "dir",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Listing format: csv, markdown, text",
						Value: "text",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (default: stdout)",
					},
				},
				Action: r.LibraryList,
			},
		},
	}
}

// trackCommand handles single-file tag operations
func trackCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "track",
		Usage: "Read and write a single file's tags",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print a file's tags",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "file",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.TrackShow,
			},
			{
				Name:  "set",
				Usage: "Write tag fields to a file",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "file",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title"},
					&cli.StringFlag{Name: "artist"},
					&cli.StringFlag{Name: "album"},
					&cli.StringFlag{Name: "album-artist"},
					&cli.StringFlag{Name: "genre"},
					&cli.IntFlag{Name: "year", Value: -1},
					&cli.IntFlag{Name: "track", Value: -1, Usage: "Track number"},
					&cli.IntFlag{Name: "track-total", Value: -1},
					&cli.IntFlag{Name: "disc", Value: -1, Usage: "Disc number"},
					&cli.IntFlag{Name: "disc-total", Value: -1},
				},
				Action: r.TrackSet,
			},
			{
				Name:  "art",
				Usage: "Embedded artwork operations",
				Commands: []*cli.Command{
					{
						Name:  "extract",
						Usage: "Write embedded artwork to an image file",
						Arguments: []cli.Argument{
							&cli.StringArg{
								Name: "file",
							},
						},
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "output",
								Aliases: []string{"o"},
								Usage:   "Image output path (default: <stem>_cover.<ext>)",
							},
						},
						Action: r.TrackArtExtract,
					},
					{
						Name:  "set",
						Usage: "Embed an image as front cover",
						Arguments: []cli.Argument{
							&cli.StringArg{
								Name: "file",
							},
							&cli.StringArg{
								Name: "image",
							},
						},
						Action: r.TrackArtSet,
					},
					{
						Name:  "remove",
						Usage: "Strip embedded artwork",
						Arguments: []cli.Argument{
							&cli.StringArg{
								Name: "file",
							},
						},
						Action: r.TrackArtRemove,
					},
				},
			},
			{
				Name:  "convert",
				Usage: "Convert a file to another encoding, preserving tags",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "file",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "format",
						Usage:    "Target format: aac, alac, flac, mp3",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.TrackConvert,
			},
		},
	}
}

// albumCommand handles album-wide operations
func albumCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "album",
		Usage: "Album-wide health and export operations",
		Commands: []*cli.Command{
			{
				Name:  "health",
				Usage: "Report tag health across an album directory",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "dir",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.AlbumHealth,
			},
			{
				Name:  "export",
				Usage: "Zip selected tracks from an album directory",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "dir",
					},
				},
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "track",
						Aliases: []string{"t"},
						Usage:   "Track file name to include (repeatable, ordered)",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Select every track",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Zip output path (default: <AlbumDir>.zip)",
					},
				},
				Action: r.AlbumExport,
			},
			{
				Name:  "retag",
				Usage: "Apply one tag edit across every track in a directory",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "dir",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "album"},
					&cli.StringFlag{Name: "album-artist"},
					&cli.StringFlag{Name: "genre"},
					&cli.IntFlag{Name: "year", Value: -1},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent writers",
						Value: 5,
					},
				},
				Action: r.AlbumRetag,
			},
		},
	}
}

// setupCommand handles setup operations for database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the scan cache database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "config",
				Usage: "Write a starter config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Config file path",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// cacheCommand handles scan cache inspection and maintenance
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and clear the scan cache",
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "Show cache row counts",
				Action: r.CacheStats,
			},
			{
				Name:   "clear",
				Usage:  "Delete every cached row",
				Action: r.CacheClear,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive tag editing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive tag editor",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "dir",
			},
		},
		Action: r.TUI,
	}
}
