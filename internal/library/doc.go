// Package library builds album views from directories of audio files.
//
// A scan reads one directory (non-recursive), parses each supported file's
// tags, and collects per-file failures as notices rather than aborting. The
// resulting Album aggregate adds tag health grading, an ordered export
// selection, and zip export of the selection.
package library
