// Package tasks implements long-running operations over a scanned library.
//
// The core abstraction is LibraryEngine, which orchestrates bulk retagging,
// export zips, and audio conversion. Operations emit progress updates via
// channels for non-blocking status reporting to CLI/UI layers.
package tasks
