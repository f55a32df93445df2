// Package models defines the data model for the tag editor: in-memory track
// and album representations read from audio files, tag edit patches, album
// health reports, and the persisted scan-cache entities.
package models
