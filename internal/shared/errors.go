package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Tag and file errors
	ErrNotAudioFile      = fmt.Errorf("not a valid audio file")
	ErrUnsupportedFormat = fmt.Errorf("unsupported audio format")
	ErrNoArtwork         = fmt.Errorf("no embedded artwork")
	ErrInvalidImage      = fmt.Errorf("invalid image file")
	ErrWriteFailed       = fmt.Errorf("tag write failed")
	ErrConverterNotFound = fmt.Errorf("ffmpeg not found on PATH")
	ErrConversionFailed  = fmt.Errorf("audio conversion failed")

	// Library errors
	ErrNoAudioFiles   = fmt.Errorf("directory contains no audio files")
	ErrTrackNotFound  = fmt.Errorf("track not found")
	ErrEmptySelection = fmt.Errorf("export selection is empty")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
