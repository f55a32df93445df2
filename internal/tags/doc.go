// Package tags reads and writes embedded audio metadata.
//
// Reading is format-agnostic via dhowden/tag. Writing dispatches on the
// container: id3v2 frames for mp3, vorbis comment and picture blocks for
// flac, and ilst atoms for m4a/mp4. The package never touches the audio
// stream itself; all mutation goes through the format libraries' save paths.
package tags
