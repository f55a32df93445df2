package tasks

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/soundctl/mak/internal/shared"
)

// target maps a requested format to an ffmpeg codec and output extension.
type target struct {
	codec string
	ext   string
}

var convertTargets = map[string]target{
	"flac": {codec: "flac", ext: ".flac"},
	"mp3":  {codec: "libmp3lame", ext: ".mp3"},
	"alac": {codec: "alac", ext: ".m4a"},
	"aac":  {codec: "aac", ext: ".m4a"},
}

// ConvertFormats lists the supported conversion targets.
func ConvertFormats() []string {
	return []string{"aac", "alac", "flac", "mp3"}
}

// Convert transcodes path to the requested format via ffmpeg, carrying tags
// across with -map_metadata. The converted file's tags are re-read to verify
// the result. When outPath is empty the output lands next to the source with
// the target extension.
func (e *LibraryEngine) Convert(ctx context.Context, progress chan<- ProgressUpdate, path, format, outPath string) (*ConvertResult, error) {
	tgt, ok := convertTargets[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown target format %q", shared.ErrInvalidArgument, format)
	}

	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrConverterNotFound, err)
	}

	if outPath == "" {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		outPath = filepath.Join(filepath.Dir(path), stem+tgt.ext)
	}
	if sameFile(path, outPath) {
		return nil, fmt.Errorf("%w: output would overwrite source", shared.ErrInvalidArgument)
	}

	e.sendProgress(progress, convertUpdate(1, 2, fmt.Sprintf("Converting %s → %s...", filepath.Base(path), tgt.codec)))

	cmd := exec.CommandContext(ctx, ffmpeg,
		"-y",
		"-i", path,
		"-map_metadata", "0",
		"-c:a", tgt.codec,
		"-vn",
		outPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%w: %v: %s", shared.ErrConversionFailed, err, tail(string(out)))
	}

	e.sendProgress(progress, convertUpdate(2, 2, "Verifying converted tags..."))

	track, err := e.reader.Read(outPath)
	if err != nil {
		return nil, fmt.Errorf("conversion produced unreadable file: %w", err)
	}

	return &ConvertResult{
		SourcePath: path,
		OutputPath: outPath,
		Format:     strings.ToLower(format),
		Track:      track,
	}, nil
}

func sameFile(a, b string) bool {
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	return err1 == nil && err2 == nil && aa == bb
}

// tail returns the last few lines of ffmpeg output for error messages.
func tail(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}
	return strings.Join(lines, " | ")
}
