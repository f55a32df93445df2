package main

import (
	"context"
	"fmt"

	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
	"github.com/soundctl/mak/internal/tags"
	"github.com/urfave/cli/v3"
)

// TrackShow prints a single file's tag state.
func (r *Runner) TrackShow(ctx context.Context, cmd *cli.Command) error {
	file := cmd.StringArg("file")
	if file == "" {
		return fmt.Errorf("%w: file", shared.ErrMissingArgument)
	}

	track, err := r.reader.Read(file)
	if err != nil {
		return fmt.Errorf("failed to read tags: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(track, true)
	}

	r.writePlain("File:     %s\n", track.Name())
	r.writePlain("Title:    %s\n", track.Title)
	r.writePlain("Artist:   %s\n", track.Artist)
	r.writePlain("Album:    %s\n", track.Album)
	if track.AlbumArtist != "" {
		r.writePlain("Album artist: %s\n", track.AlbumArtist)
	}
	if track.Genre != "" {
		r.writePlain("Genre:    %s\n", track.Genre)
	}
	if track.Year != 0 {
		r.writePlain("Year:     %d\n", track.Year)
	}
	if n := shared.FormatTrackNumber(track.TrackNumber, track.TrackTotal); n != "" {
		r.writePlain("Track:    %s\n", n)
	}
	r.writePlain("Codec:    %s (%s container)\n", track.Encoding, track.Format)
	r.writePlain("Size:     %s\n", shared.FormatSize(track.Size))

	if track.Artwork != nil {
		r.writePlain("Artwork:  %s, %s", track.Artwork.MIMEType, shared.FormatSize(int64(track.Artwork.Size)))
		if track.Artwork.Width > 0 {
			r.writePlain(", %dx%d", track.Artwork.Width, track.Artwork.Height)
		}
		r.writePlain("\n")
	} else {
		r.writePlain("Artwork:  none\n")
	}

	return nil
}

// TrackSet writes the flagged tag fields to a file.
func (r *Runner) TrackSet(ctx context.Context, cmd *cli.Command) error {
	file := cmd.StringArg("file")
	if file == "" {
		return fmt.Errorf("%w: file", shared.ErrMissingArgument)
	}

	edit := editFromFlags(cmd)
	if edit.IsEmpty() {
		return fmt.Errorf("%w: no tag flags provided", shared.ErrInvalidInput)
	}

	if err := r.writer.Write(file, edit); err != nil {
		return fmt.Errorf("failed to write tags: %w", err)
	}

	track, err := r.reader.Read(file)
	if err != nil {
		return fmt.Errorf("tags written but re-read failed: %w", err)
	}

	r.logger.Infof("wrote tags to %s", file)
	r.writePlainln("✓ Tags written: %s - %s", track.Artist, track.Title)
	return nil
}

// editFromFlags builds a TagEdit from track set / album retag style flags.
// Only flags the user passed become part of the edit, so an explicit 0 or ""
// clears a field while absence leaves it alone.
func editFromFlags(cmd *cli.Command) models.TagEdit {
	edit := models.TagEdit{}

	str := func(dst **string, name string) {
		if cmd.IsSet(name) {
			v := cmd.String(name)
			*dst = &v
		}
	}
	num := func(dst **int, name string) {
		if cmd.IsSet(name) {
			v := int(cmd.Int(name))
			*dst = &v
		}
	}

	str(&edit.Title, "title")
	str(&edit.Artist, "artist")
	str(&edit.Album, "album")
	str(&edit.AlbumArtist, "album-artist")
	str(&edit.Genre, "genre")
	num(&edit.Year, "year")
	num(&edit.TrackNumber, "track")
	num(&edit.TrackTotal, "track-total")
	num(&edit.DiscNumber, "disc")
	num(&edit.DiscTotal, "disc-total")

	return edit
}

// TrackArtExtract writes a file's embedded artwork to an image file.
func (r *Runner) TrackArtExtract(ctx context.Context, cmd *cli.Command) error {
	file := cmd.StringArg("file")
	if file == "" {
		return fmt.Errorf("%w: file", shared.ErrMissingArgument)
	}

	path, err := tags.ExtractArtwork(file, cmd.String("output"))
	if err != nil {
		return fmt.Errorf("failed to extract artwork: %w", err)
	}

	r.writePlainln("✓ Artwork written: %s", path)
	return nil
}

// TrackArtSet embeds an image file as the front cover.
func (r *Runner) TrackArtSet(ctx context.Context, cmd *cli.Command) error {
	file := cmd.StringArg("file")
	imagePath := cmd.StringArg("image")
	if file == "" || imagePath == "" {
		return fmt.Errorf("%w: file and image", shared.ErrMissingArgument)
	}

	img, mimeType, err := tags.LoadImage(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	if err := r.writer.SetArtwork(file, img, mimeType); err != nil {
		return fmt.Errorf("failed to embed artwork: %w", err)
	}

	r.logger.Infof("embedded %s into %s", imagePath, file)
	r.writePlainln("✓ Artwork embedded (%s, %s)", mimeType, shared.FormatSize(int64(len(img))))
	return nil
}

// TrackArtRemove strips a file's embedded artwork.
func (r *Runner) TrackArtRemove(ctx context.Context, cmd *cli.Command) error {
	file := cmd.StringArg("file")
	if file == "" {
		return fmt.Errorf("%w: file", shared.ErrMissingArgument)
	}

	if err := r.writer.RemoveArtwork(file); err != nil {
		return fmt.Errorf("failed to remove artwork: %w", err)
	}

	r.writePlainln("✓ Artwork removed")
	return nil
}

// TrackConvert transcodes a file to another encoding, preserving tags.
func (r *Runner) TrackConvert(ctx context.Context, cmd *cli.Command) error {
	file := cmd.StringArg("file")
	if file == "" {
		return fmt.Errorf("%w: file", shared.ErrMissingArgument)
	}

	result, err := r.engine.Convert(ctx, nil, file, cmd.String("format"), cmd.String("output"))
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	r.logger.Infof("converted %s to %s", file, result.OutputPath)
	r.writePlainln("✓ Converted: %s (%s)", result.OutputPath, result.Track.Encoding)
	return nil
}
