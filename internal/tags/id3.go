package tags

import (
	"fmt"
	"strconv"
	"strings"

	id3v2 "github.com/bogem/id3v2/v2"
	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
)

const (
	frameTrackPosition = "Track number/Position in set"
	frameDiscPosition  = "Part of a set"
	frameAlbumArtist   = "Band/Orchestra/Accompaniment"
	frameAttachedPic   = "Attached picture"
)

func writeID3(path string, edit models.TagEdit) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("%w: failed to open id3 tag: %v", shared.ErrWriteFailed, err)
	}
	defer t.Close()

	if edit.Title != nil {
		t.SetTitle(*edit.Title)
	}
	if edit.Artist != nil {
		t.SetArtist(*edit.Artist)
	}
	if edit.Album != nil {
		t.SetAlbum(*edit.Album)
	}
	if edit.Genre != nil {
		t.SetGenre(*edit.Genre)
	}
	if edit.Year != nil {
		t.SetYear(strconv.Itoa(*edit.Year))
	}
	if edit.AlbumArtist != nil {
		t.AddTextFrame(t.CommonID(frameAlbumArtist), t.DefaultEncoding(), *edit.AlbumArtist)
	}

	if edit.TrackNumber != nil || edit.TrackTotal != nil {
		setPositionFrame(t, frameTrackPosition, edit.TrackNumber, edit.TrackTotal)
	}
	if edit.DiscNumber != nil || edit.DiscTotal != nil {
		setPositionFrame(t, frameDiscPosition, edit.DiscNumber, edit.DiscTotal)
	}

	if err := t.Save(); err != nil {
		return fmt.Errorf("%w: failed to save id3 tag: %v", shared.ErrWriteFailed, err)
	}
	return nil
}

// setPositionFrame merges a partial n/total edit with the frame's current
// value so editing one half never drops the other.
func setPositionFrame(t *id3v2.Tag, description string, num, total *int) {
	curNum, curTotal := parsePosition(t.GetTextFrame(t.CommonID(description)).Text)
	if num != nil {
		curNum = *num
	}
	if total != nil {
		curTotal = *total
	}
	t.AddTextFrame(t.CommonID(description), t.DefaultEncoding(), shared.FormatTrackNumber(curNum, curTotal))
}

func parsePosition(s string) (int, int) {
	num, total := 0, 0
	parts := strings.SplitN(s, "/", 2)
	if len(parts) > 0 {
		num, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	}
	if len(parts) > 1 {
		total, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return num, total
}

func setArtworkID3(path string, img []byte, mimeType string) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("%w: failed to open id3 tag: %v", shared.ErrWriteFailed, err)
	}
	defer t.Close()

	t.DeleteFrames(t.CommonID(frameAttachedPic))
	t.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    mimeType,
		PictureType: id3v2.PTFrontCover,
		Description: "Front cover",
		Picture:     img,
	})

	if err := t.Save(); err != nil {
		return fmt.Errorf("%w: failed to save id3 tag: %v", shared.ErrWriteFailed, err)
	}
	return nil
}

func removeArtworkID3(path string) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("%w: failed to open id3 tag: %v", shared.ErrWriteFailed, err)
	}
	defer t.Close()

	t.DeleteFrames(t.CommonID(frameAttachedPic))

	if err := t.Save(); err != nil {
		return fmt.Errorf("%w: failed to save id3 tag: %v", shared.ErrWriteFailed, err)
	}
	return nil
}
