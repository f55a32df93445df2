package tags

import (
	"fmt"

	mp4tag "github.com/Sorrow446/go-mp4tag"
	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
)

// mp4WritePlan maps an edit onto go-mp4tag's write call: non-zero MP4Tags
// fields are written, cleared fields go into the delete list. Free-text
// genres live in the ©gen atom (CustomGenre); clearing genre drops the
// standard gnre atom too.
func mp4WritePlan(edit models.TagEdit) (*mp4tag.MP4Tags, []string) {
	t := &mp4tag.MP4Tags{}
	var del []string

	setString := func(dst *string, v *string, name string) {
		if v == nil {
			return
		}
		if *v == "" {
			del = append(del, name)
			return
		}
		*dst = *v
	}

	setString(&t.Title, edit.Title, "title")
	setString(&t.Artist, edit.Artist, "artist")
	setString(&t.Album, edit.Album, "album")
	setString(&t.AlbumArtist, edit.AlbumArtist, "albumArtist")

	if edit.Genre != nil {
		if *edit.Genre == "" {
			del = append(del, "genre", "customGenre")
		} else {
			t.CustomGenre = *edit.Genre
		}
	}
	if edit.Year != nil {
		if *edit.Year == 0 {
			del = append(del, "year")
		} else {
			t.Year = int32(*edit.Year)
		}
	}
	if edit.TrackNumber != nil {
		t.TrackNumber = int16(*edit.TrackNumber)
	}
	if edit.TrackTotal != nil {
		t.TrackTotal = int16(*edit.TrackTotal)
	}
	if edit.DiscNumber != nil {
		t.DiscNumber = int16(*edit.DiscNumber)
	}
	if edit.DiscTotal != nil {
		t.DiscTotal = int16(*edit.DiscTotal)
	}

	return t, del
}

// writeMP4 applies an edit to an m4a/mp4 file's ilst atoms.
func writeMP4(path string, edit models.TagEdit) error {
	f, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("%w: failed to open mp4: %v", shared.ErrWriteFailed, err)
	}
	defer f.Close()

	t, del := mp4WritePlan(edit)
	if err := f.Write(t, del); err != nil {
		return fmt.Errorf("%w: failed to write mp4 tags: %v", shared.ErrWriteFailed, err)
	}
	return nil
}

func setArtworkMP4(path string, img []byte) error {
	f, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("%w: failed to open mp4: %v", shared.ErrWriteFailed, err)
	}
	defer f.Close()

	t := &mp4tag.MP4Tags{
		Pictures: []*mp4tag.MP4Picture{{Format: mp4tag.ImageTypeAuto, Data: img}},
	}
	if err := f.Write(t, nil); err != nil {
		return fmt.Errorf("%w: failed to write mp4 cover: %v", shared.ErrWriteFailed, err)
	}
	return nil
}

func removeArtworkMP4(path string) error {
	f, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("%w: failed to open mp4: %v", shared.ErrWriteFailed, err)
	}
	defer f.Close()

	if err := f.Write(&mp4tag.MP4Tags{}, []string{"cover"}); err != nil {
		return fmt.Errorf("%w: failed to delete mp4 cover: %v", shared.ErrWriteFailed, err)
	}
	return nil
}
