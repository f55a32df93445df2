package tags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
)

const (
	fieldAlbumArtist = "ALBUMARTIST"
	fieldTrackTotal  = "TRACKTOTAL"
	fieldDiscNumber  = "DISCNUMBER"
	fieldDiscTotal   = "DISCTOTAL"
)

func writeFLAC(path string, edit models.TagEdit) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("%w: failed to parse flac: %v", shared.ErrWriteFailed, err)
	}

	cmt, idx := findVorbisComment(f)
	if cmt == nil {
		cmt = flacvorbis.New()
	}

	if edit.Title != nil {
		setComment(cmt, flacvorbis.FIELD_TITLE, *edit.Title)
	}
	if edit.Artist != nil {
		setComment(cmt, flacvorbis.FIELD_ARTIST, *edit.Artist)
	}
	if edit.Album != nil {
		setComment(cmt, flacvorbis.FIELD_ALBUM, *edit.Album)
	}
	if edit.AlbumArtist != nil {
		setComment(cmt, fieldAlbumArtist, *edit.AlbumArtist)
	}
	if edit.Genre != nil {
		setComment(cmt, flacvorbis.FIELD_GENRE, *edit.Genre)
	}
	if edit.Year != nil {
		setComment(cmt, flacvorbis.FIELD_DATE, strconv.Itoa(*edit.Year))
	}
	if edit.TrackNumber != nil {
		setComment(cmt, flacvorbis.FIELD_TRACKNUMBER, strconv.Itoa(*edit.TrackNumber))
	}
	if edit.TrackTotal != nil {
		setComment(cmt, fieldTrackTotal, strconv.Itoa(*edit.TrackTotal))
	}
	if edit.DiscNumber != nil {
		setComment(cmt, fieldDiscNumber, strconv.Itoa(*edit.DiscNumber))
	}
	if edit.DiscTotal != nil {
		setComment(cmt, fieldDiscTotal, strconv.Itoa(*edit.DiscTotal))
	}

	block := cmt.Marshal()
	if idx >= 0 {
		f.Meta[idx] = &block
	} else {
		f.Meta = append(f.Meta, &block)
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("%w: failed to save flac: %v", shared.ErrWriteFailed, err)
	}
	return nil
}

// findVorbisComment locates the vorbis comment block, returning the parsed
// comment and its index in f.Meta, or (nil, -1).
func findVorbisComment(f *flac.File) (*flacvorbis.MetaDataBlockVorbisComment, int) {
	for i, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			continue
		}
		return cmt, i
	}
	return nil, -1
}

// setComment replaces every existing value for key with a single new one.
// An empty value removes the field entirely.
func setComment(cmt *flacvorbis.MetaDataBlockVorbisComment, key, value string) {
	prefix := strings.ToUpper(key) + "="
	kept := cmt.Comments[:0]
	for _, c := range cmt.Comments {
		if !strings.HasPrefix(strings.ToUpper(c), prefix) {
			kept = append(kept, c)
		}
	}
	cmt.Comments = kept
	if value != "" {
		cmt.Add(key, value)
	}
}

func setArtworkFLAC(path string, img []byte, mimeType string) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("%w: failed to parse flac: %v", shared.ErrWriteFailed, err)
	}

	pic, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Front cover", img, mimeType)
	if err != nil {
		return fmt.Errorf("%w: failed to build picture block: %v", shared.ErrWriteFailed, err)
	}
	block := pic.Marshal()

	f.Meta = stripPictureBlocks(f)
	f.Meta = append(f.Meta, &block)

	if err := f.Save(path); err != nil {
		return fmt.Errorf("%w: failed to save flac: %v", shared.ErrWriteFailed, err)
	}
	return nil
}

func removeArtworkFLAC(path string) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("%w: failed to parse flac: %v", shared.ErrWriteFailed, err)
	}

	f.Meta = stripPictureBlocks(f)

	if err := f.Save(path); err != nil {
		return fmt.Errorf("%w: failed to save flac: %v", shared.ErrWriteFailed, err)
	}
	return nil
}

func stripPictureBlocks(f *flac.File) []*flac.MetaDataBlock {
	kept := make([]*flac.MetaDataBlock, 0, len(f.Meta))
	for _, block := range f.Meta {
		if block.Type != flac.Picture {
			kept = append(kept, block)
		}
	}
	return kept
}
