package audio

import (
	"fmt"
	"net/http"

	"github.com/bogem/id3v2"
)

// Tagger edits the ID3v2 tag of MP3 files produced by the encoder.
//
// lame already writes the text frames; Tagger adds what lame cannot take on
// its command line, namely the FLAC front cover.
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// EmbedCoverArt replaces any attached pictures in path with artwork as the
// front cover. The MIME type is sniffed from the image bytes.
func (t *Tagger) EmbedCoverArt(path string, artwork []byte) error {
	if len(artwork) == 0 {
		return nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tag of %s: %w", path, err)
	}
	defer tag.Close()

	tag.DeleteFrames(tag.CommonID("Attached picture"))
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    http.DetectContentType(artwork),
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	})

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag of %s: %w", path, err)
	}
	return nil
}
