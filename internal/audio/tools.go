package audio

import (
	"strconv"

	"github.com/handiism/flac2mp3/internal/model"
)

// DecoderArgs returns the flac arguments that decode source to stdout.
func DecoderArgs(source string) []string {
	return []string{"--silent", "-c", "-d", source}
}

// EncoderConfig holds the fixed lame quality settings.
type EncoderConfig struct {
	// Bitrate is the constant bitrate in kbps.
	Bitrate int

	// ChannelMode is passed to "-m": s(tereo), j(oint), f(orced), d(ual), m(ono).
	ChannelMode string

	// HighQuality adds "-h".
	HighQuality bool
}

// DefaultEncoderConfig returns 320 kbps CBR joint stereo.
func DefaultEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		Bitrate:     320,
		ChannelMode: "j",
		HighQuality: true,
	}
}

// Args returns the lame arguments that encode input to output, writing the
// tags into an ID3v2 tag.
//
// GENRE is only passed when the source had one.
func (c *EncoderConfig) Args(tags model.TagSet, input, output string) []string {
	var args []string
	if c.HighQuality {
		args = append(args, "-h")
	}
	if c.ChannelMode != "" {
		args = append(args, "-m", c.ChannelMode)
	}
	args = append(args,
		"--cbr", "-b", strconv.Itoa(c.Bitrate),
		"--add-id3v2", "--silent",
		"--tt", tags.Title(),
		"--ta", tags.Artist(),
		"--tl", tags.Album(),
		"--ty", tags.Date(),
		"--tc", tags.Comment(),
		"--tn", tags.TrackNumber(),
	)
	if genre, ok := tags.Genre(); ok {
		args = append(args, "--tg", genre)
	}
	return append(args, input, output)
}
