package audio

import (
	"testing"

	"github.com/handiism/flac2mp3/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDecoderArgs(t *testing.T) {
	assert.Equal(t, []string{"--silent", "-c", "-d", "/m/a.flac"}, DecoderArgs("/m/a.flac"))
}

func TestEncoderConfig_Args(t *testing.T) {
	tags := model.NewTagSet(map[string]string{
		"TITLE":       "X",
		"ARTIST":      "Y",
		"TRACKNUMBER": "1",
		"TRACKTOTAL":  "10",
	})

	args := DefaultEncoderConfig().Args(tags, "/tmp/flacdata_1", "/m/song.mp3")

	assert.Equal(t, []string{
		"-h", "-m", "j", "--cbr", "-b", "320", "--add-id3v2", "--silent",
		"--tt", "X",
		"--ta", "Y",
		"--tl", "NONE",
		"--ty", "1",
		"--tc", "",
		"--tn", `1\10`,
		"/tmp/flacdata_1", "/m/song.mp3",
	}, args)
}

func TestEncoderConfig_ArgsWithGenre(t *testing.T) {
	tags := model.NewTagSet(map[string]string{"GENRE": "Jazz"})
	cfg := &EncoderConfig{Bitrate: 192, ChannelMode: "s"}

	args := cfg.Args(tags, "in", "out")

	assert.Equal(t, []string{"-m", "s", "--cbr", "-b", "192"}, args[:5])
	assert.Equal(t, []string{"--tg", "Jazz", "in", "out"}, args[len(args)-4:])
}
