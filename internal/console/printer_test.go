package console

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/handiism/flac2mp3/internal/transcode"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, false)

	p.Handle(transcode.ProgressEvent{Message: "Finished transcoding 'a.flac' to 'a.mp3'.", Level: transcode.LevelSuccess})
	p.Handle(transcode.ProgressEvent{Message: "hidden", Level: transcode.LevelVerbose})
	p.Handle(transcode.ProgressEvent{Message: "careful", Level: transcode.LevelWarning})
	p.Handle(transcode.ProgressEvent{Message: "broken", Level: transcode.LevelError})

	assert.Contains(t, out.String(), "Finished transcoding 'a.flac' to 'a.mp3'.")
	assert.Contains(t, out.String(), "careful")
	assert.NotContains(t, out.String(), "hidden")
	assert.NotContains(t, out.String(), "broken")
	assert.Contains(t, errOut.String(), "broken")
}

func TestPrinter_Verbose(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, true)

	p.Handle(transcode.ProgressEvent{Message: "decoding", Level: transcode.LevelVerbose})

	assert.Contains(t, out.String(), "decoding")
}

func TestPrinter_OneLinePerEvent(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, false)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Handle(transcode.ProgressEvent{Message: "done", Level: transcode.LevelSuccess})
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 50)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, "done"), "interleaved line %q", line)
	}
}

func TestPrinter_TitleAndPrintf(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, false)

	p.Title("flac2mp3")
	p.Printf("%s -> %s", "a.flac", "a.mp3")

	assert.Contains(t, out.String(), "flac2mp3")
	assert.True(t, strings.HasSuffix(out.String(), "\na.flac -> a.mp3\n"))
}

func TestPrinter_ErrorsStyledForErrOut(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, false)
	p.renderer.SetColorProfile(termenv.TrueColor)
	p.errRenderer.SetColorProfile(termenv.Ascii)

	p.Handle(transcode.ProgressEvent{Message: "done", Level: transcode.LevelSuccess})
	p.Handle(transcode.ProgressEvent{Message: "broken", Level: transcode.LevelError})

	assert.Contains(t, out.String(), "\x1b[")
	assert.Equal(t, "✗ broken\n", errOut.String())
}
