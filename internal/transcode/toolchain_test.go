package transcode

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bogem/id3v2"
	"github.com/handiism/flac2mp3/internal/process"
)

// fakeToolchain stands in for flac, metaflac and lame.
//
// flac prints "PCM:<source>". metaflac prints the listing registered for the
// source. lame checks that its input holds the decoded audio of the matching
// source and writes an ID3v2 tag built from its --t* flags to the output.
type fakeToolchain struct {
	mu sync.Mutex

	listings map[string]string
	pictures map[string][]byte

	launchFail map[string]bool // tool name -> cannot be started
	exitFail   map[string]bool // tool name -> exits 1
	failFor    map[string]bool // source path -> flac cannot be started
	delay      time.Duration

	calls     map[string]int
	tempFiles []string
	active    int
	maxActive int
}

func newFakeToolchain() *fakeToolchain {
	return &fakeToolchain{
		listings:   make(map[string]string),
		pictures:   make(map[string][]byte),
		launchFail: make(map[string]bool),
		exitFail:   make(map[string]bool),
		failFor:    make(map[string]bool),
		calls:      make(map[string]int),
	}
}

func (f *fakeToolchain) Run(ctx context.Context, cmd process.Command) error {
	f.mu.Lock()
	f.calls[cmd.Name]++
	launchFail := f.launchFail[cmd.Name]
	exitFail := f.exitFail[cmd.Name]
	f.mu.Unlock()

	if launchFail {
		return fmt.Errorf("%w %q: executable file not found in $PATH", process.ErrLaunch, cmd.Name)
	}

	var err error
	switch cmd.Name {
	case "flac":
		err = f.flac(cmd)
	case "metaflac":
		err = f.metaflac(cmd)
	case "lame":
		err = f.lame(cmd)
	default:
		return fmt.Errorf("%w %q", process.ErrLaunch, cmd.Name)
	}
	if err != nil {
		return err
	}
	if exitFail {
		return &process.ExitError{Name: cmd.Name, Code: 1, Stderr: "simulated failure"}
	}
	return nil
}

func (f *fakeToolchain) flac(cmd process.Command) error {
	source := cmd.Args[len(cmd.Args)-1]

	f.mu.Lock()
	fail := f.failFor[source]
	f.active++
	if f.active > f.maxActive {
		f.maxActive = f.active
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.active--
		f.mu.Unlock()
	}()

	if fail {
		return fmt.Errorf("%w %q: simulated", process.ErrLaunch, cmd.Name)
	}
	time.Sleep(f.delay)
	_, err := fmt.Fprintf(cmd.Stdout, "PCM:%s", source)
	return err
}

func (f *fakeToolchain) metaflac(cmd process.Command) error {
	source := cmd.Args[len(cmd.Args)-1]

	f.mu.Lock()
	listing := f.listings[source]
	picture := f.pictures[source]
	f.mu.Unlock()

	if cmd.Args[0] == "--export-picture-to=-" {
		if picture == nil {
			return &process.ExitError{Name: "metaflac", Code: 1}
		}
		_, err := cmd.Stdout.Write(picture)
		return err
	}
	_, err := fmt.Fprint(cmd.Stdout, listing)
	return err
}

func (f *fakeToolchain) lame(cmd process.Command) error {
	input := cmd.Args[len(cmd.Args)-2]
	output := cmd.Args[len(cmd.Args)-1]

	f.mu.Lock()
	f.tempFiles = append(f.tempFiles, input)
	f.mu.Unlock()

	pcm, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(string(pcm), "PCM:") {
		return fmt.Errorf("unexpected encoder input %q", pcm)
	}

	flags := make(map[string]string)
	for i := 0; i+1 < len(cmd.Args)-2; i++ {
		if strings.HasPrefix(cmd.Args[i], "--t") {
			flags[cmd.Args[i]] = cmd.Args[i+1]
		}
	}

	tag := id3v2.NewEmptyTag()
	tag.SetTitle(flags["--tt"])
	tag.SetArtist(flags["--ta"])
	tag.SetAlbum(flags["--tl"])
	tag.SetYear(flags["--ty"])
	tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, flags["--tn"])
	if genre, ok := flags["--tg"]; ok {
		tag.SetGenre(genre)
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := tag.WriteTo(file); err != nil {
		return err
	}
	// The audio payload carries the decoded source name.
	_, err = file.Write(pcm)
	return err
}

func (f *fakeToolchain) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

// eventLog collects progress events from concurrent workers.
type eventLog struct {
	mu     sync.Mutex
	events []ProgressEvent
}

func (l *eventLog) record(event ProgressEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *eventLog) messages(level ProgressLevel) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []string
	for _, e := range l.events {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
