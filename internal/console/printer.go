package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/flac2mp3/internal/transcode"
)

// Printer writes progress events line by line. It is safe for concurrent use.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool

	renderer    *lipgloss.Renderer
	errRenderer *lipgloss.Renderer

	titleStyle   lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	infoStyle    lipgloss.Style
	dimStyle     lipgloss.Style

	mu sync.Mutex
}

// NewPrinter creates a Printer writing errors to errOut and everything else
// to out. Verbose events are dropped unless verbose is set. Each writer gets
// its own renderer so colours follow that writer's terminal.
func NewPrinter(out, errOut io.Writer, verbose bool) *Printer {
	r := lipgloss.NewRenderer(out)
	er := lipgloss.NewRenderer(errOut)
	return &Printer{
		out:     out,
		errOut:  errOut,
		verbose: verbose,

		renderer:    r,
		errRenderer: er,

		titleStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("#95E1A3")),
		errorStyle:   er.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		warningStyle: r.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
		infoStyle:    r.NewStyle().Foreground(lipgloss.Color("#A8DADC")),
		dimStyle:     r.NewStyle().Foreground(lipgloss.Color("#6C757D")),
	}
}

// Handle prints one event. Its signature matches the onProgress callbacks of
// package transcode.
func (p *Printer) Handle(event transcode.ProgressEvent) {
	if event.Level == transcode.LevelVerbose && !p.verbose {
		return
	}

	var line string
	out := p.out
	switch event.Level {
	case transcode.LevelError:
		line = p.errorStyle.Render("✗ " + event.Message)
		out = p.errOut
	case transcode.LevelWarning:
		line = p.warningStyle.Render("! " + event.Message)
	case transcode.LevelSuccess:
		line = p.successStyle.Render("✓") + " " + event.Message
	case transcode.LevelInfo:
		line = p.infoStyle.Render("• " + event.Message)
	default:
		line = p.dimStyle.Render("  " + event.Message)
	}

	p.println(out, line)
}

// Title prints a bold heading.
func (p *Printer) Title(text string) {
	p.println(p.out, p.titleStyle.Render(text))
}

// Printf prints a plain formatted line.
func (p *Printer) Printf(format string, args ...any) {
	p.println(p.out, fmt.Sprintf(format, args...))
}

func (p *Printer) println(w io.Writer, line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(w, line)
}
