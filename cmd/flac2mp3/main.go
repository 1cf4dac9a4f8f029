package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/handiism/flac2mp3/internal/config"
	"github.com/handiism/flac2mp3/internal/console"
	"github.com/handiism/flac2mp3/internal/process"
	"github.com/handiism/flac2mp3/internal/transcode"
)

func main() {
	// Command line flags
	var (
		configFlag      = flag.String("config", "", "Path to config file (.json or .toml)")
		workersFlag     = flag.Int("workers", 0, "Number of parallel jobs (default: 2 per processor)")
		strictFlag      = flag.Bool("strict", false, "Fail a file when flac, metaflac or lame exits non-zero")
		keepGoingFlag   = flag.Bool("keep-going", false, "Transcode remaining files after a failure and report at the end")
		followLinksFlag = flag.Bool("follow-links", false, "Follow symbolic links (may loop forever on link cycles)")
		dryRunFlag      = flag.Bool("dry-run", false, "List files that would be transcoded")
		verboseFlag     = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "flac2mp3 - Transcode a tree of FLAC files to MP3")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  flac2mp3 [options] <directory>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	root := flag.Arg(0)

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *workersFlag > 0 {
		settings.Workers = *workersFlag
	}
	if *strictFlag {
		settings.CheckExitCodes = true
	}
	if *keepGoingFlag {
		settings.FailFast = false
	}
	if *followLinksFlag {
		settings.FollowLinks = true
	}

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	printer := console.NewPrinter(os.Stdout, os.Stderr, *verboseFlag)
	manager := transcode.NewManager(settings, settings.PoolSize(runtime.NumCPU()), process.NewRunner(), printer.Handle)

	if *dryRunFlag {
		for _, source := range manager.Discover(root) {
			printer.Printf("%s -> %s", source, manager.Destination(source))
		}
		return
	}

	for _, status := range process.CheckTools([]process.Tool{
		{Name: "decoder", Command: settings.DecoderPath, Description: "decode FLAC audio"},
		{Name: "metadata", Command: settings.MetadataPath, Description: "read FLAC tags"},
		{Name: "encoder", Command: settings.EncoderPath, Description: "encode MP3"},
	}) {
		if !status.Available {
			printer.Handle(transcode.ProgressEvent{
				Message: fmt.Sprintf("%s tool: %s", status.Name, status.Detail),
				Level:   transcode.LevelWarning,
			})
		}
	}

	report, err := manager.Run(ctx, root)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Transcoding cancelled.")
			os.Exit(130)
		}
		if errors.Is(err, transcode.ErrJobsFailed) {
			for _, res := range report.Failures {
				fmt.Fprintf(os.Stderr, "  %s: %v\n", res.Job.Source, res.Err)
			}
		}
		if n := report.NotStarted(); n > 0 {
			fmt.Fprintf(os.Stderr, "Aborted after %d of %d files, %d not started.\n", report.Completed(), report.Total, n)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verboseFlag {
		printer.Title(fmt.Sprintf("Transcoded %d of %d files (%d skipped)",
			len(report.Succeeded), report.Total, len(report.Skipped)))
	}
}
