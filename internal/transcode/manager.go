package transcode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/handiism/flac2mp3/internal/audio"
	"github.com/handiism/flac2mp3/internal/config"
	ioutils "github.com/handiism/flac2mp3/internal/io"
	"github.com/handiism/flac2mp3/internal/model"
	"github.com/handiism/flac2mp3/internal/process"
	"golang.org/x/sync/errgroup"
)

// ErrJobsFailed is returned by Run when FailFast is off and some jobs failed.
var ErrJobsFailed = errors.New("some files failed to transcode")

// Manager coordinates a batch run over a directory tree.
type Manager struct {
	settings   *config.Settings
	workers    int
	transcoder *Transcoder
	playlist   *audio.PlaylistCreator

	onProgress func(ProgressEvent)
}

// NewManager creates a Manager running up to workers jobs at once.
//
// workers is resolved by the caller, normally from Settings.PoolSize, and is
// raised to 1 if smaller.
func NewManager(settings *config.Settings, workers int, runner process.Runner, onProgress func(ProgressEvent)) *Manager {
	if workers < 1 {
		workers = 1
	}

	return &Manager{
		settings:   settings,
		workers:    workers,
		transcoder: NewTranscoder(settings, runner, onProgress),
		playlist:   audio.NewPlaylistCreator(settings.ToPlaylistFormat(), settings.M3UExtended),
		onProgress: onProgress,
	}
}

// Workers returns the pool size.
func (m *Manager) Workers() int {
	return m.workers
}

// Destination returns the output path for source.
func (m *Manager) Destination(source string) string {
	return m.transcoder.Destination(source)
}

// Discover returns every file under root with the source extension.
// Unreadable directories are reported as verbose events and skipped.
func (m *Manager) Discover(root string) []string {
	var files []string
	for path := range ioutils.Files(root, ioutils.WalkOptions{
		FollowLinks: m.settings.FollowLinks,
		OnError: func(path string, err error) {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping unreadable %s: %v", path, err), Level: LevelVerbose})
		},
	}) {
		if ioutils.HasExtension(path, m.settings.SourceExtension) {
			files = append(files, path)
		}
	}
	return files
}

// Run transcodes every eligible file under root and blocks until all
// submitted jobs have finished.
//
// With FailFast the first failing job stops further jobs from starting and
// its error is returned; jobs already running are not interrupted. Without
// it, all jobs run and ErrJobsFailed is returned if any failed. The report is
// returned in both cases.
func (m *Manager) Run(ctx context.Context, root string) (*model.Report, error) {
	files := m.Discover(root)
	report := &model.Report{Total: len(files)}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Found %d %s files under %s, using %d workers", len(files), m.settings.SourceExtension, root, m.workers),
		Level:   LevelInfo,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	for _, source := range files {
		if gctx.Err() != nil {
			break
		}
		job := model.NewJob(source)
		g.Go(func() error {
			// The batch may have been aborted while this job waited for a slot.
			if gctx.Err() != nil {
				return nil
			}

			res := m.transcoder.Transcode(ctx, job)
			report.Add(res)
			if res.OK() {
				return nil
			}

			m.progress(ProgressEvent{Message: fmt.Sprintf("Error transcoding %s: %v", job.Source, res.Err), Level: LevelError})
			if m.settings.FailFast {
				return fmt.Errorf("transcode %s: %w", job.Source, res.Err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	if m.settings.CreatePlaylist {
		m.writePlaylists(report)
	}

	if report.Failed() {
		return report, fmt.Errorf("%w: %d of %d", ErrJobsFailed, len(report.Failures), report.Total)
	}
	return report, nil
}

// writePlaylists writes one playlist per directory that received new files.
func (m *Manager) writePlaylists(report *model.Report) {
	byDir := make(map[string][]audio.PlaylistEntry)
	for _, res := range report.Succeeded {
		dir := filepath.Dir(res.Destination)
		byDir[dir] = append(byDir[dir], audio.PlaylistEntry{
			Path:   res.Destination,
			Artist: res.Tags.Artist(),
			Title:  res.Tags.Title(),
		})
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		path := m.playlist.PlaylistPath(dir)
		content := m.playlist.CreatePlaylist(byDir[dir])
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
			continue
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist %s", path), Level: LevelSuccess})
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
