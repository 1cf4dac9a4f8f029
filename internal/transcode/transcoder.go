package transcode

import (
	"bytes"
	"context"
	"fmt"

	"github.com/handiism/flac2mp3/internal/audio"
	"github.com/handiism/flac2mp3/internal/config"
	ioutils "github.com/handiism/flac2mp3/internal/io"
	"github.com/handiism/flac2mp3/internal/model"
	"github.com/handiism/flac2mp3/internal/process"
)

// tempPrefix names the temporary raw audio files.
const tempPrefix = "flacdata_"

// Transcoder converts single FLAC files to MP3.
//
// A Transcoder holds no per-job state and may be used from many goroutines.
type Transcoder struct {
	settings *config.Settings
	runner   process.Runner
	encoder  *audio.EncoderConfig
	tags     *audio.TagReader
	tagger   *audio.Tagger
	images   *ioutils.ImageService

	onProgress func(ProgressEvent)
}

// NewTranscoder creates a Transcoder running the tools configured in settings.
func NewTranscoder(settings *config.Settings, runner process.Runner, onProgress func(ProgressEvent)) *Transcoder {
	return &Transcoder{
		settings:   settings,
		runner:     runner,
		encoder:    settings.ToEncoderConfig(),
		tags:       audio.NewTagReader(runner, settings.MetadataPath),
		tagger:     audio.NewTagger(),
		images:     ioutils.NewImageService(),
		onProgress: onProgress,
	}
}

// Destination returns the output path for source.
func (t *Transcoder) Destination(source string) string {
	return ioutils.ChangeExtension(source, t.settings.TargetExtension)
}

// Transcode converts job.Source and returns the outcome. It never panics on
// tool failures; the error is carried in Result.Err.
func (t *Transcoder) Transcode(ctx context.Context, job *model.Job) *model.Result {
	res := &model.Result{
		Job:         job,
		Destination: t.Destination(job.Source),
	}

	if t.settings.SkipExisting && ioutils.FileExists(res.Destination) {
		res.Skipped = true
		t.progress(ProgressEvent{Message: fmt.Sprintf("Skipping existing: %s", res.Destination), Level: LevelVerbose})
		return res
	}

	res.Err = t.transcode(ctx, res)
	return res
}

func (t *Transcoder) transcode(ctx context.Context, res *model.Result) error {
	source := res.Job.Source

	t.progress(ProgressEvent{Message: fmt.Sprintf("[%s] decoding %s", res.Job.ID, source), Level: LevelVerbose})

	var pcm bytes.Buffer
	err := t.runner.Run(ctx, process.Command{
		Name:   t.settings.DecoderPath,
		Args:   audio.DecoderArgs(source),
		Stdout: &pcm,
	})
	if err := t.check(res, "decode", err); err != nil {
		return err
	}

	tmp, err := ioutils.WriteTempFile(t.settings.TempDir, tempPrefix, pcm.Bytes())
	if err != nil {
		return err
	}
	defer tmp.Close()
	pcm = bytes.Buffer{} // lame reads the temp file from here on

	tags, err := t.tags.ExtractTags(ctx, source)
	if err := t.check(res, "read tags", err); err != nil {
		return err
	}
	res.Tags = tags

	t.progress(ProgressEvent{Message: fmt.Sprintf("[%s] encoding %s", res.Job.ID, res.Destination), Level: LevelVerbose})

	err = t.runner.Run(ctx, process.Command{
		Name: t.settings.EncoderPath,
		Args: t.encoder.Args(tags, tmp.Path, res.Destination),
	})
	if err := t.check(res, "encode", err); err != nil {
		return err
	}

	if t.settings.EmbedCoverArt {
		t.embedCoverArt(ctx, res)
	}

	if err := tmp.Close(); err != nil {
		t.warn(res, fmt.Sprintf("remove temporary file: %v", err))
	}

	t.progress(ProgressEvent{
		Message: fmt.Sprintf("Finished transcoding '%s' to '%s'.", source, res.Destination),
		Level:   LevelSuccess,
	})
	return nil
}

// check decides whether a tool error fails the job. Non-zero exits are only
// fatal when exit codes are checked; everything else always is.
func (t *Transcoder) check(res *model.Result, step string, err error) error {
	if err == nil {
		return nil
	}
	if process.IsExitError(err) && !t.settings.CheckExitCodes {
		t.warn(res, fmt.Sprintf("%s: %v", step, err))
		return nil
	}
	return fmt.Errorf("%s: %w", step, err)
}

// embedCoverArt copies the FLAC front cover into the MP3. Problems are
// reported as warnings; a missing cover is not a problem.
func (t *Transcoder) embedCoverArt(ctx context.Context, res *model.Result) {
	artwork, err := t.tags.ExportCoverArt(ctx, res.Job.Source)
	if err != nil {
		t.warn(res, fmt.Sprintf("cover art: %v", err))
		return
	}
	if artwork == nil {
		return
	}

	maxSize := 0
	if t.settings.CoverArtResize {
		maxSize = t.settings.CoverArtMaxSize
	}
	artwork, err = t.images.PrepareCoverArt(ctx, artwork, maxSize)
	if err != nil {
		t.warn(res, fmt.Sprintf("cover art: %v", err))
		return
	}

	if err := t.tagger.EmbedCoverArt(res.Destination, artwork); err != nil {
		t.warn(res, fmt.Sprintf("cover art: %v", err))
	}
}

func (t *Transcoder) warn(res *model.Result, msg string) {
	res.Warnings = append(res.Warnings, msg)
	t.progress(ProgressEvent{Message: fmt.Sprintf("%s: %s", res.Job.Source, msg), Level: LevelWarning})
}

func (t *Transcoder) progress(event ProgressEvent) {
	if t.onProgress != nil {
		t.onProgress(event)
	}
}
