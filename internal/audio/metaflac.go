package audio

import (
	"context"
	"fmt"
	"regexp"

	"github.com/handiism/flac2mp3/internal/model"
	"github.com/handiism/flac2mp3/internal/process"
)

// commentPattern matches metaflac listing lines such as
// "    comment[0]: TITLE=Misery". The key runs to the first "=".
var commentPattern = regexp.MustCompile(`(?m)^\s*comment\[\d+\]:\s*([^=\r\n]+)=([^\r\n]*)\r?$`)

// TagReader extracts Vorbis comments from FLAC files using metaflac.
type TagReader struct {
	runner process.Runner
	path   string
}

// NewTagReader creates a TagReader that runs the metaflac binary at path.
func NewTagReader(runner process.Runner, path string) *TagReader {
	return &TagReader{runner: runner, path: path}
}

// ExtractTags lists the VORBIS_COMMENT block of source and returns the
// parsed tags with defaults filled in.
//
// An error wrapping process.ErrLaunch means metaflac could not be started;
// no TagSet is returned then. If metaflac runs but exits non-zero, the tags
// parsed from whatever it printed are returned together with the
// *process.ExitError so the caller can decide whether that matters.
func (r *TagReader) ExtractTags(ctx context.Context, source string) (model.TagSet, error) {
	out, err := process.Output(ctx, r.runner, r.path, "--list", "--block-type=VORBIS_COMMENT", source)
	if err != nil && !process.IsExitError(err) {
		return model.TagSet{}, fmt.Errorf("read tags of %s: %w", source, err)
	}

	return model.NewTagSet(ParseTags(string(out))), err
}

// ExportCoverArt returns the first embedded picture of source.
//
// A file without pictures yields nil and no error.
func (r *TagReader) ExportCoverArt(ctx context.Context, source string) ([]byte, error) {
	out, err := process.Output(ctx, r.runner, r.path, "--export-picture-to=-", source)
	if err != nil {
		if process.IsExitError(err) && len(out) == 0 {
			// metaflac exits non-zero when there is no PICTURE block
			return nil, nil
		}
		return nil, fmt.Errorf("export cover art of %s: %w", source, err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// ParseTags parses a metaflac VORBIS_COMMENT listing into raw tags.
//
// Lines that are not comment entries are ignored. When a key appears more
// than once the last value wins.
func ParseTags(listing string) map[string]string {
	tags := make(map[string]string)
	for _, m := range commentPattern.FindAllStringSubmatch(listing, -1) {
		tags[m[1]] = m[2]
	}
	return tags
}
