package audio

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS
)

// Extension returns the file extension for the format, with leading dot.
func (f PlaylistFormat) Extension() string {
	switch f {
	case FormatPLS:
		return ".pls"
	default:
		return ".m3u"
	}
}

// PlaylistEntry is one transcoded file in a playlist.
type PlaylistEntry struct {
	Path   string
	Artist string
	Title  string
}

// PlaylistCreator generates playlist files in various formats.
//
// Track lengths are not known without probing the produced files, so they
// are written as -1, which both formats define as "unknown".
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// extended only applies to M3U and adds #EXTINF lines.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// PlaylistPath returns where the playlist for dir is written: inside dir,
// named after it.
func (p *PlaylistCreator) PlaylistPath(dir string) string {
	return filepath.Join(dir, filepath.Base(dir)+p.format.Extension())
}

// CreatePlaylist generates playlist content for entries sorted by file name.
//
// Paths are written relative to the playlist (just the file name), so all
// entries are expected to share one directory.
func (p *PlaylistCreator) CreatePlaylist(entries []PlaylistEntry) string {
	sorted := make([]PlaylistEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return filepath.Base(sorted[i].Path) < filepath.Base(sorted[j].Path)
	})

	switch p.format {
	case FormatPLS:
		return p.createPLS(sorted)
	default:
		return p.createM3U(sorted)
	}
}

// createM3U generates an M3U playlist.
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:-1,Artist - Title
//	filename1.mp3
func (p *PlaylistCreator) createM3U(entries []PlaylistEntry) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, e := range entries {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s - %s\n", e.Artist, e.Title))
		}
		sb.WriteString(filepath.Base(e.Path) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
//	[playlist]
//	File1=filename1.mp3
//	Title1=Artist - Song Title
//	Length1=-1
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(entries []PlaylistEntry) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, e := range entries {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, filepath.Base(e.Path)))
		sb.WriteString(fmt.Sprintf("Title%d=%s - %s\n", idx, e.Artist, e.Title))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n", idx))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(entries)))
	sb.WriteString("Version=2\n")

	return sb.String()
}
