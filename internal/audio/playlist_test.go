package audio

import (
	"strings"
	"testing"
)

func testEntries() []PlaylistEntry {
	return []PlaylistEntry{
		{Path: "/music/album/02 track2.mp3", Artist: "Test Artist", Title: "track2"},
		{Path: "/music/album/01 track1.mp3", Artist: "Test Artist", Title: "track1"},
	}
}

func TestPlaylistCreator_M3U(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, false)

	content := creator.CreatePlaylist(testEntries())

	if content != "01 track1.mp3\n02 track2.mp3\n" {
		t.Errorf("unexpected M3U content:\n%s", content)
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, true)

	content := creator.CreatePlaylist(testEntries())

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:-1,Test Artist - track1\n01 track1.mp3\n") {
		t.Errorf("Extended M3U should contain #EXTINF before each file:\n%s", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	creator := NewPlaylistCreator(FormatPLS, false)

	content := creator.CreatePlaylist(testEntries())

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=01 track1.mp3") {
		t.Error("PLS should list files sorted by name")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries")
	}
}

func TestPlaylistCreator_DoesNotReorderInput(t *testing.T) {
	entries := testEntries()
	NewPlaylistCreator(FormatM3U, false).CreatePlaylist(entries)

	if entries[0].Title != "track2" {
		t.Error("CreatePlaylist should not sort the caller's slice")
	}
}

func TestPlaylistCreator_PlaylistPath(t *testing.T) {
	tests := []struct {
		format PlaylistFormat
		want   string
	}{
		{FormatM3U, "/music/Album/Album.m3u"},
		{FormatPLS, "/music/Album/Album.pls"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := NewPlaylistCreator(tt.format, false).PlaylistPath("/music/Album"); got != tt.want {
				t.Errorf("PlaylistPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
