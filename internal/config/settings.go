package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/flac2mp3/internal/audio"
	ioutils "github.com/handiism/flac2mp3/internal/io"
	"github.com/pelletier/go-toml/v2"
)

// Settings holds all configuration options.
type Settings struct {
	// External tools
	DecoderPath  string `json:"decoder_path" toml:"decoder_path"`
	MetadataPath string `json:"metadata_path" toml:"metadata_path"`
	EncoderPath  string `json:"encoder_path" toml:"encoder_path"`

	// File selection
	SourceExtension string `json:"source_extension" toml:"source_extension"`
	TargetExtension string `json:"target_extension" toml:"target_extension"`
	FollowLinks     bool   `json:"follow_links" toml:"follow_links"`
	SkipExisting    bool   `json:"skip_existing" toml:"skip_existing"`

	// Encoder settings
	Bitrate     int    `json:"bitrate" toml:"bitrate"`
	ChannelMode string `json:"channel_mode" toml:"channel_mode"` // s, j, f, d, m
	HighQuality bool   `json:"high_quality" toml:"high_quality"`

	// Scheduling
	Workers        int    `json:"workers" toml:"workers"` // 0 = two per processor
	CheckExitCodes bool   `json:"check_exit_codes" toml:"check_exit_codes"`
	FailFast       bool   `json:"fail_fast" toml:"fail_fast"`
	TempDir        string `json:"temp_dir" toml:"temp_dir"`

	// Cover art settings
	EmbedCoverArt   bool `json:"embed_cover_art" toml:"embed_cover_art"`
	CoverArtResize  bool `json:"cover_art_resize" toml:"cover_art_resize"`
	CoverArtMaxSize int  `json:"cover_art_max_size" toml:"cover_art_max_size"`

	// Playlist settings
	CreatePlaylist bool   `json:"create_playlist" toml:"create_playlist"`
	PlaylistFormat string `json:"playlist_format" toml:"playlist_format"` // m3u, pls
	M3UExtended    bool   `json:"m3u_extended" toml:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DecoderPath:  "flac",
		MetadataPath: "metaflac",
		EncoderPath:  "lame",

		SourceExtension: ".flac",
		TargetExtension: ".mp3",
		FollowLinks:     false,
		SkipExisting:    false,

		Bitrate:     320,
		ChannelMode: "j",
		HighQuality: true,

		Workers:        0,
		CheckExitCodes: false,
		FailFast:       true,

		EmbedCoverArt:   false,
		CoverArtResize:  true,
		CoverArtMaxSize: 1000,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,
	}
}

// DefaultWorkers returns the pool size used when none is configured:
// two workers per processor, or 2 if the processor count is unknown.
func DefaultWorkers(cpus int) int {
	if cpus < 1 {
		return 2
	}
	return 2 * cpus
}

// PoolSize resolves the number of worker slots for a run.
func (s *Settings) PoolSize(cpus int) int {
	if s.Workers > 0 {
		return s.Workers
	}
	return DefaultWorkers(cpus)
}

// Validate reports settings that would make every job fail.
func (s *Settings) Validate() error {
	switch {
	case strings.TrimSpace(s.DecoderPath) == "":
		return fmt.Errorf("decoder_path must not be empty")
	case strings.TrimSpace(s.MetadataPath) == "":
		return fmt.Errorf("metadata_path must not be empty")
	case strings.TrimSpace(s.EncoderPath) == "":
		return fmt.Errorf("encoder_path must not be empty")
	case !strings.HasPrefix(s.TargetExtension, "."):
		return fmt.Errorf("target_extension %q must start with a dot", s.TargetExtension)
	case s.SourceExtension == "":
		return fmt.Errorf("source_extension must not be empty")
	case s.Bitrate <= 0:
		return fmt.Errorf("bitrate must be positive, got %d", s.Bitrate)
	case s.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", s.Workers)
	}
	return nil
}

// Load reads settings from a JSON or TOML file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isTOML(path) {
		err = toml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or TOML file.
func (s *Settings) Save(path string) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToEncoderConfig converts settings to the encoder argument configuration.
func (s *Settings) ToEncoderConfig() *audio.EncoderConfig {
	cfg := audio.DefaultEncoderConfig()
	if s.Bitrate > 0 {
		cfg.Bitrate = s.Bitrate
	}
	cfg.ChannelMode = s.ChannelMode
	cfg.HighQuality = s.HighQuality
	return cfg
}

// ToPlaylistFormat converts the configured playlist format name.
func (s *Settings) ToPlaylistFormat() audio.PlaylistFormat {
	switch strings.ToLower(s.PlaylistFormat) {
	case "pls":
		return audio.FormatPLS
	default:
		return audio.FormatM3U
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
