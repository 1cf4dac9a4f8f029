// Package audio knows how to talk to the FLAC and MP3 tool chain and how to
// post-process the files it produces.
//
// # Tag Extraction
//
// TagReader runs metaflac and turns its VORBIS_COMMENT listing into a
// model.TagSet:
//
//	reader := audio.NewTagReader(process.NewRunner(), "metaflac")
//	tags, err := reader.ExtractTags(ctx, "/music/song.flac")
//
// ParseTags exposes the parser on its own for text already in hand.
//
// # Tool Arguments
//
// DecoderArgs and EncoderConfig.Args build the argument lists for flac and
// lame. The encoder copies TagSet fields into its ID3v2 tag:
//
//	cfg := &audio.EncoderConfig{Bitrate: 320, ChannelMode: "j", HighQuality: true}
//	args := cfg.Args(tags, "/tmp/flacdata_123", "/music/song.mp3")
//
// # ID3 Tagging
//
// Tagger embeds FLAC cover art into an encoded MP3's ID3v2 tag:
//
//	tagger := audio.NewTagger()
//	err := tagger.EmbedCoverArt("/music/song.mp3", jpegBytes)
//
// # Playlist Generation
//
// Generate playlists for a directory of transcoded files:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(entries)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
package audio
