package model

import (
)

// Tag names read from Vorbis comments. Keys are case-sensitive.
const (
	TagTitle       = "TITLE"
	TagArtist      = "ARTIST"
	TagAlbum       = "ALBUM"
	TagDate        = "DATE"
	TagComment     = "COMMENT"
	TagTrackNumber = "TRACKNUMBER"
	TagTrackTotal  = "TRACKTOTAL"
	TagGenre       = "GENRE"
)

// tagDefaults lists the tags guaranteed to be present in every TagSet.
var tagDefaults = map[string]string{
	TagTitle:       "NONE",
	TagArtist:      "NONE",
	TagAlbum:       "NONE",
	TagDate:        "1",
	TagComment:     "",
	TagTrackNumber: "00",
	TagTrackTotal:  "00",
}

// TagSet is an immutable set of metadata tags extracted from a source file.
//
// The seven tags TITLE, ARTIST, ALBUM, DATE, COMMENT, TRACKNUMBER and
// TRACKTOTAL are always present. Any other tags found in the source are
// kept but are only read on request (GENRE, for example).
type TagSet struct {
	values map[string]string
}

// NewTagSet builds a TagSet from raw key/value pairs, filling defaults for
// any required tag that is absent. The input map is copied.
//
// A key that differs from a required tag only by case does not count as
// that tag: "title" leaves TITLE at its default.
func NewTagSet(raw map[string]string) TagSet {
	values := make(map[string]string, len(raw)+len(tagDefaults))
	for k, v := range raw {
		values[k] = v
	}
	for k, v := range tagDefaults {
		if _, ok := values[k]; !ok {
			values[k] = v
		}
	}
	return TagSet{values: values}
}

// Get returns the value stored for key and whether it was present.
func (t TagSet) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Value returns the value stored for key, or "" if absent.
func (t TagSet) Value(key string) string {
	return t.values[key]
}

// Len returns the number of tags in the set.
func (t TagSet) Len() int {
	return len(t.values)
}

func (t TagSet) Title() string   { return t.values[TagTitle] }
func (t TagSet) Artist() string  { return t.values[TagArtist] }
func (t TagSet) Album() string   { return t.values[TagAlbum] }
func (t TagSet) Date() string    { return t.values[TagDate] }
func (t TagSet) Comment() string { return t.values[TagComment] }

// TrackNumber returns the track number and total joined by a backslash,
// e.g. "03\12". This is the exact value handed to the encoder.
func (t TagSet) TrackNumber() string {
	return t.values[TagTrackNumber] + `\` + t.values[TagTrackTotal]
}

// Genre returns the GENRE tag. GENRE has no default.
func (t TagSet) Genre() (string, bool) {
	v, ok := t.values[TagGenre]
	return v, ok
}
