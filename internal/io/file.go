package ioutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ChangeExtension replaces the extension of the final path segment with ext.
//
// Everything from the last "." of the final segment onwards is dropped and
// ext is appended; ext must carry its own leading dot. A path without an
// extension simply gets ext appended, and a trailing "." counts as an empty
// extension.
//
// Example:
//
//	ChangeExtension("a/b.flac", ".mp3")     // "a/b.mp3"
//	ChangeExtension("a/b", ".mp3")          // "a/b.mp3"
//	ChangeExtension("a/b.tar.flac", ".mp3") // "a/b.tar.mp3"
//	ChangeExtension("a.d/b", ".mp3")        // "a.d/b.mp3"
func ChangeExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// HasExtension reports whether the lower-cased path ends with ext.
//
// ext is compared case-insensitively, so ".flac" matches "Song.FLAC".
func HasExtension(path, ext string) bool {
	return strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext))
}

// TempFile is a uniquely named temporary file that is removed by Close.
type TempFile struct {
	Path string
}

// WriteTempFile writes data to a new, uniquely named file in dir.
//
// An empty dir uses the system temporary directory. The file name starts
// with prefix. The caller owns the returned file and must Close it; on error
// nothing is left on disk.
//
// Example:
//
//	tmp, err := WriteTempFile("", "flacdata_", pcm)
//	if err != nil {
//	    return err
//	}
//	defer tmp.Close()
func WriteTempFile(dir, prefix string, data []byte) (*TempFile, error) {
	f, err := os.CreateTemp(dir, prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	tmp := &TempFile{Path: f.Name()}
	if _, err := f.Write(data); err != nil {
		f.Close()
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	return tmp, nil
}

// Close removes the temporary file. It is safe to call more than once.
func (t *TempFile) Close() error {
	if t == nil || t.Path == "" {
		return nil
	}
	err := os.Remove(t.Path)
	if os.IsNotExist(err) {
		err = nil
	}
	t.Path = ""
	return err
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
