// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Deriving destination file names from source file names
//   - Walking a directory tree for regular files
//   - Scoped temporary files for intermediate audio data
//   - Directory creation
//   - Image resizing and format conversion
//
// # File Names
//
// ChangeExtension replaces only the final extension of the last path segment:
//
//	ioutils.ChangeExtension("/music/a.tar.flac", ".mp3") // "/music/a.tar.mp3"
//	ioutils.ChangeExtension("/music/a", ".mp3")          // "/music/a.mp3"
//
// # Directory Walking
//
// Walk returns every regular file under a root, as absolute paths. Symbolic
// links are skipped unless FollowLinks is set. Directories that cannot be
// read contribute no files; OnError is told about them:
//
//	files := ioutils.Walk("/music", ioutils.WalkOptions{
//	    OnError: func(path string, err error) { log.Println(path, err) },
//	})
//
// Following links does not track visited directories, so a link cycle walks
// forever.
//
// # Image Processing
//
// The ImageService handles cover art manipulation:
//
//	svc := ioutils.NewImageService()
//
//	// Resize image to fit within 500x500
//	resized, _ := svc.ResizeImage(ctx, imageData, 500, 500)
//
//	// Convert to JPEG
//	jpeg, _ := svc.ConvertToJPEG(ctx, pngData)
package ioutils
