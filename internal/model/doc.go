// Package model defines the core data types for flac2mp3.
//
// This package contains:
//   - TagSet: normalized Vorbis comment metadata for one source file
//   - Job: one source file submitted to the worker pool
//   - Result: the outcome of transcoding a single Job
//   - Report: the aggregate outcome of a batch run
//
// # Tag Defaults
//
// A TagSet always carries the seven tags the encoder needs. Tags missing from
// the source are filled in when the set is built:
//
//	tags := model.NewTagSet(map[string]string{"TITLE": "Misery"})
//	tags.Title()       // "Misery"
//	tags.Artist()      // "NONE"
//	tags.TrackNumber() // "00"
//
// # Jobs and Results
//
// Jobs have no identity beyond their source path. The ID is only used to
// correlate events printed by concurrent workers:
//
//	job := model.NewJob("/music/album/01.flac")
//	fmt.Println(job.ID, job.Source)
package model
