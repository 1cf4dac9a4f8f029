// Package transcode converts a tree of FLAC files to MP3 using a bounded pool
// of workers.
//
// # Transcoder
//
// The Transcoder handles one file at a time:
//
//  1. Decode the FLAC file with flac, buffering the raw audio in memory
//  2. Write the audio to a temporary file
//  3. Read the Vorbis comments with metaflac
//  4. Encode the temporary file with lame, passing the tags along
//  5. Optionally embed the FLAC cover art into the MP3
//  6. Remove the temporary file and report completion
//
// # Manager
//
// The Manager finds every FLAC file under a root directory and runs one
// Transcoder job per file:
//
//	manager := transcode.NewManager(settings, settings.PoolSize(runtime.NumCPU()),
//	    process.NewRunner(), func(event transcode.ProgressEvent) {
//	        fmt.Println(event.Message)
//	    })
//
//	report, err := manager.Run(ctx, "/music")
//
// # Concurrency
//
// At most Workers jobs run at once; the rest wait for a free slot. Jobs share
// nothing but the pool, so completions arrive in no particular order.
//
// # Failures
//
// By default the tools' exit codes are not checked and the first job that
// fails (a tool that cannot be launched, for example) stops the batch: jobs
// not yet started are dropped while jobs already running finish. With
// Settings.CheckExitCodes a non-zero exit fails the job, and with FailFast off
// every job runs and failures are collected in the Report.
package transcode
