package model

import (
	"sync"

	"github.com/google/uuid"
)

// Job is a single source file submitted to the worker pool.
//
// Jobs are submitted once, never retried and never requeued.
type Job struct {
	// ID correlates log events from one job when workers interleave output.
	ID string

	// Source is the absolute path of the lossless input file.
	Source string
}

// NewJob creates a Job for the given source path.
func NewJob(source string) *Job {
	return &Job{
		ID:     uuid.NewString(),
		Source: source,
	}
}

// Result is the outcome of transcoding one Job.
type Result struct {
	Job *Job

	// Destination is the path of the produced file. It is set as soon as it
	// is computed, so failed results may carry it as well.
	Destination string

	// Tags holds the metadata written to the destination.
	Tags TagSet

	// Skipped is true when the destination already existed and the job was
	// not run.
	Skipped bool

	// Warnings collects non-fatal problems such as ignored exit codes.
	Warnings []string

	// Err is nil when the job succeeded.
	Err error
}

// OK reports whether the job finished without error.
func (r *Result) OK() bool {
	return r.Err == nil
}

// Report aggregates the results of a batch run. It is safe for concurrent use.
type Report struct {
	mu sync.Mutex

	Total     int
	Succeeded []*Result
	Skipped   []*Result
	Failures  []*Result
}

// Add records a job result.
func (r *Report) Add(res *Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case !res.OK():
		r.Failures = append(r.Failures, res)
	case res.Skipped:
		r.Skipped = append(r.Skipped, res)
	default:
		r.Succeeded = append(r.Succeeded, res)
	}
}

// Completed returns the number of results recorded so far.
func (r *Report) Completed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Succeeded) + len(r.Skipped) + len(r.Failures)
}

// NotStarted returns the number of jobs that have no result, such as those
// still queued when a fail-fast run was aborted.
func (r *Report) NotStarted() int {
	return r.Total - r.Completed()
}

// Failed reports whether any job failed.
func (r *Report) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Failures) > 0
}
