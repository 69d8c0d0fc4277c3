package batch

import "github.com/ashmatics/datamodels/document"

// Job is one payload queued for decode and validation.
type Job struct {
	// ID is the caller's identifier for this payload, echoed in the
	// result.
	ID string

	// Payload is the document JSON.
	Payload []byte

	// Options carries per-job wire configuration.
	Options *JobOptions
}

// JobOptions contains optional parameters for a single job.
type JobOptions struct {
	// AliasedID decodes payloads using the document-store identity
	// field name ("_id").
	AliasedID bool

	// DocumentType overrides the type peeked from the payload's tier-2
	// metadata.
	DocumentType document.DocumentType
}

// JobResult is the outcome of one job.
type JobResult struct {
	// ID matches the Job.ID that produced this result.
	ID string

	// DocumentType is the dispatched type, when the peek succeeded.
	DocumentType document.DocumentType

	// Document is the decoded, validated document. Nil when Err is set.
	Document any

	// Err is the decode or validation failure for this payload.
	Err error

	// Duration is the processing time in nanoseconds.
	Duration int64
}

// BatchResult aggregates the results of a whole batch.
type BatchResult struct {
	// Results holds one entry per job, in submission order when
	// produced by ValidateBatch.
	Results []*JobResult

	// TotalJobs is the number of jobs submitted.
	TotalJobs int

	// CompletedJobs is the number of jobs processed, failures included.
	CompletedJobs int

	// FailedJobs is the number of jobs that failed decode or
	// validation.
	FailedJobs int

	// TotalDuration is the summed processing time in nanoseconds.
	TotalDuration int64
}

// HasErrors reports whether any job in the batch failed.
func (br *BatchResult) HasErrors() bool {
	for _, r := range br.Results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of failed jobs.
func (br *BatchResult) ErrorCount() int {
	count := 0
	for _, r := range br.Results {
		if r.Err != nil {
			count++
		}
	}
	return count
}

// FailedIDs returns the job ids that failed, in result order.
func (br *BatchResult) FailedIDs() []string {
	var ids []string
	for _, r := range br.Results {
		if r.Err != nil {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
