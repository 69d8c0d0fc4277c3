package batch

import (
	"context"
	"runtime"
	"strconv"
	"sync"
	"time"
)

// Validator validates a slice of payloads with a fixed decode function
// and worker count.
type Validator struct {
	decode  DecodeFunc
	workers int
}

// NewValidator creates a batch validator. If workers <= 0, it defaults
// to runtime.NumCPU().
func NewValidator(decode DecodeFunc, workers int) *Validator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Validator{
		decode:  decode,
		workers: workers,
	}
}

// ValidateBatch decodes and validates payloads, preserving submission
// order in the results. Small batches run sequentially. Results always
// has one entry per payload; on cancellation, unprocessed entries carry
// the context error and count as failed.
func (v *Validator) ValidateBatch(ctx context.Context, payloads [][]byte) *BatchResult {
	if len(payloads) == 0 {
		return &BatchResult{Results: make([]*JobResult, 0)}
	}

	if len(payloads) <= 2 {
		return v.validateSequential(ctx, payloads)
	}

	return v.validateParallel(ctx, payloads)
}

func (v *Validator) validateSequential(ctx context.Context, payloads [][]byte) *BatchResult {
	br := &BatchResult{
		Results:   make([]*JobResult, 0, len(payloads)),
		TotalJobs: len(payloads),
	}

	for i, payload := range payloads {
		if err := ctx.Err(); err != nil {
			br.Results = append(br.Results, &JobResult{ID: strconv.Itoa(i), Err: err})
			br.FailedJobs++
			continue
		}

		r := v.process(strconv.Itoa(i), payload)
		br.Results = append(br.Results, r)
		br.CompletedJobs++
		if r.Err != nil {
			br.FailedJobs++
		}
		br.TotalDuration += r.Duration
	}
	return br
}

func (v *Validator) validateParallel(ctx context.Context, payloads [][]byte) *BatchResult {
	numWorkers := v.workers
	if numWorkers > len(payloads) {
		numWorkers = len(payloads)
	}

	jobs := make(chan indexedPayload, len(payloads))
	resultsChan := make(chan *indexedResult, len(payloads))

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				resultsChan <- &indexedResult{
					index:  job.index,
					result: v.process(strconv.Itoa(job.index), job.payload),
				}
			}
		}()
	}

	go func() {
		for i, payload := range payloads {
			select {
			case <-ctx.Done():
			case jobs <- indexedPayload{index: i, payload: payload}:
			}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	br := &BatchResult{
		Results:   make([]*JobResult, len(payloads)),
		TotalJobs: len(payloads),
	}
	for ir := range resultsChan {
		br.Results[ir.index] = ir.result
		br.CompletedJobs++
		if ir.result.Err != nil {
			br.FailedJobs++
		}
		br.TotalDuration += ir.result.Duration
	}

	// Payloads the workers never reached still get a result entry.
	for i, r := range br.Results {
		if r == nil {
			br.Results[i] = &JobResult{ID: strconv.Itoa(i), Err: ctx.Err()}
			br.FailedJobs++
		}
	}
	return br
}

func (v *Validator) process(id string, payload []byte) *JobResult {
	start := time.Now()
	result := &JobResult{ID: id}

	docType, doc, err := v.decode(payload, nil)
	result.DocumentType = docType
	if err != nil {
		result.Err = err
	} else {
		result.Document = doc
	}

	result.Duration = time.Since(start).Nanoseconds()
	return result
}

type indexedPayload struct {
	index   int
	payload []byte
}

type indexedResult struct {
	index  int
	result *JobResult
}

// ValidateBatchSimple validates payloads with the default document
// dispatcher and one worker per CPU.
func ValidateBatchSimple(ctx context.Context, payloads [][]byte) *BatchResult {
	return NewValidator(DecodeDocument, runtime.NumCPU()).ValidateBatch(ctx, payloads)
}
