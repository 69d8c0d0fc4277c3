package batch

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// ErrNoDecoder is returned when the pool has no decode function
// configured.
var ErrNoDecoder = poolError("no decoder configured")

type poolError string

func (e poolError) Error() string {
	return string(e)
}

// Pool manages a pool of worker goroutines for parallel payload
// validation.
type Pool struct {
	workers    int
	jobsChan   chan Job
	resultChan chan *JobResult
	decode     DecodeFunc
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	closed     atomic.Bool

	jobsSubmitted atomic.Uint64
	jobsCompleted atomic.Uint64
	jobsFailed    atomic.Uint64
	totalDuration atomic.Uint64
}

// NewPool creates a worker pool running decode on workers goroutines.
// If workers <= 0, it defaults to runtime.NumCPU().
func NewPool(decode DecodeFunc, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		workers:    workers,
		jobsChan:   make(chan Job, workers*2),
		resultChan: make(chan *JobResult, workers*2),
		decode:     decode,
		ctx:        ctx,
		cancel:     cancel,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// Submit queues a job, blocking while the queue is full. It returns
// false once the pool is closed.
func (p *Pool) Submit(job Job) bool {
	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	}
}

// SubmitAsync queues a job without blocking. It returns false if the
// queue is full or the pool is closed.
func (p *Pool) SubmitAsync(job Job) bool {
	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	default:
		return false
	}
}

// Results returns the channel job results arrive on.
func (p *Pool) Results() <-chan *JobResult {
	return p.resultChan
}

// Close shuts down the pool and waits for the workers to finish,
// discarding any results not yet consumed.
func (p *Pool) Close() {
	if p.closed.Swap(true) {
		return
	}

	p.cancel()
	close(p.jobsChan)

	done := make(chan struct{})
	go func() {
		for range p.resultChan {
		}
		close(done)
	}()

	p.wg.Wait()
	close(p.resultChan)
	<-done
}

// CloseAndWait stops accepting jobs, lets queued jobs finish, and
// collects every pending result.
func (p *Pool) CloseAndWait() *BatchResult {
	if p.closed.Swap(true) {
		return &BatchResult{}
	}

	close(p.jobsChan)

	results := make([]*JobResult, 0)
	done := make(chan struct{})

	go func() {
		p.wg.Wait()
		close(p.resultChan)
		close(done)
	}()

	for result := range p.resultChan {
		results = append(results, result)
	}

	<-done
	p.cancel()

	return &BatchResult{
		Results:       results,
		TotalJobs:     int(p.jobsSubmitted.Load()),
		CompletedJobs: int(p.jobsCompleted.Load()),
		FailedJobs:    int(p.jobsFailed.Load()),
		TotalDuration: int64(p.totalDuration.Load()),
	}
}

// Stats returns current pool counters.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Workers:       p.workers,
		JobsSubmitted: p.jobsSubmitted.Load(),
		JobsCompleted: p.jobsCompleted.Load(),
		JobsFailed:    p.jobsFailed.Load(),
		AvgDuration:   p.averageDuration(),
	}
}

// PoolStats contains pool counters.
type PoolStats struct {
	Workers       int
	JobsSubmitted uint64
	JobsCompleted uint64
	JobsFailed    uint64
	AvgDuration   time.Duration
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobsChan {
		select {
		case <-p.ctx.Done():
			return
		default:
		}

		result := p.processJob(job)
		p.jobsCompleted.Add(1)
		if result.Err != nil {
			p.jobsFailed.Add(1)
		}
		p.totalDuration.Add(uint64(result.Duration))

		select {
		case <-p.ctx.Done():
			return
		case p.resultChan <- result:
		}
	}
}

func (p *Pool) processJob(job Job) *JobResult {
	start := time.Now()

	result := &JobResult{ID: job.ID}

	if p.decode == nil {
		result.Err = ErrNoDecoder
		result.Duration = time.Since(start).Nanoseconds()
		return result
	}

	docType, doc, err := p.decode(job.Payload, job.Options)
	result.DocumentType = docType
	if err != nil {
		result.Err = err
	} else {
		result.Document = doc
	}

	result.Duration = time.Since(start).Nanoseconds()
	return result
}

func (p *Pool) averageDuration() time.Duration {
	completed := p.jobsCompleted.Load()
	if completed == 0 {
		return 0
	}
	return time.Duration(p.totalDuration.Load() / completed)
}
