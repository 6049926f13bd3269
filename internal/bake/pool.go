// Package bake renders gradient presets to image files on a pool of worker
// goroutines.
package bake

import (
	"context"
	"sync"
	"time"

	"ddcore/internal/export"
	"ddcore/internal/profiling"
	"ddcore/pkg/gradient"
)

// Job represents a bake request. The gradient must not be shared with
// other jobs while queued.
type Job struct {
	ID       int
	Name     string
	Gradient *gradient.Gradient
	Path     string
	Options  export.StripOptions
	// Result channel - will be sent the result when done
	ResultChan chan Result
}

// Result contains the outcome of a bake
type Result struct {
	ID      int
	Name    string
	Path    string
	Elapsed time.Duration
	Error   error
}

// WorkerPool manages goroutines for baking
type WorkerPool struct {
	jobQueue chan Job
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool starts workers goroutines reading from a queue of queueSize
func NewWorkerPool(ctx context.Context, workers int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(ctx)

	pool := &WorkerPool{
		jobQueue: make(chan Job, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	// Start worker goroutines
	for i := range workers {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// SubmitJob submits a bake job to the pool
// Returns true if job was submitted successfully, false if queue is full
func (p *WorkerPool) SubmitJob(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false // Queue is full
	}
}

// SubmitJobBlocking submits a job and blocks until it's queued, returning
// false if the pool was cancelled first
func (p *WorkerPool) SubmitJobBlocking(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	case <-p.ctx.Done():
		return false
	}
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := Run(job)

			// Send result back
			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Run bakes a single job on the calling goroutine
func Run(job Job) Result {
	defer profiling.Track("bake.Run")()

	start := time.Now()
	img := export.RenderStrip(job.Gradient, job.Options)
	err := export.Save(img, job.Path)
	return Result{ID: job.ID, Name: job.Name, Path: job.Path, Elapsed: time.Since(start), Error: err}
}

// Close stops accepting jobs and waits for queued ones to finish
func (p *WorkerPool) Close() {
	close(p.jobQueue)
	p.wg.Wait()
	p.cancel()
}

// Shutdown abandons queued jobs and waits for the workers to exit
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// GetQueueLength returns the current number of jobs in the queue
func (p *WorkerPool) GetQueueLength() int {
	return len(p.jobQueue)
}

// All bakes jobs on workers goroutines and returns the results in job order.
// Each job's ID and ResultChan are replaced.
func All(ctx context.Context, workers int, jobs []Job) []Result {
	pool := NewWorkerPool(ctx, max(workers, 1), len(jobs))
	results := make(chan Result, len(jobs))
	for i := range jobs {
		jobs[i].ID = i
		jobs[i].ResultChan = results
		pool.SubmitJob(jobs[i])
	}

	done := make([]bool, len(jobs))
	out := make([]Result, len(jobs))
	for range jobs {
		select {
		case r := <-results:
			if r.ID >= 0 && r.ID < len(out) {
				out[r.ID], done[r.ID] = r, true
			}
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	pool.Shutdown()

	for i, job := range jobs {
		if !done[i] {
			out[i] = Result{ID: i, Name: job.Name, Path: job.Path, Error: ctx.Err()}
		}
	}
	return out
}
