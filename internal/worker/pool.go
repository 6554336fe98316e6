// Package worker counts play trees in parallel.
//
// Every job carries its own Game; workers never share one.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/onitama-go/internal/engine"
)

// Job is one root play of a play tree.
type Job struct {
	Game  *engine.Game // Position before Play, owned by the worker
	Play  engine.Play
	Depth int // Plies still to count after Play
	Index int // Position of Play in the root play list
}

// Result is the leaf count below one root play.
type Result struct {
	Index int
	Play  engine.Play
	Nodes uint64
	Err   error
}

// JobFunc runs one job.
type JobFunc func(job Job) Result

// Pool runs jobs on a fixed set of goroutines.
type Pool struct {
	workers int
	queue   int
	run     JobFunc

	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithQueue sets how many jobs and results may wait unread. Values below 1
// are ignored.
func WithQueue(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.queue = n
		}
	}
}

// NewPool creates a pool that runs jobs with run. By default it has one
// worker and a queue of 10.
func NewPool(run JobFunc, opts ...Option) *Pool {
	p := &Pool{workers: 1, queue: 10, run: run}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.queue)
	p.results = make(chan Result, p.queue)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for range p.workers {
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.run(job)
	}
}

// Submit queues a job, blocking while the queue is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop makes the workers skip every job they have not started yet.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results delivers one result per job run, in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Workers returns the number of goroutines the pool runs.
func (p *Pool) Workers() int {
	return p.workers
}
