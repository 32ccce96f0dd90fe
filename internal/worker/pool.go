// Package worker provides a worker pool for running scenario files in parallel.
package worker

import (
	"sync"
	"sync/atomic"
)

// WorkItem is one file to process.
type WorkItem struct {
	Path  string
	Index int // position in the caller's input
}

// ProcessResult is the outcome of processing one WorkItem.
type ProcessResult struct {
	Path    string
	Index   int
	Passed  bool
	Skipped bool        // not processed because the pool was stopped
	Report  interface{} // opaque payload; typed by consumer
	Error   error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a fixed set of worker goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			p.resultChan <- ProcessResult{Path: item.Path, Index: item.Index, Skipped: true}
			continue
		}
		res := p.processFunc(item)
		res.Path, res.Index = item.Path, item.Index
		p.resultChan <- res
	}
}

// Submit queues an item. It blocks while the work buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip items not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes every path and returns the results in input order. With
// failFast set, files not yet started after the first failure are skipped.
func Run(paths []string, fn ProcessFunc, failFast bool, opts ...PoolOption) []ProcessResult {
	pool := NewPool(fn, opts...)
	pool.Start()

	go func() {
		for i, path := range paths {
			pool.Submit(WorkItem{Path: path, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, len(paths))
	for res := range pool.Results() {
		if failFast && !res.Skipped && (!res.Passed || res.Error != nil) {
			pool.Stop()
		}
		results[res.Index] = res
	}
	return results
}
