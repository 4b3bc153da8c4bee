// Copyright 2025 go-lanes Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs verification work on a fixed set of persistent
// goroutines. A Pool is created once per run and shared by every backend,
// so fanning out over backends does not multiply the goroutine count.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ParallelFor(ctx, iterations, func(start, end int) error {
//	    return checkRange(start, end)
//	})
package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by work submitted after Close.
var ErrClosed = errors.New("workerpool: pool is closed")

// Pool is a set of persistent workers. It is safe for concurrent use;
// concurrent ParallelFor calls share the workers.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	mu         sync.RWMutex
	closed     bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts numWorkers workers. If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work has finished. It is safe to
// call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.workC)
		p.mu.Unlock()
	})
}

// firstError keeps the first error reported by any worker.
type firstError struct {
	once sync.Once
	err  error
	set  atomic.Bool
}

func (f *firstError) record(err error) {
	if err == nil {
		return
	}
	f.once.Do(func() {
		f.err = err
		f.set.Store(true)
	})
}

// submit queues one item per worker function and waits for all of them.
func (p *Pool) submit(fns []func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		p.workC <- workItem{fn: fn, barrier: &wg}
	}
	wg.Wait()
	return nil
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn on each. It returns the first error from fn or ctx. Ranges not yet
// started when an error occurs are skipped.
func (p *Pool) ParallelFor(ctx context.Context, n int, fn func(start, end int) error) error {
	if n <= 0 {
		return ctx.Err()
	}
	workers := min(p.numWorkers, n)
	chunk := (n + workers - 1) / workers

	var first firstError
	fns := make([]func(), 0, workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		fns = append(fns, func() {
			if first.set.Load() {
				return
			}
			if err := ctx.Err(); err != nil {
				first.record(err)
				return
			}
			first.record(fn(start, end))
		})
	}
	if err := p.submit(fns); err != nil {
		return err
	}
	return first.err
}

// ParallelForAtomic calls fn for every index in [0, n), handing indices to
// workers one at a time. Use it when the cost per index varies. It stops
// handing out indices after the first error.
func (p *Pool) ParallelForAtomic(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}
	workers := min(p.numWorkers, n)

	var next atomic.Int64
	var first firstError
	fns := make([]func(), workers)
	for w := range fns {
		fns[w] = func() {
			for !first.set.Load() {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				if err := ctx.Err(); err != nil {
					first.record(err)
					return
				}
				first.record(fn(i))
			}
		}
	}
	if err := p.submit(fns); err != nil {
		return err
	}
	return first.err
}
