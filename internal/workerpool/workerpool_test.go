// Copyright 2025 go-lanes Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 3, 100, 101} {
		results := make([]int, n)
		err := pool.ParallelFor(context.Background(), n, func(start, end int) error {
			for i := start; i < end; i++ {
				results[i] = i * 2
			}
			return nil
		})
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		for i := range n {
			if results[i] != i*2 {
				t.Errorf("n=%d: results[%d] = %d, want %d", n, i, results[i], i*2)
			}
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	var sum atomic.Int64
	err := pool.ParallelForAtomic(context.Background(), n, func(i int) error {
		sum.Add(int64(i))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := sum.Load(), int64(n*(n-1)/2); got != want {
		t.Errorf("sum = %d, want %d", got, want)
	}
}

func TestFirstErrorStopsWork(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	boom := errors.New("boom")
	var calls atomic.Int64
	err := pool.ParallelForAtomic(context.Background(), 10000, func(i int) error {
		calls.Add(1)
		if i == 5 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if calls.Load() == 10000 {
		t.Errorf("all indices ran after an error")
	}

	err = pool.ParallelFor(context.Background(), 8, func(start, end int) error {
		if start == 0 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("ParallelFor err = %v, want %v", err, boom)
	}
}

func TestCanceledContext(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pool.ParallelFor(ctx, 10, func(start, end int) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestConcurrentCallers(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var g errgroup.Group
	var total atomic.Int64
	for range 8 {
		g.Go(func() error {
			return pool.ParallelFor(context.Background(), 50, func(start, end int) error {
				total.Add(int64(end - start))
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if total.Load() != 8*50 {
		t.Errorf("processed %d items, want %d", total.Load(), 8*50)
	}
}

func TestClose(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close()

	err := pool.ParallelFor(context.Background(), 10, func(start, end int) error { return nil })
	if !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}
}
