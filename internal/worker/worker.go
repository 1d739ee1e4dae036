// Package worker runs independent tasks on a bounded number of goroutines.
//
// A Pool limits concurrency with a semaphore and aggregates every task error into a MultiError.
// In fail-fast mode the first error cancels the pool context, so tasks still waiting for a slot
// are dropped and running tasks can stop early.
package worker

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/mvnmin/mvnmin/internal/errors"
)

// Task represents a unit of work that can be executed
type Task func(ctx context.Context) error

// Option configures a Pool.
type Option func(*Pool)

// WithFailFast makes the first task error cancel every pending task.
func WithFailFast() Option {
	return func(wp *Pool) {
		wp.failFast = true
	}
}

// Pool manages concurrent task execution with a configurable number of workers
type Pool struct {
	ctx       context.Context
	cancel    context.CancelFunc
	semaphore *semaphore.Weighted
	allErrors *errors.MultiError
	wg        sync.WaitGroup
	errorsMu  sync.Mutex
	failFast  bool
}

// NewWorkerPool creates a pool that runs at most maxWorkers tasks at once. Values below one mean one.
func NewWorkerPool(ctx context.Context, maxWorkers int, opts ...Option) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	wp := &Pool{
		ctx:       ctx,
		cancel:    cancel,
		semaphore: semaphore.NewWeighted(int64(maxWorkers)),
		allErrors: &errors.MultiError{},
	}

	for _, opt := range opts {
		opt(wp)
	}

	return wp
}

// Submit schedules task. It never blocks; the task waits for a free worker in its own goroutine.
func (wp *Pool) Submit(task Task) {
	wp.wg.Add(1)

	go func() {
		defer wp.wg.Done()

		if err := wp.semaphore.Acquire(wp.ctx, 1); err != nil {
			return
		}

		defer wp.semaphore.Release(1)

		if wp.ctx.Err() != nil {
			return
		}

		if err := task(wp.ctx); err != nil {
			wp.appendError(err)
		}
	}()
}

// Wait blocks until all submitted tasks finish and returns the collected errors.
// If the parent context was cancelled before any task failed, its error is returned.
func (wp *Pool) Wait() error {
	wp.wg.Wait()

	wp.errorsMu.Lock()
	err := wp.allErrors.ErrorOrNil()
	wp.errorsMu.Unlock()

	parentErr := context.Cause(wp.ctx)

	wp.cancel()

	if err != nil {
		return err
	}

	if parentErr != nil {
		return errors.New(parentErr)
	}

	return nil
}

func (wp *Pool) appendError(err error) {
	wp.errorsMu.Lock()
	wp.allErrors = wp.allErrors.Append(err)
	wp.errorsMu.Unlock()

	if wp.failFast {
		wp.cancel()
	}
}
