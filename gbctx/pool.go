// Package gbctx implements the concurrency harness: a bounded-concurrency
// task runner plus a column-range scheduler for the Gustavson kernel, and
// Sauna workspace pooling so the column chunks of one multiply call share
// workspaces instead of each allocating its own.
package gbctx

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool bounds how many column chunks of a single Mxm call run concurrently.
// It does not pin goroutines: each Run/RunErr spins up fresh goroutines
// capped at numWorkers via errgroup.Group.SetLimit, so an idle Pool between
// calls costs nothing, unlike a channel-fed pool of permanently blocked
// workers. What the pool actually owns across calls is numWorkers itself —
// ParallelGustavson reads it via NumWorkers to decide how many column
// chunks to carve the multiply into before ever calling Run.
type Pool struct {
	numWorkers int
}

// NewPool creates a pool that caps concurrent tasks at numWorkers.
// numWorkers<=0 defaults to GOMAXPROCS.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	return &Pool{numWorkers: numWorkers}
}

// NumWorkers returns the pool's concurrency bound, used by callers to choose
// how many contiguous column chunks to carve a multiply into.
func (p *Pool) NumWorkers() int { return p.numWorkers }

// Close is a no-op: Pool holds no goroutines or channels between calls, so
// there is nothing to tear down. Kept so callers written against a
// persistent-pool lifecycle (acquire once, defer Close) don't need to
// change.
func (p *Pool) Close() {}

// Run schedules tasks across at most NumWorkers concurrent goroutines and
// blocks until every task has completed. Errors are not possible since
// tasks cannot fail; use RunErr for fallible work.
func (p *Pool) Run(tasks []func()) {
	_ = p.RunErr(wrapInfallible(tasks))
}

// RunErr schedules tasks across at most NumWorkers concurrent goroutines
// and blocks until every task has completed. A task's error does not stop
// the others: every task is started and run to completion, as with a plain
// errgroup.Group. The first error encountered is returned; nil if every
// task succeeded.
func (p *Pool) RunErr(tasks []func() error) error {
	if len(tasks) == 0 {
		return nil
	}

	var g errgroup.Group
	g.SetLimit(p.numWorkers)
	for _, fn := range tasks {
		g.Go(fn)
	}

	return g.Wait()
}

func wrapInfallible(tasks []func()) []func() error {
	wrapped := make([]func() error, len(tasks))
	for i, fn := range tasks {
		fn := fn
		wrapped[i] = func() error {
			fn()
			return nil
		}
	}

	return wrapped
}
