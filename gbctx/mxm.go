package gbctx

import (
	"sort"

	"github.com/katalvlaran/sparseblas/dispatch"
	"github.com/katalvlaran/sparseblas/kernel"
	"github.com/katalvlaran/sparseblas/mask"
	"github.com/katalvlaran/sparseblas/sauna"
	"github.com/katalvlaran/sparseblas/semiring"
	"github.com/katalvlaran/sparseblas/sparsemat"
)

// Context bundles the resources a parallel multiply shares across its
// column-chunk tasks: a Pool sized to the desired worker count, whose
// NumWorkers bounds both how many chunks ParallelGustavson carves a
// multiply into and how many of them RunErr lets run at once.
type Context struct {
	Pool    *Pool
	Workers int
}

// New builds a Context bounding concurrent work to Workers (0 meaning
// GOMAXPROCS).
func New(workers int) *Context {
	p := NewPool(workers)
	return &Context{Pool: p, Workers: p.NumWorkers()}
}

// Close releases the underlying Pool. Present for symmetry with New;
// Pool.Close itself is a no-op.
func (c *Context) Close() { c.Pool.Close() }

// ParallelGustavson partitions [0, B.Cols()) into Workers contiguous
// chunks and runs kernel.GustavsonRange over each chunk through c.Pool,
// each chunk borrowing its own Sauna from a shared pool. Pool.RunErr
// runs every chunk to completion even after one returns an error, and the
// first error is what ParallelGustavson returns; the caller never sees a
// partially assembled result, since assembly only happens after RunErr
// returns without error.
func ParallelGustavson[D, Z any](c *Context, a, b *sparsemat.Matrix[D], sr dispatch.Compiled[D, Z], m *mask.Mask[Z]) (*sparsemat.Matrix[Z], error) {
	if a.Cols() != b.Rows() {
		return nil, kernel.ErrDimensionMismatch
	}

	src, err := kernel.SnapshotPair(a, b)
	if err != nil {
		return nil, err
	}

	rows, cols := a.Rows(), b.Cols()
	workers := c.Workers
	if workers > cols {
		workers = cols
	}
	if workers < 1 {
		workers = 1
	}
	chunkSize := (cols + workers - 1) / workers

	saunaPool := sauna.NewPool[Z](rows)

	type chunkResult struct {
		start       int
		i           []int
		x           []Z
		p           []int
		colStartAbs int
	}
	results := make([]chunkResult, workers)

	tasks := make([]func() error, 0, workers)
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunkSize
		end := start + chunkSize
		if end > cols {
			end = cols
		}
		if start >= end {
			results[w] = chunkResult{start: w, colStartAbs: start}
			continue
		}

		tasks = append(tasks, func() error {
			sa := saunaPool.Acquire(rows)
			defer saunaPool.Release(sa)

			i, x, p, err := kernel.GustavsonRange(src, sr, m, sa, start, end)
			if err != nil {
				return err
			}
			results[w] = chunkResult{start: w, i: i, x: x, p: p, colStartAbs: start}
			return nil
		})
	}

	if err := c.Pool.RunErr(tasks); err != nil {
		return nil, err
	}

	sort.Slice(results, func(a, b int) bool { return results[a].start < results[b].start })

	newP := make([]int, 1, cols+1)
	var newI []int
	var newX []Z
	for _, r := range results {
		if len(r.p) == 0 {
			continue
		}
		base := len(newI)
		newI = append(newI, r.i...)
		newX = append(newX, r.x...)
		for _, off := range r.p[1:] {
			newP = append(newP, base+off)
		}
	}

	out, err := sparsemat.NewFromCanonicalCSC[Z](rows, cols, semiring.ElementTypeOfAny[Z](), false, nil, newP, newI, newX)
	if err != nil {
		return nil, err
	}

	return out, nil
}
