// Package kernel implements the three multiply kernels of the engine:
// Gustavson/saxpy (dense accumulator via a Sauna workspace), dot-product
// (sparse row×column merge against A^T), and heap-merge (K-way min-heap
// over bounded-degree B columns). Each kernel consumes A, B, and an
// optional mask, and produces a fresh intermediate matrix; the mask &
// accumulator layer (package mask) is responsible for folding that
// intermediate into the caller's C.
package kernel

import (
	"errors"

	"github.com/katalvlaran/sparseblas/sparsemat"
)

// ErrDimensionMismatch is returned when A.Cols() != B.Rows().
var ErrDimensionMismatch = errors.New("kernel: A.Cols() must equal B.Rows()")

// vecIndexIn maps column col to a vector index into p, given a snapshot's
// hyper flag and h array (binary search when hypersparse, identity
// otherwise). Mirrors sparsemat's private vecIndex for read-only kernel
// consumption via the public Snapshot accessor.
func vecIndexIn(hyper bool, h []int, col, n int) (int, bool) {
	if !hyper {
		if col < 0 || col >= n {
			return 0, false
		}
		return col, true
	}
	lo, hi := 0, len(h)
	for lo < hi {
		mid := (lo + hi) / 2
		if h[mid] < col {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(h) && h[lo] == col {
		return lo, true
	}
	return 0, false
}

// promoteIfSparse applies the same empty-column-fraction promotion policy
// Finalize uses to a freshly built result matrix, so a kernel's output
// ends up hypersparse whenever the fraction of its columns that turned out
// empty exceeds sparsemat.DefaultHyperThreshold, regardless of which format
// the inputs used.
func promoteIfSparse[Z any](m *sparsemat.Matrix[Z]) error {
	if m.IsHypersparse() {
		return nil
	}
	_, _, p, _, _, err := m.Snapshot()
	if err != nil {
		return err
	}
	cols := m.Cols()
	if cols == 0 {
		return nil
	}
	nonEmpty := 0
	for j := 0; j < len(p)-1; j++ {
		if p[j+1] > p[j] {
			nonEmpty++
		}
	}
	emptyFraction := 1.0 - float64(nonEmpty)/float64(cols)
	if emptyFraction > sparsemat.DefaultHyperThreshold {
		return m.ToHyper()
	}
	return nil
}
