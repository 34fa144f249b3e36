package sparsemat

import (
	"fmt"

	"github.com/katalvlaran/sparseblas/semiring"
)

// NewFromCanonicalCSC constructs a fresh, already-canonical matrix from
// precomputed CSC arrays. It is the bulk-load entry point used by the dot
// and heap kernels, which assemble an entire result column by column and
// have no need to go through SetElement/Finalize one tuple at a time.
// Arrays are validated for internal consistency before being adopted;
// ownership of the slices transfers to the returned Matrix (callers must
// not alias them afterward).
func NewFromCanonicalCSC[T any](rows, cols int, typ semiring.ElementType, hyper bool, h, p, i []int, x []T) (*Matrix[T], error) {
	if err := validateCanonicalCSC(rows, cols, hyper, h, p, i, len(x)); err != nil {
		return nil, err
	}

	m := &Matrix[T]{
		rows: rows, cols: cols, typ: typ, hyper: hyper,
		h: h, p: p, i: i, x: x, hyperThreshold: DefaultHyperThreshold,
	}

	return m, nil
}

// ReplaceCanonical overwrites m's backing storage with a freshly computed
// canonical CSC result, atomically from the point of view of any
// concurrent reader (single lock acquisition, no partial state ever
// observed). It follows a build-new-then-swap discipline: a caller builds
// h/p/i/x in full before calling ReplaceCanonical, so a failure mid-build
// never touches m. The multiply kernels do not call it; they return a new
// matrix built with NewFromCanonicalCSC.
func (m *Matrix[T]) ReplaceCanonical(hyper bool, h, p, i []int, x []T) error {
	if err := validateCanonicalCSC(m.rows, m.cols, hyper, h, p, i, len(x)); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.hyper = hyper
	m.h = h
	m.p = p
	m.i = i
	m.x = x
	m.nzombies = 0
	m.pending = nil

	return nil
}

func validateCanonicalCSC(rows, cols int, hyper bool, h, p, i []int, nvals int) error {
	if hyper {
		if len(p) != len(h)+1 {
			return fmt.Errorf("sparsemat: hypersparse p/h length mismatch: %w", ErrDimensionMismatch)
		}
		for k := 1; k < len(h); k++ {
			if h[k] <= h[k-1] {
				return fmt.Errorf("sparsemat: h not strictly increasing at %d: %w", k, ErrDimensionMismatch)
			}
		}
	} else {
		if len(p) != cols+1 {
			return fmt.Errorf("sparsemat: non-hypersparse p length mismatch: %w", ErrDimensionMismatch)
		}
	}
	if p[0] != 0 || p[len(p)-1] != len(i) || len(i) != nvals {
		return fmt.Errorf("sparsemat: p/i/x length mismatch: %w", ErrDimensionMismatch)
	}
	for vi := 0; vi < len(p)-1; vi++ {
		if p[vi+1] < p[vi] {
			return fmt.Errorf("sparsemat: p not monotone at %d: %w", vi, ErrDimensionMismatch)
		}
		for k := p[vi] + 1; k < p[vi+1]; k++ {
			if i[k] <= i[k-1] {
				return fmt.Errorf("sparsemat: rows not strictly increasing in column %d: %w", vi, ErrDimensionMismatch)
			}
		}
		for k := p[vi]; k < p[vi+1]; k++ {
			if i[k] < 0 || i[k] >= rows {
				return fmt.Errorf("sparsemat: row %d out of range in column %d: %w", i[k], vi, ErrIndexOutOfBounds)
			}
		}
	}

	return nil
}
