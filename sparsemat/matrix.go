package sparsemat

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/sparseblas/semiring"
)

// zombieBias is the encoding offset for a deleted row index: a live row i
// is stored as i; a zombie is stored as -(i)-2, so that row 0 maps to -2
// and remains distinguishable from "no such row".
const zombieBias = 2

func encodeZombie(row int) int { return -row - zombieBias }
func decodeZombie(enc int) int { return -enc - zombieBias }
func isZombie(row int) bool    { return row < 0 }

// pendingTuple is one unsorted (i, j, v) insertion staged by SetElement,
// drained by Finalize.
type pendingTuple[T any] struct {
	row, col int
	val      T
}

// Matrix is a CSC-style, optionally hypersparse sparse matrix over element
// type T. Mutating operations (SetElement, RemoveElement) may leave it
// non-canonical; Finalize restores invariants (I1)–(I5). A matrix is
// "dirty" whenever nzombies > 0 or pending is non-empty.
//
// mu guards every field below it is declared alongside: the CSC arrays,
// the zombie count, and the pending sidecar. Kernels take a read lock only
// while taking a Snapshot of the arrays and then traverse the snapshot
// without holding it; SetElement/RemoveElement/Finalize take a
// write lock. Concurrent SetElement calls on the same matrix are
// explicitly undefined behavior for a single-writer-during-setElement
// caller contract; the lock only protects against torn reads of the
// backing slices, not against that contract.
type Matrix[T any] struct {
	mu sync.RWMutex

	rows, cols int
	typ        semiring.ElementType
	hyper      bool

	h []int // nvec column indices (hypersparse only)
	p []int // nvec+1 offsets into i/x
	i []int // row indices, possibly zombie-encoded
	x []T   // values, parallel to i

	nzombies int
	pending  []pendingTuple[T]
	// pendingOp resolves two pending tuples that target the same (i,j).
	// nil means duplicates are a hard error.
	pendingOp func(a, b T) T

	hyperThreshold float64 // empty-column fraction promoting to hypersparse
}

// DefaultHyperThreshold is the empty-column fraction above which Finalize
// promotes a matrix to hypersparse storage. Exposed as a package var so
// callers can tune it globally or per matrix via WithHyperThreshold.
var DefaultHyperThreshold = 1.0 / 16.0

// Option configures a Matrix at construction time.
type Option func(*matrixConfig)

type matrixConfig struct {
	hyper          bool
	hyperThreshold float64
}

// WithHypersparse requests hypersparse storage from the outset (format is
// still lossless-convertible later via ToHyper/ToNonHyper).
func WithHypersparse() Option {
	return func(c *matrixConfig) { c.hyper = true }
}

// WithHyperThreshold overrides DefaultHyperThreshold for one matrix.
func WithHyperThreshold(frac float64) Option {
	return func(c *matrixConfig) { c.hyperThreshold = frac }
}

// New creates an empty rows×cols matrix over element type T. typ should
// match T via semiring.ElementTypeOf[T]() for built-in numeric types, or
// semiring.Bool / semiring.User for the boolean and opaque-user domains
// (which ElementTypeOf cannot infer since it is constrained to Number).
func New[T any](rows, cols int, typ semiring.ElementType, opts ...Option) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("sparsemat.New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	cfg := matrixConfig{hyperThreshold: DefaultHyperThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Matrix[T]{
		rows:           rows,
		cols:           cols,
		typ:            typ,
		hyper:          cfg.hyper,
		hyperThreshold: cfg.hyperThreshold,
	}
	if cfg.hyper {
		m.h = []int{}
		m.p = []int{0}
	} else {
		m.p = make([]int, cols+1)
	}

	return m, nil
}

// SetPendingOp installs the operator applied when two pending tuples
// target the same (i,j) (operator_pending). Passing nil (the zero value)
// restores the "duplicates are an error" default.
func (m *Matrix[T]) SetPendingOp(op func(a, b T) T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingOp = op
}

// Rows returns the row count. Complexity O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. Complexity O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Type returns the catalog element type this matrix was constructed with.
func (m *Matrix[T]) Type() semiring.ElementType { return m.typ }

// IsHypersparse reports whether the matrix currently uses the hypersparse
// column-index sidecar h.
func (m *Matrix[T]) IsHypersparse() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hyper
}

// nvec returns the current vector (column) count: len(h) if hypersparse,
// else cols. Caller must hold at least a read lock.
func (m *Matrix[T]) nvec() int {
	if m.hyper {
		return len(m.h)
	}
	return m.cols
}

// IsDirty reports whether the matrix has zombies or pending tuples and
// therefore requires Finalize before any structural read.
func (m *Matrix[T]) IsDirty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.nzombies > 0 || len(m.pending) > 0
}

// NVals returns the number of stored entries after finalizing the matrix;
// dirty state is drained on demand.
func (m *Matrix[T]) NVals() (int, error) {
	if err := m.Finalize(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.x), nil
}

// checkBounds validates (row, col) against the matrix shape.
func (m *Matrix[T]) checkBounds(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("sparsemat: (%d,%d) out of [0,%d)x[0,%d): %w", row, col, m.rows, m.cols, ErrIndexOutOfBounds)
	}
	return nil
}
