// Package mask implements the GraphBLAS-style ⟨M⟩ contract: structural,
// valued, and complemented masks over an arbitrary element type, plus
// the accum/replace merge of a kernel's intermediate result into the
// caller's visible matrix.
package mask

import "github.com/katalvlaran/sparseblas/sparsemat"

// Kind selects how a mask matrix's entries are interpreted.
type Kind uint8

const (
	// Structural includes row i of column j iff M has a stored entry
	// at (i,j), regardless of its value.
	Structural Kind = iota
	// Valued includes row i of column j iff M's stored entry at (i,j)
	// is "truthy" (non-zero for numeric types, true for bool).
	Valued
)

// Mask wraps a matrix together with the interpretation of its entries and
// whether that interpretation is complemented (inverted).
type Mask[T any] struct {
	m          *sparsemat.Matrix[T]
	kind       Kind
	complement bool
	truthy     func(T) bool
}

// New builds a mask over matrix m, interpreted per kind. truthy is
// required when kind is Valued and ignored otherwise (structural masks
// never inspect the value). complement inverts the final membership
// test.
func New[T any](m *sparsemat.Matrix[T], kind Kind, complement bool, truthy func(T) bool) *Mask[T] {
	return &Mask[T]{m: m, kind: kind, complement: complement, truthy: truthy}
}

// None is the absence of a mask: every (i,j) is included.
func None[T any]() *Mask[T] { return nil }

// NNZ returns the mask matrix's stored entry count, used by the planner
// heuristic's mask-density test. ok is always true for a non-nil Mask; it
// exists so callers can pass a possibly-nil *Mask through the same
// two-value idiom used elsewhere in this package.
func (mk *Mask[T]) NNZ() (n int, ok bool, err error) {
	if mk == nil {
		return 0, false, nil
	}
	n, err = mk.m.NVals()
	return n, true, err
}

// Complemented returns a shallow copy of mk with its complement flag
// inverted, used by package descriptor to apply a per-call
// ComplementMask flag on top of whatever complement mk was built with.
// A nil *Mask stays nil: there is nothing to complement when no mask was
// supplied.
func (mk *Mask[T]) Complemented() *Mask[T] {
	if mk == nil {
		return nil
	}
	cp := *mk
	cp.complement = !cp.complement

	return &cp
}

// Includes reports whether (row, col) passes the mask. A nil *Mask always
// passes, matching the "no mask supplied" case throughout the kernel bank.
func (mk *Mask[T]) Includes(row, col int) (bool, error) {
	if mk == nil {
		return true, nil
	}

	var present bool
	v, ok, err := mk.m.At(row, col)
	if err != nil {
		return false, err
	}
	present = ok

	var in bool
	switch mk.kind {
	case Structural:
		in = present
	case Valued:
		in = present && mk.truthy(v)
	}

	if mk.complement {
		in = !in
	}

	return in, nil
}
