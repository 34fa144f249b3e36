// Package apply implements the apply-unary collaborator: running a unary
// operator element-wise over a matrix's stored entries. It shares the
// matrix store with mxm and ewise but none of their kernel code.
package apply

import (
	"github.com/katalvlaran/sparseblas/semiring"
	"github.com/katalvlaran/sparseblas/sparsemat"
)

// Unary runs op over every stored entry of m, producing a fresh matrix of
// the same shape and pattern. Apply never introduces or removes structural
// entries; an op that maps a stored value to the monoid identity still
// leaves an explicit entry behind.
func Unary[S, T any](m *sparsemat.Matrix[S], op func(v S) T) (*sparsemat.Matrix[T], error) {
	if err := m.Finalize(); err != nil {
		return nil, err
	}

	out, err := sparsemat.New[T](m.Rows(), m.Cols(), semiring.ElementTypeOfAny[T]())
	if err != nil {
		return nil, err
	}

	for col := 0; col < m.Cols(); col++ {
		vi, ok, err := m.VecIndexForColumn(col)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		start, end := m.ColumnBounds(vi)
		for pos := start; pos < end; pos++ {
			row := m.RowAt(pos)
			v := m.ValueAt(pos)
			if err := out.SetElement(row, col, op(v)); err != nil {
				return nil, err
			}
		}
	}

	return out, out.Finalize()
}

// BindFirst fixes a binary operator's first argument to scalar, reducing it
// to a unary operator of the form op(scalar, v), then runs it element-wise
// via Unary. Mirrors GrB's apply-with-scalar family, e.g. C<M> = op(scalar,
// A) where A supplies the second argument at every stored entry.
func BindFirst[S, T any](m *sparsemat.Matrix[S], op func(a, b S) T, scalar S) (*sparsemat.Matrix[T], error) {
	return Unary(m, func(v S) T { return op(scalar, v) })
}

// BindSecond fixes a binary operator's second argument to scalar, reducing
// it to a unary operator of the form op(v, scalar), then runs it
// element-wise via Unary. Mirrors GrB's apply-with-scalar family, e.g.
// C<M> = op(A, scalar) where A supplies the first argument at every stored
// entry.
func BindSecond[S, T any](m *sparsemat.Matrix[S], op func(a, b S) T, scalar S) (*sparsemat.Matrix[T], error) {
	return Unary(m, func(v S) T { return op(v, scalar) })
}
