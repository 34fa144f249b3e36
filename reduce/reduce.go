// Package reduce implements the reduction collaborator: collapsing a
// matrix along an axis using a monoid.
package reduce

import "github.com/katalvlaran/sparseblas/sparsemat"

// Axis selects which dimension a reduction collapses.
type Axis uint8

const (
	// Rows collapses each row to a single scalar (reduce along columns).
	Rows Axis = iota
	// Cols collapses each column to a single scalar (reduce along rows).
	Cols
)

// ToVector reduces m along axis using monoid add with identity, producing
// one scalar per row (Axis Rows) or per column (Axis Cols). Positions
// with no contributing stored entries are left at identity implicitly —
// the caller's add/identity pair must be genuinely a monoid for the
// result to be well-defined independent of traversal order.
func ToVector[T any](m *sparsemat.Matrix[T], axis Axis, add func(a, b T) T, identity T) ([]T, error) {
	if err := m.Finalize(); err != nil {
		return nil, err
	}

	switch axis {
	case Cols:
		return reduceCols(m, add, identity)
	default:
		return reduceRows(m, add, identity)
	}
}

func reduceCols[T any](m *sparsemat.Matrix[T], add func(a, b T) T, identity T) ([]T, error) {
	out := make([]T, m.Cols())

	for col := 0; col < m.Cols(); col++ {
		vi, ok, err := m.VecIndexForColumn(col)
		if err != nil {
			return nil, err
		}
		if !ok {
			out[col] = identity
			continue
		}
		start, end := m.ColumnBounds(vi)
		acc := identity
		any := false
		for pos := start; pos < end; pos++ {
			v := m.ValueAt(pos)
			if any {
				acc = add(acc, v)
			} else {
				acc = v
				any = true
			}
		}
		out[col] = acc
	}

	return out, nil
}

func reduceRows[T any](m *sparsemat.Matrix[T], add func(a, b T) T, identity T) ([]T, error) {
	out := make([]T, m.Rows())
	touched := make([]bool, m.Rows())
	for i := range out {
		out[i] = identity
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
			if touched[row] {
				out[row] = add(out[row], v)
			} else {
				out[row] = v
				touched[row] = true
			}
		}
	}

	return out, nil
}
