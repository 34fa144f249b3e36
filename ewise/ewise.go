// Package ewise implements the element-wise binary collaborators: they
// consume two aligned sparse matrices and a binary operator, producing a
// third. They share the matrix store and the operator catalog with mxm
// but none of its kernel code. Add computes the union of patterns, Mult
// the intersection.
package ewise

import "github.com/katalvlaran/sparseblas/sparsemat"

// Add computes the union-pattern element-wise combination of a and b
// under op: entries present in either operand are combined (op applied
// when both are present, passed through unchanged when only one is).
func Add[T any](a, b *sparsemat.Matrix[T], op func(x, y T) T) (*sparsemat.Matrix[T], error) {
	return merge(a, b, op, true)
}

// Mult computes the intersection-pattern element-wise combination of a
// and b under op: only positions present in both operands survive.
func Mult[T any](a, b *sparsemat.Matrix[T], op func(x, y T) T) (*sparsemat.Matrix[T], error) {
	return merge(a, b, op, false)
}

func merge[T any](a, b *sparsemat.Matrix[T], op func(x, y T) T, union bool) (*sparsemat.Matrix[T], error) {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, sparsemat.ErrDimensionMismatch
	}
	if err := a.Finalize(); err != nil {
		return nil, err
	}
	if err := b.Finalize(); err != nil {
		return nil, err
	}

	out, err := sparsemat.New[T](a.Rows(), a.Cols(), a.Type())
	if err != nil {
		return nil, err
	}

	for col := 0; col < a.Cols(); col++ {
		if err := mergeColumn(a, b, out, op, union, col); err != nil {
			return nil, err
		}
	}

	return out, out.Finalize()
}

func mergeColumn[T any](a, b, out *sparsemat.Matrix[T], op func(x, y T) T, union bool, col int) error {
	aRows, err := columnRows(a, col)
	if err != nil {
		return err
	}
	bRows, err := columnRows(b, col)
	if err != nil {
		return err
	}

	bSet := make(map[int]bool, len(bRows))
	for _, r := range bRows {
		bSet[r] = true
	}
	aSet := make(map[int]bool, len(aRows))
	for _, r := range aRows {
		aSet[r] = true
	}

	for _, row := range aRows {
		av, _, err := a.At(row, col)
		if err != nil {
			return err
		}
		if bSet[row] {
			bv, _, err := b.At(row, col)
			if err != nil {
				return err
			}
			if err := out.SetElement(row, col, op(av, bv)); err != nil {
				return err
			}
		} else if union {
			if err := out.SetElement(row, col, av); err != nil {
				return err
			}
		}
	}
	if union {
		for _, row := range bRows {
			if aSet[row] {
				continue
			}
			bv, _, err := b.At(row, col)
			if err != nil {
				return err
			}
			if err := out.SetElement(row, col, bv); err != nil {
				return err
			}
		}
	}

	return nil
}

func columnRows[T any](m *sparsemat.Matrix[T], col int) ([]int, error) {
	vi, ok, err := m.VecIndexForColumn(col)
	if err != nil || !ok {
		return nil, err
	}
	start, end := m.ColumnBounds(vi)
	rows := make([]int, 0, end-start)
	for pos := start; pos < end; pos++ {
		rows = append(rows, m.RowAt(pos))
	}

	return rows, nil
}
