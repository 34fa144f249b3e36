package mask

import "github.com/katalvlaran/sparseblas/sparsemat"

// Apply merges a kernel's intermediate result t into the caller-visible
// matrix c, honoring the mask m (nil meaning "all positions"), an
// optional accum operator, and the replace flag:
//
//   - accum == nil:            c⟨m⟩ = t
//   - accum != nil:            c⟨m⟩ = c accum t
//   - replace:                 masked-out positions of c are deleted
//
// Per column, the merge visits the union of the rows stored in c and t,
// looking up each row's c and t values and testing the mask for that row,
// so the work per column follows nnz(c)+nnz(t) rather than m (the row
// count) — the dense mask is never materialized.
func Apply[T any](c, t *sparsemat.Matrix[T], m *Mask[T], accum func(a, b T) T, replace bool) error {
	if err := c.Finalize(); err != nil {
		return err
	}
	if err := t.Finalize(); err != nil {
		return err
	}

	cols := c.Cols()
	for j := 0; j < cols; j++ {
		if err := mergeColumn(c, t, m, accum, replace, j); err != nil {
			return err
		}
	}

	return c.Finalize()
}

func columnRows[T any](m *sparsemat.Matrix[T], col int) ([]int, error) {
	if m == nil {
		return nil, nil
	}
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

// maskIncludesSparse returns, for mask m over column col, a predicate
// reporting whether a row passes the mask (structural/valued). A nil mask
// passes every row; a complemented mask inverts over the full row range,
// so it falls back to a per-row Includes check.
func maskIncludesSparse[T any](m *Mask[T], col int, rows int) (func(row int) (bool, error), error) {
	if m == nil {
		return func(int) (bool, error) { return true, nil }, nil
	}
	if m.complement {
		return func(row int) (bool, error) { return m.Includes(row, col) }, nil
	}

	passRows, err := columnRows(m.m, col)
	if err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(passRows))
	for _, r := range passRows {
		v, _, err := m.m.At(r, col)
		if err != nil {
			return nil, err
		}
		if m.kind == Structural || (m.kind == Valued && m.truthy(v)) {
			set[r] = true
		}
	}

	return func(row int) (bool, error) { return set[row], nil }, nil
}

func mergeColumn[T any](c, t *sparsemat.Matrix[T], m *Mask[T], accum func(a, b T) T, replace bool, col int) error {
	cRows, err := columnRows(c, col)
	if err != nil {
		return err
	}
	tRows, err := columnRows(t, col)
	if err != nil {
		return err
	}

	included, err := maskIncludesSparse(m, col, c.Rows())
	if err != nil {
		return err
	}

	touched := make(map[int]bool, len(cRows)+len(tRows))
	for _, r := range cRows {
		touched[r] = true
	}
	for _, r := range tRows {
		touched[r] = true
	}

	for row := range touched {
		in, err := included(row)
		if err != nil {
			return err
		}

		cVal, cOK, err := c.At(row, col)
		if err != nil {
			return err
		}
		tVal, tOK, err := t.At(row, col)
		if err != nil {
			return err
		}

		if err := applyCell(c, row, col, in, replace, accum, cVal, cOK, tVal, tOK); err != nil {
			return err
		}
	}

	return nil
}

func applyCell[T any](c *sparsemat.Matrix[T], row, col int, included, replace bool, accum func(a, b T) T, cVal T, cOK bool, tVal T, tOK bool) error {
	switch {
	case !included:
		if replace && cOK {
			return c.RemoveElement(row, col)
		}
		return nil
	case accum == nil:
		if tOK {
			return c.SetElement(row, col, tVal)
		}
		if cOK {
			return c.RemoveElement(row, col)
		}
		return nil
	default:
		switch {
		case cOK && tOK:
			return c.SetElement(row, col, accum(cVal, tVal))
		case tOK:
			return c.SetElement(row, col, tVal)
		}
		return nil
	}
}
