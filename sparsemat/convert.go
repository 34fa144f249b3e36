package sparsemat

// ToHyper converts the matrix to hypersparse storage in place. Lossless:
// it only changes which columns are materialized in h versus implied by
// [0,cols). Finalizes first so the conversion starts from canonical form.
func (m *Matrix[T]) ToHyper() error {
	if err := m.Finalize(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hyper {
		return nil
	}

	h := make([]int, 0, len(m.p)-1)
	p := make([]int, 1, len(m.p))
	for j := 0; j < m.cols; j++ {
		if m.p[j] == m.p[j+1] {
			continue
		}
		h = append(h, j)
		p = append(p, m.p[j+1])
	}

	m.hyper = true
	m.h = h
	m.p = p

	return nil
}

// ToNonHyper converts the matrix to non-hypersparse (full cols+1 pointer
// array) storage in place. Lossless; empty columns are represented by
// zero-width ranges.
func (m *Matrix[T]) ToNonHyper() error {
	if err := m.Finalize(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hyper {
		return nil
	}

	p := make([]int, m.cols+1)
	hi := 0
	cum := 0
	for j := 0; j < m.cols; j++ {
		if hi < len(m.h) && m.h[hi] == j {
			cum = m.p[hi+1]
			hi++
		}
		p[j+1] = cum
	}

	m.hyper = false
	m.h = nil
	m.p = p

	return nil
}

// Clone returns a deep, independent copy of m, including any pending
// mutations and zombies (Clone does not finalize).
func (m *Matrix[T]) Clone() *Matrix[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := &Matrix[T]{
		rows: m.rows, cols: m.cols, typ: m.typ, hyper: m.hyper,
		nzombies: m.nzombies, pendingOp: m.pendingOp, hyperThreshold: m.hyperThreshold,
	}
	out.h = append([]int(nil), m.h...)
	out.p = append([]int(nil), m.p...)
	out.i = append([]int(nil), m.i...)
	out.x = append([]T(nil), m.x...)
	out.pending = append([]pendingTuple[T](nil), m.pending...)

	return out
}

// Transpose materializes A^T as a new canonical matrix: row i of A becomes
// column i of A^T. Used internally by the dot-product kernel, which needs
// row access into A, and exposed publicly since every GraphBLAS-shaped
// engine does.
func Transpose[T any](a *Matrix[T]) (*Matrix[T], error) {
	if err := a.Finalize(); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	out, err := New[T](a.cols, a.rows, a.typ)
	if err != nil {
		return nil, err
	}

	// Bucket by destination column (== source row) via counting sort: two
	// passes over a.i, O(nnz + rows) time, preserves determinism.
	counts := make([]int, a.rows+1)
	a.forEachEntry(func(_, row int, _ T) {
		counts[row+1]++
	})
	for r := 0; r < a.rows; r++ {
		counts[r+1] += counts[r]
	}

	outI := make([]int, counts[a.rows])
	outX := make([]T, counts[a.rows])
	cursor := append([]int(nil), counts...)
	a.forEachEntry(func(col, row int, v T) {
		pos := cursor[row]
		outI[pos] = col
		outX[pos] = v
		cursor[row]++
	})

	out.i = outI
	out.x = outX
	out.p = counts
	// Rows within each destination column are already increasing because
	// the counting-sort pass visits source columns (destination rows) in
	// ascending order for each fixed destination column bucket only when
	// the source itself is column-major sorted; re-sort each bucket to
	// guarantee I1 regardless of source iteration order.
	out.sortColumns()

	if promote := out.shouldPromote(out.nonEmptyColumnCount()); promote {
		if err := out.ToHyper(); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// forEachEntry visits every live (col, row, val) triple in canonical
// column order. Caller must hold at least a read lock and the matrix must
// already be finalized.
func (m *Matrix[T]) forEachEntry(fn func(col, row int, val T)) {
	for vi := 0; vi < m.nvec(); vi++ {
		col := vi
		if m.hyper {
			col = m.h[vi]
		}
		for k := m.p[vi]; k < m.p[vi+1]; k++ {
			fn(col, m.i[k], m.x[k])
		}
	}
}

// nonEmptyColumnCount returns nvec under the current format.
func (m *Matrix[T]) nonEmptyColumnCount() int {
	count := 0
	for vi := 0; vi < m.nvec(); vi++ {
		if m.p[vi+1] > m.p[vi] {
			count++
		}
	}
	return count
}

// sortColumns restores (I1) within each column; used after a bucketed
// write whose intra-column order is not otherwise guaranteed.
func (m *Matrix[T]) sortColumns() {
	for vi := 0; vi < m.nvec(); vi++ {
		start, end := m.p[vi], m.p[vi+1]
		insertionSortByRow(m.i[start:end], m.x[start:end])
	}
}

// insertionSortByRow sorts parallel row/value slices by row. Columns are
// short relative to total nnz in the sparse regime this engine targets, so
// insertion sort avoids interface-based sort.Slice allocation overhead.
func insertionSortByRow[T any](rows []int, vals []T) {
	for k := 1; k < len(rows); k++ {
		r, v := rows[k], vals[k]
		j := k - 1
		for j >= 0 && rows[j] > r {
			rows[j+1] = rows[j]
			vals[j+1] = vals[j]
			j--
		}
		rows[j+1] = r
		vals[j+1] = v
	}
}
