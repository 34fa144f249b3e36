package sparsemat

import "sort"

// vecIndex maps a column j to its position in h (hypersparse) or returns j
// directly (non-hypersparse). ok is false when j has no stored vector yet
// (hypersparse, column absent from h) — the column is structurally empty.
// Caller must hold at least a read lock.
func (m *Matrix[T]) vecIndex(j int) (vi int, ok bool) {
	if !m.hyper {
		return j, true
	}
	idx := sort.SearchInts(m.h, j)
	if idx < len(m.h) && m.h[idx] == j {
		return idx, true
	}
	return 0, false
}

// findInColumn returns the position in i/x of row within canonical column
// vector vi, via binary search over the strictly increasing live (I1)
// sub-range. Zombie-encoded entries are skipped by treating them as not
// found for insertion purposes (RemoveElement on an already-zombie row is
// a no-op). Caller must hold at least a read lock.
func (m *Matrix[T]) findInColumn(vi, row int) (pos int, found bool) {
	lo, hi := m.p[vi], m.p[vi+1]
	for lo < hi {
		mid := (lo + hi) / 2
		r := m.i[mid]
		if isZombie(r) {
			r = decodeZombie(r)
		}
		switch {
		case r == row:
			return mid, !isZombie(m.i[mid])
		case r < row:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// SetElement stages (row, col, v) as a pending tuple: it appends to
// pending and never sorts immediately. Safe to call repeatedly; the
// actual merge into canonical storage happens in Finalize.
func (m *Matrix[T]) SetElement(row, col int, v T) error {
	if err := m.checkBounds(row, col); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, pendingTuple[T]{row: row, col: col, val: v})

	return nil
}

// RemoveElement deletes the entry at (row, col). If the entry is present
// in canonical storage it is zombied in place (row index negated); if it
// only exists as a pending tuple, the pending tuple is dropped; otherwise
// RemoveElement is a silent no-op (removing an absent entry is not an
// error).
func (m *Matrix[T]) RemoveElement(row, col int) error {
	if err := m.checkBounds(row, col); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Drop any pending tuples for this cell first; they would otherwise
	// resurrect a deleted value on the next Finalize.
	filtered := m.pending[:0]
	for _, pt := range m.pending {
		if pt.row == row && pt.col == col {
			continue
		}
		filtered = append(filtered, pt)
	}
	m.pending = filtered

	vi, ok := m.vecIndex(col)
	if !ok {
		return nil
	}
	pos, found := m.findInColumn(vi, row)
	if !found {
		return nil
	}
	m.i[pos] = encodeZombie(row)
	m.nzombies++

	return nil
}

// At returns the value stored at (row, col), or the zero value of T if no
// entry is present. At finalizes the matrix first, since it must
// distinguish "absent" from "present with zero value" against canonical
// storage, and reads drain dirty state on demand.
func (m *Matrix[T]) At(row, col int) (T, bool, error) {
	var zero T
	if err := m.checkBounds(row, col); err != nil {
		return zero, false, err
	}
	if err := m.Finalize(); err != nil {
		return zero, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	vi, ok := m.vecIndex(col)
	if !ok {
		return zero, false, nil
	}
	pos, found := m.findInColumn(vi, row)
	if !found {
		return zero, false, nil
	}

	return m.x[pos], true, nil
}
