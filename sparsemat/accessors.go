package sparsemat

// Nvec returns the current vector (column) count: cols if non-hypersparse,
// else the number of non-empty columns recorded in h. Finalizes first so
// the count reflects canonical structure.
func (m *Matrix[T]) Nvec() (int, error) {
	if err := m.Finalize(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.nvec(), nil
}

// VecIndexForColumn maps column j to its vector index, after finalizing.
// ok is false when j is structurally empty under hypersparse storage.
func (m *Matrix[T]) VecIndexForColumn(j int) (vi int, ok bool, err error) {
	if err := m.Finalize(); err != nil {
		return 0, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	vi, ok = m.vecIndex(j)
	return vi, ok, nil
}

// ColumnOf returns the column index backing vector index vi (identity for
// non-hypersparse, a lookup into h otherwise). Caller must already have
// finalized and hold no lock of their own; used by read-only kernel loops.
func (m *Matrix[T]) ColumnOf(vi int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.hyper {
		return m.h[vi]
	}
	return vi
}

// ColumnBounds returns the [start, end) range into RowAt/ValueAt for
// vector index vi.
func (m *Matrix[T]) ColumnBounds(vi int) (start, end int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.p[vi], m.p[vi+1]
}

// RowAt returns the row index stored at backing position pos. The caller
// is responsible for only calling this after Finalize (no zombies remain).
func (m *Matrix[T]) RowAt(pos int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.i[pos]
}

// ValueAt returns the value stored at backing position pos.
func (m *Matrix[T]) ValueAt(pos int) T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.x[pos]
}

// RowHasEntry reports whether column j (already resolved to vi) holds an
// entry at row, via binary search over the canonical, zombie-free range.
func (m *Matrix[T]) RowHasEntry(vi, row int) (pos int, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lo, hi := m.p[vi], m.p[vi+1]
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case m.i[mid] == row:
			return mid, true
		case m.i[mid] < row:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

// Snapshot returns the full canonical CSC representation for read-only
// kernel consumption: (hyper, h, p, i, x). The slices are the matrix's own
// backing arrays, not copies; the caller must not mutate them. Finalizes
// first.
func (m *Matrix[T]) Snapshot() (hyper bool, h, p, i []int, x []T, err error) {
	if err := m.Finalize(); err != nil {
		return false, nil, nil, nil, nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hyper, m.h, m.p, m.i, m.x, nil
}
