package sparsemat

import "sort"

// Finalize restores canonical form: it sort-merges pending tuples into
// their target columns (resolving same-(i,j) duplicates with pendingOp,
// or failing with ErrDuplicatePending), then compacts zombies out of the
// backing arrays, then recomputes nvec and the hypersparse format
// decision. Finalize is idempotent: calling it on an already-canonical
// matrix is a cheap no-op.
//
// Policy decision: when a pending tuple targets a row that already holds
// a live canonical value, the pending value wins (setElement is
// last-write-wins against existing state, exactly as it is against a
// zombie). operator_pending only resolves collisions *among pending
// tuples themselves* targeting the same (i,j).
func (m *Matrix[T]) Finalize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) == 0 && m.nzombies == 0 {
		return nil // already canonical; idempotent fast path
	}

	pendingByCol, err := m.groupPending()
	if err != nil {
		return err
	}

	candidateCols := m.activeColumns(pendingByCol)

	// Pass 1: merge every candidate column and keep only the non-empty
	// ones, in column order, so the hypersparse decision (step 3) sees
	// the true final population before any array is allocated.
	type mergedCol struct {
		col     int
		entries []mergedEntry[T]
	}
	nonEmpty := make([]mergedCol, 0, len(candidateCols))
	for _, j := range candidateCols {
		entries := m.mergeColumn(j, pendingByCol[j])
		if len(entries) > 0 {
			nonEmpty = append(nonEmpty, mergedCol{col: j, entries: entries})
		}
	}

	promote := m.shouldPromote(len(nonEmpty))

	// Pass 2: allocate final arrays now that the format is decided.
	var newH []int
	var newP []int
	var newI []int
	var newX []T
	if promote {
		newH = make([]int, 0, len(nonEmpty))
		newP = make([]int, 1, len(nonEmpty)+1)
	} else {
		newP = make([]int, m.cols+1)
	}
	newP[0] = 0

	nextNonEmpty := 0
	for j := 0; j < m.cols; j++ {
		if !promote {
			if nextNonEmpty < len(nonEmpty) && nonEmpty[nextNonEmpty].col == j {
				for _, e := range nonEmpty[nextNonEmpty].entries {
					newI = append(newI, e.row)
					newX = append(newX, e.val)
				}
				nextNonEmpty++
			}
			newP[j+1] = len(newI)
			continue
		}
		if nextNonEmpty < len(nonEmpty) && nonEmpty[nextNonEmpty].col == j {
			newH = append(newH, j)
			for _, e := range nonEmpty[nextNonEmpty].entries {
				newI = append(newI, e.row)
				newX = append(newX, e.val)
			}
			newP = append(newP, len(newI))
			nextNonEmpty++
		}
	}

	m.hyper = promote
	m.h = newH
	m.p = newP
	m.i = newI
	m.x = newX
	m.nzombies = 0
	m.pending = nil

	return nil
}

// groupPending sorts pending tuples by (col, row) and resolves same-(i,j)
// duplicates via pendingOp, returning one resolved tuple per (col, row).
func (m *Matrix[T]) groupPending() (map[int][]pendingTuple[T], error) {
	pend := make([]pendingTuple[T], len(m.pending))
	copy(pend, m.pending)
	sort.Slice(pend, func(a, b int) bool {
		if pend[a].col != pend[b].col {
			return pend[a].col < pend[b].col
		}
		return pend[a].row < pend[b].row
	})

	byCol := make(map[int][]pendingTuple[T])
	for idx := 0; idx < len(pend); {
		j, row := pend[idx].col, pend[idx].row
		val := pend[idx].val
		idx++
		for idx < len(pend) && pend[idx].col == j && pend[idx].row == row {
			if m.pendingOp == nil {
				return nil, ErrDuplicatePending
			}
			val = m.pendingOp(val, pend[idx].val)
			idx++
		}
		byCol[j] = append(byCol[j], pendingTuple[T]{row: row, col: j, val: val})
	}

	return byCol, nil
}

// activeColumns returns the sorted union of columns with current storage
// and columns with pending inserts.
func (m *Matrix[T]) activeColumns(pendingByCol map[int][]pendingTuple[T]) []int {
	seen := make(map[int]struct{})
	if m.hyper {
		for _, j := range m.h {
			seen[j] = struct{}{}
		}
	} else {
		for j := 0; j < m.cols; j++ {
			seen[j] = struct{}{}
		}
	}
	for j := range pendingByCol {
		seen[j] = struct{}{}
	}

	cols := make([]int, 0, len(seen))
	for j := range seen {
		cols = append(cols, j)
	}
	sort.Ints(cols)

	return cols
}

type mergedEntry[T any] struct {
	row int
	val T
}

// mergeColumn produces the strictly row-increasing live entries of column
// j after applying pending inserts: existing canonical (non-zombie) values
// carry forward; pending values overwrite (new rows are inserted).
func (m *Matrix[T]) mergeColumn(j int, pending []pendingTuple[T]) []mergedEntry[T] {
	var existing []mergedEntry[T]
	if vi, ok := m.vecIndex(j); ok {
		for k := m.p[vi]; k < m.p[vi+1]; k++ {
			r := m.i[k]
			if isZombie(r) {
				continue
			}
			existing = append(existing, mergedEntry[T]{row: r, val: m.x[k]})
		}
	}

	if len(pending) == 0 {
		return existing
	}

	merged := make([]mergedEntry[T], 0, len(existing)+len(pending))
	ei, pi := 0, 0
	for ei < len(existing) && pi < len(pending) {
		switch {
		case existing[ei].row < pending[pi].row:
			merged = append(merged, existing[ei])
			ei++
		case existing[ei].row > pending[pi].row:
			merged = append(merged, mergedEntry[T]{row: pending[pi].row, val: pending[pi].val})
			pi++
		default: // same row: pending overwrites existing
			merged = append(merged, mergedEntry[T]{row: pending[pi].row, val: pending[pi].val})
			ei++
			pi++
		}
	}
	for ; ei < len(existing); ei++ {
		merged = append(merged, existing[ei])
	}
	for ; pi < len(pending); pi++ {
		merged = append(merged, mergedEntry[T]{row: pending[pi].row, val: pending[pi].val})
	}

	return merged
}

// shouldPromote decides whether to promote to hypersparse once the
// empty-column fraction exceeds hyperThreshold.
func (m *Matrix[T]) shouldPromote(nonEmptyCols int) bool {
	if m.cols == 0 {
		return false
	}
	emptyFraction := 1.0 - float64(nonEmptyCols)/float64(m.cols)
	return emptyFraction > m.hyperThreshold
}
