package kernel

import (
	"github.com/katalvlaran/sparseblas/dispatch"
	"github.com/katalvlaran/sparseblas/mask"
	"github.com/katalvlaran/sparseblas/minheap"
	"github.com/katalvlaran/sparseblas/semiring"
	"github.com/katalvlaran/sparseblas/sparsemat"
)

// Heap computes A*B under sr using the heap-merge kernel: for each column
// j of B, a min-heap keyed on row index K-way merges the active columns
// of A selected by B(:,j)'s non-zeros, collecting all entries sharing the
// current minimum row before advancing.
func Heap[D, Z any](a, b *sparsemat.Matrix[D], sr dispatch.Compiled[D, Z], m *mask.Mask[Z]) (*sparsemat.Matrix[Z], error) {
	if a.Cols() != b.Rows() {
		return nil, ErrDimensionMismatch
	}

	aHyper, aH, aP, aI, aX, err := a.Snapshot()
	if err != nil {
		return nil, err
	}
	bHyper, bH, bP, bI, bX, err := b.Snapshot()
	if err != nil {
		return nil, err
	}

	rows, cols := a.Rows(), b.Cols()
	newP := make([]int, 1, cols+1)
	var newI []int
	var newX []Z

	for j := 0; j < cols; j++ {
		if err := heapColumn(
			j, sr, m,
			aHyper, aH, aP, aI, aX,
			bHyper, bH, bP, bI, bX,
			&newI, &newX,
		); err != nil {
			return nil, err
		}
		newP = append(newP, len(newI))
	}

	out, err := sparsemat.NewFromCanonicalCSC[Z](rows, cols, semiring.ElementTypeOfAny[Z](), false, nil, newP, newI, newX)
	if err != nil {
		return nil, err
	}
	if err := promoteIfSparse(out); err != nil {
		return nil, err
	}

	return out, nil
}

// streamState tracks one active A(:,k) column's read cursor during the
// K-way merge: [pos, end) into aI/aX, and the b_kj multiplier it pairs
// with every row of that column.
type streamState[D any] struct {
	pos, end int
	bkj      D
}

func heapColumn[D, Z any](
	j int,
	sr dispatch.Compiled[D, Z],
	m *mask.Mask[Z],
	aHyper bool, aH, aP, aI []int, aX []D,
	bHyper bool, bH, bP, bI []int, bX []D,
	newI *[]int, newX *[]Z,
) error {
	vb, ok := vecIndexIn(bHyper, bH, j, len(bP)-1)
	if !ok {
		return nil
	}

	h := minheap.New[D](bP[vb+1] - bP[vb])
	streams := make([]streamState[D], 0, bP[vb+1]-bP[vb])

	for posB := bP[vb]; posB < bP[vb+1]; posB++ {
		k := bI[posB]
		bkj := bX[posB]

		va, okA := vecIndexIn(aHyper, aH, k, len(aP)-1)
		if !okA {
			continue
		}
		start, end := aP[va], aP[va+1]
		if start >= end {
			continue
		}

		stream := len(streams)
		streams = append(streams, streamState[D]{pos: start, end: end, bkj: bkj})
		h.Push(aI[start], aX[start], stream)
	}

	for h.Len() > 0 {
		minRow := h.Peek().Row

		var acc Z
		found := false
		for h.Len() > 0 && h.Peek().Row == minRow {
			it := h.Pop()
			st := &streams[it.Stream]
			z := sr.Mul(it.Val, st.bkj)
			if found {
				acc = sr.Add(acc, z)
			} else {
				acc = z
				found = true
			}

			st.pos++
			if st.pos < st.end {
				h.Push(aI[st.pos], aX[st.pos], it.Stream)
			}
		}

		if !found {
			continue
		}
		if m != nil {
			included, err := m.Includes(minRow, j)
			if err != nil {
				return err
			}
			if !included {
				continue
			}
		}
		*newI = append(*newI, minRow)
		*newX = append(*newX, acc)
	}

	return nil
}
