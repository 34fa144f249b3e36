package kernel

import (
	"sort"

	"github.com/katalvlaran/sparseblas/dispatch"
	"github.com/katalvlaran/sparseblas/mask"
	"github.com/katalvlaran/sparseblas/sauna"
	"github.com/katalvlaran/sparseblas/semiring"
	"github.com/katalvlaran/sparseblas/sparsemat"
)

// Gustavson computes A*B under the compiled semiring sr using a dense
// per-column accumulator backed by a Sauna workspace. m, when non-nil,
// restricts which output rows are even computed — this is a performance
// pruning, distinct from the accum/replace merge the mask package's Apply
// performs afterward against the caller's C. The result is built fresh
// and returned; the root package's Mxm entry points merge it into the
// caller's C with mask.Apply.
func Gustavson[D, Z any](a, b *sparsemat.Matrix[D], sr dispatch.Compiled[D, Z], m *mask.Mask[Z]) (*sparsemat.Matrix[Z], error) {
	if a.Cols() != b.Rows() {
		return nil, ErrDimensionMismatch
	}

	src, err := SnapshotPair(a, b)
	if err != nil {
		return nil, err
	}

	sa := sauna.New[Z](a.Rows())
	i, x, p, err := GustavsonRange(src, sr, m, sa, 0, b.Cols())
	if err != nil {
		return nil, err
	}

	out, err := sparsemat.NewFromCanonicalCSC[Z](a.Rows(), b.Cols(), semiring.ElementTypeOfAny[Z](), false, nil, p, i, x)
	if err != nil {
		return nil, err
	}
	if err := promoteIfSparse(out); err != nil {
		return nil, err
	}

	return out, nil
}

// MxmSnapshot holds the raw CSC arrays of both operands, taken once so
// concurrent column-range workers (package gbctx) never re-finalize or
// re-lock the source matrices.
type MxmSnapshot[D any] struct {
	aHyper, bHyper bool
	aH, bH         []int
	aP, bP         []int
	aI, bI         []int
	aX, bX         []D
	aCols, bCols   int
}

// SnapshotPair finalizes and captures both operands' canonical CSC arrays
// once, up front, so every worker in a parallel multiply reads immutable
// data with no further locking.
func SnapshotPair[D any](a, b *sparsemat.Matrix[D]) (MxmSnapshot[D], error) {
	aHyper, aH, aP, aI, aX, err := a.Snapshot()
	if err != nil {
		return MxmSnapshot[D]{}, err
	}
	bHyper, bH, bP, bI, bX, err := b.Snapshot()
	if err != nil {
		return MxmSnapshot[D]{}, err
	}

	return MxmSnapshot[D]{
		aHyper: aHyper, bHyper: bHyper,
		aH: aH, bH: bH, aP: aP, bP: bP, aI: aI, bI: bI, aX: aX, bX: bX,
		aCols: a.Cols(), bCols: b.Cols(),
	}, nil
}

// GustavsonRange computes columns [colStart, colEnd) of A*B into freshly
// allocated CSC arrays scoped to that range, using the caller-supplied
// Sauna. This is the unit of work the concurrency harness (package gbctx)
// schedules one per worker, dividing [0, B.Cols()) into contiguous chunks;
// Gustavson above is simply GustavsonRange invoked once over the full
// column range.
func GustavsonRange[D, Z any](src MxmSnapshot[D], sr dispatch.Compiled[D, Z], m *mask.Mask[Z], sa *sauna.Sauna[Z], colStart, colEnd int) (i []int, x []Z, p []int, err error) {
	p = make([]int, 1, colEnd-colStart+1)
	var touched []int

	for j := colStart; j < colEnd; j++ {
		sa.EnterColumn()
		touched = touched[:0]

		vb, ok := vecIndexIn(src.bHyper, src.bH, j, src.bCols)
		if ok {
			for posB := src.bP[vb]; posB < src.bP[vb+1]; posB++ {
				k := src.bI[posB]
				bkj := src.bX[posB]

				va, ok2 := vecIndexIn(src.aHyper, src.aH, k, src.aCols)
				if !ok2 {
					continue
				}
				for posA := src.aP[va]; posA < src.aP[va+1]; posA++ {
					row := src.aI[posA]
					if m != nil {
						included, ierr := m.Includes(row, j)
						if ierr != nil {
							return nil, nil, nil, ierr
						}
						if !included {
							continue
						}
					}
					z := sr.Mul(src.aX[posA], bkj)
					if sa.Live(row) {
						sa.Accumulate(row, z, sr.Add)
					} else {
						sa.Touch(row, z)
						touched = append(touched, row)
					}
				}
			}
		}

		sort.Ints(touched)
		for _, row := range touched {
			i = append(i, row)
			x = append(x, sa.Work[row])
		}
		p = append(p, len(i))
	}

	return i, x, p, nil
}
