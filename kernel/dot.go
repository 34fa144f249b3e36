package kernel

import (
	"github.com/katalvlaran/sparseblas/dispatch"
	"github.com/katalvlaran/sparseblas/mask"
	"github.com/katalvlaran/sparseblas/semiring"
	"github.com/katalvlaran/sparseblas/sparsemat"
)

// Dot computes A*B under sr using the dot-product kernel: candidate
// (i,j) pairs come from the [0,m)×[0,n) grid (pruned to A's non-empty
// rows when A^T is hypersparse), and when m is non-nil each computed
// entry is kept only if the mask includes it; each c_ij is the
// two-pointer merge of A(i,:) (via A^T, materialized here since the
// engine keeps only column access) against B(:,j).
func Dot[D, Z any](a, b *sparsemat.Matrix[D], sr dispatch.Compiled[D, Z], m *mask.Mask[Z]) (*sparsemat.Matrix[Z], error) {
	if a.Cols() != b.Rows() {
		return nil, ErrDimensionMismatch
	}

	at, err := sparsemat.Transpose(a)
	if err != nil {
		return nil, err
	}

	atHyper, atH, atP, atI, atX, err := at.Snapshot()
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
		vb, okB := vecIndexIn(bHyper, bH, j, cols)

		rowCandidates := candidateRows(rows, atHyper, atH)

		for _, i := range rowCandidates {
			if !okB {
				continue
			}
			vat, okA := vecIndexIn(atHyper, atH, i, rows)
			if !okA {
				continue
			}

			z, found := dotProduct(
				atP[vat], atP[vat+1], atI, atX,
				bP[vb], bP[vb+1], bI, bX,
				sr,
			)
			if !found {
				continue
			}
			if m != nil {
				included, ierr := m.Includes(i, j)
				if ierr != nil {
					return nil, ierr
				}
				if !included {
					continue
				}
			}
			newI = append(newI, i)
			newX = append(newX, z)
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

// candidateRows returns the candidate row list: every row when A^T is not
// hypersparse, else only the rows listed in A^T's hyperlist (its non-empty
// columns). Pruning is safe whenever one
// side's column is empty. The mask, when present, is applied per-cell in
// the caller's loop rather than here, since a mask's pattern can include
// rows absent from A (those simply never find an aligned k and are
// dropped by dotProduct's "found" check).
func candidateRows(rows int, atHyper bool, atH []int) []int {
	if !atHyper {
		out := make([]int, rows)
		for i := range out {
			out[i] = i
		}
		return out
	}

	out := make([]int, len(atH))
	copy(out, atH)

	return out
}

// dotProduct two-pointer merges A(i,:) (held as A^T's column i, [aStart,
// aEnd) into atI/atX) against B(:,j) ([bStart,bEnd) into bI/bX), computing
// ⊕_k A(i,k)⊗B(k,j). found is false iff no aligned k exists, meaning the
// entry is an implicit monoid zero and must not be stored.
func dotProduct[D, Z any](aStart, aEnd int, aI []int, aX []D, bStart, bEnd int, bI []int, bX []D, sr dispatch.Compiled[D, Z]) (Z, bool) {
	var acc Z
	found := false

	pa, pb := aStart, bStart
	for pa < aEnd && pb < bEnd {
		ka, kb := aI[pa], bI[pb]
		switch {
		case ka == kb:
			z := sr.Mul(aX[pa], bX[pb])
			if found {
				acc = sr.Add(acc, z)
			} else {
				acc = z
				found = true
			}
			pa++
			pb++
		case ka < kb:
			pa++
		default:
			pb++
		}
	}

	return acc, found
}
