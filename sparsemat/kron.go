package sparsemat

import "github.com/katalvlaran/sparseblas/semiring"

// Kron computes the Kronecker product of a and b under op: the result has
// shape (a.Rows()*b.Rows()) x (a.Cols()*b.Cols()), with a block of b's
// pattern (scaled by op against a's entry) placed at every stored entry
// of a. Positions where either operand has no stored entry contribute
// nothing to the result.
func Kron[DA, DB, DC any](a *Matrix[DA], b *Matrix[DB], op func(x DA, y DB) DC) (*Matrix[DC], error) {
	aHyper, aH, aP, aI, aX, err := a.Snapshot()
	if err != nil {
		return nil, err
	}
	bHyper, bH, bP, bI, bX, err := b.Snapshot()
	if err != nil {
		return nil, err
	}

	bRows, bCols := b.Rows(), b.Cols()
	out, err := New[DC](a.Rows()*bRows, a.Cols()*bCols, semiring.ElementTypeOfAny[DC]())
	if err != nil {
		return nil, err
	}

	aVecs := len(aP) - 1
	for avi := 0; avi < aVecs; avi++ {
		aj := avi
		if aHyper {
			aj = aH[avi]
		}
		for apos := aP[avi]; apos < aP[avi+1]; apos++ {
			ai := aI[apos]
			av := aX[apos]

			bVecs := len(bP) - 1
			for bvi := 0; bvi < bVecs; bvi++ {
				bj := bvi
				if bHyper {
					bj = bH[bvi]
				}
				for bpos := bP[bvi]; bpos < bP[bvi+1]; bpos++ {
					bi := bI[bpos]
					bv := bX[bpos]

					row := ai*bRows + bi
					col := aj*bCols + bj
					if err := out.SetElement(row, col, op(av, bv)); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return out, out.Finalize()
}
