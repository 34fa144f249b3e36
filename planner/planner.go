// Package planner implements the kernel-family heuristic: given operand
// shapes, sparsity, and mask presence, choose Gustavson, dot, or heap.
// Selection boundaries are not normative; this package picks one
// reasonable policy and documents its constants so callers can override
// them.
package planner

// Family identifies a chosen kernel.
type Family uint8

const (
	Gustavson Family = iota
	Dot
	Heap
)

func (f Family) String() string {
	switch f {
	case Gustavson:
		return "gustavson"
	case Dot:
		return "dot"
	case Heap:
		return "heap"
	default:
		return "unknown"
	}
}

// Thresholds bundles the planner's tunable cutoffs.
type Thresholds struct {
	// MaskDensity: below this fraction of nnz(M)/(m*n), a present mask
	// steers the planner toward the dot kernel. Default 0.02.
	MaskDensity float64
	// MaxHeapDegree: at or below this per-column nnz bound for B, and
	// with no mask present, the planner steers toward the heap kernel.
	// Default 8.
	MaxHeapDegree int
}

// DefaultThresholds is τ_mask=0.02, τ_heap=8.
var DefaultThresholds = Thresholds{MaskDensity: 0.02, MaxHeapDegree: 8}

// Shape describes the dimensions and sparsity inputs the heuristic needs,
// computed once by the caller (the root package's Mxm entry points) from
// the already-finalized operand matrices.
type Shape struct {
	Rows, Cols int
	// MaskPresent and MaskNNZ are only meaningful when MaskPresent.
	MaskPresent bool
	MaskNNZ     int
	// BColMaxNNZ is bjnz_max: the largest non-zero count of any column
	// of B.
	BColMaxNNZ int
}

// Choose selects a kernel family:
//
//  1. If a mask is present and sparse enough (nnz(M)/(rows*cols) <
//     thresholds.MaskDensity): dot.
//  2. Else if B's columns are all short (BColMaxNNZ <=
//     thresholds.MaxHeapDegree) and no mask is present: heap.
//  3. Else: Gustavson.
func Choose(s Shape, t Thresholds) Family {
	if s.MaskPresent {
		area := float64(s.Rows) * float64(s.Cols)
		if area > 0 && float64(s.MaskNNZ)/area < t.MaskDensity {
			return Dot
		}
	}
	if !s.MaskPresent && s.BColMaxNNZ <= t.MaxHeapDegree {
		return Heap
	}

	return Gustavson
}
