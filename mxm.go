package sparseblas

import (
	"github.com/katalvlaran/sparseblas/descriptor"
	"github.com/katalvlaran/sparseblas/dispatch"
	"github.com/katalvlaran/sparseblas/gbctx"
	"github.com/katalvlaran/sparseblas/kernel"
	"github.com/katalvlaran/sparseblas/mask"
	"github.com/katalvlaran/sparseblas/planner"
	"github.com/katalvlaran/sparseblas/sparsemat"
)

// MxmOptions configures a single multiply call: the mask, accum operator,
// and the embedded Descriptor (transpose/complement/replace/flipxy),
// mirroring the (C, M, A, B, accum, semiring, flipxy, descriptor) call
// shape common to GraphBLAS-style engines. Descriptor's fields are read
// through promotion (opts.Replace, opts.Flipxy, opts.TransposeA, ...).
type MxmOptions[Z any] struct {
	Mask  *mask.Mask[Z]
	Accum func(a, b Z) Z
	descriptor.Descriptor
	// Ctx, when non-nil, runs the Gustavson path across its worker pool
	// (package gbctx) instead of single-threaded. Ignored by MxmDot and
	// MxmHeap, which have no parallel variant in this engine.
	Ctx *gbctx.Context
}

// MxmGustavson computes c = (c accum (A*B))⟨M⟩ (or c⟨M⟩ = A*B without
// accum) using the Gustavson kernel, merging the kernel's result into c in
// place through mask.Apply's mask & accumulator merge. A, B, and c
// must already have compatible dimensions once opts.Descriptor's
// transpose flags, if any, have been normalized away.
func MxmGustavson[D, Z any](c *sparsemat.Matrix[Z], a, b *sparsemat.Matrix[D], sr dispatch.Compiled[D, Z], opts MxmOptions[Z]) error {
	a, b, m, err := descriptor.Normalize(a, b, opts.Mask, opts.Descriptor)
	if err != nil {
		return err
	}
	sr = dispatch.WithFlipxy(sr, opts.Flipxy)

	var t *sparsemat.Matrix[Z]
	if opts.Ctx != nil {
		t, err = gbctx.ParallelGustavson(opts.Ctx, a, b, sr, m)
	} else {
		t, err = kernel.Gustavson(a, b, sr, m)
	}
	if err != nil {
		return err
	}

	return mask.Apply(c, t, m, opts.Accum, opts.Replace)
}

// MxmDot computes c = (c accum (A*B))⟨M⟩ using the dot-product kernel,
// appropriate when M is present and sparse or both operands are very
// sparse.
func MxmDot[D, Z any](c *sparsemat.Matrix[Z], a, b *sparsemat.Matrix[D], sr dispatch.Compiled[D, Z], opts MxmOptions[Z]) error {
	a, b, m, err := descriptor.Normalize(a, b, opts.Mask, opts.Descriptor)
	if err != nil {
		return err
	}
	sr = dispatch.WithFlipxy(sr, opts.Flipxy)

	t, err := kernel.Dot(a, b, sr, m)
	if err != nil {
		return err
	}

	return mask.Apply(c, t, m, opts.Accum, opts.Replace)
}

// MxmHeap computes c = (c accum (A*B))⟨M⟩ using the heap-merge kernel,
// appropriate when B's columns have a bounded non-zero count.
func MxmHeap[D, Z any](c *sparsemat.Matrix[Z], a, b *sparsemat.Matrix[D], sr dispatch.Compiled[D, Z], opts MxmOptions[Z]) error {
	a, b, m, err := descriptor.Normalize(a, b, opts.Mask, opts.Descriptor)
	if err != nil {
		return err
	}
	sr = dispatch.WithFlipxy(sr, opts.Flipxy)

	t, err := kernel.Heap(a, b, sr, m)
	if err != nil {
		return err
	}

	return mask.Apply(c, t, m, opts.Accum, opts.Replace)
}

// Mxm runs the full planner-driven dispatch: it normalizes opts.Descriptor
// (transpose A, transpose B, complement M), inspects the normalized A, B,
// and mask to choose a kernel family via package planner, then delegates
// to the matching Mxm* entry point above with the transpose/complement
// flags cleared so that entry point's own Normalize call is a no-op.
func Mxm[D, Z any](c *sparsemat.Matrix[Z], a, b *sparsemat.Matrix[D], sr dispatch.Compiled[D, Z], opts MxmOptions[Z]) error {
	a, b, m, err := descriptor.Normalize(a, b, opts.Mask, opts.Descriptor)
	if err != nil {
		return err
	}
	opts.Mask = m
	opts.TransposeA, opts.TransposeB, opts.ComplementMask = false, false, false

	shape, err := planShape(a, b, opts.Mask)
	if err != nil {
		return err
	}

	switch planner.Choose(shape, planner.DefaultThresholds) {
	case planner.Dot:
		return MxmDot(c, a, b, sr, opts)
	case planner.Heap:
		return MxmHeap(c, a, b, sr, opts)
	default:
		return MxmGustavson(c, a, b, sr, opts)
	}
}

func planShape[D, Z any](a, b *sparsemat.Matrix[D], m *mask.Mask[Z]) (planner.Shape, error) {
	rows, cols := a.Rows(), b.Cols()

	bColMax, err := maxColumnNNZ(b)
	if err != nil {
		return planner.Shape{}, err
	}

	shape := planner.Shape{Rows: rows, Cols: cols, BColMaxNNZ: bColMax}
	if m != nil {
		nnz, ok, err := m.NNZ()
		if err != nil {
			return planner.Shape{}, err
		}
		shape.MaskPresent = ok
		shape.MaskNNZ = nnz
	}

	return shape, nil
}

func maxColumnNNZ[D any](b *sparsemat.Matrix[D]) (int, error) {
	_, _, p, _, _, err := b.Snapshot()
	if err != nil {
		return 0, err
	}

	max := 0
	for vi := 0; vi < len(p)-1; vi++ {
		if n := p[vi+1] - p[vi]; n > max {
			max = n
		}
	}

	return max, nil
}
