// Package descriptor carries the per-call transpose/complement/replace/
// flipxy flags of the (C, M, A, B, accum, semiring, flipxy, descriptor)
// call shape, and Normalize, which the root package's Mxm entry points
// apply ahead of kernel dispatch.
package descriptor

import (
	"github.com/katalvlaran/sparseblas/mask"
	"github.com/katalvlaran/sparseblas/sparsemat"
)

// Descriptor mirrors the GraphBLAS-style descriptor: flags that modify
// how A, B, and the mask are interpreted for a single multiply call,
// without touching the matrices themselves.
type Descriptor struct {
	// TransposeA requests A^T in place of A.
	TransposeA bool
	// TransposeB requests B^T in place of B.
	TransposeB bool
	// ComplementMask inverts the mask's membership test.
	ComplementMask bool
	// Replace requests that C's masked-out entries be deleted after the
	// merge.
	Replace bool
	// Flipxy instructs the kernel to compute ⊗(b,a) instead of ⊗(a,b);
	// semantically significant only when the multiply operator is
	// non-commutative.
	Flipxy bool
}

// Default is the zero-value descriptor: no transposes, no complement, no
// replace, no flipxy — equivalent to omitting a descriptor entirely.
func Default() Descriptor { return Descriptor{} }

// Normalize applies d's TransposeA, TransposeB, and ComplementMask flags
// to a, b, and m ahead of kernel dispatch, per the call shape's
// normalization step. Replace and Flipxy are left for the caller:
// Replace is consumed by the mask/accumulator merge once a result
// exists, and Flipxy by dispatch.WithFlipxy against the compiled
// semiring, neither of which Normalize has access to here.
func Normalize[D, Z any](a, b *sparsemat.Matrix[D], m *mask.Mask[Z], d Descriptor) (*sparsemat.Matrix[D], *sparsemat.Matrix[D], *mask.Mask[Z], error) {
	var err error
	if d.TransposeA {
		a, err = sparsemat.Transpose(a)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	if d.TransposeB {
		b, err = sparsemat.Transpose(b)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	if d.ComplementMask {
		m = m.Complemented()
	}

	return a, b, m, nil
}
