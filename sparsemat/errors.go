// Package sparsemat implements a CSC-style, hypersparse-capable sparse
// matrix store: vector pointers, row indices, values, the
// zombie/pending-tuple lazy-mutation sidecars, and Finalize, the merge
// step that restores canonical form.
package sparsemat

import "errors"

// Sentinel errors for sparsemat operations. Every exported function
// returns one of these (never a bare fmt.Errorf) so callers can match with
// errors.Is; context is added by wrapping at the call site.
var (
	// ErrBadShape indicates non-positive rows or columns at construction.
	ErrBadShape = errors.New("sparsemat: invalid shape")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	ErrIndexOutOfBounds = errors.New("sparsemat: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("sparsemat: dimension mismatch")

	// ErrNilMatrix indicates a nil receiver or argument matrix.
	ErrNilMatrix = errors.New("sparsemat: nil matrix")

	// ErrDuplicatePending indicates two pending tuples target the same
	// (i,j) and no operator_pending was configured to resolve them.
	ErrDuplicatePending = errors.New("sparsemat: duplicate pending tuple with no resolving operator")

	// ErrNotCanonical indicates a structural read was attempted on a
	// matrix that is dirty (zombies or pending tuples present) and the
	// caller opted out of finalize-on-demand.
	ErrNotCanonical = errors.New("sparsemat: matrix is not in canonical form")
)
