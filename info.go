// Package sparseblas is the engine's public surface: the Info status
// enumeration and the Mxm* entry points wiring the planner, semiring
// dispatch, kernel bank, and mask & accumulator layer together.
package sparseblas

import (
	"errors"

	"github.com/katalvlaran/sparseblas/dispatch"
	"github.com/katalvlaran/sparseblas/kernel"
	"github.com/katalvlaran/sparseblas/semiring"
	"github.com/katalvlaran/sparseblas/sparsemat"
)

// Info is the engine's status code.
type Info uint8

const (
	Success Info = iota
	NoValue
	UninitializedObject
	NullPointer
	InvalidValue
	InvalidIndex
	DomainMismatch
	DimensionMismatch
	OutputNotEmpty
	OutOfMemory
	InsufficientSpace
	IndexOutOfBounds
	Panic
)

var infoNames = [...]string{
	Success: "success", NoValue: "no_value", UninitializedObject: "uninitialized_object",
	NullPointer: "null_pointer", InvalidValue: "invalid_value", InvalidIndex: "invalid_index",
	DomainMismatch: "domain_mismatch", DimensionMismatch: "dimension_mismatch",
	OutputNotEmpty: "output_not_empty", OutOfMemory: "out_of_memory",
	InsufficientSpace: "insufficient_space", IndexOutOfBounds: "index_out_of_bounds",
	Panic: "panic",
}

// String implements fmt.Stringer.
func (i Info) String() string { return infoNames[i] }

// infoFor classifies an error returned by sparsemat/dispatch/kernel into
// the engine's Info vocabulary, so callers that prefer a status-code
// style don't have to inspect errors themselves. Idiomatic Go callers
// should just check the returned error.
func infoFor(err error) Info {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, sparsemat.ErrDimensionMismatch), errors.Is(err, kernel.ErrDimensionMismatch):
		return DimensionMismatch
	case errors.Is(err, sparsemat.ErrIndexOutOfBounds):
		return IndexOutOfBounds
	case errors.Is(err, sparsemat.ErrBadShape), errors.Is(err, sparsemat.ErrNilMatrix):
		return InvalidValue
	case errors.Is(err, semiring.ErrDomainMismatch):
		return DomainMismatch
	case errors.Is(err, semiring.ErrUnknownOperator):
		return InvalidValue
	default:
		var unsupported *dispatch.ErrUnsupportedCombination
		if errors.As(err, &unsupported) {
			return DomainMismatch
		}
		return InvalidValue
	}
}

// InfoFor exposes infoFor to callers outside this package who received an
// error from one of the Mxm* entry points and want a status-code
// vocabulary alongside Go's usual error handling.
func InfoFor(err error) Info { return infoFor(err) }
