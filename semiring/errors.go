package semiring

import "errors"

// Sentinel errors for catalog lookups.
var (
	// ErrDomainMismatch indicates a (monoid, multiply) pair whose domains
	// are incompatible: a non-Boolean multiply combined with a Boolean
	// monoid, or vice versa.
	ErrDomainMismatch = errors.New("semiring: domain mismatch between monoid and multiply")

	// ErrUnknownOperator indicates an operator id outside the catalog's
	// enumerated range.
	ErrUnknownOperator = errors.New("semiring: unknown operator")
)
