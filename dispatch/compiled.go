// Package dispatch resolves a (MonoidID, BinaryOpID) semiring pair and a
// pair of concrete Go element types into a Compiled set of closures the
// kernel bank can call without any further type-switching per element:
// parametric generics with monomorphization down to a single generic
// slow path, instead of a combinatorial table of literal generated
// functions per semiring/type pairing.
package dispatch

import (
	"fmt"

	"github.com/katalvlaran/sparseblas/semiring"
)

// Compiled bundles a semiring's multiply and add operators after dispatch
// has resolved the (possibly distinct) input domain D and monoid domain Z
// — distinct for the compare-operator families, where D is numeric and Z
// is bool (eq/ne/gt/lt/ge/le combine with Boolean monoids only).
type Compiled[D, Z any] struct {
	Mul      func(a, b D) Z
	Add      func(a, b Z) Z
	Identity Z
	// Commutative mirrors semiring.Commutative(multiply): true means the
	// planner/kernel MAY apply flipxy freely without changing results.
	Commutative bool
}

// flip wraps Mul to swap its arguments, implementing the flipxy dispatch
// contract: flipxy is only semantically significant when the underlying
// operator is non-commutative.
func (c Compiled[D, Z]) flip() Compiled[D, Z] {
	mul := c.Mul
	c.Mul = func(a, b D) Z { return mul(b, a) }

	return c
}

// WithFlipxy returns c, or c with its multiply arguments swapped, per the
// flipxy flag. Callers pass the flag through from the descriptor/planner
// layer; this is the single place the swap is actually performed.
func WithFlipxy[D, Z any](c Compiled[D, Z], flipxy bool) Compiled[D, Z] {
	if !flipxy {
		return c
	}

	return c.flip()
}

// ErrUnsupportedCombination is returned when a (monoid, multiply, domain)
// triple has no resolver, e.g. a Boolean-only monoid paired with a
// SameAsDomain multiply operator on a numeric domain.
type ErrUnsupportedCombination struct {
	Monoid   semiring.MonoidID
	Multiply semiring.BinaryOpID
	Domain   semiring.ElementType
}

func (e *ErrUnsupportedCombination) Error() string {
	return fmt.Sprintf("dispatch: semiring (%s, %s) has no compiled resolver for domain %s",
		e.Monoid, e.Multiply, e.Domain)
}
