package dispatch

import "github.com/katalvlaran/sparseblas/semiring"

// ResolveCompare compiles a semiring whose multiply is one of the strict
// Boolean comparisons (eq, ne, gt, lt, ge, le) over a numeric domain D,
// combined with a Boolean monoid: operators whose result is Boolean only
// combine with Boolean monoids, the two-domain semiring family.
func ResolveCompare[D semiring.Number](sr semiring.Semiring) (Compiled[D, bool], error) {
	mul, ok := compareMultiply[D](sr.Multiply)
	if !ok {
		return Compiled[D, bool]{}, &ErrUnsupportedCombination{Monoid: sr.Monoid, Multiply: sr.Multiply, Domain: semiring.ElementTypeOf[D]()}
	}
	add, identity, ok := booleanMonoid(sr.Monoid)
	if !ok {
		return Compiled[D, bool]{}, &ErrUnsupportedCombination{Monoid: sr.Monoid, Multiply: sr.Multiply, Domain: semiring.ElementTypeOf[D]()}
	}

	return Compiled[D, bool]{Mul: mul, Add: add, Identity: identity, Commutative: semiring.Commutative(sr.Multiply)}, nil
}

func compareMultiply[D semiring.Number](id semiring.BinaryOpID) (func(a, b D) bool, bool) {
	switch id {
	case semiring.Eq:
		return func(a, b D) bool { return a == b }, true
	case semiring.Ne:
		return func(a, b D) bool { return a != b }, true
	case semiring.Gt:
		return func(a, b D) bool { return a > b }, true
	case semiring.Lt:
		return func(a, b D) bool { return a < b }, true
	case semiring.Ge:
		return func(a, b D) bool { return a >= b }, true
	case semiring.Le:
		return func(a, b D) bool { return a <= b }, true
	default:
		return nil, false
	}
}
