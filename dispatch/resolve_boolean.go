package dispatch

import "github.com/katalvlaran/sparseblas/semiring"

// ResolveBoolean compiles a semiring whose multiply operator is one of the
// logical connectives (lor, land, lxor) over a bool domain, combined with
// one of the boolean monoids (lor, land, lxor, eq).
func ResolveBoolean(sr semiring.Semiring) (Compiled[bool, bool], error) {
	mul, ok := booleanMultiply(sr.Multiply)
	if !ok {
		return Compiled[bool, bool]{}, &ErrUnsupportedCombination{Monoid: sr.Monoid, Multiply: sr.Multiply, Domain: semiring.Bool}
	}
	add, identity, ok := booleanMonoid(sr.Monoid)
	if !ok {
		return Compiled[bool, bool]{}, &ErrUnsupportedCombination{Monoid: sr.Monoid, Multiply: sr.Multiply, Domain: semiring.Bool}
	}

	return Compiled[bool, bool]{Mul: mul, Add: add, Identity: identity, Commutative: semiring.Commutative(sr.Multiply)}, nil
}

func booleanMultiply(id semiring.BinaryOpID) (func(a, b bool) bool, bool) {
	switch id {
	case semiring.Lor:
		return func(a, b bool) bool { return a || b }, true
	case semiring.Land:
		return func(a, b bool) bool { return a && b }, true
	case semiring.Lxor:
		return func(a, b bool) bool { return a != b }, true
	default:
		return nil, false
	}
}

func booleanMonoid(id semiring.MonoidID) (func(a, b bool) bool, bool, bool) {
	identity := semiring.BooleanIdentity(id)
	switch id {
	case semiring.LorMonoid:
		return func(a, b bool) bool { return a || b }, identity, true
	case semiring.LandMonoid:
		return func(a, b bool) bool { return a && b }, identity, true
	case semiring.LxorMonoid:
		return func(a, b bool) bool { return a != b }, identity, true
	case semiring.EqMonoid:
		return func(a, b bool) bool { return a == b }, identity, true
	default:
		return nil, identity, false
	}
}
