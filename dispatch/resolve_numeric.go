package dispatch

import (
	"math"

	"github.com/katalvlaran/sparseblas/semiring"
)

// ResolveNumeric compiles a semiring whose multiply operator returns the
// same domain D it operates on (the SameAsDomain family: first, second,
// min, max, plus, minus, times, div, and the is*-prefixed comparisons)
// combined with one of the numeric monoids (min, max, plus, times).
func ResolveNumeric[D semiring.Number](sr semiring.Semiring) (Compiled[D, D], error) {
	mul, ok := numericMultiply[D](sr.Multiply)
	if !ok {
		return Compiled[D, D]{}, &ErrUnsupportedCombination{Monoid: sr.Monoid, Multiply: sr.Multiply, Domain: semiring.ElementTypeOf[D]()}
	}
	add, identity, ok := numericMonoid[D](sr.Monoid)
	if !ok {
		return Compiled[D, D]{}, &ErrUnsupportedCombination{Monoid: sr.Monoid, Multiply: sr.Multiply, Domain: semiring.ElementTypeOf[D]()}
	}

	return Compiled[D, D]{Mul: mul, Add: add, Identity: identity, Commutative: semiring.Commutative(sr.Multiply)}, nil
}

func numericMultiply[D semiring.Number](id semiring.BinaryOpID) (func(a, b D) D, bool) {
	switch id {
	case semiring.First:
		return func(a, b D) D { return a }, true
	case semiring.Second:
		return func(a, b D) D { return b }, true
	case semiring.Min:
		return func(a, b D) D {
			if a < b {
				return a
			}
			return b
		}, true
	case semiring.Max:
		return func(a, b D) D {
			if a > b {
				return a
			}
			return b
		}, true
	case semiring.Plus:
		return func(a, b D) D { return a + b }, true
	case semiring.Minus:
		return func(a, b D) D { return a - b }, true
	case semiring.Times:
		return func(a, b D) D { return a * b }, true
	case semiring.Div:
		return func(a, b D) D { return a / b }, true
	case semiring.Iseq:
		return func(a, b D) D { return boolAsD[D](a == b) }, true
	case semiring.Isne:
		return func(a, b D) D { return boolAsD[D](a != b) }, true
	case semiring.Isgt:
		return func(a, b D) D { return boolAsD[D](a > b) }, true
	case semiring.Islt:
		return func(a, b D) D { return boolAsD[D](a < b) }, true
	case semiring.Isge:
		return func(a, b D) D { return boolAsD[D](a >= b) }, true
	case semiring.Isle:
		return func(a, b D) D { return boolAsD[D](a <= b) }, true
	default:
		return nil, false
	}
}

func boolAsD[D semiring.Number](v bool) D {
	if v {
		return D(1)
	}
	return D(0)
}

func numericMonoid[D semiring.Number](id semiring.MonoidID) (func(a, b D) D, D, bool) {
	identity := monoidIdentity[D](id)
	switch id {
	case semiring.MinMonoid:
		return func(a, b D) D {
			if a < b {
				return a
			}
			return b
		}, identity, true
	case semiring.MaxMonoid:
		return func(a, b D) D {
			if a > b {
				return a
			}
			return b
		}, identity, true
	case semiring.PlusMonoid:
		return func(a, b D) D { return a + b }, identity, true
	case semiring.TimesMonoid:
		return func(a, b D) D { return a * b }, identity, true
	default:
		return nil, identity, false
	}
}

// monoidIdentity computes ⊕'s identity 0̃ for domain D. For plus/times
// it is 0/1, representable in every numeric type. For min/max it is the
// type's actual extreme value, not a naive D(math.Inf(±1)) conversion:
// Go's float-to-integer conversion is implementation-defined once the
// value is out of range, so int32(math.Inf(1)) silently becomes
// math.MinInt32 and uint32(math.Inf(1)) becomes 0 — both the wrong
// extreme for a min/max monoid's identity. Floats keep the real
// infinities; every integer width gets its own MaxMonoid/MinMonoid
// constant.
func monoidIdentity[D semiring.Number](id semiring.MonoidID) D {
	var zero D
	switch any(zero).(type) {
	case int8:
		return any(int8Identity(id)).(D)
	case uint8:
		return any(uint8Identity(id)).(D)
	case int16:
		return any(int16Identity(id)).(D)
	case uint16:
		return any(uint16Identity(id)).(D)
	case int32:
		return any(int32Identity(id)).(D)
	case uint32:
		return any(uint32Identity(id)).(D)
	case int64:
		return any(int64Identity(id)).(D)
	case uint64:
		return any(uint64Identity(id)).(D)
	case float32:
		return any(float32(semiring.NumericIdentity(id))).(D)
	default: // float64
		return any(semiring.NumericIdentity(id)).(D)
	}
}

func int8Identity(id semiring.MonoidID) int8 {
	switch id {
	case semiring.MinMonoid:
		return math.MaxInt8
	case semiring.MaxMonoid:
		return math.MinInt8
	case semiring.TimesMonoid:
		return 1
	default:
		return 0
	}
}

func uint8Identity(id semiring.MonoidID) uint8 {
	switch id {
	case semiring.MinMonoid:
		return math.MaxUint8
	case semiring.TimesMonoid:
		return 1
	default:
		return 0
	}
}

func int16Identity(id semiring.MonoidID) int16 {
	switch id {
	case semiring.MinMonoid:
		return math.MaxInt16
	case semiring.MaxMonoid:
		return math.MinInt16
	case semiring.TimesMonoid:
		return 1
	default:
		return 0
	}
}

func uint16Identity(id semiring.MonoidID) uint16 {
	switch id {
	case semiring.MinMonoid:
		return math.MaxUint16
	case semiring.TimesMonoid:
		return 1
	default:
		return 0
	}
}

func int32Identity(id semiring.MonoidID) int32 {
	switch id {
	case semiring.MinMonoid:
		return math.MaxInt32
	case semiring.MaxMonoid:
		return math.MinInt32
	case semiring.TimesMonoid:
		return 1
	default:
		return 0
	}
}

func uint32Identity(id semiring.MonoidID) uint32 {
	switch id {
	case semiring.MinMonoid:
		return math.MaxUint32
	case semiring.TimesMonoid:
		return 1
	default:
		return 0
	}
}

func int64Identity(id semiring.MonoidID) int64 {
	switch id {
	case semiring.MinMonoid:
		return math.MaxInt64
	case semiring.MaxMonoid:
		return math.MinInt64
	case semiring.TimesMonoid:
		return 1
	default:
		return 0
	}
}

func uint64Identity(id semiring.MonoidID) uint64 {
	switch id {
	case semiring.MinMonoid:
		return math.MaxUint64
	case semiring.TimesMonoid:
		return 1
	default:
		return 0
	}
}
