package semiring

// Semiring is a pair (monoid, multiply), admissible when the multiply's
// result type equals the monoid's domain.
type Semiring struct {
	Monoid   MonoidID
	Multiply BinaryOpID
}

// New constructs a Semiring without validating admissibility; use
// Catalog.Admissible to check a (semiring, type) combination
// before dispatch.
func New(monoid MonoidID, multiply BinaryOpID) Semiring {
	return Semiring{Monoid: monoid, Multiply: multiply}
}

// DomainMatches reports whether Multiply's result domain is compatible with
// Monoid's domain, independent of any concrete element type:
//   - a SameAsDomain multiply combines only with a numeric monoid.
//   - a Boolean multiply (strict comparisons) combines only with a boolean
//     monoid, and additionally requires a numeric operand domain.
//   - a Logical multiply (lor/land/lxor) combines only with a boolean
//     monoid and requires a boolean operand domain.
func (s Semiring) DomainMatches() bool {
	switch Kind(s.Multiply) {
	case SameAsDomain:
		return !s.Monoid.IsBoolean()
	case Boolean, Logical:
		return s.Monoid.IsBoolean()
	default:
		return false
	}
}

// String renders "monoid.multiply" for diagnostics, e.g. "plus.times".
func (s Semiring) String() string {
	return s.Monoid.String() + "." + s.Multiply.String()
}
