package semiring

// BinaryOpID identifies one of the catalog's binary (multiply) operators:
// first(x,y)=x, second(x,y)=y, plus the arithmetic, is-comparison,
// Boolean-comparison, and logical families.
type BinaryOpID uint8

const (
	First BinaryOpID = iota
	Second
	Min
	Max
	Plus
	Minus
	Times
	Div
	Iseq
	Isne
	Isgt
	Islt
	Isge
	Isle
	Eq
	Ne
	Gt
	Lt
	Ge
	Le
	Lor
	Land
	Lxor
)

var binaryOpNames = [...]string{
	First: "first", Second: "second", Min: "min", Max: "max", Plus: "plus",
	Minus: "minus", Times: "times", Div: "div", Iseq: "iseq", Isne: "isne",
	Isgt: "isgt", Islt: "islt", Isge: "isge", Isle: "isle",
	Eq: "eq", Ne: "ne", Gt: "gt", Lt: "lt", Ge: "ge", Le: "le",
	Lor: "lor", Land: "land", Lxor: "lxor",
}

// String implements fmt.Stringer.
func (id BinaryOpID) String() string { return binaryOpNames[id] }

// ResultKind classifies what domain a BinaryOp's result lives in, which in
// turn determines which monoid family it may combine with.
type ResultKind uint8

const (
	// SameAsDomain means the operator's result has the same element type
	// as its operands (first, second, min, max, plus, minus, times, div,
	// and the is*-prefixed comparisons, which return the operand type).
	SameAsDomain ResultKind = iota
	// Boolean means the operator always yields bool, regardless of the
	// operand domain: the strict comparisons (eq, ne, gt, lt, ge, le).
	Boolean
	// Logical means the operator both takes and returns bool: the logical
	// connectives (lor, land, lxor).
	Logical
)

// commutative records, per operator, whether ⊗(a,b) == ⊗(b,a) for all
// admissible a, b. This is the bit the flipxy contract is checked
// against.
var commutative = [...]bool{
	First: false, Second: false, Min: true, Max: true, Plus: true,
	Minus: false, Times: true, Div: false, Iseq: true, Isne: true,
	Isgt: false, Islt: false, Isge: false, Isle: false,
	Eq: true, Ne: true, Gt: false, Lt: false, Ge: false, Le: false,
	Lor: true, Land: true, Lxor: true,
}

// Commutative reports whether id is commutative. Non-commutative operators
// make flipxy semantically significant.
func Commutative(id BinaryOpID) bool { return commutative[id] }

// resultKind classifies each operator.
var resultKind = [...]ResultKind{
	First: SameAsDomain, Second: SameAsDomain, Min: SameAsDomain, Max: SameAsDomain,
	Plus: SameAsDomain, Minus: SameAsDomain, Times: SameAsDomain, Div: SameAsDomain,
	Iseq: SameAsDomain, Isne: SameAsDomain, Isgt: SameAsDomain, Islt: SameAsDomain,
	Isge: SameAsDomain, Isle: SameAsDomain,
	Eq: Boolean, Ne: Boolean, Gt: Boolean, Lt: Boolean, Ge: Boolean, Le: Boolean,
	Lor: Logical, Land: Logical, Lxor: Logical,
}

// Kind reports the ResultKind of id.
func Kind(id BinaryOpID) ResultKind { return resultKind[id] }

// RequiresNumericDomain reports whether id must operate on a numeric
// element type (excludes the purely logical family, which requires bool).
func RequiresNumericDomain(id BinaryOpID) bool { return resultKind[id] != Logical }
