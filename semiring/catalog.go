package semiring

import (
	"sync"

	"github.com/samber/lo"
)

// multiplies is the fixed list of binary operators exposed by the catalog.
var multiplies = []BinaryOpID{
	First, Second, Min, Max, Plus, Minus, Times, Div,
	Iseq, Isne, Isgt, Islt, Isge, Isle,
	Eq, Ne, Gt, Lt, Ge, Le, Lor, Land, Lxor,
}

// monoids is the fixed list of monoids exposed by the catalog.
var monoids = []MonoidID{
	MinMonoid, MaxMonoid, PlusMonoid, TimesMonoid,
	LorMonoid, LandMonoid, LxorMonoid, EqMonoid,
}

// numericTypes is the fixed list of numeric element types (Bool and User
// are handled by separate, non-numeric families).
var numericTypes = []ElementType{
	Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64, FP32, FP64,
}

// Catalog is the engine's immutable, process-wide operator registry. It is
// built exactly once (behind a sync.Once, per the design notes' "process-
// wide state" guidance) and thereafter read freely by any number of
// goroutines without locking.
type Catalog struct {
	// semirings holds every admissible Semiring, independent of element
	// type (domain-level admissibility, per DomainMatches).
	semirings []Semiring
}

var (
	catalogOnce sync.Once
	catalog     *Catalog
)

// Builtin returns the process-wide Catalog, constructing it on first use.
// Safe for concurrent use.
func Builtin() *Catalog {
	catalogOnce.Do(func() {
		catalog = buildCatalog()
	})
	return catalog
}

func buildCatalog() *Catalog {
	var all []Semiring
	for _, mo := range monoids {
		for _, mu := range multiplies {
			sr := Semiring{Monoid: mo, Multiply: mu}
			if sr.DomainMatches() {
				all = append(all, sr)
			}
		}
	}

	return &Catalog{semirings: all}
}

// Semirings returns every domain-admissible (monoid, multiply) pair.
func (c *Catalog) Semirings() []Semiring {
	out := make([]Semiring, len(c.semirings))
	copy(out, c.semirings)
	return out
}

// NumericTypes returns the catalog's numeric element types (Bool and User
// excluded), in the fixed order used for monomorph enumeration.
func (c *Catalog) NumericTypes() []ElementType {
	out := make([]ElementType, len(numericTypes))
	copy(out, numericTypes)
	return out
}

// Admissible reports whether sr may be instantiated over elements of type
// t: sr must be domain-admissible, and t must match the operand domain sr
// requires (numeric or User for SameAsDomain-multiply, numeric for
// Boolean-multiply, bool for Logical-multiply).
func (c *Catalog) Admissible(sr Semiring, t ElementType) bool {
	if !sr.DomainMatches() {
		return false
	}
	switch Kind(sr.Multiply) {
	case SameAsDomain:
		return t.IsNumeric() || t == User
	case Boolean:
		return t.IsNumeric()
	case Logical:
		return t == Bool
	default:
		return false
	}
}

// MonomorphCount reports how many (semiring, type) specializations the
// catalog realizes — the Go-generics analogue of a generated-kernel
// table: one Gustavson/Dot/Heap instantiation per admissible (semiring,
// numeric type) pair, plus the all-bool family.
func (c *Catalog) MonomorphCount() int {
	boolTypes := []ElementType{Bool}
	numeric := c.NumericTypes()

	count := 0
	for _, sr := range c.semirings {
		types := lo.Ternary(Kind(sr.Multiply) == Logical, boolTypes, numeric)
		for _, t := range types {
			if c.Admissible(sr, t) {
				count += 3 // Gustavson, Dot, Heap
			}
		}
	}

	return count
}
