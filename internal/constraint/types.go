// internal/constraint/types.go
//
// Core type definitions for hint constraints.
// Defines:
//   - Kind: discriminates the two constraint variants (green/yellow).
//   - Constraint: one parsed hint about the solution word.

package constraint

// Kind tags a Constraint as one of the two supported variants.
// Possible values:
//   - KindGreen:  letter confirmed at an exact slot.
//   - KindYellow: letter present, with known-wrong slots and a minimum
//     occurrence count.
type Kind int

const (
	KindGreen Kind = iota
	KindYellow
)

// Constraint is a tagged variant carrying one hint about the solution.
// Letter is always canonical uppercase A–Z. Slot is meaningful only for
// green constraints; ExcludedSlots and Count only for yellow ones.
type Constraint struct {
	Kind          Kind
	Letter        byte  // canonical uppercase A–Z
	Slot          int   // green: exact slot, 1–5
	ExcludedSlots []int // yellow: slots the letter is known NOT to occupy (deduplicated, token order)
	Count         int   // yellow: minimum occurrences, always ≥ 1
}

// Excludes reports whether slot is in the constraint's excluded set.
func (c Constraint) Excludes(slot int) bool {
	for _, s := range c.ExcludedSlots {
		if s == slot {
			return true
		}
	}
	return false
}
