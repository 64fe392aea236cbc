// internal/solver/solver.go
//
// Candidate generator for hint constraints.
// Responsibilities:
//   - Lock green letters into a base pattern, rejecting slot conflicts.
//   - Expand yellow constraints one occurrence at a time: each occurrence
//     replaces the working set with every (pattern, eligible slot)
//     placement of the yellow letter.
//   - Deduplicate the final set by full slot-sequence equality.
//
// The generator holds no state between calls; each call builds and
// discards its own working set.

package solver

import (
	"errors"
	"fmt"

	"github.com/nlowes/wordhint/internal/constraint"
)

// ErrConflictingGreen reports two green constraints claiming the same
// slot. Raised at generation time, after the whole line has parsed.
var ErrConflictingGreen = errors.New("conflicting green constraint")

// Solve returns every 5-slot pattern consistent with the given
// constraints, deduplicated, in deterministic generation order.
//
// An empty constraint list yields exactly the all-placeholder pattern.
// An unsatisfiable combination yields an empty set and a nil error.
func Solve(cons []constraint.Constraint) ([]Pattern, error) {
	base := blank()

	// Green pass: lock confirmed letters into the base pattern.
	for _, c := range cons {
		if c.Kind != constraint.KindGreen {
			continue
		}
		if !base.open(c.Slot) {
			return nil, fmt.Errorf("%w: %c at slot %d", ErrConflictingGreen, c.Letter, c.Slot)
		}
		base = base.place(c.Slot, c.Letter)
	}

	working := []Pattern{base}

	// Yellow pass: one expansion generation per required occurrence.
	// Every placement spawns a child; the new generation replaces the
	// working set wholesale. An occurrence with no eligible slot anywhere
	// empties the set, which then stays empty.
	for _, c := range cons {
		if c.Kind != constraint.KindYellow {
			continue
		}
		for occ := 0; occ < c.Count; occ++ {
			var next []Pattern
			for _, p := range working {
				for slot := 1; slot <= WordLen; slot++ {
					if c.Excludes(slot) || !p.open(slot) {
						continue
					}
					next = append(next, p.place(slot, c.Letter))
				}
			}
			working = next
		}
	}

	// Dedupe preserving first-seen generation order.
	seen := make(map[Pattern]struct{}, len(working))
	out := make([]Pattern, 0, len(working))
	for _, p := range working {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

// SolveLine parses a raw input line and solves it in one call. This is
// the entry point both the shell and the HTTP API use.
func SolveLine(line string) ([]Pattern, error) {
	cons, err := constraint.ParseLine(line)
	if err != nil {
		return nil, err
	}
	return Solve(cons)
}
