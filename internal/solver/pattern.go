// internal/solver/pattern.go
//
// Pattern is one candidate solution skeleton: five slots, each either a
// resolved uppercase letter or the '_' placeholder. Patterns are plain
// values; expansion steps copy rather than mutate, so no candidate ever
// aliases another.

package solver

// WordLen is the fixed word length. The grammar and generator support no
// other size.
const WordLen = 5

// Placeholder marks an unresolved slot in a Pattern.
const Placeholder byte = '_'

// Pattern is a 5-slot candidate skeleton. The zero value is not valid;
// use blank().
type Pattern [WordLen]byte

// blank returns the all-placeholder Pattern.
func blank() Pattern {
	var p Pattern
	for i := range p {
		p[i] = Placeholder
	}
	return p
}

// String renders the pattern as a 5-character string, e.g. "_LH__".
func (p Pattern) String() string { return string(p[:]) }

// open reports whether slot (1–5) is still a placeholder.
func (p Pattern) open(slot int) bool { return p[slot-1] == Placeholder }

// place returns a copy of p with letter written at slot (1–5).
func (p Pattern) place(slot int, letter byte) Pattern {
	p[slot-1] = letter
	return p
}
