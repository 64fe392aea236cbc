// internal/constraint/parser.go
//
// Token grammar for hint constraints.
// Responsibilities:
//   - Parse one token (letter + kind + slot data) into a Constraint.
//   - Split a raw input line into tokens on whitespace and commas.
//   - Classify every grammar violation with a sentinel error.
//
// Grammar:
//   - Every token is at least 3 characters and starts with a letter.
//   - Second character picks the kind: 'g' (green) or 'y' (yellow).
//   - Green: exactly 3 characters, third is the slot digit 1–5. "hg3"
//     means H confirmed at slot 3.
//   - Yellow: middle characters are excluded slot digits 1–5; each
//     trailing '!' raises the required occurrence count by one. "ly15"
//     means one L somewhere outside slots 1 and 5; "ly15!" means two.
//
// Letters are case-insensitive on input and stored uppercase.

package constraint

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// DupMarker is the trailing character on a yellow token that raises the
// occurrence count by one per repetition.
const DupMarker = '!'

// Sentinel parse errors. Callers classify with errors.Is; the wrapped
// message carries the offending token.
var (
	ErrMalformedToken         = errors.New("malformed token")
	ErrUnrecognizedKind       = errors.New("unrecognized constraint kind")
	ErrInvalidGreenPattern    = errors.New("invalid green pattern")
	ErrInvalidYellowSlot      = errors.New("invalid yellow slot")
	ErrMalformedYellowPattern = errors.New("malformed yellow pattern")
)

// ParseToken converts one token into a Constraint.
//
// Validation rules:
//   - Token must be ≥ 3 characters with an alphabetic first character.
//   - Kind character must be 'g' or 'y' (case-insensitive).
//   - Green tokens must be exactly 3 characters with a 1–5 slot digit.
//   - Yellow exclusion digits must all be 1–5; anything else in that span
//     is a malformed pattern.
func ParseToken(tok string) (Constraint, error) {
	if len(tok) < 3 || !isLetter(tok[0]) {
		return Constraint{}, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
	}
	letter := upper(tok[0])

	switch lower(tok[1]) {
	case 'g':
		if len(tok) != 3 {
			return Constraint{}, fmt.Errorf("%w: %q", ErrInvalidGreenPattern, tok)
		}
		slot := slotDigit(tok[2])
		if slot == 0 {
			return Constraint{}, fmt.Errorf("%w: %q", ErrInvalidGreenPattern, tok)
		}
		return Constraint{Kind: KindGreen, Letter: letter, Slot: slot}, nil

	case 'y':
		body := tok[2:]
		count := 1
		for len(body) > 0 && body[len(body)-1] == DupMarker {
			count++
			body = body[:len(body)-1]
		}
		var seen [6]bool
		var excluded []int
		for i := 0; i < len(body); i++ {
			c := body[i]
			if c < '0' || c > '9' {
				return Constraint{}, fmt.Errorf("%w: %q in %q", ErrMalformedYellowPattern, c, tok)
			}
			slot := slotDigit(c)
			if slot == 0 {
				return Constraint{}, fmt.Errorf("%w: %q in %q", ErrInvalidYellowSlot, c, tok)
			}
			if !seen[slot] {
				seen[slot] = true
				excluded = append(excluded, slot)
			}
		}
		return Constraint{Kind: KindYellow, Letter: letter, ExcludedSlots: excluded, Count: count}, nil

	default:
		return Constraint{}, fmt.Errorf("%w: %q in %q", ErrUnrecognizedKind, tok[1], tok)
	}
}

// ParseLine splits a raw input line on whitespace and commas and parses
// each token in order. Any token failure aborts the whole line; no
// partial constraint list is ever returned.
func ParseLine(line string) ([]Constraint, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	out := make([]Constraint, 0, len(fields))
	for _, tok := range fields {
		c, err := ParseToken(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// slotDigit maps a slot digit character to 1–5, or 0 if out of range.
func slotDigit(c byte) int {
	if c < '1' || c > '5' {
		return 0
	}
	return int(c - '0')
}

// isLetter reports whether c is an ASCII letter (either case).
func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// upper/lower fold a single ASCII letter. Inputs are validated to be
// alphabetic before these run.
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
