package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowes/wordhint/internal/constraint"
)

func patterns(t *testing.T, line string) []string {
	t.Helper()
	got, err := SolveLine(line)
	require.NoError(t, err)
	out := make([]string, 0, len(got))
	for _, p := range got {
		out = append(out, p.String())
	}
	return out
}

func TestSolveEmptyConstraints(t *testing.T) {
	got, err := Solve(nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "_____", got[0].String())
}

func TestSolveSingleGreen(t *testing.T) {
	assert.Equal(t, []string{"__H__"}, patterns(t, "hg3"))
}

func TestSolveGreensOnDistinctSlots(t *testing.T) {
	assert.Equal(t, []string{"C_H_T"}, patterns(t, "hg3 cg1 tg5"))
}

func TestSolveConflictingGreens(t *testing.T) {
	_, err := SolveLine("hg3 kg3")
	assert.ErrorIs(t, err, ErrConflictingGreen)

	// Same letter on the same slot is still a conflict.
	_, err = SolveLine("hg3 hg3")
	assert.ErrorIs(t, err, ErrConflictingGreen)
}

func TestSolveYellowAroundGreen(t *testing.T) {
	// L excluded from slots 1 and 5; slot 3 is green-locked, so the only
	// eligible slots are 2 and 4.
	got := patterns(t, "hg3 ly15")
	assert.ElementsMatch(t, []string{"_LH__", "__HL_"}, got)
}

func TestSolveYellowSlotOrderIsDeterministic(t *testing.T) {
	// Children are spawned slot-ascending per parent pattern.
	assert.Equal(t, []string{"_LH__", "__HL_"}, patterns(t, "hg3 ly15"))
}

func TestSolveDoubleYellow(t *testing.T) {
	// Two L occurrences, slots 1 and 5 excluded: every 2-combination of
	// the three eligible slots {2,3,4}.
	got := patterns(t, "ly15!")
	assert.ElementsMatch(t, []string{"_LL__", "_L_L_", "__LL_"}, got)
	for _, p := range got {
		lCount := 0
		for i := 0; i < len(p); i++ {
			if p[i] == 'L' {
				lCount++
			}
		}
		assert.Equal(t, 2, lCount, p)
	}
}

func TestSolveUnsatisfiableIsEmptyNotError(t *testing.T) {
	// Four L occurrences with only slots 2–4 eligible can never fit.
	got, err := SolveLine("ly15!!!")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSolveAllSlotsExcluded(t *testing.T) {
	got, err := SolveLine("ly12345")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSolveYellowNeverOverwritesPlacedLetters(t *testing.T) {
	// Both yellows compete for the open slots; no pattern may stack two
	// letters on one slot.
	got := patterns(t, "hg3 ly15 ry15")
	for _, p := range got {
		assert.Equal(t, byte('H'), p[2], p)
		assert.Contains(t, []string{"_LHR_", "_RHL_"}, p)
	}
	assert.Len(t, got, 2)
}

func TestSolveDeduplicates(t *testing.T) {
	// Two occurrences across three slots spawn six children that collapse
	// to three distinct patterns.
	got := patterns(t, "ly15!")
	seen := map[string]bool{}
	for _, p := range got {
		assert.False(t, seen[p], "duplicate %s", p)
		seen[p] = true
	}
}

func TestSolveDeterministic(t *testing.T) {
	first := patterns(t, "hg3 ly15 ry2!")
	second := patterns(t, "hg3 ly15 ry2!")
	assert.Equal(t, first, second)
}

func TestSolveLineParseErrorPropagates(t *testing.T) {
	_, err := SolveLine("hg3 bogus")
	assert.ErrorIs(t, err, constraint.ErrUnrecognizedKind)
}
