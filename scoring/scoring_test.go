package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalign/scoring"
)

// TestGeneral_Accessors checks that optional costs default to zero.
func TestGeneral_Accessors(t *testing.T) {
	sc := scoring.General{Identity: 2, Mismatch: 1, Gap: 3}
	assert.Equal(t, 2, sc.MatchScore())
	assert.Equal(t, 1, sc.MismatchScore())
	assert.Equal(t, 3, sc.GapScore())
	assert.Zero(t, sc.ExtendedGapScore(), "unset extended gap must read as 0")
	assert.Zero(t, sc.TransposeScore(), "unset transpose must read as 0")
}

// TestLevenshtein_MatchIsFree verifies the fixed zero match cost.
func TestLevenshtein_MatchIsFree(t *testing.T) {
	sc := scoring.Levenshtein{Substitution: 2, Gap: 5}
	assert.Zero(t, sc.MatchScore())
	assert.Equal(t, 2, sc.MismatchScore())
	assert.Equal(t, 5, sc.GapScore())
}

func TestOptionalCosts(t *testing.T) {
	tr := scoring.Transpose{Identity: 1, Mismatch: 1, Gap: 1, TransposeCost: 4}
	assert.Equal(t, 4, tr.TransposeScore())
	assert.Zero(t, tr.ExtendedGapScore())

	eg := scoring.ExtendedGap{Identity: 1, Mismatch: 1, Gap: 3, Extension: 1}
	assert.Equal(t, 1, eg.ExtendedGapScore())
	assert.Zero(t, eg.TransposeScore())
}

// TestDefaults pins the default magnitudes per algorithm.
func TestDefaults(t *testing.T) {
	assert.Equal(t, scoring.General{Identity: 2, Mismatch: 1, Gap: 2}, scoring.DefaultNeedlemanWunsch())
	assert.Equal(t, scoring.General{Identity: 2, Mismatch: 1, Gap: 2}, scoring.DefaultSmithWaterman())
	assert.Equal(t, scoring.Levenshtein{Substitution: 1, Gap: 1}, scoring.DefaultWagnerFischer())
}

// TestValidate covers nil and negative policies.
func TestValidate(t *testing.T) {
	require.NoError(t, scoring.Validate(scoring.DefaultNeedlemanWunsch()))
	require.NoError(t, scoring.Validate(scoring.General{}), "all-zero magnitudes are legal")

	assert.ErrorIs(t, scoring.Validate(nil), scoring.ErrNilPolicy)

	err := scoring.Validate(scoring.General{Identity: 1, Mismatch: -1, Gap: 1})
	require.ErrorIs(t, err, scoring.ErrNegativeScore)
	assert.Contains(t, err.Error(), "mismatch=-1")

	err = scoring.Validate(scoring.ExtendedGap{Identity: 1, Mismatch: 1, Gap: 1, Extension: -2})
	require.ErrorIs(t, err, scoring.ErrNegativeScore)
	assert.Contains(t, err.Error(), "extended gap")
}
