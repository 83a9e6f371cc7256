package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvalign/align"
)

// TestPointer_Has verifies independent membership of tied flags.
func TestPointer_Has(t *testing.T) {
	p := align.FromDiagonal | align.FromLeft
	assert.True(t, p.Has(align.FromDiagonal))
	assert.True(t, p.Has(align.FromLeft))
	assert.False(t, p.Has(align.FromUp))
	assert.True(t, p.Has(align.FromDiagonal|align.FromLeft))
	assert.False(t, p.Has(align.None), "None is never a member")
	assert.Equal(t, 2, p.Count())
	assert.Equal(t, 0, align.None.Count())
}

// TestPointer_Legacy checks the additive codes and their inverse.
func TestPointer_Legacy(t *testing.T) {
	cases := []struct {
		p    align.Pointer
		code int
	}{
		{align.None, 0},
		{align.FromDiagonal, 2},
		{align.FromUp, 3},
		{align.FromLeft, 4},
		{align.FromDiagonal | align.FromUp, 5},
		{align.FromDiagonal | align.FromLeft, 6},
		{align.FromUp | align.FromLeft, 7},
		{align.FromDiagonal | align.FromUp | align.FromLeft, 9},
		{align.FromTranspose, 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.p.Legacy(), "legacy code of %v", tc.p)
		back, ok := align.PointerFromLegacy(tc.code)
		assert.True(t, ok, "code %d must decode", tc.code)
		assert.Equal(t, tc.p, back)
	}

	_, ok := align.PointerFromLegacy(1)
	assert.False(t, ok, "1 is not a sum of any flag subset")
	_, ok = align.PointerFromLegacy(18)
	assert.False(t, ok)
}

func TestPointer_String(t *testing.T) {
	assert.Equal(t, "·", align.None.String())
	assert.Equal(t, "↖", align.FromDiagonal.String())
	assert.Equal(t, "↖↑←", (align.FromDiagonal | align.FromUp | align.FromLeft).String())
}
