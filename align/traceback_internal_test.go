package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalign/scoring"
)

// TestTraceback_BrokenCell corrupts a pointer cell and expects the iterator
// to stop with ErrBrokenTraceback instead of looping or panicking.
func TestTraceback_BrokenCell(t *testing.T) {
	b, err := Build(NeedlemanWunsch, NewData("ACG", "ACG"), scoring.DefaultNeedlemanWunsch())
	require.NoError(t, err)
	require.NoError(t, b.pointer.Set(2, 2, int(None)))

	tb := NewTraceback(b, true)
	assert.False(t, tb.Next())
	assert.ErrorIs(t, tb.Err(), ErrBrokenTraceback)
	assert.False(t, tb.Next(), "a failed traceback stays failed")
}

// TestTraceback_FlagOutsideMatrix drops transitions that would leave the
// grid; with nothing left the cell is reported as broken.
func TestTraceback_FlagOutsideMatrix(t *testing.T) {
	b, err := Build(NeedlemanWunsch, NewData("A", "A"), scoring.DefaultNeedlemanWunsch())
	require.NoError(t, err)
	// (1,1) -> (1,0), whose only flag would step to column -1.
	require.NoError(t, b.pointer.Set(1, 1, int(FromLeft)))
	require.NoError(t, b.pointer.Set(1, 0, int(FromLeft)))

	_, err = NewModel(b, false).Align()
	assert.ErrorIs(t, err, ErrBrokenTraceback)
}

// TestTraceback_SingleSuccessorSharesBuffers checks that sibling frames
// never observe each other's appends.
func TestTraceback_SingleSuccessorSharesBuffers(t *testing.T) {
	b, err := Build(NeedlemanWunsch, NewData("ATGTGTA", "ATA"), scoring.General{Identity: 2, Mismatch: 1, Gap: 1})
	require.NoError(t, err)

	var got []string
	tb := NewTraceback(b, true)
	for tb.Next() {
		got = append(got, tb.Alignment().Subject)
	}
	require.NoError(t, tb.Err())
	assert.Equal(t, []string{"AT----A", "A--T--A", "A----TA"}, got)
}
