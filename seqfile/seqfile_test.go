package seqfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalign/seqfile"
)

const twoRecords = `>seq1 first test sequence
ACTG
GATT
>seq2
acgt
`

// writeTemp stores content in a fresh file and returns its path.
func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fasta")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestParse(t *testing.T) {
	recs, err := seqfile.Parse(strings.NewReader(twoRecords))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "seq1", recs[0].ID)
	assert.Equal(t, "first test sequence", recs[0].Desc)
	assert.Equal(t, "ACTGGATT", recs[0].Seq, "sequence lines are concatenated")
	assert.Equal(t, "seq2", recs[1].ID)
	assert.Equal(t, "acgt", recs[1].Seq, "letters are kept as written")
}

func TestParse_Empty(t *testing.T) {
	_, err := seqfile.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, seqfile.ErrNoRecords)
}

func TestReadFASTA(t *testing.T) {
	recs, err := seqfile.ReadFASTA(writeTemp(t, twoRecords))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "ACTGGATT", recs[0].Seq)

	first, err := seqfile.First(writeTemp(t, twoRecords))
	require.NoError(t, err)
	assert.Equal(t, recs[0], first)
}

func TestReadFASTA_Errors(t *testing.T) {
	_, err := seqfile.ReadFASTA(writeTemp(t, ""))
	assert.ErrorIs(t, err, seqfile.ErrNoRecords, "empty file")

	_, err = seqfile.ReadFASTA(filepath.Join(t.TempDir(), "missing.fasta"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = seqfile.ReadFASTA(t.TempDir())
	assert.ErrorIs(t, err, seqfile.ErrNotRegular)
}
