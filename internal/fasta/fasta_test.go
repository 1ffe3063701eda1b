package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMultiRecord(t *testing.T) {
	in := `>seq1 some description
ACGU
ACGU

>seq2
uuuu
`
	recs, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "seq1", recs[0].ID)
	assert.Equal(t, "ACGUACGU", string(recs[0].Seq))
	assert.Equal(t, "seq2", recs[1].ID)
	assert.Equal(t, "uuuu", string(recs[1].Seq))
}

func TestReadEmpty(t *testing.T) {
	recs, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestReadFilePlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.fa")
	require.NoError(t, os.WriteFile(path, []byte(">a\nACGT\n"), 0o644))
	recs, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "ACGT", string(recs[0].Seq))
}

func TestReadFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.fa.gz")
	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(">g\nGGGG\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	recs, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "g", recs[0].ID)
	assert.Equal(t, "GGGG", string(recs[0].Seq))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.fa"))
	assert.Error(t, err)
}
