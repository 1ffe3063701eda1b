package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testModelFile(t *testing.T) string {
	var sb strings.Builder
	sb.WriteString("NAME  poly-a\nCLEN  100\nHMM\n")
	for i := 1; i <= 100; i++ {
		sb.WriteString("      1   0.9   0.1   0.1   0.1   a   1.0\n")
	}
	return writeFile(t, "model.cm", sb.String())
}

func TestRunSearchTextNoHits(t *testing.T) {
	modelPath := testModelFile(t)
	seqPath := writeFile(t, "db.fa", ">s1\n"+strings.Repeat("A", 120)+"\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{"search", "--threads", "2", modelPath, seqPath}, &out, &errBuf)
	assert.Equal(t, 0, code, "stderr: %s", errBuf.String())
	assert.Contains(t, out.String(), "Hits:        0")
}

func TestRunSearchFormats(t *testing.T) {
	modelPath := testModelFile(t)
	seqPath := writeFile(t, "db.fa", ">s1\n"+strings.Repeat("A", 120)+"\n")

	t.Run("json", func(t *testing.T) {
		var out, errBuf bytes.Buffer
		code := Run([]string{"search", "--format", "json", modelPath, seqPath}, &out, &errBuf)
		assert.Equal(t, 0, code)
		assert.Equal(t, "[]\n", out.String())
	})
	t.Run("tsv", func(t *testing.T) {
		var out, errBuf bytes.Buffer
		code := Run([]string{"search", "--format", "tsv", modelPath, seqPath}, &out, &errBuf)
		assert.Equal(t, 0, code)
		assert.True(t, strings.HasPrefix(out.String(), "sequence_name\t"))
	})
	t.Run("invalid format", func(t *testing.T) {
		var out, errBuf bytes.Buffer
		code := Run([]string{"search", "--format", "xml", modelPath, seqPath}, &out, &errBuf)
		assert.Equal(t, 2, code)
	})
}

func TestRunSearchOutputFile(t *testing.T) {
	modelPath := testModelFile(t)
	seqPath := writeFile(t, "db.fa", ">s1\nACGU\n")
	outPath := filepath.Join(t.TempDir(), "hits.txt")

	var out, errBuf bytes.Buffer
	code := Run([]string{"search", "--output", outPath, modelPath, seqPath}, &out, &errBuf)
	require.Equal(t, 0, code)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hits:        0")
}

func TestRunUsageErrors(t *testing.T) {
	t.Run("missing args", func(t *testing.T) {
		var out, errBuf bytes.Buffer
		code := Run([]string{"search"}, &out, &errBuf)
		assert.Equal(t, 2, code)
		assert.Contains(t, errBuf.String(), "sequence file")
	})
	t.Run("bad evalue", func(t *testing.T) {
		modelPath := testModelFile(t)
		seqPath := writeFile(t, "db.fa", ">s\nAC\n")
		var out, errBuf bytes.Buffer
		code := Run([]string{"search", "--evalue", "0", modelPath, seqPath}, &out, &errBuf)
		assert.Equal(t, 2, code)
	})
	t.Run("bad log level", func(t *testing.T) {
		var out, errBuf bytes.Buffer
		code := Run([]string{"--log-level", "loud", "info", "x.cm"}, &out, &errBuf)
		assert.Equal(t, 2, code)
	})
}

func TestRunMissingModelFile(t *testing.T) {
	seqPath := writeFile(t, "db.fa", ">s\nACGT\n")
	var out, errBuf bytes.Buffer
	code := Run([]string{"search", filepath.Join(t.TempDir(), "no.cm"), seqPath}, &out, &errBuf)
	assert.Equal(t, 1, code)
}

func TestRunValidate(t *testing.T) {
	modelPath := testModelFile(t)
	var out, errBuf bytes.Buffer
	code := Run([]string{"validate", modelPath}, &out, &errBuf)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "model ok: name=poly-a length=100")
}

func TestRunInfo(t *testing.T) {
	modelPath := testModelFile(t)
	var out, errBuf bytes.Buffer
	code := Run([]string{"info", modelPath}, &out, &errBuf)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Name:        poly-a")
	assert.Contains(t, out.String(), "Length:      100")
	assert.Contains(t, out.String(), "A=1.000")
}
