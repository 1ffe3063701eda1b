package pipeline

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsearch/internal/config"
	"cmsearch/internal/fasta"
	"cmsearch/internal/model"
	"cmsearch/internal/search"
)

func testModel() *model.Model {
	return model.New("m", model.AlphabetRNA,
		strings.Repeat("A", 100), 100, [4]float64{1, 0, 0, 0})
}

func testRecords() []fasta.Record {
	return []fasta.Record{
		{ID: "s1", Seq: []byte(strings.Repeat("A", 120))},
		{ID: "short", Seq: []byte(strings.Repeat("A", 10))},
		{ID: "noise", Seq: []byte(strings.Repeat("N", 120))},
	}
}

func TestNew(t *testing.T) {
	t.Run("nil model", func(t *testing.T) {
		_, err := New(nil, config.Default())
		assert.Error(t, err)
	})
	t.Run("invalid config", func(t *testing.T) {
		_, err := New(testModel(), config.Search{EValue: 0, Threads: 1})
		assert.ErrorIs(t, err, config.ErrEValue)
	})
	t.Run("with logger", func(t *testing.T) {
		p, err := New(testModel(), config.Default(), WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, p)
	})
	t.Run("nil logger falls back to default", func(t *testing.T) {
		_, err := New(testModel(), config.Default(), WithLogger(nil))
		assert.NoError(t, err)
	})
}

// The refine bound is unreachable for the shipped emission table, so even a
// perfect consensus copy produces an empty hit list end to end.
func TestSearchCharacterization(t *testing.T) {
	p, err := New(testModel(), config.Search{EValue: 10, Threads: 2})
	require.NoError(t, err)
	hits, err := p.Search(testRecords())
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearchIndependentOfWorkerCount(t *testing.T) {
	recs := testRecords()
	first, err := func() ([]search.Hit, error) {
		p, perr := New(testModel(), config.Search{EValue: 10, Threads: 1})
		require.NoError(t, perr)
		return p.Search(recs)
	}()
	require.NoError(t, err)
	for _, workers := range []int{2, 8} {
		p, perr := New(testModel(), config.Search{EValue: 10, Threads: workers})
		require.NoError(t, perr)
		hits, serr := p.Search(recs)
		require.NoError(t, serr)
		assert.Equal(t, first, hits, "workers=%d", workers)
	}
}

func TestSearchNoSequences(t *testing.T) {
	p, err := New(testModel(), config.Default())
	require.NoError(t, err)
	hits, err := p.Search(nil)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
