package pipeline

import (
	"sort"

	"cmsearch/internal/config"
	"cmsearch/internal/search"
)

// Less defines the total order of the final hit list: best score first, ties
// broken by sequence name then start so parallel completion order never leaks
// into the output.
func Less(a, b search.Hit) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.SequenceName != b.SequenceName {
		return a.SequenceName < b.SequenceName
	}
	return a.Start < b.Start
}

// Aggregate sorts the raw hit set deterministically and applies the final
// acceptance filters: E-value at most cfg.EValue, and score at least
// cfg.Score when one is set.
func Aggregate(raw []search.Hit, cfg config.Search) []search.Hit {
	hits := make([]search.Hit, len(raw))
	copy(hits, raw)
	sort.SliceStable(hits, func(i, j int) bool { return Less(hits[i], hits[j]) })

	out := hits[:0]
	for _, h := range hits {
		if h.EValue > cfg.EValue {
			continue
		}
		if cfg.Score != nil && h.Score < *cfg.Score {
			continue
		}
		out = append(out, h)
	}
	return out
}
