package output

import (
	"fmt"
	"io"

	"cmsearch/internal/search"
)

// Report carries the run metadata printed in the text header.
type Report struct {
	Query  string // model file
	Target string // sequence database
}

// WriteText renders the human-readable report: a short header block followed
// by the ranked hit-score table. Scores are scaled x1000 for display and
// start coordinates are 1-based.
func WriteText(w io.Writer, r Report, hits []search.Hit) error {
	if _, err := fmt.Fprintf(w, "Query:       %s\nTarget:      %s\nHits:        %d\n\n",
		r.Query, r.Target, len(hits)); err != nil {
		return err
	}
	if len(hits) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, "Hit scores:\n"+
		"  rank     E-value  score  sequence                               start    end\n"+
		" -----   --------- ------  ------------------------------------- ------ ------\n"); err != nil {
		return err
	}
	for i, h := range hits {
		name := h.SequenceName
		if len(name) > 35 {
			name = name[:32] + "..."
		}
		_, err := fmt.Fprintf(w, "  (%3d) ! %9s %6.1f  %-37s %6d %6d\n",
			i+1, formatEValue(h.EValue), h.Score*1000, name, h.Start+1, h.End)
		if err != nil {
			return err
		}
	}
	return nil
}

func formatEValue(e float64) string {
	if e < 1e-10 {
		return "0"
	}
	return fmt.Sprintf("%.1e", e)
}
