package output

import (
	"fmt"
	"io"

	"cmsearch/internal/search"
)

// WriteTSV prints one tab-separated row per hit, optionally preceded by a
// header line.
func WriteTSV(w io.Writer, hits []search.Hit, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "sequence_name\tstart\tend\tlength\tscore\tevalue"); err != nil {
			return err
		}
	}
	for _, h := range hits {
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%g\t%g\n",
			h.SequenceName, h.Start, h.End, h.End-h.Start, h.Score, h.EValue)
		if err != nil {
			return err
		}
	}
	return nil
}
