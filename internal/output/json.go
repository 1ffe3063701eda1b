package output

import (
	"encoding/json"
	"io"

	"cmsearch/internal/search"
	"cmsearch/pkg/api"
)

// ToAPIHit converts a domain Hit to the stable wire schema (v1).
func ToAPIHit(h search.Hit) api.HitV1 {
	return api.HitV1{
		SequenceName: h.SequenceName,
		Start:        h.Start,
		End:          h.End,
		Score:        h.Score,
		EValue:       h.EValue,
		Alignment:    h.Alignment,
	}
}

func toAPIHits(hits []search.Hit) []api.HitV1 {
	out := make([]api.HitV1, 0, len(hits))
	for _, h := range hits {
		out = append(out, ToAPIHit(h))
	}
	return out
}

// WriteJSON writes a single pretty-indented JSON array of v1 hits.
func WriteJSON(w io.Writer, hits []search.Hit) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPIHits(hits))
}

// WriteJSONL writes each hit as one JSON line.
func WriteJSONL(w io.Writer, hits []search.Hit) error {
	enc := json.NewEncoder(w)
	for _, h := range hits {
		if err := enc.Encode(ToAPIHit(h)); err != nil {
			return err
		}
	}
	return nil
}
