package api

// HitV1 is the stable JSON/JSONL schema for search hits.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	SequenceName string  `json:"sequence_name"`
	Start        int     `json:"start"`
	End          int     `json:"end"`
	Score        float64 `json:"score"`
	EValue       float64 `json:"evalue"`
	Alignment    string  `json:"alignment,omitempty"`
}
