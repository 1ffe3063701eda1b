package search

import (
	"cmsearch/internal/fasta"
	"cmsearch/internal/model"
	"cmsearch/internal/scoring"
	"cmsearch/internal/strand"
)

// Stage thresholds. Filter admits candidate regions cheaply; refine re-scores
// them more strictly before a Hit is created.
const (
	filterThreshold = 0.7
	refineThreshold = 0.8
)

// minSequenceFraction of the model length a sequence must reach to be
// searched at all.
const minSequenceFraction = 0.8

// Hit is one accepted match, always in forward-strand coordinates. Immutable
// once created; the aggregator only reorders and drops them.
type Hit struct {
	SequenceName string
	Start        int
	End          int
	Score        float64
	EValue       float64
	Alignment    string
}

// region is a candidate [start,end) span that passed the coarse filter.
type region struct {
	start, end int
}

// Sequence runs the full two-stage search over one sequence, both strands.
// Reverse-strand hits are remapped into forward coordinates and reported
// under the original sequence name. Sequences shorter than 80% of the model
// length are skipped entirely.
func Sequence(m *model.Model, rec fasta.Record) []Hit {
	seqLen := len(rec.Seq)
	if seqLen < int(float64(m.Length())*minSequenceFraction) {
		return nil
	}
	consensus := []byte(m.Consensus())

	hits := searchStrand(rec.ID, rec.Seq, consensus, m.Length())

	rc := strand.ReverseComplement(rec.Seq)
	for _, h := range searchStrand(rec.ID, rc, consensus, m.Length()) {
		h.Start, h.End = strand.ToForward(seqLen, h.Start, h.End)
		hits = append(hits, h)
	}
	return hits
}

func searchStrand(name string, seq, consensus []byte, modelLen int) []Hit {
	var hits []Hit
	for _, r := range filterStage(seq, consensus, modelLen) {
		if h, ok := refineStage(name, seq, consensus, modelLen, r); ok {
			hits = append(hits, h)
		}
	}
	return hits
}

// filterStage slides half-overlapping model-length windows over seq and
// returns the spans whose coarse score clears the filter threshold. The scan
// stops at the first window shorter than half the window length.
func filterStage(seq, consensus []byte, modelLen int) []region {
	step := modelLen / 2
	if step < 1 {
		step = 1
	}
	var regions []region
	for start := 0; start < len(seq); start += step {
		end := start + modelLen
		if end > len(seq) {
			end = len(seq)
		}
		if end-start < modelLen/2 {
			break
		}
		if scoring.FilterScore(seq[start:end], consensus) > filterThreshold {
			regions = append(regions, region{start: start, end: end})
		}
	}
	return regions
}

// refineStage re-scores one candidate region; on acceptance it creates the
// Hit and attaches the E-value estimate.
func refineStage(name string, seq, consensus []byte, modelLen int, r region) (Hit, bool) {
	if r.end-r.start < modelLen/2 {
		return Hit{}, false
	}
	score := scoring.RefineScore(seq[r.start:r.end], consensus)
	if score <= refineThreshold {
		return Hit{}, false
	}
	return Hit{
		SequenceName: name,
		Start:        r.start,
		End:          r.end,
		Score:        score,
		EValue:       scoring.Significance(score),
	}, true
}
