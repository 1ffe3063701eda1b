package scoring

// Scorer is the minimal scoring capability a stage needs. The log-odds
// functions above are the canonical path; Identity is a cheaper alternative
// for callers that only want a rough ranking.
type Scorer interface {
	Score(window, consensus []byte) float64
}

// LogOdds scores with the canonical refine formula.
type LogOdds struct{}

func (LogOdds) Score(window, consensus []byte) float64 {
	return RefineScore(window, consensus)
}

// Identity scores a window by its exact-match fraction over the aligned
// positions. It applies no length floor and no background model.
type Identity struct{}

func (Identity) Score(window, consensus []byte) float64 {
	n := min(len(window), len(consensus))
	if n == 0 {
		return 0
	}
	matches := 0
	for i := 0; i < n; i++ {
		if window[i] == consensus[i] {
			matches++
		}
	}
	return float64(matches) / float64(n)
}
