package scoring

import "math"

// MinAlignedPositions is the hard floor below which no window or region can
// score: anything shorter scores exactly 0.
const MinAlignedPositions = 50

// minExactMatchRatio is the coarse filter's hard identity gate.
const minExactMatchRatio = 0.7

// FilterScore is the coarse-stage score for a sequence window against the
// consensus. Windows failing the 70% exact-identity gate or shorter than
// MinAlignedPositions score 0; otherwise the score is the logistic of the
// mean per-position log-odds against the uniform background.
func FilterScore(window, consensus []byte) float64 {
	n := min(len(window), len(consensus))
	if n < MinAlignedPositions {
		return 0
	}

	logOdds := 0.0
	exact := 0
	for i := 0; i < n; i++ {
		if upper(window[i]) == upper(consensus[i]) {
			exact++
		}
		logOdds += math.Log(EmissionProbability(window[i], consensus[i]) / Background)
	}
	if float64(exact)/float64(n) < minExactMatchRatio {
		return 0
	}
	return logistic(logOdds / float64(n))
}

// RefineScore re-scores a candidate region with the same emission model and
// log-odds formula as FilterScore but without the identity gate.
func RefineScore(region, consensus []byte) float64 {
	n := min(len(region), len(consensus))
	if n < MinAlignedPositions {
		return 0
	}

	logOdds := 0.0
	for i := 0; i < n; i++ {
		logOdds += math.Log(EmissionProbability(region[i], consensus[i]) / Background)
	}
	return logistic(logOdds / float64(n))
}

func logistic(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
