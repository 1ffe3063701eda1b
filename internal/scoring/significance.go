package scoring

// Significance maps a refine-stage score to an E-value estimate via a fixed
// monotonic staircase. Breakpoints are exact; nothing is interpolated.
// Lower is more significant.
func Significance(score float64) float64 {
	switch {
	case score > 0.95:
		return 1e-100
	case score > 0.90:
		return 1e-50
	case score > 0.85:
		return 1e-30
	case score > 0.80:
		return 1e-15
	case score > 0.75:
		return 1e-8
	case score > 0.70:
		return 1e-4
	case score > 0.65:
		return 1e-2
	case score > 0.60:
		return 1e-1
	default:
		return 1.0
	}
}
