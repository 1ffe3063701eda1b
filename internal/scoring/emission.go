package scoring

// Background is the per-position null probability under the uniform
// four-symbol alphabet.
const Background = 0.25

// EmissionProbability returns the probability of observing symbol a at a
// model position whose consensus symbol is b. Comparison is case-insensitive.
// Identity outranks base pairing: N against N is an exact match, while N
// against anything else scores as background noise.
func EmissionProbability(a, b byte) float64 {
	a, b = upper(a), upper(b)
	switch {
	case a == b:
		return 0.95
	case pair(a, b, 'A', 'U') || pair(a, b, 'G', 'C'):
		return 0.85 // Watson-Crick
	case pair(a, b, 'G', 'U'):
		return 0.70 // wobble
	case a == 'N' || b == 'N':
		return 0.05
	default:
		return 0.01
	}
}

func pair(a, b, x, y byte) bool {
	return (a == x && b == y) || (a == y && b == x)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
