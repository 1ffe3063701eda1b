package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignificanceStaircase(t *testing.T) {
	cases := []struct {
		score float64
		want  float64
	}{
		{0.99, 1e-100},
		{0.955, 1e-100},
		{0.95, 1e-50}, // breakpoints are strict
		{0.91, 1e-50},
		{0.86, 1e-30},
		{0.805, 1e-15},
		{0.76, 1e-8},
		{0.705, 1e-4},
		{0.66, 1e-2},
		{0.605, 1e-1},
		{0.60, 1.0},
		{0.5, 1.0},
		{0.0, 1.0},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, Significance(tc.score), "score %v", tc.score)
	}
}

func TestSignificanceNonIncreasing(t *testing.T) {
	prev := Significance(0.0)
	for s := 0.0; s <= 1.0; s += 0.001 {
		cur := Significance(s)
		assert.LessOrEqual(t, cur, prev, "significance must not increase with score")
		prev = cur
	}
}
