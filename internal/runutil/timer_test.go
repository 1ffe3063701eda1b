package runutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerElapsed(t *testing.T) {
	tm := StartTimer("phase", nil)
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, tm.Elapsed(), 5*time.Millisecond)
	assert.NotPanics(t, tm.Stop)
}
