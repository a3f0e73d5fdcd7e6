package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickBelowInterval(t *testing.T) {
	p := NewProfiler()
	assert.False(t, p.Tick(), "no stats before the update interval elapses")
}

func TestTickAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.lastTime = time.Now().Add(-2 * time.Second)
	assert.True(t, p.Tick())

	// The window resets after logging.
	assert.False(t, p.Tick())
}
