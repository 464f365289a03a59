package filter

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnceTimerLastArmWins(t *testing.T) {
	var timer onceTimer
	var first, second atomic.Int32

	timer.Arm(20*time.Millisecond, func() { first.Add(1) })
	timer.Arm(20*time.Millisecond, func() { second.Add(1) })

	require.Eventually(t, func() bool {
		return second.Load() == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestOnceTimerCancel(t *testing.T) {
	var timer onceTimer
	var fired atomic.Int32

	timer.Arm(20*time.Millisecond, func() { fired.Add(1) })
	timer.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())

	// Cancel with nothing pending is a no-op.
	timer.Cancel()
}
