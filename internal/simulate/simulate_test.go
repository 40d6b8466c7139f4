package simulate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBetweenBounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		d := Between(100*time.Millisecond, 500*time.Millisecond)
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
		assert.Less(t, d, 500*time.Millisecond)
	}
}

func TestBetweenDegenerate(t *testing.T) {
	assert.Equal(t, time.Second, Between(time.Second, time.Second))
	assert.Equal(t, time.Second, Between(time.Second, time.Millisecond))
}

func TestShouldFailExtremes(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.False(t, ShouldFail(0))
		assert.True(t, ShouldFail(1))
	}
}

func TestWorkCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	Work(ctx, 10*time.Second, 20*time.Second)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSimulatedValueRanges(t *testing.T) {
	for i := 0; i < 1000; i++ {
		delta := ActiveUserDelta()
		assert.GreaterOrEqual(t, delta, int64(-1))
		assert.LessOrEqual(t, delta, int64(1))

		users := ActiveUsers()
		assert.GreaterOrEqual(t, users, 50)
		assert.LessOrEqual(t, users, 200)

		mem := MemoryUsage()
		assert.GreaterOrEqual(t, mem, int64(1_000_000))
		assert.LessOrEqual(t, mem, int64(2_000_000))

		cpu := CPUUsage()
		assert.GreaterOrEqual(t, cpu, 10.0)
		assert.LessOrEqual(t, cpu, 90.0)
	}
}
