// FILE: clock/clock_test.go
package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Monotonic(t *testing.T) {
	c := System()
	a := c.CurrentTimeNanos()
	time.Sleep(time.Millisecond)
	b := c.CurrentTimeNanos()
	assert.GreaterOrEqual(t, b, a)
}

func TestManual_AdvanceAndSet(t *testing.T) {
	m := NewManual(1000)
	assert.Equal(t, int64(1000), m.CurrentTimeNanos())

	m.Advance(500 * time.Nanosecond)
	assert.Equal(t, int64(1500), m.CurrentTimeNanos())

	m.SetNanos(42)
	assert.Equal(t, int64(42), m.CurrentTimeNanos())
}

func TestManual_CanMoveBackward(t *testing.T) {
	m := NewManual(1000)
	m.Advance(-2000 * time.Nanosecond)
	assert.Equal(t, int64(-1000), m.CurrentTimeNanos())
}
