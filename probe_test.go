// FILE: probe_test.go
package bucket4j

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsumptionProbe(t *testing.T) {
	consumed := ConsumedProbe(6)
	assert.True(t, consumed.Consumed())
	assert.Equal(t, int64(6), consumed.RemainingTokens())
	assert.Equal(t, int64(0), consumed.NanosToWaitForRefill())

	rejected := RejectedProbe(0, 500)
	assert.False(t, rejected.Consumed())
	assert.Equal(t, int64(0), rejected.RemainingTokens())
	assert.Equal(t, int64(500), rejected.NanosToWaitForRefill())
}
