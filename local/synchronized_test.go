// FILE: local/synchronized_test.go
package local

import (
	"testing"
	"time"

	"github.com/lixenwraith/log"
	bucket4j "github.com/rahul-x-verma/bucket4j"
	"github.com/rahul-x-verma/bucket4j/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSynchronizedBucket_RejectsInvalidConfigurationWithLogger(t *testing.T) {
	logger := log.NewLogger()
	cfg, err := bucket4j.NewConfiguration(bucket4j.NewGreedyBandwidth(-1, 1, time.Second))
	require.NoError(t, err)

	_, err = NewSynchronizedBucket(cfg, clock.NewManual(0), WithLogger(logger))
	assert.ErrorIs(t, err, bucket4j.ErrInvalidConfiguration)
}

func TestSynchronizedBucket_GetConfigurationReturnsWhatWasBuilt(t *testing.T) {
	cfg, err := bucket4j.NewConfiguration(bucket4j.NewGreedyBandwidth(10, 10, time.Second))
	require.NoError(t, err)

	b, err := NewSynchronizedBucket(cfg, clock.NewManual(0))
	require.NoError(t, err)
	assert.Equal(t, cfg, b.GetConfiguration())
}

// S7: concurrent TryConsume under a Greedy bandwidth refilling 1 token per
// hour: capacity exceeds the 8000 requests in total, so every request
// succeeds and none is double-spent, however the goroutines interleave.
func TestSynchronizedBucket_ConcurrentTryConsumeNeverOverdraws(t *testing.T) {
	const capacity = 10000
	const goroutines = 8
	const perGoroutine = 1000

	cfg, err := bucket4j.NewConfiguration(bucket4j.NewGreedyBandwidth(capacity, 1, time.Hour))
	require.NoError(t, err)
	b, err := NewSynchronizedBucket(cfg, clock.System())
	require.NoError(t, err)

	var successes atomicCounter
	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			for j := 0; j < perGoroutine; j++ {
				ok, err := b.TryConsume(1)
				if err != nil {
					return err
				}
				if ok {
					successes.inc()
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(8000), successes.load())
	assert.Equal(t, int64(capacity-8000), b.GetAvailableTokens())
}
