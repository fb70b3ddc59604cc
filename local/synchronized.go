// FILE: local/synchronized.go
package local

import (
	"sync"

	bucket4j "github.com/rahul-x-verma/bucket4j"
	"github.com/rahul-x-verma/bucket4j/clock"
)

// SynchronizedBucket wraps a single BucketState behind a mutex: nothing
// in this type ever calls back into a locked method from within another,
// so a plain sync.Mutex plays the role a reentrant lock would. Every
// operation's atomic section is exactly the region between Lock and
// Unlock.
type SynchronizedBucket struct {
	configuration bucket4j.BucketConfiguration
	bandwidths    []bucket4j.Bandwidth
	clock         clock.Clock
	opts          *options

	mu    sync.Mutex
	state *bucket4j.BucketState
}

// NewSynchronizedBucket validates configuration and constructs a
// SynchronizedBucket seeded at clock's current time.
func NewSynchronizedBucket(configuration bucket4j.BucketConfiguration, c clock.Clock, opts ...Option) (*SynchronizedBucket, error) {
	o := resolveOptions(opts)
	if err := validateConfiguration(configuration); err != nil {
		o.logger.Error("msg", "rejecting invalid bucket configuration", "error", err.Error())
		return nil, err
	}
	bandwidths := configuration.Bandwidths()

	now := c.CurrentTimeNanos()
	return &SynchronizedBucket{
		configuration: configuration,
		bandwidths:    bandwidths,
		clock:         c,
		opts:          o,
		state:         bucket4j.NewBucketState(bandwidths, now),
	}, nil
}

func (b *SynchronizedBucket) TryConsume(tokensToConsume int64) (bool, error) {
	if err := bucket4j.ValidateConsumeRequest(b.configuration, tokensToConsume); err != nil {
		return false, err
	}
	now := b.clock.CurrentTimeNanos()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.RefillAllBandwidths(b.bandwidths, now)
	available := b.state.AvailableTokens()
	if tokensToConsume > available {
		return false, nil
	}
	b.state.Consume(tokensToConsume)
	return true, nil
}

func (b *SynchronizedBucket) TryConsumeAndReturnRemainingTokens(tokensToConsume int64) (bucket4j.ConsumptionProbe, error) {
	if err := bucket4j.ValidateConsumeRequest(b.configuration, tokensToConsume); err != nil {
		return bucket4j.ConsumptionProbe{}, err
	}
	now := b.clock.CurrentTimeNanos()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.RefillAllBandwidths(b.bandwidths, now)
	available := b.state.AvailableTokens()
	if tokensToConsume > available {
		delay := b.state.DelayNanosAfterWillBePossibleToConsume(b.bandwidths, now, tokensToConsume)
		return bucket4j.RejectedProbe(available, delay), nil
	}
	b.state.Consume(tokensToConsume)
	return bucket4j.ConsumedProbe(available - tokensToConsume), nil
}

func (b *SynchronizedBucket) ConsumeAsMuchAsPossible(limit int64) (int64, error) {
	if limit < 0 {
		return 0, bucket4j.ErrNonPositiveTokens
	}
	now := b.clock.CurrentTimeNanos()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.RefillAllBandwidths(b.bandwidths, now)
	available := b.state.AvailableTokens()
	toConsume := limit
	if available < toConsume {
		toConsume = available
	}
	if toConsume == 0 {
		return 0, nil
	}
	b.state.Consume(toConsume)
	return toConsume, nil
}

func (b *SynchronizedBucket) ReserveAndCalculateTimeToSleep(tokensToConsume, waitIfBusyNanosLimit int64) (int64, error) {
	if err := bucket4j.ValidateReserveRequest(tokensToConsume, waitIfBusyNanosLimit); err != nil {
		return 0, err
	}
	now := b.clock.CurrentTimeNanos()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.RefillAllBandwidths(b.bandwidths, now)
	delay := b.state.DelayNanosAfterWillBePossibleToConsume(b.bandwidths, now, tokensToConsume)
	if waitIfBusyNanosLimit > 0 && delay > waitIfBusyNanosLimit {
		return bucket4j.MaxSentinel, nil
	}
	b.state.Consume(tokensToConsume)
	return delay, nil
}

func (b *SynchronizedBucket) AddTokens(tokensToAdd int64) error {
	if err := bucket4j.ValidateAddRequest(tokensToAdd); err != nil {
		return err
	}
	now := b.clock.CurrentTimeNanos()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.RefillAllBandwidths(b.bandwidths, now)
	b.state.AddTokens(b.bandwidths, tokensToAdd)
	return nil
}

func (b *SynchronizedBucket) GetAvailableTokens() int64 {
	now := b.clock.CurrentTimeNanos()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.RefillAllBandwidths(b.bandwidths, now)
	return b.state.AvailableTokens()
}

func (b *SynchronizedBucket) CreateSnapshot() *bucket4j.BucketState {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state.Copy()
}

func (b *SynchronizedBucket) GetConfiguration() bucket4j.BucketConfiguration {
	return b.configuration
}
