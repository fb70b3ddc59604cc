// FILE: local/lockfree.go
package local

import (
	"sync/atomic"

	bucket4j "github.com/rahul-x-verma/bucket4j"
	"github.com/rahul-x-verma/bucket4j/clock"
)

// LockFreeBucket holds the BucketState behind an atomically swappable
// reference. Every mutating operation works on a local copy and installs
// it via compare-and-swap, retrying on failure. The CAS compares by
// reference identity; atomic.Pointer's CompareAndSwap gives the
// acquire-release ordering concurrent readers and writers need.
type LockFreeBucket struct {
	configuration bucket4j.BucketConfiguration
	bandwidths    []bucket4j.Bandwidth
	clock         clock.Clock
	opts          *options

	state atomic.Pointer[bucket4j.BucketState]
}

// NewLockFreeBucket validates configuration and constructs a
// LockFreeBucket seeded at clock's current time.
func NewLockFreeBucket(configuration bucket4j.BucketConfiguration, c clock.Clock, opts ...Option) (*LockFreeBucket, error) {
	o := resolveOptions(opts)
	if err := validateConfiguration(configuration); err != nil {
		o.logger.Error("msg", "rejecting invalid bucket configuration", "error", err.Error())
		return nil, err
	}
	bandwidths := configuration.Bandwidths()

	now := c.CurrentTimeNanos()
	b := &LockFreeBucket{
		configuration: configuration,
		bandwidths:    bandwidths,
		clock:         c,
		opts:          o,
	}
	b.state.Store(bucket4j.NewBucketState(bandwidths, now))
	return b, nil
}

func (b *LockFreeBucket) TryConsume(tokensToConsume int64) (bool, error) {
	if err := bucket4j.ValidateConsumeRequest(b.configuration, tokensToConsume); err != nil {
		return false, err
	}
	now := b.clock.CurrentTimeNanos()

	previous := b.state.Load()
	working := previous.Copy()
	for {
		working.RefillAllBandwidths(b.bandwidths, now)
		available := working.AvailableTokens()
		if tokensToConsume > available {
			return false, nil
		}
		working.Consume(tokensToConsume)
		if b.state.CompareAndSwap(previous, working) {
			return true, nil
		}
		previous = b.state.Load()
		working.CopyStateFrom(previous)
	}
}

func (b *LockFreeBucket) TryConsumeAndReturnRemainingTokens(tokensToConsume int64) (bucket4j.ConsumptionProbe, error) {
	if err := bucket4j.ValidateConsumeRequest(b.configuration, tokensToConsume); err != nil {
		return bucket4j.ConsumptionProbe{}, err
	}
	now := b.clock.CurrentTimeNanos()

	previous := b.state.Load()
	working := previous.Copy()
	for {
		working.RefillAllBandwidths(b.bandwidths, now)
		available := working.AvailableTokens()
		if tokensToConsume > available {
			delay := working.DelayNanosAfterWillBePossibleToConsume(b.bandwidths, now, tokensToConsume)
			return bucket4j.RejectedProbe(available, delay), nil
		}
		working.Consume(tokensToConsume)
		if b.state.CompareAndSwap(previous, working) {
			return bucket4j.ConsumedProbe(available - tokensToConsume), nil
		}
		previous = b.state.Load()
		working.CopyStateFrom(previous)
	}
}

func (b *LockFreeBucket) ConsumeAsMuchAsPossible(limit int64) (int64, error) {
	if limit < 0 {
		return 0, bucket4j.ErrNonPositiveTokens
	}
	now := b.clock.CurrentTimeNanos()

	previous := b.state.Load()
	working := previous.Copy()
	for {
		working.RefillAllBandwidths(b.bandwidths, now)
		available := working.AvailableTokens()
		toConsume := limit
		if available < toConsume {
			toConsume = available
		}
		if toConsume == 0 {
			return 0, nil
		}
		working.Consume(toConsume)
		if b.state.CompareAndSwap(previous, working) {
			return toConsume, nil
		}
		previous = b.state.Load()
		working.CopyStateFrom(previous)
	}
}

func (b *LockFreeBucket) ReserveAndCalculateTimeToSleep(tokensToConsume, waitIfBusyNanosLimit int64) (int64, error) {
	if err := bucket4j.ValidateReserveRequest(tokensToConsume, waitIfBusyNanosLimit); err != nil {
		return 0, err
	}
	now := b.clock.CurrentTimeNanos()

	previous := b.state.Load()
	working := previous.Copy()
	for {
		working.RefillAllBandwidths(b.bandwidths, now)
		delay := working.DelayNanosAfterWillBePossibleToConsume(b.bandwidths, now, tokensToConsume)
		if waitIfBusyNanosLimit > 0 && delay > waitIfBusyNanosLimit {
			return bucket4j.MaxSentinel, nil
		}
		working.Consume(tokensToConsume)
		if b.state.CompareAndSwap(previous, working) {
			return delay, nil
		}
		previous = b.state.Load()
		working.CopyStateFrom(previous)
	}
}

func (b *LockFreeBucket) AddTokens(tokensToAdd int64) error {
	if err := bucket4j.ValidateAddRequest(tokensToAdd); err != nil {
		return err
	}
	now := b.clock.CurrentTimeNanos()

	previous := b.state.Load()
	working := previous.Copy()
	for {
		working.RefillAllBandwidths(b.bandwidths, now)
		working.AddTokens(b.bandwidths, tokensToAdd)
		if b.state.CompareAndSwap(previous, working) {
			return nil
		}
		previous = b.state.Load()
		working.CopyStateFrom(previous)
	}
}

// GetAvailableTokens loads, copies, refills the local copy only and
// discards it without a CAS: refill is idempotent and time-monotone, so
// concurrent readers never need to publish their refill work.
func (b *LockFreeBucket) GetAvailableTokens() int64 {
	now := b.clock.CurrentTimeNanos()
	snapshot := b.state.Load().Copy()
	snapshot.RefillAllBandwidths(b.bandwidths, now)
	return snapshot.AvailableTokens()
}

// CreateSnapshot loads and deep-copies the current state; no CAS.
func (b *LockFreeBucket) CreateSnapshot() *bucket4j.BucketState {
	return b.state.Load().Copy()
}

func (b *LockFreeBucket) GetConfiguration() bucket4j.BucketConfiguration {
	return b.configuration
}
