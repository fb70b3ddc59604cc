// FILE: state.go
package bucket4j

import (
	"math"
	"math/bits"
)

// BandwidthState is the mutable per-bandwidth runtime state: the current
// token balance (which may go negative after a reservation) and the
// timestamp of the last refill boundary for this bandwidth.
type BandwidthState struct {
	CurrentTokens   int64
	LastRefillNanos int64
}

// BucketState is the mutable vector of per-bandwidth runtime state, one
// entry per bandwidth in the owning BucketConfiguration, in the same
// index order. It is a plain slice of small structs, so Copy is cheap:
// O(number of bandwidths), no per-bandwidth heap allocation.
type BucketState struct {
	bandwidths []BandwidthState
}

// NewBucketState builds the initial state for a configuration: each
// bandwidth starts at its InitialTokens, with LastRefillNanos pinned to
// the bucket's construction timestamp.
func NewBucketState(bandwidths []Bandwidth, currentTimeNanos int64) *BucketState {
	states := make([]BandwidthState, len(bandwidths))
	for i, bw := range bandwidths {
		states[i] = BandwidthState{
			CurrentTokens:   bw.InitialTokens,
			LastRefillNanos: currentTimeNanos,
		}
	}
	return &BucketState{bandwidths: states}
}

// Copy returns a deep copy: a freshly allocated backing slice with the
// same per-bandwidth values. Used by the lock-free path to build a local
// working copy and by CreateSnapshot.
func (s *BucketState) Copy() *BucketState {
	out := make([]BandwidthState, len(s.bandwidths))
	copy(out, s.bandwidths)
	return &BucketState{bandwidths: out}
}

// CopyStateFrom replaces the contents of s with other's, without
// reallocating the backing slice. Used by the lock-free CAS retry loop
// to refresh a stale local working copy.
func (s *BucketState) CopyStateFrom(other *BucketState) {
	copy(s.bandwidths, other.bandwidths)
}

// RefillAllBandwidths advances every bandwidth's state to currentTimeNanos
// under its configured Greedy or Intervally algebra. Time going backward
// (a clock contract violation) is a no-op: LastRefillNanos never
// decreases.
func (s *BucketState) RefillAllBandwidths(bandwidths []Bandwidth, currentTimeNanos int64) {
	for i := range s.bandwidths {
		refillOne(&s.bandwidths[i], bandwidths[i], currentTimeNanos)
	}
}

func refillOne(st *BandwidthState, bw Bandwidth, currentTimeNanos int64) {
	elapsed := currentTimeNanos - st.LastRefillNanos
	if elapsed <= 0 {
		return
	}

	switch bw.RefillMode {
	case Greedy:
		refillGreedy(st, bw, elapsed)
	case Intervally:
		refillIntervally(st, bw, elapsed)
	}

	if st.CurrentTokens > bw.Capacity {
		st.CurrentTokens = bw.Capacity
	}
}

func refillGreedy(st *BandwidthState, bw Bandwidth, elapsed int64) {
	q, _, overflow := widenedMulDiv(uint64(elapsed), uint64(bw.RefillTokens), uint64(bw.RefillPeriodNanos))
	if overflow || q > uint64(math.MaxInt64) {
		st.CurrentTokens = bw.Capacity
		st.LastRefillNanos = st.LastRefillNanos + elapsed
		return
	}
	newTokens := int64(q)
	if newTokens == 0 {
		return
	}

	// Δt_consumed: the exact elapsed time that produced newTokens whole
	// tokens, so fractional-token remainders survive to the next refill.
	consumedQ, _, overflow2 := widenedMulDiv(uint64(newTokens), uint64(bw.RefillPeriodNanos), uint64(bw.RefillTokens))
	consumedNanos := elapsed
	if !overflow2 && consumedQ <= uint64(elapsed) {
		consumedNanos = int64(consumedQ)
	}

	st.CurrentTokens += newTokens
	st.LastRefillNanos += consumedNanos
}

func refillIntervally(st *BandwidthState, bw Bandwidth, elapsed int64) {
	periods := uint64(elapsed) / uint64(bw.RefillPeriodNanos)
	if periods == 0 {
		return
	}

	hi, lo := bits.Mul64(periods, uint64(bw.RefillTokens))
	if hi != 0 || lo > uint64(math.MaxInt64) {
		st.CurrentTokens = bw.Capacity
		st.LastRefillNanos += elapsed
		return
	}

	st.CurrentTokens += int64(lo)
	st.LastRefillNanos += int64(periods) * bw.RefillPeriodNanos
}

// AvailableTokens is the minimum CurrentTokens across all bandwidths,
// floored at 0. A deficit left by a reservation is reported as zero
// available, never negative.
func (s *BucketState) AvailableTokens() int64 {
	min := s.bandwidths[0].CurrentTokens
	for _, bw := range s.bandwidths[1:] {
		if bw.CurrentTokens < min {
			min = bw.CurrentTokens
		}
	}
	if min < 0 {
		return 0
	}
	return min
}

// Consume subtracts n from every bandwidth's CurrentTokens. It does not
// refill and does not clamp: callers refill before calling Consume, and
// a reservation intentionally drives CurrentTokens negative.
func (s *BucketState) Consume(n int64) {
	for i := range s.bandwidths {
		s.bandwidths[i].CurrentTokens -= n
	}
}

// AddTokens adds m to every bandwidth's CurrentTokens, clamping each to
// its capacity afterward: it can heal a reservation deficit but cannot
// overfill an already-full bucket.
func (s *BucketState) AddTokens(bandwidths []Bandwidth, m int64) {
	for i := range s.bandwidths {
		s.bandwidths[i].CurrentTokens += m
		if s.bandwidths[i].CurrentTokens > bandwidths[i].Capacity {
			s.bandwidths[i].CurrentTokens = bandwidths[i].Capacity
		}
	}
}

// DelayNanosAfterWillBePossibleToConsume returns the smallest non-negative
// delay after which every bandwidth would hold at least n tokens if no
// further consumption occurs, given the refill already applied through
// currentTimeNanos. The tightest bandwidth governs.
func (s *BucketState) DelayNanosAfterWillBePossibleToConsume(bandwidths []Bandwidth, currentTimeNanos int64, n int64) int64 {
	var maxDelay int64
	for i, bw := range bandwidths {
		st := s.bandwidths[i]
		if st.CurrentTokens >= n {
			continue
		}
		deficit := uint64(n - st.CurrentTokens)

		var delay int64
		switch bw.RefillMode {
		case Greedy:
			d, overflow := widenedMulDivCeil(deficit, uint64(bw.RefillPeriodNanos), uint64(bw.RefillTokens))
			if overflow || d > uint64(math.MaxInt64) {
				delay = math.MaxInt64
			} else {
				delay = int64(d)
			}
		case Intervally:
			periodsNeeded := (deficit + uint64(bw.RefillTokens) - 1) / uint64(bw.RefillTokens)
			hi, lo := bits.Mul64(periodsNeeded, uint64(bw.RefillPeriodNanos))
			if hi != 0 || lo > uint64(math.MaxInt64) {
				delay = math.MaxInt64
			} else {
				elapsedIntoPeriod := currentTimeNanos - st.LastRefillNanos
				delay = int64(lo) - elapsedIntoPeriod
				if delay < 0 {
					delay = 0
				}
			}
		}
		if delay > maxDelay {
			maxDelay = delay
		}
	}
	return maxDelay
}
