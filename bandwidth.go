// FILE: bandwidth.go
package bucket4j

import "time"

// RefillMode selects how a Bandwidth's tokens accrue between refills.
type RefillMode int

const (
	// Greedy accrues tokens continuously at rate RefillTokens/RefillPeriod.
	Greedy RefillMode = iota
	// Intervally credits RefillTokens in a single lump sum at each period
	// boundary.
	Intervally
)

func (m RefillMode) String() string {
	switch m {
	case Greedy:
		return "greedy"
	case Intervally:
		return "intervally"
	default:
		return "unknown"
	}
}

// Bandwidth is an immutable rate-limit rule: a capacity paired with a
// refill schedule. Index identifies its position within a
// BucketConfiguration and is used only for diagnostics: a configuration
// error names the offending bandwidth by it.
type Bandwidth struct {
	Index             int
	Capacity          int64
	InitialTokens     int64
	RefillTokens      int64
	RefillPeriodNanos int64
	RefillMode        RefillMode
}

// NewGreedyBandwidth builds a Bandwidth that refills continuously:
// refillTokens tokens accrue, fractionally, over every period.
func NewGreedyBandwidth(capacity, refillTokens int64, period time.Duration) Bandwidth {
	return Bandwidth{
		Capacity:          capacity,
		InitialTokens:     capacity,
		RefillTokens:      refillTokens,
		RefillPeriodNanos: int64(period),
		RefillMode:        Greedy,
	}
}

// NewIntervallyBandwidth builds a Bandwidth that tops up refillTokens in a
// single lump sum at each period boundary.
func NewIntervallyBandwidth(capacity, refillTokens int64, period time.Duration) Bandwidth {
	return Bandwidth{
		Capacity:          capacity,
		InitialTokens:     capacity,
		RefillTokens:      refillTokens,
		RefillPeriodNanos: int64(period),
		RefillMode:        Intervally,
	}
}

// WithInitialTokens returns a copy of b with InitialTokens set. An
// out-of-range value is not rejected here: Bandwidth values are plain
// data until handed to a bucket constructor, which runs validate() and
// returns an error instead.
func (b Bandwidth) WithInitialTokens(initial int64) Bandwidth {
	b.InitialTokens = initial
	return b
}

// validate checks the structural invariants a Bandwidth must satisfy: a
// positive capacity, a refill rate that does not exceed capacity, a
// positive refill period, and initial tokens within [0, capacity].
func (b Bandwidth) validate() error {
	if b.Capacity <= 0 {
		return newConfigError(b.Index, "capacity must be positive")
	}
	if b.RefillTokens <= 0 {
		return newConfigError(b.Index, "refill tokens must be positive")
	}
	if b.RefillTokens > b.Capacity {
		return newConfigError(b.Index, "refill tokens must not exceed capacity")
	}
	if b.RefillPeriodNanos <= 0 {
		return newConfigError(b.Index, "refill period must be positive")
	}
	if b.InitialTokens < 0 || b.InitialTokens > b.Capacity {
		return newConfigError(b.Index, "initial tokens must be within [0, capacity]")
	}
	return nil
}
