// FILE: bucket.go
package bucket4j

import "math"

// MaxSentinel is the "rejected" sentinel returned by
// ReserveAndCalculateTimeToSleep when no delay within the caller's wait
// limit would satisfy the request.
const MaxSentinel int64 = math.MaxInt64

// Bucket is the capability both concurrency disciplines implement: the
// five mutating operations, the read-only query, a snapshot, and access
// to the configuration it was built from. Both SynchronizedBucket and
// LockFreeBucket in the local subpackage realize it identically.
type Bucket interface {
	TryConsume(tokensToConsume int64) (bool, error)
	TryConsumeAndReturnRemainingTokens(tokensToConsume int64) (ConsumptionProbe, error)
	ConsumeAsMuchAsPossible(limit int64) (int64, error)
	ReserveAndCalculateTimeToSleep(tokensToConsume int64, waitIfBusyNanosLimit int64) (int64, error)
	AddTokens(tokensToAdd int64) error
	GetAvailableTokens() int64
	CreateSnapshot() *BucketState
	GetConfiguration() BucketConfiguration
}

// ValidateConsumeRequest applies the pre-validation shared by TryConsume
// and TryConsumeAndReturnRemainingTokens (ConsumeAsMuchAsPossible does not
// use it; it only rejects a negative limit): n must be positive and must
// not exceed the smallest
// configured capacity, since available_tokens can never exceed that
// regardless of how long the caller waits.
func ValidateConsumeRequest(configuration BucketConfiguration, n int64) error {
	if n <= 0 {
		return ErrNonPositiveTokens
	}
	if n > configuration.MaxCapacity() {
		return ErrTokensMoreThanCapacity
	}
	return nil
}

// ValidateReserveRequest applies the pre-validation for
// ReserveAndCalculateTimeToSleep. Unlike consume, a reservation is
// explicitly allowed to request more tokens than the bucket can ever
// physically hold, so only positivity of n and non-negativity of the
// wait limit are checked here; see DESIGN.md for the reasoning.
func ValidateReserveRequest(n int64, waitIfBusyNanosLimit int64) error {
	if n <= 0 {
		return ErrNonPositiveTokens
	}
	if waitIfBusyNanosLimit < 0 {
		return ErrNegativeWaitLimit
	}
	return nil
}

// ValidateAddRequest applies the pre-validation for AddTokens: m must be
// positive.
func ValidateAddRequest(m int64) error {
	if m <= 0 {
		return ErrNonPositiveTokens
	}
	return nil
}
