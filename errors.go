// FILE: errors.go
package bucket4j

import (
	"errors"
	"fmt"
)

// Sentinel error kinds signaled to callers. None of them ever leaves a
// bucket partially modified: all pre-validation happens before the
// refill-inspect-mutate atomic section is entered.
var (
	// ErrNonPositiveTokens is returned when a consume/reserve/add request
	// passed n <= 0.
	ErrNonPositiveTokens = errors.New("bucket4j: requested tokens must be positive")

	// ErrTokensMoreThanCapacity is returned when n exceeds the smallest
	// capacity across the configured bandwidths.
	ErrTokensMoreThanCapacity = errors.New("bucket4j: requested tokens exceed bucket capacity")

	// ErrNegativeWaitLimit is returned when wait_limit_nanos < 0.
	ErrNegativeWaitLimit = errors.New("bucket4j: wait limit must not be negative")

	// ErrInvalidConfiguration is returned by the bucket constructors when
	// the supplied BucketConfiguration fails structural validation. It is
	// a construction-time error, never raised from the atomic section.
	ErrInvalidConfiguration = errors.New("bucket4j: invalid bucket configuration")
)

// invalidConfigError wraps ErrInvalidConfiguration with the offending
// bandwidth index and a human-readable reason, so errors.Is still matches
// ErrInvalidConfiguration while callers can log the detail.
type invalidConfigError struct {
	index  int
	reason string
}

func (e *invalidConfigError) Error() string {
	if e.index < 0 {
		return fmt.Sprintf("bucket4j: invalid bucket configuration: %s", e.reason)
	}
	return fmt.Sprintf("bucket4j: invalid bucket configuration: bandwidth[%d]: %s", e.index, e.reason)
}

func (e *invalidConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

func newConfigError(index int, reason string) error {
	return &invalidConfigError{index: index, reason: reason}
}
