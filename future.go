// FILE: future.go
package bucket4j

// CompletedFuture is an already-completed future-like handle, the result
// of lifting a synchronous call: the asynchronous variants of the
// mutating operations trivially reduce to synchronous calls on a local
// bucket and return an already-completed future. There is no executor,
// no goroutine, no blocking: Get returns immediately.
type CompletedFuture[T any] struct {
	value T
	err   error
}

// completed wraps a value/error pair that has already happened.
func completed[T any](value T, err error) CompletedFuture[T] {
	return CompletedFuture[T]{value: value, err: err}
}

// Get returns the already-computed result. It never blocks.
func (f CompletedFuture[T]) Get() (T, error) {
	return f.value, f.err
}

// AsyncBucket lifts every mutating Bucket operation, plus the
// probe-returning consume, to a CompletedFuture. It is written once
// against the shared Bucket capability rather than once per concrete
// variant, so neither SynchronizedBucket nor LockFreeBucket needs its
// own asynchronous wrapper.
type AsyncBucket struct {
	bucket Bucket
}

// NewAsyncBucket wraps b with the default synchronous-to-async adapter.
func NewAsyncBucket(b Bucket) *AsyncBucket {
	return &AsyncBucket{bucket: b}
}

func (a *AsyncBucket) TryConsume(tokensToConsume int64) CompletedFuture[bool] {
	v, err := a.bucket.TryConsume(tokensToConsume)
	return completed(v, err)
}

func (a *AsyncBucket) TryConsumeAndReturnRemainingTokens(tokensToConsume int64) CompletedFuture[ConsumptionProbe] {
	v, err := a.bucket.TryConsumeAndReturnRemainingTokens(tokensToConsume)
	return completed(v, err)
}

func (a *AsyncBucket) ConsumeAsMuchAsPossible(limit int64) CompletedFuture[int64] {
	v, err := a.bucket.ConsumeAsMuchAsPossible(limit)
	return completed(v, err)
}

func (a *AsyncBucket) ReserveAndCalculateTimeToSleep(tokensToConsume, waitIfBusyNanosLimit int64) CompletedFuture[int64] {
	v, err := a.bucket.ReserveAndCalculateTimeToSleep(tokensToConsume, waitIfBusyNanosLimit)
	return completed(v, err)
}

func (a *AsyncBucket) AddTokens(tokensToAdd int64) CompletedFuture[struct{}] {
	err := a.bucket.AddTokens(tokensToAdd)
	return completed(struct{}{}, err)
}
