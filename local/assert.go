// FILE: local/assert.go
package local

import bucket4j "github.com/rahul-x-verma/bucket4j"

var (
	_ bucket4j.Bucket = (*SynchronizedBucket)(nil)
	_ bucket4j.Bucket = (*LockFreeBucket)(nil)
)
