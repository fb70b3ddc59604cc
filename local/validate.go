// FILE: local/validate.go
package local

import bucket4j "github.com/rahul-x-verma/bucket4j"

// validateConfiguration is the bucket-construction-time checkpoint:
// BucketConfiguration itself only requires a non-empty bandwidth list,
// so both constructors call this before seeding initial state. It is the
// minimum point at which an impossible configuration must be rejected,
// since operating on one would violate every structural invariant a
// bucket depends on.
func validateConfiguration(configuration bucket4j.BucketConfiguration) error {
	return bucket4j.ValidateConfiguration(configuration)
}
