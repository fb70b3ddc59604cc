// FILE: configuration.go
package bucket4j

// BucketConfiguration is an immutable, ordered, non-empty collection of
// Bandwidths. It forms a conjunction: a consume succeeds only if every
// bandwidth can admit it.
type BucketConfiguration struct {
	bandwidths []Bandwidth
}

// NewConfiguration builds a BucketConfiguration from an ordered list of
// Bandwidths, assigning each its Index. It performs no validation beyond
// requiring a non-empty list; full structural validation happens when a
// bucket is constructed from the configuration (see local.NewSynchronizedBucket
// / local.NewLockFreeBucket), keeping configuration validation a separate
// collaborator from configuration assembly.
func NewConfiguration(bandwidths ...Bandwidth) (BucketConfiguration, error) {
	if len(bandwidths) == 0 {
		return BucketConfiguration{}, newConfigError(-1, "configuration must declare at least one bandwidth")
	}
	indexed := make([]Bandwidth, len(bandwidths))
	for i, bw := range bandwidths {
		bw.Index = i
		indexed[i] = bw
	}
	return BucketConfiguration{bandwidths: indexed}, nil
}

// Bandwidths returns the configured bandwidths in index order. The
// returned slice is a copy; callers may not mutate the configuration
// through it.
func (c BucketConfiguration) Bandwidths() []Bandwidth {
	out := make([]Bandwidth, len(c.bandwidths))
	copy(out, c.bandwidths)
	return out
}

// MaxCapacity returns the minimum capacity across all configured
// bandwidths: the largest n for which a single-bandwidth-unaware caller
// could ever hope to succeed.
func (c BucketConfiguration) MaxCapacity() int64 {
	min := c.bandwidths[0].Capacity
	for _, bw := range c.bandwidths[1:] {
		if bw.Capacity < min {
			min = bw.Capacity
		}
	}
	return min
}

// ValidateConfiguration re-checks the structural invariants for a
// well-formed bucket against an already-built BucketConfiguration.
// Bucket constructors call
// this before seeding initial state, since NewConfiguration itself only
// requires a non-empty bandwidth list.
func ValidateConfiguration(c BucketConfiguration) error {
	if len(c.bandwidths) == 0 {
		return newConfigError(-1, "configuration must declare at least one bandwidth")
	}
	for _, bw := range c.bandwidths {
		if err := bw.validate(); err != nil {
			return err
		}
	}
	return nil
}

// ConfigurationBuilder accumulates Bandwidths for NewConfiguration,
// analogous to bucket4j's ConfigurationBuilder.addLimit, reduced to the
// portion this core keeps in scope: assembling an ordered bandwidth list.
type ConfigurationBuilder struct {
	bandwidths []Bandwidth
}

// NewConfigurationBuilder returns an empty builder.
func NewConfigurationBuilder() *ConfigurationBuilder {
	return &ConfigurationBuilder{}
}

// AddLimit appends a Bandwidth and returns the builder for chaining.
func (b *ConfigurationBuilder) AddLimit(bw Bandwidth) *ConfigurationBuilder {
	b.bandwidths = append(b.bandwidths, bw)
	return b
}

// Build produces the BucketConfiguration.
func (b *ConfigurationBuilder) Build() (BucketConfiguration, error) {
	return NewConfiguration(b.bandwidths...)
}
