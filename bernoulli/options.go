package bernoulli

import (
	"math/rand/v2"
	"time"
)

// Option configures the random source of a component in this package.
type Option func(*config)

type config struct {
	rng  *rand.Rand
	seed uint64
}

// WithSeed seeds the component's random source for reproducibility.
// A zero seed selects a time-based seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithSource supplies an explicit random source. Sharing one source
// between the environment and the posterior makes a whole run
// reproducible from a single seed; parallel runs must each bring
// their own to stay independent.
func WithSource(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// NewSource creates a seeded random source suitable for WithSource.
// A zero seed selects a time-based seed.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func newRand(opts []Option) *rand.Rand {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng != nil {
		return c.rng
	}
	return NewSource(c.seed)
}
