package bernoulli

import "errors"

// ErrInvalidConfig marks a fatal setup problem: too few bandits, a
// non-positive trial count, or an out-of-range arm passed to Record.
// Nothing behind this error is retried; a run either validates and
// completes or fails here before producing results.
var ErrInvalidConfig = errors.New("invalid configuration")
