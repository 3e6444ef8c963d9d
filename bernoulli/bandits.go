// Package bernoulli simulates the Bernoulli multi-armed bandit problem
// and evaluates a Thompson-sampling policy against it. A bandit problem
// is a series of choices among arms that pay out with fixed unknown
// probabilities; an effective policy balances trying arms that may beat
// the current best (exploration) against replaying the best found so
// far (exploitation). Thompson sampling keeps a Beta-Bernoulli posterior
// per arm, samples each posterior once per round and pulls the arm with
// the highest sample.
//
// Real reward data is hard to come by, so as usual for bandit code the
// rewards here are simulated: Bandits hides a set of true probabilities
// and scores the policy by cumulative regret against the best of them.
package bernoulli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// Bandits is a set of Bernoulli bandits. Each arm pays out with a fixed
// probability drawn uniformly at construction and hidden from the
// policy for the lifetime of the set.
type Bandits struct {
	probs []float64
	best  float64
	rng   *rand.Rand
}

// New creates a set of size Bernoulli bandits. At least two are
// required for a meaningful comparison.
func New(size int, opts ...Option) (*Bandits, error) {
	if size < 2 {
		return nil, fmt.Errorf("bandit count %d, must specify at least two: %w", size, ErrInvalidConfig)
	}

	rng := newRand(opts)
	uniform := distuv.Uniform{Min: 0, Max: 1, Src: rng}

	probs := make([]float64, size)
	best := 0.0
	for i := range probs {
		probs[i] = uniform.Rand()
		if probs[i] > best {
			best = probs[i]
		}
	}

	return &Bandits{probs: probs, best: best, rng: rng}, nil
}

// Size returns the number of arms.
func (b *Bandits) Size() int {
	return len(b.probs)
}

// Best returns the best hidden probability, the baseline for regret.
func (b *Bandits) Best() float64 {
	return b.best
}

// Probabilities returns a copy of the hidden probabilities.
// WARNING: this makes it trivial to cheat and find the best arm. It
// exists so results can be verified offline; a policy under evaluation
// must never read it.
func (b *Bandits) Probabilities() []float64 {
	probs := make([]float64, len(b.probs))
	copy(probs, b.probs)
	return probs
}

// Trial pulls an arm and reports whether it paid out. An out-of-range
// arm is a guaranteed non-reward rather than an error, so a locally
// buggy policy degrades the score instead of crashing the run. Every
// bounds check in this package uses the same half-open [0, Size) range.
func (b *Bandits) Trial(arm int) bool {
	if arm < 0 || arm >= len(b.probs) {
		return false
	}
	bern := distuv.Bernoulli{P: b.probs[arm], Src: b.rng}
	return bern.Rand() == 1
}

// Regret returns the expected reward lost by pulling arm instead of the
// best one. Never negative. An out-of-range arm costs the full best
// probability, the maximum possible regret.
func (b *Bandits) Regret(arm int) float64 {
	if arm < 0 || arm >= len(b.probs) {
		return b.best
	}
	return b.best - b.probs[arm]
}

// String renders the hidden probabilities. Printed once before a run it
// lets the reported regret be verified offline.
func (b *Bandits) String() string {
	var sb strings.Builder
	sb.WriteString("Bandits: [")
	for i, p := range b.probs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.8f", p)
	}
	sb.WriteByte(']')
	return sb.String()
}
