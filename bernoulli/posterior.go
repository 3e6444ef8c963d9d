package bernoulli

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// armCounts is the sufficient statistic of one arm's Beta-Bernoulli
// posterior: Beta(wins+1, losses+1) under a uniform prior.
type armCounts struct {
	wins   int
	losses int
}

// Posterior is the policy's reward model: one Beta-Bernoulli posterior
// per arm, updated after every pull.
type Posterior struct {
	arms []armCounts
	rng  *rand.Rand
}

// NewPosterior creates a posterior over arms arms, all starting from
// the uniform Beta(1,1) prior.
func NewPosterior(arms int, opts ...Option) (*Posterior, error) {
	if arms < 2 {
		return nil, fmt.Errorf("arm count %d, must specify at least two: %w", arms, ErrInvalidConfig)
	}
	return &Posterior{arms: make([]armCounts, arms), rng: newRand(opts)}, nil
}

// Arms returns the number of arms the posterior models.
func (p *Posterior) Arms() int {
	return len(p.arms)
}

// Counts returns the observed wins and losses for arm. Out-of-range
// arms report zero pulls.
func (p *Posterior) Counts(arm int) (wins, losses int) {
	if arm < 0 || arm >= len(p.arms) {
		return 0, 0
	}
	return p.arms[arm].wins, p.arms[arm].losses
}

// Sample draws one value from each arm's posterior and returns them in
// arm order. With no data yet recorded every draw is uniform on (0,1).
func (p *Posterior) Sample() []float64 {
	samples := make([]float64, len(p.arms))
	for i, a := range p.arms {
		beta := distuv.Beta{
			Alpha: float64(a.wins) + 1,
			Beta:  float64(a.losses) + 1,
			Src:   p.rng,
		}
		samples[i] = beta.Rand()
	}
	return samples
}

// Record folds one observed trial outcome into arm's posterior. Unlike
// Trial and Regret it is strict about the range: recording against a
// nonexistent arm would silently corrupt the model, and a driver that
// only pulls arms returned by SelectArm can never hit this error.
func (p *Posterior) Record(arm int, rewarded bool) error {
	if arm < 0 || arm >= len(p.arms) {
		return fmt.Errorf("record for arm %d of %d: %w", arm, len(p.arms), ErrInvalidConfig)
	}
	if rewarded {
		p.arms[arm].wins++
	} else {
		p.arms[arm].losses++
	}
	return nil
}

// posteriorState is the serializable form of Posterior. The random
// source is not serialized; LoadPosterior takes fresh options instead.
type posteriorState struct {
	Version int
	Wins    []int
	Losses  []int
}

// Save serializes the posterior counts to gob format.
func (p *Posterior) Save(w io.Writer) error {
	state := posteriorState{
		Version: 1,
		Wins:    make([]int, len(p.arms)),
		Losses:  make([]int, len(p.arms)),
	}
	for i, a := range p.arms {
		state.Wins[i] = a.wins
		state.Losses[i] = a.losses
	}
	return gob.NewEncoder(w).Encode(state)
}

// LoadPosterior restores a posterior saved with Save.
func LoadPosterior(r io.Reader, opts ...Option) (*Posterior, error) {
	var state posteriorState
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return nil, err
	}
	if state.Version != 1 {
		return nil, errors.New("unsupported gob version")
	}
	if len(state.Wins) != len(state.Losses) {
		return nil, errors.New("mismatched win and loss counts")
	}

	p, err := NewPosterior(len(state.Wins), opts...)
	if err != nil {
		return nil, err
	}
	for i := range p.arms {
		if state.Wins[i] < 0 || state.Losses[i] < 0 {
			return nil, fmt.Errorf("negative count for arm %d", i)
		}
		p.arms[i] = armCounts{wins: state.Wins[i], losses: state.Losses[i]}
	}
	return p, nil
}
