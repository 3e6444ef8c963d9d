package bernoulli

import "fmt"

// Round records the state of a simulation after one pull. Wins, Losses
// and Regret are cumulative over all rounds up to and including this
// one, so Wins+Losses == Index+1 and Regret never decreases across a
// run's rounds.
type Round struct {
	Index  int
	Bandit int
	Wins   int
	Losses int
	Regret float64
}

// Run plays trials rounds of Thompson sampling against bandits, folding
// each outcome into posterior, and returns one Round per pull in order.
// The returned slice is the run's whole output; rendering and reporting
// consume it after the fact, never mid-run.
//
// The loop is strictly sequential: every round's draws depend on the
// posterior state left by all earlier rounds. Run rejects trials < 1;
// callers that want the "run at least one round" behavior coerce before
// calling.
func Run(bandits *Bandits, posterior *Posterior, trials int) ([]Round, error) {
	if trials < 1 {
		return nil, fmt.Errorf("trial count %d, need at least one round: %w", trials, ErrInvalidConfig)
	}
	if bandits.Size() != posterior.Arms() {
		return nil, fmt.Errorf("bandit count %d does not match posterior arm count %d: %w",
			bandits.Size(), posterior.Arms(), ErrInvalidConfig)
	}

	rounds := make([]Round, trials)
	for i := range rounds {
		// Carry the cumulative totals forward.
		if i > 0 {
			rounds[i] = rounds[i-1]
		}
		rounds[i].Index = i

		arm := SelectArm(posterior.Sample())
		rounds[i].Bandit = arm

		rewarded := bandits.Trial(arm)
		if err := posterior.Record(arm, rewarded); err != nil {
			return nil, err
		}

		if rewarded {
			rounds[i].Wins++
		} else {
			rounds[i].Losses++
		}
		rounds[i].Regret += bandits.Regret(arm)
	}
	return rounds, nil
}
