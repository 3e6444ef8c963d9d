package bernoulli

import "gonum.org/v1/gonum/floats"

// SelectArm returns the Thompson-sampling choice for one round: the
// index of the largest posterior sample. Ties resolve to the lowest
// index (floats.MaxIdx returns the first maximum), so a run is
// reproducible from its seed alone. An empty slice returns -1.
func SelectArm(samples []float64) int {
	if len(samples) == 0 {
		return -1
	}
	return floats.MaxIdx(samples)
}
