package cli

import "math/rand/v2"

// newRand returns a reproducible source for a non-zero seed and nil
// otherwise, leaving the choice of a time-based seed to the board.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
