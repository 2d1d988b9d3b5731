package util

import "math/rand"

// New returns a seeded source. Seed 0 is mapped to 1 so a zero flag value
// still gives a reproducible run.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}
