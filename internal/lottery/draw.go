package lottery

import (
	"math/rand/v2"

	"culturefest-api/internal/school"
)

// newRand returns the source for one draw. Every preview gets a fresh seed.
var newRand = func() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Draw returns a copy of schools where the schools of tier have serial
// numbers 1..N in a uniformly random order. Other schools are unchanged.
func Draw(schools []school.School, tier school.Tier, rng *rand.Rand) []school.School {
	out := make([]school.School, len(schools))
	copy(out, schools)

	var idx []int
	for i, s := range out {
		if s.Tier == tier {
			idx = append(idx, i)
		}
	}

	// Durstenfeld: walk from the end, swapping with a uniform pick from [0, i].
	for i := len(idx) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}

	for pos, at := range idx {
		serial := pos + 1
		out[at].SerialNo = &serial
	}
	return out
}
