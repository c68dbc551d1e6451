package quizgen

import "math/rand/v2"

// SampleDistractors picks up to count distinct wrong answers from pool,
// uniformly without replacement. The correct answer is removed from the
// pool before sampling, so it can never appear among the distractors.
// When the pool is smaller than count the whole pool is returned; a
// short option list is acceptable, a duplicated one is not.
//
// Given the same rng state and pool order the result is identical on
// every run.
func SampleDistractors(rng *rand.Rand, pool []string, correct string, count int) []string {
	candidates := make([]string, 0, len(pool))
	for _, v := range pool {
		if v != correct {
			candidates = append(candidates, v)
		}
	}

	if count < 0 {
		count = 0
	}
	if count > len(candidates) {
		count = len(candidates)
	}

	// Partial Fisher-Yates: after i swaps the first i entries are a
	// uniform sample without replacement.
	for i := 0; i < count; i++ {
		j := i + rng.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	return candidates[:count:count]
}
