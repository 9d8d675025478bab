// ABOUTME: Uniform random primitives (shuffle, choice, sampling without replacement) over an injectable source.
// ABOUTME: Uses partial Fisher-Yates on a copy of the input; not suitable for anything security sensitive.
package roll

import "math/rand/v2"

// Rand is the subset of *rand.Rand the primitives need. Tests inject seeded sources.
type Rand interface {
	IntN(n int) int
}

// Global draws from the math/rand/v2 top-level source, which is safe for
// concurrent use. Long-lived components default to it.
var Global Rand = globalRand{}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Seeded returns a deterministic Rand for tests and reproducible previews.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Shuffle permutes items in place.
func Shuffle[T any](r Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Choice picks one element uniformly. ok is false for an empty slice.
func Choice[T any](r Rand, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[r.IntN(len(items))], true
}

// Sample returns k elements chosen uniformly without replacement, in random
// order. k is clamped to [0, len(items)]. The input slice is not modified.
func Sample[T any](r Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return []T{}
	}

	pool := make([]T, len(items))
	copy(pool, items)

	for i := 0; i < k; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}
