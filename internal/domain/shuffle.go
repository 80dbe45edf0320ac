package domain

import "math/rand/v2"

// Shuffle returns a new slice holding the elements of items in a uniformly
// random order. The input slice is never modified.
func Shuffle[T any](items []T) []T {
	return shuffle(items, rand.IntN)
}

// ShuffleWith behaves like Shuffle but draws randomness from r. A nil r
// falls back to the global source.
func ShuffleWith[T any](r *rand.Rand, items []T) []T {
	if r == nil {
		return Shuffle(items)
	}
	return shuffle(items, r.IntN)
}

// shuffle is a Fisher-Yates shuffle over a copy of items. intN must return a
// uniform value in [0, n).
func shuffle[T any](items []T, intN func(n int) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
