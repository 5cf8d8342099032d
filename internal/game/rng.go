package game

import (
	"hash/fnv"
	"math/rand"
)

// NewRNG returns the single random stream used to build an arena.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// SeedFromString derives a stable seed from a text label.
func SeedFromString(label string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(label))
	sum := h.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}
