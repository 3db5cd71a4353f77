package core

import (
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, 0))}
}

// NewRNGFromString seeds an RNG from the FNV-1a hash of s. Equal strings
// always yield equal streams.
func NewRNGFromString(s string) *RNG {
	return NewRNG(HashSeed(s))
}

// NewClockRNG seeds an RNG from the wall clock.
func NewClockRNG() *RNG {
	return NewRNG(uint64(time.Now().UnixNano()))
}

// HashSeed maps a seed string onto a 64-bit PCG seed.
func HashSeed(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}
