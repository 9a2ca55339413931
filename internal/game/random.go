package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/appengine-ltd/oregon-trail/internal/config"
)

// Source produces floats in [0,1). It is the only entropy the simulation
// consumes; injecting a fixed sequence makes a whole run replayable.
type Source func() float64

// Seeded returns a deterministic Source for the given seed.
func Seeded(seed int64) Source {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	r := rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
	return r.Float64
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Between returns an integer in [lo, hi], both ends inclusive.
func (s Source) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	n := lo + int(s()*float64(hi-lo+1))
	if n > hi {
		n = hi
	}
	return n
}

// Uniform returns a float in [lo, hi).
func (s Source) Uniform(lo, hi float64) float64 {
	return lo + s()*(hi-lo)
}

// Pick samples one condition from a weighted table. Weights are relative and
// normalised against their sum.
func (s Source) Pick(table []config.Condition) config.Condition {
	total := 0
	for _, cond := range table {
		total += cond.Weight
	}
	if total <= 0 || len(table) == 0 {
		return config.Condition{Modifier: 1}
	}
	x := s() * float64(total)
	acc := 0.0
	for _, cond := range table {
		acc += float64(cond.Weight)
		if x < acc {
			return cond
		}
	}
	return table[len(table)-1]
}
