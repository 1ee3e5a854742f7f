package app

import (
	"math/rand/v2"
	"time"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}

// clockSeed returns a non-zero seed for runs without a fixed one.
func clockSeed() uint64 {
	if s := uint64(time.Now().UnixNano()); s != 0 {
		return s
	}
	return 1
}
