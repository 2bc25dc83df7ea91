package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so a single number is enough
// to replay a game.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve returns seed unchanged unless it is zero, in which case a random
// non-zero seed is drawn from crypto/rand.
func Resolve(seed int64) int64 {
	for seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			panic("randutil: reading random seed: " + err.Error())
		}
		seed = int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	}
	return seed
}

// Derive returns the seed for the index-th child of base. Children are
// independent of how work is split across goroutines.
func Derive(base int64, index int) int64 {
	return int64(mix(uint64(base) + uint64(index+1)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
