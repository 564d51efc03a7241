package glyph

import (
	"encoding/binary"
	"math/bits"
	"math/rand/v2"
)

// PCG32 constants used to stretch a 64-bit seed into a full ChaCha8 key.
const (
	pcgMultiplier = 6364136223846793005
	pcgIncrement  = 11634580027462260723
)

// expandSeed derives a 32-byte key from a 64-bit seed by drawing eight 32-bit
// words from a PCG32 stream seeded with it.
func expandSeed(seed uint64) [32]byte {
	var key [32]byte
	state := seed
	for i := 0; i < len(key); i += 4 {
		state = state*pcgMultiplier + pcgIncrement
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		rot := int(state >> 59)
		binary.LittleEndian.PutUint32(key[i:], bits.RotateLeft32(xorshifted, -rot))
	}
	return key
}

// newRand returns a ChaCha8 backed generator for seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewChaCha8(expandSeed(seed)))
}

// adjustment draws -1, 0 or +1 with equal probability.
func adjustment(r *rand.Rand) int {
	return r.IntN(3) - 1
}

func coinFlip(r *rand.Rand) bool {
	return r.IntN(2) == 1
}
