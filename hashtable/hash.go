package hashtable

import (
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// A HashFunc maps a key to a slot index in [0, m). Every operation on a
// table must use the same HashFunc, since resize recomputes indices.
type HashFunc func(key string, m uint64) uint64

const efficientMultiplier = 127

// Efficient is the default string hash: hash = (127*hash + c) mod m over the
// bytes of key. Two arithmetic operations per byte.
//
// It distributes poorly when m is a multiple of 127, which table sizes that
// start from a small power of two never are.
func Efficient(key string, m uint64) uint64 {
	var h = uint64(0)
	for i := 0; i < len(key); i++ {
		h = mulAddMod(efficientMultiplier, h, uint64(key[i]), m)
	}
	return h
}

const (
	universalSeed = 31415
	universalStep = 27183
)

// PseudoUniversal approximates universal hashing by evolving the multiplier
// on every byte, a = a*27183 mod (m-1), starting from 31415. It costs more per
// byte than Efficient but is harder to drive into a single chain.
func PseudoUniversal(key string, m uint64) uint64 {
	if m <= 1 {
		return 0
	}
	var h = uint64(0)
	var a = uint64(universalSeed)
	for i := 0; i < len(key); i++ {
		h = mulAddMod(a, h, uint64(key[i]), m)
		a = mulAddMod(a, universalStep, 0, m-1)
	}
	return h
}

// XXHash reduces the 64-bit xxhash of key mod m.
func XXHash(key string, m uint64) uint64 {
	return xxhash.Sum64String(key) % m
}

// mulAddMod returns (a*x + c) mod m without overflowing for any m.
func mulAddMod(a, x, c, m uint64) uint64 {
	hi, lo := bits.Mul64(a, x)
	lo, carry := bits.Add64(lo, c, 0)
	hi += carry
	return bits.Rem64(hi, lo, m)
}
