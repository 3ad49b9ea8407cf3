// Package mlhash implements the mixing primitives of OCaml's generic hash
// function (the algorithm behind Hashtbl.hash and ppx_hash), producing
// bit-identical results for the same folded values.
//
// The model is a 32-bit accumulator threaded through a sequence of Mix*
// calls, one per field or element, then collapsed by Finalize into a
// well-avalanched value confined to 30 bits. Every function is pure:
// state goes in, new state comes out, nothing is shared or mutated, so
// independent hash computations need no coordination.
package mlhash

import (
	"math"
	"math/bits"
)

// Block-mix and avalanche constants of the murmur3-32 core used by the
// OCaml runtime hash.
const (
	blockMul1 uint32 = 0xcc9e2d51
	blockMul2 uint32 = 0x1b873593

	finalMul1 uint32 = 0x85ebca6b
	finalMul2 uint32 = 0xc2b2ae35

	// OutputBits is the width of a finalized hash. Finalized values always
	// fit a 31-bit tagged integer with a bit to spare.
	OutputBits = 30
	// OutputMask keeps the low OutputBits bits of the avalanched state.
	OutputMask uint32 = 1<<OutputBits - 1
)

// mixWord folds one 32-bit word into the accumulator. This is the single
// block step every fixed-width fold and every 4-byte block goes through.
func mixWord(h, d uint32) uint32 {
	d *= blockMul1
	d = bits.RotateLeft32(d, 15)
	d *= blockMul2
	h ^= d
	h = bits.RotateLeft32(h, 13)
	return h*5 + 0xe6546b64
}

// MixInt32 folds the raw 32-bit pattern of n into h as one block word.
func MixInt32(h uint32, n int32) uint32 {
	return mixWord(h, uint32(n))
}

// MixInt64 folds the two 32-bit halves of n into h, low word first.
func MixInt64(h uint32, n int64) uint32 {
	h = mixWord(h, uint32(n))
	return mixWord(h, uint32(n>>32))
}

// MixNativeInt folds a pointer-width integer into h. Both halves collapse
// into a single word first so that any value representable in 31 bits
// hashes identically whether folded here or through MixInt32. This is the
// 32/64-bit compatibility rule of the reference algorithm.
func MixNativeInt(h uint32, n int64) uint32 {
	return mixWord(h, uint32((n>>32)^(n>>63)^n))
}

// MixInt folds a default-width integer into h. Same mixing as MixNativeInt;
// sign extension makes the collapse formula a no-op on 32-bit hosts.
func MixInt(h uint32, n int) uint32 {
	return MixNativeInt(h, int64(n))
}

// MixFloat64 folds the IEEE-754 bit pattern of f into h as two block words,
// low word first. All NaNs collapse to a single representation and negative
// zero folds as positive zero, so values that compare equal hash equal.
func MixFloat64(h uint32, f float64) uint32 {
	b := math.Float64bits(f)
	hi, lo := uint32(b>>32), uint32(b)
	if hi&0x7ff00000 == 0x7ff00000 && lo|hi&0xfffff != 0 {
		hi, lo = 0x7ff00000, 1
	} else if hi == 0x80000000 && lo == 0 {
		hi = 0
	}
	h = mixWord(h, lo)
	return mixWord(h, hi)
}

// MixBytes folds an arbitrary byte sequence into h: full 4-byte blocks
// read little-endian, then the 1–3 byte tail assembled into one partial
// word (absent high bytes zero), then the total length XORed into the
// state. The length fold happens here and only here; callers never add it.
//
// This is also the standalone block-mixer entry point for code that needs
// raw byte mixing compatible with the reference hash.
func MixBytes(h uint32, p []byte) uint32 {
	return mixBlob(h, p)
}

// MixString is MixBytes for string data, without a []byte conversion.
func MixString(h uint32, s string) uint32 {
	return mixBlob(h, s)
}

// mixBlob is the block mixer shared by MixBytes and MixString. Words are
// assembled from individual bytes rather than loaded natively, which pins
// little-endian interpretation on every architecture.
func mixBlob[T []byte | string](h uint32, s T) uint32 {
	i, n := 0, len(s)
	for ; i+4 <= n; i += 4 {
		w := uint32(s[i]) | uint32(s[i+1])<<8 | uint32(s[i+2])<<16 | uint32(s[i+3])<<24
		h = mixWord(h, w)
	}
	var w uint32
	switch n & 3 {
	case 3:
		w = uint32(s[i+2]) << 16
		fallthrough
	case 2:
		w |= uint32(s[i+1]) << 8
		fallthrough
	case 1:
		w |= uint32(s[i])
		h = mixWord(h, w)
	}
	// Length last, straight XOR, truncated to 32 bits.
	return h ^ uint32(n)
}

// Finalize avalanches the accumulator and masks it to OutputBits bits.
// Terminal step of every hash computation; the result is in [0, 1<<30).
func Finalize(h uint32) uint32 {
	h ^= h >> 16
	h *= finalMul1
	h ^= h >> 13
	h *= finalMul2
	h ^= h >> 16
	return h & OutputMask
}

// HashBytes hashes a byte sequence in one call: fold from a zero
// accumulator, then finalize. HashBytes(nil) is 0.
func HashBytes(p []byte) uint32 {
	return Finalize(MixBytes(0, p))
}

// HashString hashes a string in one call.
func HashString(s string) uint32 {
	return Finalize(MixString(0, s))
}

// HashFloat64 hashes a float64 in one call.
func HashFloat64(f float64) uint32 {
	return Finalize(MixFloat64(0, f))
}
