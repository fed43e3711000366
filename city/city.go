package city

import (
	"encoding/binary"
	"math/bits"
)

// Some primes between 2^63 and 2^64 for various uses.
const (
	k0 = uint64(0xc3a5c85c97cb3127)
	k1 = uint64(0xb492b66fbe98f273)
	k2 = uint64(0x9ae16a3b2f90404f)
	k3 = uint64(0xc949d7c7509e6557)

	kMul = uint64(0x9ddfea08eb382d69)
)

// Magic numbers for 32-bit hashing, copied from Murmur3.
const (
	c1 = uint32(0xcc9e2d51)
	c2 = uint32(0x1b873593)
	n1 = uint32(0xe6546b64)
)

func fetch64(s []byte, i int) uint64 { return binary.LittleEndian.Uint64(s[i:]) }

func fetch32(s []byte, i int) uint32 { return binary.LittleEndian.Uint32(s[i:]) }

// ror64 rotates v right by shift bits.
func ror64(v uint64, shift int) uint64 { return bits.RotateLeft64(v, -shift) }

// ror32 rotates v right by shift bits.
func ror32(v uint32, shift int) uint32 { return bits.RotateLeft32(v, -shift) }

func shiftMix(v uint64) uint64 { return v ^ (v >> 47) }

// hashLen16 folds a 128-bit value (u low, v high) into 64 bits.
func hashLen16(u, v uint64) uint64 {
	a := (u ^ v) * kMul
	a ^= a >> 47
	b := (v ^ a) * kMul
	b ^= b >> 47
	return b * kMul
}

// weakHashLen32WithSeeds returns a 16-byte hash for s[i:i+32] and the seeds
// a and b. Quick and dirty.
func weakHashLen32WithSeeds(s []byte, i int, a, b uint64) (uint64, uint64) {
	w := fetch64(s, i)
	x := fetch64(s, i+8)
	y := fetch64(s, i+16)
	z := fetch64(s, i+24)

	a += w
	b = ror64(b+a+z, 21)
	c := a
	a += x + y
	b += ror64(a, 44)
	return a + z, b + c
}

// state is the 56 bytes carried across 64-byte chunks by the long-input
// paths of the 64- and 128-bit hashes.
type state struct {
	x, y, z uint64
	v0, v1  uint64
	w0, w1  uint64
}

// round mixes s[:64] into st. x and z trade places at the end, so the next
// round sees the previous z in x's role.
func (st *state) round(s []byte) {
	st.x = ror64(st.x+st.y+st.v0+fetch64(s, 8), 37) * k1
	st.y = ror64(st.y+st.v1+fetch64(s, 48), 42) * k1
	st.x ^= st.w1
	st.y += st.v0 + fetch64(s, 40)
	st.z = ror64(st.z+st.w0, 33) * k1
	st.v0, st.v1 = weakHashLen32WithSeeds(s, 0, st.v1*k1, st.x+st.w0)
	st.w0, st.w1 = weakHashLen32WithSeeds(s, 32, st.z+st.w1, st.y+fetch64(s, 16))
	st.x, st.z = st.z, st.x
}
