package city

import (
	"encoding/binary"
	"hash"

	"lukechampine.com/uint128"
)

// Compile-time interface assertions.
var _ hash.Hash32 = (*Hasher32)(nil)
var _ hash.Hash64 = (*Hasher32)(nil)
var _ hash.Hash64 = (*Hasher64)(nil)
var _ hash.Hash64 = (*Hasher128)(nil)

// Hasher32 buffers written bytes and computes [Sum32WithSeed] on demand.
type Hasher32 struct {
	seed uint32
	buf  []byte
}

// Hasher64 buffers written bytes and computes the 64-bit CityHash on demand,
// optionally combined with one or two seeds.
type Hasher64 struct {
	seeded       bool
	seed0, seed1 uint64
	buf          []byte
}

// Hasher128 buffers written bytes and computes the 128-bit CityHash on
// demand.
type Hasher128 struct {
	seeded bool
	seed   uint128.Uint128
	buf    []byte
}

// New32 returns a 32-bit CityHash hasher with seed 0.
func New32() *Hasher32 { return &Hasher32{} }

// New32WithSeed returns a 32-bit CityHash hasher seeded with seed.
func New32WithSeed(seed uint32) *Hasher32 { return &Hasher32{seed: seed} }

// New64 returns an unseeded 64-bit CityHash hasher.
func New64() *Hasher64 { return &Hasher64{} }

// New64WithSeed returns a 64-bit CityHash hasher that matches
// [Sum64WithSeed].
func New64WithSeed(seed uint64) *Hasher64 { return New64WithSeeds(k2, seed) }

// New64WithSeeds returns a 64-bit CityHash hasher that matches
// [Sum64WithSeeds].
func New64WithSeeds(seed0, seed1 uint64) *Hasher64 {
	return &Hasher64{seeded: true, seed0: seed0, seed1: seed1}
}

// New128 returns a 128-bit CityHash hasher that matches [Sum128].
func New128() *Hasher128 { return &Hasher128{} }

// New128WithSeed returns a 128-bit CityHash hasher that matches
// [Sum128WithSeed].
func New128WithSeed(seed uint128.Uint128) *Hasher128 {
	return &Hasher128{seeded: true, seed: seed}
}

// Write appends p to the buffered input. It never fails.
func (h *Hasher32) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// Sum appends the current 32-bit hash to b in big-endian order.
func (h *Hasher32) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, h.Sum32())
}

// Sum32 computes the 32-bit hash of the buffered input.
func (h *Hasher32) Sum32() uint32 { return Sum32WithSeed(h.buf, h.seed) }

// Sum64 returns the 32-bit hash zero-extended to 64 bits.
func (h *Hasher32) Sum64() uint64 { return uint64(h.Sum32()) }

// Reset clears the buffered input. The seed is kept.
func (h *Hasher32) Reset() { h.buf = h.buf[:0] }

// Size returns the hash size in bytes.
func (h *Hasher32) Size() int { return 4 }

// BlockSize returns the write block size.
func (h *Hasher32) BlockSize() int { return 1 }

// Write appends p to the buffered input. It never fails.
func (h *Hasher64) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// Sum appends the current 64-bit hash to b in big-endian order.
func (h *Hasher64) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, h.Sum64())
}

// Sum64 computes the 64-bit hash of the buffered input.
func (h *Hasher64) Sum64() uint64 {
	if h.seeded {
		return Sum64WithSeeds(h.buf, h.seed0, h.seed1)
	}
	return Sum64(h.buf)
}

// Reset clears the buffered input. The seeds are kept.
func (h *Hasher64) Reset() { h.buf = h.buf[:0] }

// Size returns the hash size in bytes.
func (h *Hasher64) Size() int { return 8 }

// BlockSize returns the write block size.
func (h *Hasher64) BlockSize() int { return 1 }

// Write appends p to the buffered input. It never fails.
func (h *Hasher128) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// Sum appends the current 128-bit hash to b, high half first, each half in
// big-endian order.
func (h *Hasher128) Sum(b []byte) []byte {
	v := h.Sum128()
	b = binary.BigEndian.AppendUint64(b, v.Hi)
	return binary.BigEndian.AppendUint64(b, v.Lo)
}

// Sum128 computes the 128-bit hash of the buffered input.
func (h *Hasher128) Sum128() uint128.Uint128 {
	if h.seeded {
		return Sum128WithSeed(h.buf, h.seed)
	}
	return Sum128(h.buf)
}

// Sum64 returns the low 64 bits of [Hasher128.Sum128].
func (h *Hasher128) Sum64() uint64 { return h.Sum128().Lo }

// Reset clears the buffered input. The seed is kept.
func (h *Hasher128) Reset() { h.buf = h.buf[:0] }

// Size returns the hash size in bytes.
func (h *Hasher128) Size() int { return 16 }

// BlockSize returns the write block size.
func (h *Hasher128) BlockSize() int { return 1 }
