package murmur3

import (
	"encoding/binary"
	"hash"

	"lukechampine.com/uint128"
)

var (
	_ hash.Hash32 = (*Hasher32)(nil)
	_ hash.Hash64 = (*Hasher32)(nil)
	_ hash.Hash64 = (*Hasher128)(nil)
	_ hash.Hash64 = (*Hasher128x64)(nil)
)

// buffer holds the bytes written to a hasher so far.
type buffer struct {
	buf []byte
}

// Write appends p to the buffered input. It never fails.
func (b *buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Reset clears the buffered input.
func (b *buffer) Reset() { b.buf = b.buf[:0] }

// BlockSize returns the write block size.
func (b *buffer) BlockSize() int { return 1 }

// Hasher32 computes [Sum32WithSeed] over everything written to it.
// Reset keeps the seed.
type Hasher32 struct {
	buffer
	seed uint32
}

// Hasher128 computes [Sum128WithSeed] over everything written to it.
// Reset keeps the seed.
type Hasher128 struct {
	buffer
	seed uint32
}

// Hasher128x64 computes [Sum128x64WithSeed] over everything written to it.
// Reset keeps the seed.
type Hasher128x64 struct {
	buffer
	seed uint32
}

// New32 returns an x86_32 hasher with seed 0.
func New32() *Hasher32 { return New32WithSeed(0) }

// New32WithSeed returns an x86_32 hasher seeded with seed.
func New32WithSeed(seed uint32) *Hasher32 { return &Hasher32{seed: seed} }

// New128 returns an x86_128 hasher with seed 0.
func New128() *Hasher128 { return New128WithSeed(0) }

// New128WithSeed returns an x86_128 hasher seeded with seed.
func New128WithSeed(seed uint32) *Hasher128 { return &Hasher128{seed: seed} }

// New128x64 returns an x64_128 hasher with seed 0.
func New128x64() *Hasher128x64 { return New128x64WithSeed(0) }

// New128x64WithSeed returns an x64_128 hasher seeded with seed.
func New128x64WithSeed(seed uint32) *Hasher128x64 { return &Hasher128x64{seed: seed} }

// Sum appends the current hash to b in big-endian order.
func (h *Hasher32) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, h.Sum32())
}

// Sum32 computes the hash of the buffered input.
func (h *Hasher32) Sum32() uint32 { return Sum32WithSeed(h.buf, h.seed) }

// Sum64 returns the 32-bit hash zero-extended to 64 bits.
func (h *Hasher32) Sum64() uint64 { return uint64(h.Sum32()) }

// Size returns the hash size in bytes.
func (h *Hasher32) Size() int { return 4 }

// Sum appends the current hash to b, high half first.
func (h *Hasher128) Sum(b []byte) []byte { return appendUint128(b, h.Sum128()) }

// Sum128 computes the hash of the buffered input.
func (h *Hasher128) Sum128() uint128.Uint128 { return Sum128WithSeed(h.buf, h.seed) }

// Sum64 returns the low 64 bits of [Hasher128.Sum128].
func (h *Hasher128) Sum64() uint64 { return h.Sum128().Lo }

// Size returns the hash size in bytes.
func (h *Hasher128) Size() int { return 16 }

// Sum appends the current hash to b, high half first.
func (h *Hasher128x64) Sum(b []byte) []byte { return appendUint128(b, h.Sum128()) }

// Sum128 computes the hash of the buffered input.
func (h *Hasher128x64) Sum128() uint128.Uint128 { return Sum128x64WithSeed(h.buf, h.seed) }

// Sum64 returns the low 64 bits of [Hasher128x64.Sum128], which is lane h2.
func (h *Hasher128x64) Sum64() uint64 { return h.Sum128().Lo }

// Size returns the hash size in bytes.
func (h *Hasher128x64) Size() int { return 16 }

func appendUint128(b []byte, v uint128.Uint128) []byte {
	b = binary.BigEndian.AppendUint64(b, v.Hi)
	return binary.BigEndian.AppendUint64(b, v.Lo)
}
