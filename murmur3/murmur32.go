package murmur3

import (
	"encoding/binary"
	"math/bits"
)

const (
	c1 = uint32(0xcc9e2d51)
	c2 = uint32(0x1b873593)
	n1 = uint32(0xe6546b64)
)

// Sum32 returns the MurmurHash3 x86_32 of data with seed 0.
func Sum32(data []byte) uint32 { return Sum32WithSeed(data, 0) }

// Sum32WithSeed returns the MurmurHash3 x86_32 of data with the provided
// seed.
func Sum32WithSeed(data []byte, seed uint32) uint32 {
	h1 := seed

	nblocks := len(data) / 4
	for i := 0; i < nblocks; i++ {
		h1 ^= mixK32(binary.LittleEndian.Uint32(data[i*4:]))
		h1 = bits.RotateLeft32(h1, 13)
		h1 = h1*5 + n1
	}

	// Tail bytes fold in from the highest position down; the partial word is
	// mixed once its lowest byte is in.
	tail := data[nblocks*4:]
	var k1 uint32
	for i := len(tail); i > 0; i-- {
		k1 ^= uint32(tail[i-1]) << (8 * (i - 1))
		if i == 1 {
			h1 ^= mixK32(k1)
		}
	}

	h1 ^= uint32(len(data))
	return fmix32(h1)
}

func mixK32(k1 uint32) uint32 {
	k1 *= c1
	k1 = bits.RotateLeft32(k1, 15)
	return k1 * c2
}
