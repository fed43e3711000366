package murmur3

import (
	"encoding/binary"
	"math/bits"

	"lukechampine.com/uint128"
)

const (
	c1x64 = uint64(0x87c37b91114253d5)
	c2x64 = uint64(0x4cf5ad432745937f)
)

// Sum128x64 returns the MurmurHash3 x64_128 of data with seed 0.
func Sum128x64(data []byte) uint128.Uint128 { return Sum128x64WithSeed(data, 0) }

// Sum128x64WithSeed returns the MurmurHash3 x64_128 of data with the provided
// seed. Hi holds lane h1 and Lo holds lane h2.
func Sum128x64WithSeed(data []byte, seed uint32) uint128.Uint128 {
	h1, h2 := uint64(seed), uint64(seed)

	nblocks := len(data) / 16
	for i := 0; i < nblocks; i++ {
		block := data[i*16:]
		k1 := binary.LittleEndian.Uint64(block)
		k2 := binary.LittleEndian.Uint64(block[8:])

		h1 ^= mixK1x64(k1)
		h1 = bits.RotateLeft64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		h2 ^= mixK2x64(k2)
		h2 = bits.RotateLeft64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5
	}

	// Tail bytes 8..14 build k2 and bytes 0..7 build k1; each word is mixed
	// once its lowest byte has been folded in.
	tail := data[nblocks*16:]
	var k1, k2 uint64
	for i := len(tail); i > 0; i-- {
		b := uint64(tail[i-1])
		switch {
		case i > 9:
			k2 ^= b << (8 * (i - 9))
		case i == 9:
			k2 ^= b
			h2 ^= mixK2x64(k2)
		case i > 1:
			k1 ^= b << (8 * (i - 1))
		default:
			k1 ^= b
			h1 ^= mixK1x64(k1)
		}
	}

	n := uint64(len(data))
	h1 ^= n
	h2 ^= n

	h1 += h2
	h2 += h1

	h1 = fmix64(h1)
	h2 = fmix64(h2)

	h1 += h2
	h2 += h1

	return uint128.New(h2, h1)
}

func mixK1x64(k uint64) uint64 {
	k *= c1x64
	k = bits.RotateLeft64(k, 31)
	return k * c2x64
}

func mixK2x64(k uint64) uint64 {
	k *= c2x64
	k = bits.RotateLeft64(k, 33)
	return k * c1x64
}
