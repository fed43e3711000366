package murmur3

import (
	"encoding/binary"
	"math/bits"

	"lukechampine.com/uint128"
)

const (
	c1x86 = uint32(0x239b961b)
	c2x86 = uint32(0xab0e9789)
	c3x86 = uint32(0x38b34ae5)
	c4x86 = uint32(0xa1e38b93)
)

// Sum128 returns the MurmurHash3 x86_128 of data with seed 0.
func Sum128(data []byte) uint128.Uint128 { return Sum128WithSeed(data, 0) }

// Sum128WithSeed returns the MurmurHash3 x86_128 of data with the provided
// seed. The four 32-bit lanes h1..h4 are packed most significant first, so
// Hi holds h1 and h2 and Lo holds h3 and h4.
func Sum128WithSeed(data []byte, seed uint32) uint128.Uint128 {
	h1, h2, h3, h4 := seed, seed, seed, seed

	nblocks := len(data) / 16
	for i := 0; i < nblocks; i++ {
		block := data[i*16:]
		k1 := binary.LittleEndian.Uint32(block)
		k2 := binary.LittleEndian.Uint32(block[4:])
		k3 := binary.LittleEndian.Uint32(block[8:])
		k4 := binary.LittleEndian.Uint32(block[12:])

		h1 ^= mixK1x86(k1)
		h1 = bits.RotateLeft32(h1, 19)
		h1 += h2
		h1 = h1*5 + 0x561ccd1b

		h2 ^= mixK2x86(k2)
		h2 = bits.RotateLeft32(h2, 17)
		h2 += h3
		h2 = h2*5 + 0x0bcaa747

		h3 ^= mixK3x86(k3)
		h3 = bits.RotateLeft32(h3, 15)
		h3 += h4
		h3 = h3*5 + 0x96cd1c35

		h4 ^= mixK4x86(k4)
		h4 = bits.RotateLeft32(h4, 13)
		h4 += h1
		h4 = h4*5 + 0x32ac3b17
	}

	// Tail byte i-1 belongs to lane word (i-1)/4 at byte (i-1)%4. A lane word
	// is mixed into its lane once its lowest byte has been folded in.
	tail := data[nblocks*16:]
	var k [4]uint32
	for i := len(tail); i > 0; i-- {
		lane, pos := (i-1)/4, (i-1)%4
		k[lane] ^= uint32(tail[i-1]) << (8 * pos)
		if pos != 0 {
			continue
		}
		switch lane {
		case 3:
			h4 ^= mixK4x86(k[3])
		case 2:
			h3 ^= mixK3x86(k[2])
		case 1:
			h2 ^= mixK2x86(k[1])
		case 0:
			h1 ^= mixK1x86(k[0])
		}
	}

	n := uint32(len(data))
	h1 ^= n
	h2 ^= n
	h3 ^= n
	h4 ^= n

	h1 += h2 + h3 + h4
	h2 += h1
	h3 += h1
	h4 += h1

	h1 = fmix32(h1)
	h2 = fmix32(h2)
	h3 = fmix32(h3)
	h4 = fmix32(h4)

	h1 += h2 + h3 + h4
	h2 += h1
	h3 += h1
	h4 += h1

	return uint128.New(uint64(h3)<<32|uint64(h4), uint64(h1)<<32|uint64(h2))
}

func mixK1x86(k uint32) uint32 {
	k *= c1x86
	k = bits.RotateLeft32(k, 15)
	return k * c2x86
}

func mixK2x86(k uint32) uint32 {
	k *= c2x86
	k = bits.RotateLeft32(k, 16)
	return k * c3x86
}

func mixK3x86(k uint32) uint32 {
	k *= c3x86
	k = bits.RotateLeft32(k, 17)
	return k * c4x86
}

func mixK4x86(k uint32) uint32 {
	k *= c4x86
	k = bits.RotateLeft32(k, 18)
	return k * c1x86
}
