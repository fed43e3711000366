package city_test

import (
	"encoding/binary"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"go.dw1.io/fasthash/city"
)

// writeChunks feeds data to h in three uneven pieces.
func writeChunks(t *testing.T, h hash.Hash, data []byte) {
	t.Helper()
	n := len(data)
	for _, chunk := range [][]byte{data[:n/3], data[n/3 : n*2/3], data[n*2/3:]} {
		written, err := h.Write(chunk)
		require.NoError(t, err)
		require.Equal(t, len(chunk), written)
	}
}

func TestHasherStreamingMatchesOneShot(t *testing.T) {
	seed128 := uint128.New(0x1234, 0x5678)
	tests := []struct {
		name    string
		newHash func() hash.Hash64
		sum     func([]byte) uint64
		size    int
	}{
		{
			name:    "hash32",
			newHash: func() hash.Hash64 { return city.New32() },
			sum:     func(d []byte) uint64 { return uint64(city.Sum32(d)) },
			size:    4,
		},
		{
			name:    "hash32Seed",
			newHash: func() hash.Hash64 { return city.New32WithSeed(42) },
			sum:     func(d []byte) uint64 { return uint64(city.Sum32WithSeed(d, 42)) },
			size:    4,
		},
		{
			name:    "hash64",
			newHash: func() hash.Hash64 { return city.New64() },
			sum:     city.Sum64,
			size:    8,
		},
		{
			name:    "hash64Seed",
			newHash: func() hash.Hash64 { return city.New64WithSeed(99) },
			sum:     func(d []byte) uint64 { return city.Sum64WithSeed(d, 99) },
			size:    8,
		},
		{
			name:    "hash64Seeds",
			newHash: func() hash.Hash64 { return city.New64WithSeeds(1, 2) },
			sum:     func(d []byte) uint64 { return city.Sum64WithSeeds(d, 1, 2) },
			size:    8,
		},
		{
			name:    "hash128",
			newHash: func() hash.Hash64 { return city.New128() },
			sum:     func(d []byte) uint64 { return city.Sum128(d).Lo },
			size:    16,
		},
		{
			name:    "hash128Seed",
			newHash: func() hash.Hash64 { return city.New128WithSeed(seed128) },
			sum:     func(d []byte) uint64 { return city.Sum128WithSeed(d, seed128).Lo },
			size:    16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, n := range []int{0, 3, 24, 65, 200} {
				data := testData(n)
				want := tt.sum(data)

				h := tt.newHash()
				assert.Equal(t, tt.size, h.Size())
				assert.Equal(t, 1, h.BlockSize())

				writeChunks(t, h, data)
				assert.Equal(t, want, h.Sum64(), "len %d", n)
				// Finishing is non-destructive.
				assert.Equal(t, want, h.Sum64(), "len %d repeated", n)

				h.Reset()
				writeChunks(t, h, data)
				assert.Equal(t, want, h.Sum64(), "len %d after reset", n)

				prefix := []byte{0xaa, 0xbb}
				out := h.Sum(prefix)
				require.Len(t, out, len(prefix)+tt.size)
				assert.Equal(t, prefix, out[:len(prefix)])
			}
		})
	}
}

func TestHasherSumBytes(t *testing.T) {
	data := []byte("hello city")

	h32 := city.New32()
	writeChunks(t, h32, data)
	assert.Equal(t, city.Sum32(data), h32.Sum32())
	assert.Equal(t, city.Sum32(data), binary.BigEndian.Uint32(h32.Sum(nil)))

	h64 := city.New64()
	writeChunks(t, h64, data)
	assert.Equal(t, city.Sum64(data), binary.BigEndian.Uint64(h64.Sum(nil)))

	h128 := city.New128()
	writeChunks(t, h128, data)
	want := city.Sum128(data)
	assert.Equal(t, want, h128.Sum128())
	out := h128.Sum(nil)
	assert.Equal(t, want.Hi, binary.BigEndian.Uint64(out[:8]))
	assert.Equal(t, want.Lo, binary.BigEndian.Uint64(out[8:]))
}

func TestHasherResetKeepsSeed(t *testing.T) {
	data := []byte("reset keeps the seed")

	h := city.New64WithSeeds(7, 11)
	writeChunks(t, h, []byte("discarded"))
	h.Reset()
	writeChunks(t, h, data)
	assert.Equal(t, city.Sum64WithSeeds(data, 7, 11), h.Sum64())
}
