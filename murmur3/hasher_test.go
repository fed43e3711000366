package murmur3_test

import (
	"encoding/binary"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.dw1.io/fasthash/murmur3"
)

func writeAll(t *testing.T, h hash.Hash, data []byte, chunk int) {
	t.Helper()
	for len(data) > 0 {
		n := min(chunk, len(data))
		written, err := h.Write(data[:n])
		require.NoError(t, err)
		require.Equal(t, n, written)
		data = data[n:]
	}
}

func TestHasherMatchesOneShot(t *testing.T) {
	tests := map[string]struct {
		newHash func() hash.Hash64
		sum     func([]byte) []byte
	}{
		"x86_32": {
			newHash: func() hash.Hash64 { return murmur3.New32WithSeed(7) },
			sum: func(d []byte) []byte {
				return binary.BigEndian.AppendUint32(nil, murmur3.Sum32WithSeed(d, 7))
			},
		},
		"x86_128": {
			newHash: func() hash.Hash64 { return murmur3.New128WithSeed(7) },
			sum: func(d []byte) []byte {
				v := murmur3.Sum128WithSeed(d, 7)
				return binary.BigEndian.AppendUint64(binary.BigEndian.AppendUint64(nil, v.Hi), v.Lo)
			},
		},
		"x64_128": {
			newHash: func() hash.Hash64 { return murmur3.New128x64WithSeed(7) },
			sum: func(d []byte) []byte {
				v := murmur3.Sum128x64WithSeed(d, 7)
				return binary.BigEndian.AppendUint64(binary.BigEndian.AppendUint64(nil, v.Hi), v.Lo)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{0, 1, 15, 16, 17, 33, 100} {
				data := testData(n)
				want := tt.sum(data)

				for _, chunk := range []int{1, 5, 16, 64} {
					h := tt.newHash()
					writeAll(t, h, data, chunk)
					assert.Equal(t, want, h.Sum(nil), "len=%d chunk=%d", n, chunk)
					assert.Equal(t, want, h.Sum(nil), "len=%d chunk=%d repeated", n, chunk)
					assert.Len(t, want, h.Size())
					assert.Equal(t, 1, h.BlockSize())
				}
			}
		})
	}
}

func TestHasherSum64(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog.")

	h32 := murmur3.New32()
	writeAll(t, h32, data, 3)
	assert.Equal(t, murmur3.Sum32(data), h32.Sum32())
	assert.Equal(t, uint64(murmur3.Sum32(data)), h32.Sum64())

	h128 := murmur3.New128()
	writeAll(t, h128, data, 3)
	assert.Equal(t, murmur3.Sum128(data), h128.Sum128())
	assert.Equal(t, murmur3.Sum128(data).Lo, h128.Sum64())

	hx64 := murmur3.New128x64()
	writeAll(t, hx64, data, 3)
	assert.Equal(t, murmur3.Sum128x64(data), hx64.Sum128())
	assert.Equal(t, murmur3.Sum128x64(data).Lo, hx64.Sum64())
}

func TestHasherReset(t *testing.T) {
	data := []byte("hello, world")

	h := murmur3.New32WithSeed(0x2a)
	writeAll(t, h, []byte("stale input"), 4)
	h.Reset()
	writeAll(t, h, data, 4)
	assert.Equal(t, uint32(0x7ec7c6c2), h.Sum32())

	hx := murmur3.New128x64WithSeed(4919)
	writeAll(t, hx, []byte("stale input"), 4)
	hx.Reset()
	assert.Equal(t, murmur3.Sum128x64WithSeed(nil, 4919), hx.Sum128())
}

func TestHasherSumAppends(t *testing.T) {
	h := murmur3.New128()
	writeAll(t, h, []byte("abc"), 1)

	prefix := []byte("prefix")
	out := h.Sum(prefix)
	require.Len(t, out, len(prefix)+16)
	assert.Equal(t, "prefix", string(out[:len(prefix)]))
	assert.Equal(t, h.Sum(nil), out[len(prefix):])
}
