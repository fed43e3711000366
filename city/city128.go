package city

import "lukechampine.com/uint128"

// Sum128 returns the CityHash128 of data.
//
// The seed is derived from the first bytes of data, and for inputs of 16
// bytes or more only the remainder is hashed with it. This matches the
// published algorithm.
func Sum128(data []byte) uint128.Uint128 {
	n := len(data)
	switch {
	case n >= 16:
		return Sum128WithSeed(data[16:], uint128.New(fetch64(data, 0)^k3, fetch64(data, 8)))
	case n >= 8:
		return Sum128WithSeed(nil, uint128.New(fetch64(data, 0)^(uint64(n)*k0), fetch64(data, n-8)^k1))
	default:
		return Sum128WithSeed(data, uint128.New(k0, k1))
	}
}

// Sum128WithSeed returns the CityHash128 of data with the given 128-bit seed.
func Sum128WithSeed(data []byte, seed uint128.Uint128) uint128.Uint128 {
	n := len(data)
	if n < 128 {
		return cityMurmur(data, seed)
	}

	// Keep 56 bytes of state: v, w, x, y, and z.
	st := state{
		x: seed.Lo,
		y: seed.Hi,
		z: uint64(n) * k1,
	}
	st.v0 = ror64(st.y^k1, 49)*k1 + fetch64(data, 0)
	st.v1 = ror64(st.v0, 42)*k1 + fetch64(data, 8)
	st.w0 = ror64(st.y+st.z, 35)*k1 + st.x
	st.w1 = ror64(st.x+fetch64(data, 88), 53) * k1

	// Same inner loop as Sum64, two chunks per iteration.
	s, l := 0, n
	for l >= 128 {
		st.round(data[s:])
		st.round(data[s+64:])
		s += 128
		l -= 128
	}
	st.x += ror64(st.v0+st.z, 49) * k0
	st.z += ror64(st.w0, 37) * k0

	// Hash up to 4 chunks of 32 bytes each from the end of data. The chunks
	// may overlap bytes already consumed by the loop above.
	for done := 0; done < l; {
		done += 32
		off := s + l - done
		st.y = ror64(st.x+st.y, 42)*k0 + st.v1
		st.w0 += fetch64(data, off+16)
		st.x = st.x*k0 + st.w0
		st.z += st.w1 + fetch64(data, off)
		st.w1 += st.v0
		st.v0, st.v1 = weakHashLen32WithSeeds(data, off, st.v0+st.z, st.v1)
	}

	// Two different 56-byte-to-8-byte hashes give the two halves.
	x := hashLen16(st.x, st.v0)
	y := hashLen16(st.y+st.z, st.w0)
	return uint128.New(
		hashLen16(x+st.v1, st.w1)+y,
		hashLen16(x+st.w1, y+st.v1),
	)
}

// Sum128To64 folds a 128-bit digest into 64 bits.
func Sum128To64(v uint128.Uint128) uint64 { return hashLen16(v.Lo, v.Hi) }

// cityMurmur is the 128-bit hash used for inputs shorter than 128 bytes.
func cityMurmur(s []byte, seed uint128.Uint128) uint128.Uint128 {
	n := len(s)
	a := seed.Lo
	b := seed.Hi
	var c, d uint64
	if n <= 16 {
		a = shiftMix(a*k1) * k1
		c = b*k1 + hash64Len0to16(s)
		if n >= 8 {
			d = shiftMix(a + fetch64(s, 0))
		} else {
			d = shiftMix(a + c)
		}
	} else {
		c = hashLen16(fetch64(s, n-8)+k1, a)
		d = hashLen16(b+uint64(n), c+fetch64(s, n-16))
		a += d
		for i := 0; i < n-16; i += 16 {
			a ^= shiftMix(fetch64(s, i)*k1) * k1
			a *= k1
			b ^= a
			c ^= shiftMix(fetch64(s, i+8)*k1) * k1
			c *= k1
			d ^= c
		}
	}
	a = hashLen16(a, c)
	b = hashLen16(d, b)
	return uint128.New(a^b, hashLen16(b, a))
}
