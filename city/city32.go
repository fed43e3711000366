package city

import "math/bits"

// Sum32 returns the CityHash32 of data.
func Sum32(data []byte) uint32 { return Sum32WithSeed(data, 0) }

// Sum32WithSeed returns the CityHash32 of data with seed folded into the
// initial state. A zero seed yields the unseeded reference digest.
func Sum32WithSeed(data []byte, seed uint32) uint32 {
	n := len(data)
	switch {
	case n <= 4:
		return hash32Len0to4(data, seed)
	case n <= 12:
		return hash32Len5to12(data, seed)
	case n <= 24:
		return hash32Len13to24(data, seed)
	}

	// n > 24
	h := uint32(n) + seed
	g := c1 * uint32(n)
	f := g

	a0 := ror32(fetch32(data, n-4)*c1, 17) * c2
	a1 := ror32(fetch32(data, n-8)*c1, 17) * c2
	a2 := ror32(fetch32(data, n-16)*c1, 17) * c2
	a3 := ror32(fetch32(data, n-12)*c1, 17) * c2
	a4 := ror32(fetch32(data, n-20)*c1, 17) * c2

	h ^= a0
	h = ror32(h, 19)
	h = h*5 + n1
	h ^= a2
	h = ror32(h, 19)
	h = h*5 + n1
	g ^= a1
	g = ror32(g, 19)
	g = g*5 + n1
	g ^= a3
	g = ror32(g, 19)
	g = g*5 + n1
	f += a4
	f = ror32(f, 19)
	f = f*5 + n1

	for i, iters := 0, (n-1)/20; i < iters; i++ {
		s := data[i*20:]
		a0 := ror32(fetch32(s, 0)*c1, 17) * c2
		a1 := fetch32(s, 4)
		a2 := ror32(fetch32(s, 8)*c1, 17) * c2
		a3 := ror32(fetch32(s, 12)*c1, 17) * c2
		a4 := fetch32(s, 16)

		h ^= a0
		h = ror32(h, 18)
		h = h*5 + n1
		f += a1
		f = ror32(f, 19)
		f *= c1
		g += a2
		g = ror32(g, 18)
		g = g*5 + n1
		h ^= a3 + a1
		h = ror32(h, 19)
		h = h*5 + n1
		// Byte swaps keep palindromic inputs from cancelling out.
		g ^= a4
		g = bits.ReverseBytes32(g) * 5
		h += a4 * 5
		h = bits.ReverseBytes32(h)
		f += a0
		f, h, g = g, f, h
	}

	g = ror32(g, 11) * c1
	g = ror32(g, 17) * c1
	f = ror32(f, 11) * c1
	f = ror32(f, 17) * c1
	h = ror32(h+g, 19)
	h = h*5 + n1
	h = ror32(h, 17) * c1
	h = ror32(h+f, 19)
	h = h*5 + n1
	h = ror32(h, 17) * c1
	return h
}

// fmix is the 32-bit finalizer from Murmur3.
func fmix(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// mur combines a into h the way Murmur3 mixes a block.
func mur(a, h uint32) uint32 {
	a *= c1
	a = ror32(a, 17)
	a *= c2
	h ^= a
	h = ror32(h, 19)
	return h*5 + n1
}

func hash32Len0to4(s []byte, seed uint32) uint32 {
	b := seed
	c := uint32(9)
	for _, v := range s {
		// The reference folds each byte as a signed char.
		b = b*c1 + uint32(int8(v))
		c ^= b
	}
	return fmix(mur(b, mur(uint32(len(s)), c)))
}

func hash32Len5to12(s []byte, seed uint32) uint32 {
	n := len(s)
	a := uint32(n) + seed
	b := uint32(n) * 5
	c := uint32(9)
	d := b
	a += fetch32(s, 0)
	b += fetch32(s, n-4)
	c += fetch32(s, (n>>1)&4)
	return fmix(mur(c, mur(b, mur(a, d))))
}

func hash32Len13to24(s []byte, seed uint32) uint32 {
	n := len(s)
	a := fetch32(s, (n>>1)-4)
	b := fetch32(s, 4)
	c := fetch32(s, n-8)
	d := fetch32(s, n>>1)
	e := fetch32(s, 0)
	f := fetch32(s, n-4)
	h := uint32(n) + seed
	return fmix(mur(f, mur(e, mur(d, mur(c, mur(b, mur(a, h)))))))
}
