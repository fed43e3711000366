package city

// Sum64 returns the CityHash64 of data.
func Sum64(data []byte) uint64 {
	n := len(data)
	switch {
	case n <= 16:
		return hash64Len0to16(data)
	case n <= 32:
		return hash64Len17to32(data)
	case n <= 64:
		return hash64Len33to64(data)
	}

	// For inputs over 64 bytes we hash the end first, and then as we loop we
	// keep 56 bytes of state: v, w, x, y, and z.
	st := state{
		x: fetch64(data, n-40),
		y: fetch64(data, n-16) + fetch64(data, n-56),
	}
	st.z = hashLen16(fetch64(data, n-48)+uint64(n), fetch64(data, n-24))
	st.v0, st.v1 = weakHashLen32WithSeeds(data, n-64, uint64(n), st.z)
	st.w0, st.w1 = weakHashLen32WithSeeds(data, n-32, st.y+k1, st.x)
	st.x = st.x*k1 + fetch64(data, 0)

	// Round n down to a multiple of 64 and operate on 64-byte chunks.
	for s, end := 0, (n-1)&^63; s < end; s += 64 {
		st.round(data[s:])
	}

	return hashLen16(
		hashLen16(st.v0, st.w0)+shiftMix(st.y)*k1+st.z,
		hashLen16(st.v1, st.w1)+st.x,
	)
}

// Sum64WithSeed returns the CityHash64 of data combined with seed.
func Sum64WithSeed(data []byte, seed uint64) uint64 {
	return Sum64WithSeeds(data, k2, seed)
}

// Sum64WithSeeds returns the CityHash64 of data combined with seed0 and
// seed1. Seeds only affect the final combination, never the core loop.
func Sum64WithSeeds(data []byte, seed0, seed1 uint64) uint64 {
	return hashLen16(Sum64(data)-seed0, seed1)
}

func hash64Len0to16(s []byte) uint64 {
	n := len(s)
	if n > 8 {
		a := fetch64(s, 0)
		b := fetch64(s, n-8)
		return hashLen16(a, ror64(b+uint64(n), n)) ^ b
	}
	if n >= 4 {
		a := uint64(fetch32(s, 0))
		return hashLen16(uint64(n)+(a<<3), uint64(fetch32(s, n-4)))
	}
	if n > 0 {
		a := s[0]
		b := s[n>>1]
		c := s[n-1]
		y := uint32(a) + uint32(b)<<8
		z := uint32(n) + uint32(c)<<2
		return shiftMix(uint64(y)*k2^uint64(z)*k3) * k2
	}
	return k2
}

func hash64Len17to32(s []byte) uint64 {
	n := len(s)
	a := fetch64(s, 0) * k1
	b := fetch64(s, 8)
	c := fetch64(s, n-8) * k2
	d := fetch64(s, n-16) * k0
	return hashLen16(
		ror64(a-b, 43)+ror64(c, 30)+d,
		a+ror64(b^k3, 20)-c+uint64(n),
	)
}

func hash64Len33to64(s []byte) uint64 {
	n := len(s)
	z := fetch64(s, 24)
	a := fetch64(s, 0) + (uint64(n)+fetch64(s, n-16))*k0
	b := ror64(a+z, 52)
	c := ror64(a, 37)
	a += fetch64(s, 8)
	c += ror64(a, 7)
	a += fetch64(s, 16)
	vf := a + z
	vs := b + ror64(a, 31) + c

	a = fetch64(s, 16) + fetch64(s, n-32)
	z = fetch64(s, n-8)
	b = ror64(a+z, 52)
	c = ror64(a, 37)
	a += fetch64(s, n-24)
	c += ror64(a, 7)
	a += fetch64(s, n-16)
	wf := a + z
	ws := b + ror64(a, 31) + c

	r := shiftMix((vf+ws)*k2 + (wf+vs)*k0)
	return shiftMix(r*k0+vs) * k2
}
