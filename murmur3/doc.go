// Package murmur3 provides a Go implementation of Austin Appleby's
// MurmurHash3 non-cryptographic hash.
//
// All three published variants are offered: x86_32 ([Sum32]), x86_128 with
// four 32-bit lanes ([Sum128]) and x64_128 with two 64-bit lanes
// ([Sum128x64]). Blocks are read as little-endian words so digests are
// portable across architectures and match the reference implementation.
//
// The buffering hashers satisfy [hash.Hash64] (and [hash.Hash32] for the
// 32-bit variant), accumulating written bytes and hashing them on demand.
package murmur3
