// Package city provides a Go implementation of the CityHash family of
// non-cryptographic hash functions by Geoff Pike and Jyrki Alakuijala.
//
// The 64- and 128-bit functions follow CityHash v1.0.3; the 32-bit function
// follows the CityHash32 published with v1.1. Outputs are bit-exact with the
// reference C++ implementation so digests can be shared with other
// implementations.
//
// One-shot helpers ([Sum32], [Sum64], [Sum128] and their seeded variants)
// are pure and safe for concurrent use. The buffering hashers ([Hasher32],
// [Hasher64], [Hasher128]) satisfy [hash.Hash64] so the functions can back
// any code that expects an incremental digest.
package city
