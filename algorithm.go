package fasthash

import (
	"fmt"
	"strings"
)

// Algorithm identifies a hash function.
type Algorithm uint8

const (
	// City32 is the 32-bit CityHash (v1.1).
	City32 Algorithm = iota
	// City64 is the 64-bit CityHash (v1.0.3).
	City64
	// City128 is the 128-bit CityHash (v1.0.3).
	City128
	// Murmur3x86_32 is MurmurHash3 x86_32.
	Murmur3x86_32
	// Murmur3x86_128 is MurmurHash3 x86_128.
	Murmur3x86_128
	// Murmur3x64_128 is MurmurHash3 x64_128.
	Murmur3x64_128

	numAlgorithms
)

var algorithmNames = [numAlgorithms]string{
	City32:         "city32",
	City64:         "city64",
	City128:        "city128",
	Murmur3x86_32:  "murmur3-32",
	Murmur3x86_128: "murmur3-128",
	Murmur3x64_128: "murmur3-128-x64",
}

var algorithmSizes = [numAlgorithms]int{
	City32:         4,
	City64:         8,
	City128:        16,
	Murmur3x86_32:  4,
	Murmur3x86_128: 16,
	Murmur3x64_128: 16,
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, 0, numAlgorithms)
	for a := range numAlgorithms {
		algs = append(algs, a)
	}

	return algs
}

// ParseAlgorithm returns the algorithm with the given name. Matching is
// case-insensitive and accepts '_' in place of '-'.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for a, n := range algorithmNames {
		if n == normalized {
			return Algorithm(a), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Valid reports whether a is a supported algorithm.
func (a Algorithm) Valid() bool { return a < numAlgorithms }

// String returns the canonical name of a.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}

	return algorithmNames[a]
}

// Size returns the digest width of a in bytes, or 0 if a is not valid.
func (a Algorithm) Size() int {
	if !a.Valid() {
		return 0
	}

	return algorithmSizes[a]
}

// MarshalText implements [encoding.TextMarshaler].
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}

	return []byte(algorithmNames[a]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseAlgorithm].
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// is32BitSeeded reports whether a takes a 32-bit seed.
func (a Algorithm) is32BitSeeded() bool {
	switch a {
	case City32, Murmur3x86_32, Murmur3x86_128, Murmur3x64_128:
		return true
	default:
		return false
	}
}
