package fasthash

import (
	"fmt"
	"hash"

	"go.dw1.io/safemath"
	"lukechampine.com/uint128"

	"go.dw1.io/fasthash/city"
	"go.dw1.io/fasthash/murmur3"
)

// Hash128 is implemented by the hashers of the 128-bit algorithms.
type Hash128 interface {
	hash.Hash
	Sum128() uint128.Uint128
}

var (
	_ Hash128 = (*city.Hasher128)(nil)
	_ Hash128 = (*murmur3.Hasher128)(nil)
	_ Hash128 = (*murmur3.Hasher128x64)(nil)
)

// Builder creates hashers of one algorithm with a fixed seed. A Builder is
// immutable and safe for concurrent use.
type Builder struct {
	alg     Algorithm
	newHash func() hash.Hash64
}

// NewBuilder returns a Builder for alg configured by opts.
func NewBuilder(alg Algorithm, opts ...Option) (*Builder, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.validate(alg); err != nil {
		return nil, err
	}

	newHash, err := hasherFunc(alg, &o)
	if err != nil {
		return nil, err
	}

	return &Builder{alg: alg, newHash: newHash}, nil
}

// Algorithm returns the algorithm of b.
func (b *Builder) Algorithm() Algorithm { return b.alg }

// New returns a new hasher with an empty buffer. Hashers of 128-bit
// algorithms also implement [Hash128]; their Sum64 is the low 64 bits.
func (b *Builder) New() hash.Hash64 { return b.newHash() }

// Sum64 returns the 64-bit value a fresh hasher reports after writing data.
func (b *Builder) Sum64(data []byte) uint64 {
	h := b.newHash()
	h.Write(data)
	return h.Sum64()
}

// Sum returns the full-width big-endian digest of data.
func (b *Builder) Sum(data []byte) []byte {
	h := b.newHash()
	h.Write(data)
	return h.Sum(make([]byte, 0, b.alg.Size()))
}

func hasherFunc(alg Algorithm, o *options) (func() hash.Hash64, error) {
	var seed32 uint32
	if o.seed != nil && alg.is32BitSeeded() {
		narrowed, err := safemath.ConvertAny[uint32](*o.seed)
		if err != nil {
			return nil, fmt.Errorf("%w: %s takes a 32-bit seed: %w", ErrInvalidSeed, alg, err)
		}
		seed32 = narrowed
	}

	switch alg {
	case City32:
		return func() hash.Hash64 { return city.New32WithSeed(seed32) }, nil
	case City64:
		switch {
		case o.seeds != nil:
			s0, s1 := o.seeds[0], o.seeds[1]
			return func() hash.Hash64 { return city.New64WithSeeds(s0, s1) }, nil
		case o.seed != nil:
			seed := *o.seed
			return func() hash.Hash64 { return city.New64WithSeed(seed) }, nil
		default:
			return func() hash.Hash64 { return city.New64() }, nil
		}
	case City128:
		switch {
		case o.seed128 != nil:
			seed := *o.seed128
			return func() hash.Hash64 { return city.New128WithSeed(seed) }, nil
		case o.seed != nil:
			seed := uint128.From64(*o.seed)
			return func() hash.Hash64 { return city.New128WithSeed(seed) }, nil
		default:
			return func() hash.Hash64 { return city.New128() }, nil
		}
	case Murmur3x86_32:
		return func() hash.Hash64 { return murmur3.New32WithSeed(seed32) }, nil
	case Murmur3x86_128:
		return func() hash.Hash64 { return murmur3.New128WithSeed(seed32) }, nil
	case Murmur3x64_128:
		return func() hash.Hash64 { return murmur3.New128x64WithSeed(seed32) }, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}
