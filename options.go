package fasthash

import (
	"fmt"

	"lukechampine.com/uint128"
)

type options struct {
	seed    *uint64
	seeds   *[2]uint64
	seed128 *uint128.Uint128
}

// Option configures a [Builder] created by [NewBuilder].
type Option func(*options)

// WithSeed sets the seed. Algorithms with 32-bit seeds reject values that do
// not fit in a uint32. For [City64] it selects the single-seed variant and for
// [City128] it is widened to a 128-bit seed with a zero high half.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithSeeds sets the two seeds of the [City64] two-seed variant.
func WithSeeds(seed0, seed1 uint64) Option {
	return func(o *options) {
		o.seeds = &[2]uint64{seed0, seed1}
	}
}

// WithSeed128 sets the 128-bit seed of [City128].
func WithSeed128(seed uint128.Uint128) Option {
	return func(o *options) {
		o.seed128 = &seed
	}
}

// validate checks that the collected options are usable with alg.
func (o *options) validate(alg Algorithm) error {
	set := 0
	for _, ok := range []bool{o.seed != nil, o.seeds != nil, o.seed128 != nil} {
		if ok {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("%w: at most one seed option may be set", ErrInvalidOption)
	}

	if o.seeds != nil && alg != City64 {
		return fmt.Errorf("%w: WithSeeds requires %s, got %s", ErrInvalidOption, City64, alg)
	}

	if o.seed128 != nil && alg != City128 {
		return fmt.Errorf("%w: WithSeed128 requires %s, got %s", ErrInvalidOption, City128, alg)
	}

	return nil
}
