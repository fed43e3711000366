package fasthash

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/spf13/cast"
	"go.dw1.io/safemath"
	"lukechampine.com/uint128"
)

// Configuration keys understood by [NewBuilderFromConfig].
const (
	ConfigAlgorithm = "algorithm"
	ConfigSeed      = "seed"
	ConfigSeeds     = "seeds"
	ConfigSeed128   = "seed128"
)

var configKeys = map[string]struct{}{
	ConfigAlgorithm: {},
	ConfigSeed:      {},
	ConfigSeeds:     {},
	ConfigSeed128:   {},
}

// jsonAPI keeps integers as [json.Number] so 64-bit seeds survive decoding.
var jsonAPI = sonic.Config{UseNumber: true}.Froze()

// NewBuilderFromConfig returns a Builder described by cfg, a loosely typed map
// as produced by JSON or YAML decoders.
//
// The "algorithm" key is required and holds a name accepted by
// [ParseAlgorithm]. The optional "seed" key maps to [WithSeed], "seeds" (a
// two-element list) to [WithSeeds] and "seed128" (a decimal string or a map
// with "hi" and "lo" keys) to [WithSeed128]. Integer values may be numbers or
// numeric strings.
//
// Every error wraps [ErrInvalidConfig].
func NewBuilderFromConfig(cfg map[string]any) (*Builder, error) {
	if err := checkConfigKeys(cfg); err != nil {
		return nil, err
	}

	raw, ok := cfg[ConfigAlgorithm]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrInvalidConfig, ConfigAlgorithm)
	}

	name, err := cast.ToStringE(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigAlgorithm, err)
	}

	alg, err := ParseAlgorithm(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var opts []Option

	if raw, ok := cfg[ConfigSeed]; ok {
		seed, err := toUint64(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigSeed, err)
		}
		opts = append(opts, WithSeed(seed))
	}

	if raw, ok := cfg[ConfigSeeds]; ok {
		seeds, err := toSeedPair(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigSeeds, err)
		}
		opts = append(opts, WithSeeds(seeds[0], seeds[1]))
	}

	if raw, ok := cfg[ConfigSeed128]; ok {
		seed, err := toUint128(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigSeed128, err)
		}
		opts = append(opts, WithSeed128(seed))
	}

	b, err := NewBuilder(alg, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return b, nil
}

// NewBuilderFromJSON decodes data as a JSON object and passes it to
// [NewBuilderFromConfig].
func NewBuilderFromJSON(data []byte) (*Builder, error) {
	var cfg map[string]any
	if err := jsonAPI.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return NewBuilderFromConfig(cfg)
}

func checkConfigKeys(cfg map[string]any) error {
	var unknown []string
	for key := range cfg {
		if _, ok := configKeys[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)
	return fmt.Errorf("%w: unknown keys %q", ErrInvalidConfig, unknown)
}

// toUint64 converts integers through safemath so negative values are
// rejected, floats only when they are whole, and everything else through
// spf13/cast. Booleans are rejected.
func toUint64(v any) (uint64, error) {
	switch t := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return safemath.ConvertAny[uint64](t)
	case json.Number:
		return strconv.ParseUint(t.String(), 10, 64)
	case float32:
		return floatToUint64(float64(t))
	case float64:
		return floatToUint64(t)
	case bool:
		return 0, fmt.Errorf("unable to use bool %t as a seed", t)
	default:
		return cast.ToUint64E(v)
	}
}

// floatToUint64 accepts whole numbers in [0, 2^64).
func floatToUint64(f float64) (uint64, error) {
	if f < 0 || f >= 1<<64 || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not a whole number in the uint64 range", f)
	}

	return uint64(f), nil
}

func toSeedPair(v any) ([2]uint64, error) {
	var pair [2]uint64

	items, err := cast.ToSliceE(v)
	if err != nil {
		return pair, err
	}
	if len(items) != 2 {
		return pair, fmt.Errorf("want 2 seeds, got %d", len(items))
	}

	for i, item := range items {
		if pair[i], err = toUint64(item); err != nil {
			return pair, fmt.Errorf("seed %d: %w", i, err)
		}
	}

	return pair, nil
}

func toUint128(v any) (uint128.Uint128, error) {
	switch t := v.(type) {
	case uint128.Uint128:
		return t, nil
	case string:
		return uint128.FromString(t)
	case map[string]any, map[any]any, map[string]string:
		m, err := cast.ToStringMapE(t)
		if err != nil {
			return uint128.Zero, err
		}

		var hi, lo uint64
		for key, val := range m {
			switch key {
			case "hi":
				hi, err = toUint64(val)
			case "lo":
				lo, err = toUint64(val)
			default:
				return uint128.Zero, fmt.Errorf("unknown key %q", key)
			}
			if err != nil {
				return uint128.Zero, fmt.Errorf("%s: %w", key, err)
			}
		}

		return uint128.New(lo, hi), nil
	default:
		seed, err := toUint64(v)
		if err != nil {
			return uint128.Zero, err
		}

		return uint128.From64(seed), nil
	}
}
