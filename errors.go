package fasthash

import "errors"

// ErrUnknownAlgorithm indicates that an algorithm name or value is not
// recognized.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// ErrInvalidOption indicates that an option does not apply to the selected
// algorithm or conflicts with another option.
var ErrInvalidOption = errors.New("invalid hash option")

// ErrInvalidSeed indicates that a seed does not fit the seed width of the
// selected algorithm.
//
// It wraps the underlying conversion error.
var ErrInvalidSeed = errors.New("invalid hash seed")

// ErrInvalidConfig indicates that a configuration could not be decoded.
//
// It can be wrapped together with any of the other errors.
var ErrInvalidConfig = errors.New("invalid hash config")
