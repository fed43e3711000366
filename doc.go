// Package fasthash selects and configures the non-cryptographic hash
// functions provided by its city and murmur3 subpackages.
//
// A [Builder] binds an [Algorithm] to a seed and produces independent
// [hash.Hash64] instances on demand:
//
//	b, err := fasthash.NewBuilder(fasthash.City64, fasthash.WithSeeds(1, 2))
//	if err != nil {
//		// handle err
//	}
//	h := b.New()
//	h.Write(data)
//	sum := h.Sum64()
//
// Builders can also be created from loosely typed configuration maps with
// [NewBuilderFromConfig] or from JSON documents with [NewBuilderFromJSON].
//
// None of the algorithms are suitable for cryptographic use.
package fasthash
