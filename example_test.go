package fasthash_test

import (
	"fmt"

	"go.dw1.io/fasthash"
)

func ExampleNewBuilder() {
	b, err := fasthash.NewBuilder(fasthash.Murmur3x86_32, fasthash.WithSeed(4919))
	if err != nil {
		panic(err)
	}

	fmt.Println(b.Sum64([]byte("StandardBlockEntityDescriptorV4")))
	// Output: 1357220432
}

func ExampleBuilder_New() {
	b, err := fasthash.NewBuilder(fasthash.City64)
	if err != nil {
		panic(err)
	}

	h := b.New()
	h.Write([]byte("a"))
	h.Write([]byte("bc"))

	fmt.Println(h.Sum64())
	// Output: 4220206313085259313
}

func ExampleNewBuilderFromJSON() {
	b, err := fasthash.NewBuilderFromJSON([]byte(`{"algorithm": "city32"}`))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s %d\n", b.Algorithm(), b.Sum64([]byte("abc")))
	// Output: city32 795041479
}
