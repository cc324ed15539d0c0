package multilayout_test

import (
	"fmt"

	"github.com/keebtools/keylayout/pkg/kle"
	"github.com/keebtools/keylayout/pkg/multilayout"
)

func key(x, y float64, labels map[int]string) *kle.Key {
	k := kle.NewKey()
	k.X, k.Y = x, y
	for i, s := range labels {
		k.Labels[i] = s
	}
	return k
}

func ExampleResolve() {
	// A board with one multilayout group: a full backspace (option 0) and a
	// split backspace drawn two units to the right (option 1).
	kbd := &kle.Keyboard{Keys: []*kle.Key{
		key(0, 0, map[int]string{3: "0", 5: "0"}),
		key(2, 0, map[int]string{3: "0", 5: "1"}),
		key(3, 0, map[int]string{3: "0", 5: "1"}),
	}}

	keys, err := multilayout.Resolve(kbd, multilayout.Selection{1})
	if err != nil {
		panic(err)
	}
	for _, k := range keys {
		fmt.Printf("(%v, %v)\n", k.X, k.Y)
	}
	// Output:
	// (0, 0)
	// (1, 0)
}

func ExampleResolveDefault() {
	// With no selection the larger option wins: the two-key split replaces
	// the single full-width key.
	kbd := &kle.Keyboard{Keys: []*kle.Key{
		key(0, 0, map[int]string{3: "0", 5: "0", 9: "0", 11: "0"}),
		key(4, 1, map[int]string{3: "0", 5: "1", 9: "0", 11: "0"}),
		key(5, 1, map[int]string{3: "0", 5: "1", 9: "0", 11: "1"}),
	}}

	out, err := multilayout.ResolveDefault(kbd)
	if err != nil {
		panic(err)
	}
	fmt.Println("keys:", len(out.Keys))
	// Output:
	// keys: 2
}
