package staticvector

import (
	"errors"
	"fmt"
)

// Example demonstrates basic vector usage
func Example() {
	v := New[int](4)
	defer v.Release() // Always clean up

	_ = v.Push(1)
	_ = v.Push(2)
	fmt.Println("len:", v.Len(), "cap:", v.Cap())

	// Nothing is appended when the values do not all fit
	if err := v.ExtendFromSlice(3, 4, 5); errors.Is(err, ErrCapacity) {
		fmt.Println("extend failed:", v)
	}

	last, _ := v.Pop()
	fmt.Println("popped:", last)

	// Growing fills new slots with the zero value
	_ = v.SetLen(4)
	fmt.Println("after SetLen(4):", v)

	// Output:
	// len: 2 cap: 4
	// extend failed: [1 2]
	// popped: 2
	// after SetLen(4): [1 0 0 0]
}

// ExampleOf demonstrates the construction helpers
func ExampleOf() {
	fmt.Println(Of(1, 2, 3))
	fmt.Println(OfCap(8, 1, 2).Cap())
	fmt.Println(WithLen[uint16](8, 5))
	fmt.Println(Make[uint32](8).IsEmpty())

	// Output:
	// [1 2 3]
	// 8
	// [0 0 0 0 0]
	// true
}

func ExampleVec_PopIf() {
	v := Of(1, 2, 3)

	_, ok := v.PopIf(func(x int) bool { return x > 5 })
	fmt.Println(ok, v)

	x, ok := v.PopIf(func(x int) bool { return x == 3 })
	fmt.Println(x, ok, v)

	// Output:
	// false [1 2 3]
	// 3 true [1 2]
}

func ExampleVec_Append() {
	a := OfCap(5, 1, 2)
	b := Of(3, 4, 5)

	if err := a.Append(b); err != nil {
		fmt.Println(err)
	}
	fmt.Println(a, b.Len())

	// a is full now, so a second append leaves both untouched
	c := Of(6)
	fmt.Println(a.Append(c), c)

	// Output:
	// [1 2 3 4 5] 0
	// staticvector: capacity exceeded [6]
}

func ExampleVec_Backward() {
	v := Of("a", "b", "c")
	for i, s := range v.Backward() {
		fmt.Println(i, s)
	}

	// Output:
	// 2 c
	// 1 b
	// 0 a
}

type conn struct {
	name string
}

func (c conn) Drop() { fmt.Println("closing", c.name) }

// ExampleDropper demonstrates that Release drops live elements but not
// popped ones
func ExampleDropper() {
	v := New[conn](4)
	_ = v.ExtendFromSlice(conn{"a"}, conn{"b"}, conn{"c"})

	c, _ := v.Pop()
	fmt.Println("popped", c.name)

	v.Release()

	// Output:
	// popped c
	// closing a
	// closing b
}

// ExampleVecMetrics demonstrates monitoring vector usage
func ExampleVecMetrics() {
	v := New[int](8)
	_ = v.ExtendFromSlice(1, 2, 3, 4, 5, 6)

	metrics := v.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Len: %d\n", metrics.Len)
	fmt.Printf("  Capacity: %d\n", metrics.Capacity)
	fmt.Printf("  Free: %d\n", metrics.Free)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)

	// Output:
	// Metrics:
	//   Len: 6
	//   Capacity: 8
	//   Free: 2
	//   Utilization: 75.0%
}
