// Package staticvector implements a fixed-capacity vector for Go.
//
// # Overview
//
// A Vec owns a single block of slots allocated when it is created. Its
// capacity never changes: there is no growth and no reallocation, so a
// pointer obtained from GetMut stays valid for as long as the element is
// live. This is useful for:
//
//   - Bounded buffers and histories whose size is known up front
//   - Hot paths that must not allocate after setup
//   - Modelling embedded-style storage with an explicit live prefix
//
// # Basic Usage
//
//	v := staticvector.New[int](4)
//	defer v.Release()
//
//	_ = v.Push(1)
//	_ = v.Push(2)
//	if err := v.ExtendFromSlice(3, 4, 5); errors.Is(err, staticvector.ErrCapacity) {
//		// nothing was appended
//	}
//
//	last, _ := v.Pop()       // 2
//	_ = v.SetLen(4)          // [1 0 0 0]
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Construction Helpers
//
//	staticvector.Make[uint32](8)        // empty, capacity 8
//	staticvector.Of(1, 2, 3)            // [1 2 3], capacity 3
//	staticvector.OfCap(8, 1, 2)         // [1 2], capacity 8
//	staticvector.WithLen[uint16](8, 5)  // [0 0 0 0 0], capacity 8
//
// The helpers panic on impossible inputs, as does New with a capacity of
// zero.
//
// # Live Prefix
//
// Slots [0, Len()) hold live elements. Every other slot holds the zero
// value of T and is never returned: Get, the iterators and AsSlice are all
// bounded by Len(), not Cap(). Removing an element zeroes its slot so the
// garbage collector can reclaim what it referenced.
//
// # Element Lifecycle
//
// Elements implementing Dropper are dropped exactly once when the vector
// destroys them: Clear, Truncate, SetLen shrinking, and Release. Popped
// elements are handed to the caller and are not dropped. Nil pointers are
// never dropped.
//
// Elements implementing Cloner are deep-copied by ExtendFromSlice, Append
// and Clone. Append moves elements that are not Cloners, so a resource
// leaves the source without being dropped and is dropped later by the
// receiver. Clone panics on a Dropper that is not a Cloner.
//
// # Errors
//
// Operations that would overflow the vector return ErrCapacity (Push,
// ExtendFromSlice, Append) or ErrLength (SetLen) and leave the vector
// unchanged.
//
// # Thread Safety
//
// Vec is not goroutine-safe. Slices and iterators obtained from a vector
// alias its storage; do not modify the vector while they are in use.
package staticvector
