package staticvector

import "fmt"

// Vec is a vector of at most Cap() elements backed by a single block of
// slots. Slots [0, Len()) hold live values; the rest hold the zero value
// of T and are never exposed. Not goroutine-safe.
type Vec[T any] struct {
	slots      []T
	length     int
	newDefault func() T
	drops      bool
	released   bool
}

// New creates an empty Vec that can hold capacity elements.
// It panics if capacity <= 0.
func New[T any](capacity int, opts ...Option[T]) *Vec[T] {
	if capacity <= 0 {
		panic("staticvector: capacity must be greater than 0")
	}
	v := &Vec[T]{
		slots: make([]T, capacity),
		drops: needsDrop[T](),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Cap returns the fixed number of slots, or 0 after Release.
func (v *Vec[T]) Cap() int {
	return len(v.slots)
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.length
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.length == 0
}

// IsFull reports whether every slot is in use.
func (v *Vec[T]) IsFull() bool {
	return v.length == len(v.slots)
}

// Push appends value. If the vector is full it returns ErrCapacity and
// value is not stored.
func (v *Vec[T]) Push(value T) error {
	v.panicIfReleased()
	if v.length == len(v.slots) {
		return ErrCapacity
	}
	v.slots[v.length] = value
	v.length++
	return nil
}

// Pop removes the last element and returns it. The caller takes ownership;
// the element is not dropped.
func (v *Vec[T]) Pop() (T, bool) {
	v.panicIfReleased()
	var zero T
	if v.length == 0 {
		return zero, false
	}
	v.length--
	value := v.slots[v.length]
	v.slots[v.length] = zero
	return value, true
}

// PopIf pops the last element only if pred returns true for it.
func (v *Vec[T]) PopIf(pred func(T) bool) (T, bool) {
	v.panicIfReleased()
	if v.length == 0 || !pred(v.slots[v.length-1]) {
		var zero T
		return zero, false
	}
	return v.Pop()
}

// Clear drops every live element, in order, and empties the vector.
func (v *Vec[T]) Clear() {
	v.panicIfReleased()
	v.truncate(0)
}

// Truncate shortens the vector to n elements, dropping the rest.
// It does nothing if n >= Len(); n < 0 is treated as 0.
func (v *Vec[T]) Truncate(n int) {
	v.panicIfReleased()
	if n < 0 {
		n = 0
	}
	if n < v.length {
		v.truncate(n)
	}
}

// SetLen resizes the vector to n elements. Growing fills the new slots with
// the default value (the zero value unless WithDefault was given);
// shrinking drops the excess. n outside [0, Cap()] returns ErrLength and
// changes nothing.
func (v *Vec[T]) SetLen(n int) error {
	v.panicIfReleased()
	if n < 0 || n > len(v.slots) {
		return ErrLength
	}
	switch {
	case n > v.length:
		if v.newDefault == nil {
			// Tail slots are already zero.
			v.length = n
			return nil
		}
		for v.length < n {
			v.slots[v.length] = v.newDefault()
			v.length++
		}
	case n < v.length:
		v.truncate(n)
	}
	return nil
}

// Get returns the element at index i, or false if i is not in [0, Len()).
func (v *Vec[T]) Get(i int) (T, bool) {
	v.panicIfReleased()
	if i < 0 || i >= v.length {
		var zero T
		return zero, false
	}
	return v.slots[i], true
}

// GetMut returns a pointer to the element at index i, or false if i is not
// in [0, Len()). The pointer is valid until the element is removed.
func (v *Vec[T]) GetMut(i int) (*T, bool) {
	v.panicIfReleased()
	if i < 0 || i >= v.length {
		return nil, false
	}
	return &v.slots[i], true
}

// First returns the first element.
func (v *Vec[T]) First() (T, bool) {
	return v.Get(0)
}

// FirstMut returns a pointer to the first element.
func (v *Vec[T]) FirstMut() (*T, bool) {
	return v.GetMut(0)
}

// Last returns the last element.
func (v *Vec[T]) Last() (T, bool) {
	return v.Get(v.length - 1)
}

// LastMut returns a pointer to the last element.
func (v *Vec[T]) LastMut() (*T, bool) {
	return v.GetMut(v.length - 1)
}

// AsSlice returns the live elements. The slice aliases the vector's storage
// and its capacity is clipped to Len(), so appending to it never writes
// into the vector.
func (v *Vec[T]) AsSlice() []T {
	v.panicIfReleased()
	return v.slots[:v.length:v.length]
}

// AsMutSlice is AsSlice for callers that write through the view. Writes
// are visible in the vector.
func (v *Vec[T]) AsMutSlice() []T {
	return v.AsSlice()
}

// Release drops every live element and makes the vector unusable.
// Afterwards Len, Cap and the metrics report 0 and every other operation
// panics. Calling Release twice is a no-op.
func (v *Vec[T]) Release() {
	if v.released {
		return
	}
	v.truncate(0)
	v.slots = nil
	v.released = true
}

// String formats the live elements like a slice.
func (v *Vec[T]) String() string {
	return fmt.Sprint(v.AsSlice())
}

// truncate retires slots [n, length). If a Drop panics the elements after
// it are leaked, never dropped twice, and the tail is still zeroed.
func (v *Vec[T]) truncate(n int) {
	tail := v.slots[n:v.length]
	v.length = n
	defer clear(tail)
	if v.drops {
		for i := range tail {
			dropSlot(&tail[i])
		}
	}
}

// panicIfReleased panics if the vector has been released.
func (v *Vec[T]) panicIfReleased() {
	if v.released {
		panic("staticvector: use after Release()")
	}
}
