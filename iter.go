package staticvector

import "iter"

// Iterator walks the elements that were live when it was created.
// It is forward-only; once Next reports false it stays exhausted.
//
// The vector must not be modified while the iterator is in use.
type Iterator[T any] struct {
	items []T
	index int
}

// Iter returns a fresh iterator over the live elements.
func (v *Vec[T]) Iter() *Iterator[T] {
	return &Iterator[T]{items: v.AsSlice()}
}

// Next returns the next element, or false when the iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false
	}
	value := it.items[it.index]
	it.index++
	return value, true
}

// Len returns the number of elements not yet yielded.
func (it *Iterator[T]) Len() int {
	return len(it.items) - it.index
}

// MutIterator is Iterator yielding pointers into the vector's slots.
// At most one MutIterator may be in use at a time, and no other reads or
// writes of the vector may happen while it is.
type MutIterator[T any] struct {
	items []T
	index int
}

// IterMut returns a fresh mutable iterator over the live elements.
func (v *Vec[T]) IterMut() *MutIterator[T] {
	return &MutIterator[T]{items: v.AsMutSlice()}
}

// Next returns a pointer to the next element, or false when exhausted.
func (it *MutIterator[T]) Next() (*T, bool) {
	if it.index >= len(it.items) {
		return nil, false
	}
	p := &it.items[it.index]
	it.index++
	return p, true
}

// Len returns the number of elements not yet yielded.
func (it *MutIterator[T]) Len() int {
	return len(it.items) - it.index
}

// All returns a sequence of index/value pairs, oldest first.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.AsSlice() {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values returns a sequence of the live elements in order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.AsSlice() {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward returns a sequence of index/value pairs, last element first.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		items := v.AsSlice()
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(i, items[i]) {
				return
			}
		}
	}
}
