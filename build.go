package staticvector

import "fmt"

// The helpers below build populated vectors from values known at the call
// site. Impossible inputs are programmer errors, so they panic instead of
// returning an error.

// Make returns an empty vector with the given capacity.
func Make[T any](capacity int, opts ...Option[T]) *Vec[T] {
	return New[T](capacity, opts...)
}

// Of returns a full vector holding values, with capacity len(values).
// It panics if values is empty.
func Of[T any](values ...T) *Vec[T] {
	return OfCap(len(values), values...)
}

// OfCap returns a vector with the given capacity holding values.
// It panics if len(values) > capacity.
func OfCap[T any](capacity int, values ...T) *Vec[T] {
	v := New[T](capacity)
	if err := v.ExtendFromSlice(values...); err != nil {
		panic(fmt.Sprintf("staticvector: %d values exceed capacity %d", len(values), capacity))
	}
	return v
}

// WithLen returns a vector with the given capacity whose first length
// slots hold the default value. It panics if length is not in
// [0, capacity].
func WithLen[T any](capacity, length int, opts ...Option[T]) *Vec[T] {
	v := New[T](capacity, opts...)
	if err := v.SetLen(length); err != nil {
		panic(fmt.Sprintf("staticvector: length %d out of range for capacity %d", length, capacity))
	}
	return v
}
