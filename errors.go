package staticvector

import "github.com/pkg/errors"

// Errors returned by Vec operations. Both leave the vector unchanged.
var (
	// ErrCapacity is returned by Push, ExtendFromSlice and Append when the
	// values do not fit in the remaining free slots.
	ErrCapacity = errors.New("staticvector: capacity exceeded")

	// ErrLength is returned by SetLen when the requested length is negative
	// or greater than the capacity.
	ErrLength = errors.New("staticvector: length exceeds capacity")
)
