package staticvector

// Option configures a Vec at construction.
type Option[T any] func(*Vec[T])

// WithDefault sets the constructor SetLen uses to fill slots when the
// vector grows. Without it new slots get the zero value of T.
// It panics if fn is nil.
func WithDefault[T any](fn func() T) Option[T] {
	if fn == nil {
		panic("staticvector: nil default constructor")
	}
	return func(v *Vec[T]) {
		v.newDefault = fn
	}
}
