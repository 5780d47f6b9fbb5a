package staticvector

import "reflect"

// Dropper is implemented by elements that own a resource which must be
// released when the element is destroyed by the vector.
//
// Drop is called exactly once for every live element that is cleared,
// truncated, or still present at Release. Values moved out with Pop or
// PopIf are not dropped; the caller owns them. Append moves elements that
// have no Cloner, so their Drop runs later, in the destination. Nil
// pointer elements are never dropped.
type Dropper interface {
	Drop()
}

// Cloner is implemented by elements that need a deep copy when the vector
// duplicates them (ExtendFromSlice, Append, Clone). Elements that do not
// implement it are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// needsDrop reports whether elements of type T may implement Dropper.
// Interface element types are answered per element, so they always need
// the slow path.
func needsDrop[T any]() bool {
	var zero T
	if any(zero) == nil {
		return true
	}
	if _, ok := any(zero).(Dropper); ok {
		return true
	}
	_, ok := any(&zero).(Dropper)
	return ok
}

// isNilPointer reports whether x holds a nil pointer. Such slots are
// treated as empty: no hook is run on them.
func isNilPointer(x any) bool {
	rv := reflect.ValueOf(x)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// dropperOf returns the Drop hook of the element at p, if it has one.
func dropperOf[T any](p *T) (Dropper, bool) {
	if d, ok := any(*p).(Dropper); ok {
		if isNilPointer(d) {
			return nil, false
		}
		return d, true
	}
	d, ok := any(p).(Dropper)
	return d, ok
}

// dropSlot runs the element's Drop hook, if it has one.
func dropSlot[T any](p *T) {
	if d, ok := dropperOf(p); ok {
		d.Drop()
	}
}

// duplicate returns a copy of v and whether Clone produced it. When it
// did not, the copy shares any resource v owns.
func duplicate[T any](v T) (T, bool) {
	if c, ok := any(v).(Cloner[T]); ok {
		if isNilPointer(c) {
			return v, false
		}
		return c.Clone(), true
	}
	if c, ok := any(&v).(Cloner[T]); ok {
		return c.Clone(), true
	}
	return v, false
}
