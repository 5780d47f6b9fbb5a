package staticvector

// ExtendFromSlice appends a copy of every value, in order. If they do not
// all fit it returns ErrCapacity and appends none of them.
func (v *Vec[T]) ExtendFromSlice(values ...T) error {
	v.panicIfReleased()
	if len(values) > len(v.slots)-v.length {
		return ErrCapacity
	}
	for _, value := range values {
		v.slots[v.length], _ = duplicate(value)
		v.length++
	}
	return nil
}

// Append transfers every element of other onto v and leaves other empty.
// Elements with a Cloner are cloned and their originals in other dropped;
// all others are moved, so each resource is still dropped once, by v. If v
// lacks room for all of them it returns ErrCapacity and neither vector
// changes.
//
// It panics if other is v.
func (v *Vec[T]) Append(other *Vec[T]) error {
	v.panicIfReleased()
	other.panicIfReleased()
	if v == other {
		panic("staticvector: append to self")
	}
	if other.length > len(v.slots)-v.length {
		return ErrCapacity
	}
	src := other.slots[:other.length]
	other.length = 0
	defer clear(src)
	for i := range src {
		value, cloned := duplicate(src[i])
		v.slots[v.length] = value
		v.length++
		if cloned && other.drops {
			dropSlot(&src[i])
		}
	}
	return nil
}

// Clone returns a vector with the same capacity, options and length whose
// elements are independent copies of v's.
//
// It panics if an element has a Drop hook but no Cloner, since the two
// vectors would then both own, and both drop, the same resource.
func (v *Vec[T]) Clone() *Vec[T] {
	v.panicIfReleased()
	if v.drops {
		for i := range v.slots[:v.length] {
			if _, ok := dropperOf(&v.slots[i]); ok && !canClone(v.slots[i]) {
				panic("staticvector: Clone of Dropper element without Cloner")
			}
		}
	}
	c := &Vec[T]{
		slots:      make([]T, len(v.slots)),
		newDefault: v.newDefault,
		drops:      v.drops,
	}
	for _, value := range v.slots[:v.length] {
		c.slots[c.length], _ = duplicate(value)
		c.length++
	}
	return c
}

func canClone[T any](v T) bool {
	if _, ok := any(v).(Cloner[T]); ok {
		return true
	}
	_, ok := any(&v).(Cloner[T])
	return ok
}
