package vector

import "iter"

// Views returned by the methods below are lazy and restartable: each range
// walks the live elements as they are at that moment. A view is tied to the
// storage it was created over; once v is reallocated, resized, cleared,
// moved or swapped, ranging over the view panics. The same happens when such
// a change is made while a range is in progress. Assigning through the
// pointers of a mutable view is allowed.

// All returns a view of (index, element) pairs from front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	gen := v.gen
	return func(yield func(int, T) bool) {
		for i := 0; ; i++ {
			v.checkView(gen)
			if i >= v.size || !yield(i, *v.data.At(i)) {
				return
			}
		}
	}
}

// Values returns a view of the elements from front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	gen := v.gen
	return func(yield func(T) bool) {
		for i := 0; ; i++ {
			v.checkView(gen)
			if i >= v.size || !yield(*v.data.At(i)) {
				return
			}
		}
	}
}

// Backward returns a view of (index, element) pairs from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	gen := v.gen
	return func(yield func(int, T) bool) {
		v.checkView(gen)
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.data.At(i)) {
				return
			}
			v.checkView(gen)
		}
	}
}

// Pointers returns a mutable view of (index, *element) pairs from front to
// back.
func (v *Vector[T]) Pointers() iter.Seq2[int, *T] {
	gen := v.gen
	return func(yield func(int, *T) bool) {
		for i := 0; ; i++ {
			v.checkView(gen)
			if i >= v.size || !yield(i, v.data.At(i)) {
				return
			}
		}
	}
}

// BackwardPointers returns a mutable view of (index, *element) pairs from
// back to front.
func (v *Vector[T]) BackwardPointers() iter.Seq2[int, *T] {
	gen := v.gen
	return func(yield func(int, *T) bool) {
		v.checkView(gen)
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data.At(i)) {
				return
			}
			v.checkView(gen)
		}
	}
}

func (v *Vector[T]) checkView(gen uint64) {
	if v.gen != gen {
		panic("vector: view invalidated by a change to the vector's storage")
	}
}
