package vector

import "fmt"

// PopBack destroys the last element. It panics if v is empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.lifecycle().Drop(v.data.At(v.size - 1))
	v.size--
	v.gen++
}

// Erase removes the element at pos, shifting the tail one slot toward the
// front, and returns pos, now the position of the element that followed the
// removed one. It panics unless 0 <= pos < Len().
//
// An error is only possible when the element's move can fail; the vector then
// keeps its length and stays valid, but its contents are unspecified.
func (v *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("vector: erase position %d out of range [0,%d)", pos, v.size))
	}
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [from, to) and returns from. It panics
// unless 0 <= from <= to <= Len().
func (v *Vector[T]) EraseRange(from, to int) (int, error) {
	if from < 0 || from > to || to > v.size {
		panic(fmt.Sprintf("vector: erase range [%d,%d) out of range [0,%d)", from, to, v.size))
	}
	if from == to {
		return from, nil
	}
	ops := v.lifecycle()
	v.gen++

	if trivial(ops) {
		n := copy(v.data.Slots(from, v.size), v.data.Slots(to, v.size))
		clear(v.data.Slots(from+n, v.size))
		v.size = from + n
		return from, nil
	}

	for i := to; i < v.size; i++ {
		if err := moveAssign(ops, v.data.At(i-(to-from)), v.data.At(i)); err != nil {
			return 0, fmt.Errorf("vector: shift element %d: %w", i, err)
		}
	}
	newSize := v.size - (to - from)
	ops.DropAll(v.data.Slots(newSize, v.size))
	v.size = newSize
	return from, nil
}

// Clear destroys every element. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	v.lifecycle().DropAll(v.live())
	v.size = 0
	v.gen++
}
