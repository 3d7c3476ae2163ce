package vector

import (
	"fmt"

	"github.com/joshuapare/growvec/internal/buf"
	"github.com/joshuapare/growvec/rawbuf"
)

// Emplace inserts an element built in place by construct at position pos and
// returns pos. It panics unless 0 <= pos <= Len().
//
// construct receives a zero slot. If it fails it must leave no live value
// behind; the slot is zeroed again either way.
//
// On any error the vector is exactly as it was before the call:
//   - with a full buffer, the element and every relocated neighbour are built
//     in a new block that is only swapped in once all of them exist;
//   - with spare room at the end, the element is built straight into place;
//   - with spare room in the middle, elements shift in place when their move
//     cannot fail, otherwise the sequence is rebuilt in a new block of the same
//     capacity.
func (v *Vector[T]) Emplace(pos int, construct func(slot *T) error) (int, error) {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0,%d]", pos, v.size))
	}
	ops := v.lifecycle()

	var err error
	switch {
	case v.size == v.Cap():
		next, ok := buf.GrowCapacity(v.size)
		if !ok {
			return 0, fmt.Errorf("%w: cannot grow past %d slots", rawbuf.ErrAlloc, v.size)
		}
		err = v.emplaceRealloc(pos, next, construct)
	case pos == v.size:
		err = v.emplaceEnd(construct)
	case ops.MoveCannotFail():
		err = v.emplaceShift(pos, construct)
	default:
		err = v.emplaceRealloc(pos, v.Cap(), construct)
	}
	if err != nil {
		v.debug("vector: insert rolled back", "pos", pos, "len", v.size, "err", err)
		return 0, err
	}
	return pos, nil
}

// Insert inserts a copy of value at pos and returns pos. Element types that
// cannot be copied are moved out of value instead.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	ops := v.lifecycle()
	return v.Emplace(pos, func(slot *T) error {
		return ops.FromValue(slot, &value)
	})
}

// EmplaceBack appends an element built in place by construct and returns a
// pointer to it.
func (v *Vector[T]) EmplaceBack(construct func(slot *T) error) (*T, error) {
	if _, err := v.Emplace(v.size, construct); err != nil {
		return nil, err
	}
	return v.data.At(v.size - 1), nil
}

// PushBack appends a copy of value.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.Insert(v.size, value)
	return err
}

// emplaceRealloc builds the new sequence in a fresh block of capacity slots:
// the new element first, then the prefix ahead of it, then the suffix behind
// it. The current block is not touched until commit.
func (v *Vector[T]) emplaceRealloc(pos, capacity int, construct func(slot *T) error) error {
	ops := v.lifecycle()

	fresh, err := v.alloc(capacity)
	if err != nil {
		return err
	}

	old := v.live()
	slots := fresh.Slots(0, v.size+1)

	committed := false
	inserted, prefix := false, false
	defer func() {
		if committed {
			return
		}
		if prefix {
			unrelocate(ops, slots[:pos], old[:pos])
		}
		if inserted {
			ops.Drop(&slots[pos])
		}
		fresh.Release()
	}()

	if err := construct(&slots[pos]); err != nil {
		return fmt.Errorf("vector: construct element: %w", err)
	}
	inserted = true

	if err := uninitializedRelocate(ops, slots[:pos], old[:pos]); err != nil {
		return fmt.Errorf("vector: relocate prefix: %w", err)
	}
	prefix = true

	if err := uninitializedRelocate(ops, slots[pos+1:], old[pos:]); err != nil {
		return fmt.Errorf("vector: relocate suffix: %w", err)
	}

	committed = true
	v.commit(&fresh, v.size+1)
	return nil
}

// emplaceEnd builds the element straight into the first spare slot.
func (v *Vector[T]) emplaceEnd(construct func(slot *T) error) error {
	slot := v.data.At(v.size)

	built := false
	defer func() {
		if !built {
			var zero T
			*slot = zero
		}
	}()

	if err := construct(slot); err != nil {
		return fmt.Errorf("vector: construct element: %w", err)
	}
	built = true

	v.size++
	v.gen++
	return nil
}

// emplaceShift builds the element in a temporary, opens a gap at pos by
// shifting the tail one slot toward the end, back to front, and moves the
// temporary into the gap. Only used when moves cannot fail.
func (v *Vector[T]) emplaceShift(pos int, construct func(slot *T) error) error {
	ops := v.lifecycle()

	var tmp T
	if err := construct(&tmp); err != nil {
		return fmt.Errorf("vector: construct element: %w", err)
	}
	defer ops.Drop(&tmp)

	end := v.data.At(v.size)
	if err := ops.MoveInto(end, v.data.At(v.size-1)); err != nil {
		var zero T
		*end = zero
		return fmt.Errorf("vector: shift element %d: %w", v.size-1, err)
	}

	// From here on a failing move can no longer be undone: the vector stays
	// valid, but not necessarily as it was.
	for i := v.size - 1; i > pos; i-- {
		if err := moveAssign(ops, v.data.At(i), v.data.At(i-1)); err != nil {
			ops.Drop(end)
			v.gen++
			return fmt.Errorf("vector: shift element %d: %w", i-1, err)
		}
	}
	if err := moveAssign(ops, v.data.At(pos), &tmp); err != nil {
		ops.Drop(end)
		v.gen++
		return fmt.Errorf("vector: place element: %w", err)
	}

	v.size++
	v.gen++
	return nil
}
