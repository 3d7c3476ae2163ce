package vector

import "fmt"

// Reserve makes room for at least n elements. When n exceeds Cap(), storage
// is reallocated to exactly n slots and every element relocated; on failure v
// is unchanged. Reserve never shrinks storage.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	return v.reallocate(n)
}

// Resize sets Len() to n. Growing reserves room for n elements and
// default-constructs the new tail; shrinking destroys the excess tail.
// If a construction fails, the elements and length are unchanged (the
// capacity may have grown). It panics if n is negative.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	if n == v.size {
		return nil
	}

	ops := v.lifecycle()
	if n > v.size {
		if err := v.Reserve(n); err != nil {
			return err
		}
		if err := uninitializedConstruct(ops, v.data.Slots(v.size, n)); err != nil {
			return fmt.Errorf("vector: resize %d: %w", n, err)
		}
	} else {
		ops.DropAll(v.data.Slots(n, v.size))
	}

	v.size = n
	v.gen++
	return nil
}

// ShrinkToFit reallocates storage to exactly Len() slots. On failure v is
// unchanged.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == v.Cap() {
		return nil
	}
	if v.size == 0 {
		v.data.Release()
		v.gen++
		return nil
	}
	return v.reallocate(v.size)
}

// reallocate relocates every element into a fresh block of capacity slots.
func (v *Vector[T]) reallocate(capacity int) error {
	fresh, err := v.alloc(capacity)
	if err != nil {
		return err
	}
	if err := uninitializedRelocate(v.lifecycle(), fresh.Slots(0, v.size), v.live()); err != nil {
		fresh.Release()
		return fmt.Errorf("vector: reallocate %d: %w", capacity, err)
	}
	v.commit(&fresh, v.size)
	return nil
}
