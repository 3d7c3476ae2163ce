package vector

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/growvec/elem"
	"github.com/joshuapare/growvec/rawbuf"
)

// Vector is a growable contiguous sequence of T.
//
// Slots [0, Len()) of the underlying buffer hold live elements; slots
// [Len(), Cap()) are zero and hold nothing. The zero Vector is empty and
// ready to use with the lifecycle derived by elem.For[T].
//
// A Vector must not be copied by value; use Clone, Assign, Move or MoveFrom.
type Vector[T any] struct {
	data rawbuf.Buffer[T]
	size int

	ops      *elem.Ops[T]
	log      *slog.Logger
	maxBytes int

	// gen changes whenever storage is reallocated, swapped or resized, which
	// invalidates outstanding views.
	gen uint64
}

// New returns an empty vector. No storage is allocated.
// It panics if opts carries contradictory lifecycle hooks.
func New[T any](opts *Options[T]) *Vector[T] {
	v := &Vector[T]{}
	v.configure(opts)
	return v
}

// NewSized returns a vector of n default-constructed elements in a block of
// exactly n slots. If any construction fails the elements built so far are
// destroyed and the error is returned; no partial vector escapes.
func NewSized[T any](n int, opts *Options[T]) (*Vector[T], error) {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}

	v := New(opts)
	fresh, err := v.alloc(n)
	if err != nil {
		return nil, err
	}
	if err := uninitializedConstruct(v.ops, fresh.Slots(0, n)); err != nil {
		fresh.Release()
		return nil, fmt.Errorf("vector: new sized %d: %w", n, err)
	}

	v.data.Swap(&fresh)
	v.size = n
	return v, nil
}

func (v *Vector[T]) configure(opts *Options[T]) {
	if opts == nil {
		opts = DefaultOptions[T]()
	}
	ops := opts.Ops
	if ops == nil {
		ops = elem.For[T]()
	}
	if err := ops.Validate(); err != nil {
		panic(err)
	}
	v.ops = ops
	v.log = opts.Logger
	v.maxBytes = opts.MaxBytes
}

// lifecycle returns the element ops, deriving them for a zero Vector.
func (v *Vector[T]) lifecycle() *elem.Ops[T] {
	if v.ops == nil {
		v.ops = elem.For[T]()
	}
	return v.ops
}

// Clone returns an independent deep copy holding exactly Len() slots.
// On failure every copy made so far is destroyed; v never changes.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	ops := v.lifecycle()
	if !ops.Copyable() {
		return nil, ErrNotCopyable
	}

	out := &Vector[T]{ops: ops, log: v.log, maxBytes: v.maxBytes}
	fresh, err := out.alloc(v.size)
	if err != nil {
		return nil, err
	}
	if err := uninitializedCopy(ops, fresh.Slots(0, v.size), v.live()); err != nil {
		fresh.Release()
		return nil, fmt.Errorf("vector: clone: %w", err)
	}

	out.data.Swap(&fresh)
	out.size = v.size
	return out, nil
}

// Assign replaces the contents of v with copies of other's elements made by
// other's lifecycle, which v adopts.
//
// When v lacks capacity, a full copy is built in new storage and swapped in,
// so a failure leaves v unchanged. Otherwise the overlapping prefix is
// copy-assigned in place and the tail is constructed or destroyed without
// reallocating; a failure on that path leaves v valid but partially assigned.
// If the two lifecycles differ, v's elements are destroyed first and the copy
// starts from an empty vector.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}
	ops := other.lifecycle()
	if !ops.Copyable() {
		return ErrNotCopyable
	}

	if v.Cap() < other.size {
		fresh, err := v.alloc(other.size)
		if err != nil {
			return err
		}
		if err := uninitializedCopy(ops, fresh.Slots(0, other.size), other.live()); err != nil {
			fresh.Release()
			return fmt.Errorf("vector: assign: %w", err)
		}
		v.commit(&fresh, other.size)
		v.ops = ops
		return nil
	}

	if own := v.lifecycle(); own != ops {
		own.DropAll(v.live())
		v.size = 0
		v.ops = ops
	}
	v.gen++
	src := other.live()
	overlap := min(v.size, other.size)
	dst := v.data.Slots(0, overlap)
	for i := range dst {
		if err := copyAssign(ops, &dst[i], &src[i]); err != nil {
			return fmt.Errorf("vector: assign element %d: %w", i, err)
		}
	}

	if v.size < other.size {
		if err := uninitializedCopy(ops, v.data.Slots(v.size, other.size), src[v.size:]); err != nil {
			return fmt.Errorf("vector: assign: %w", err)
		}
	} else {
		ops.DropAll(v.data.Slots(other.size, v.size))
	}
	v.size = other.size
	return nil
}

// Move returns a new vector that owns v's storage and elements. v is left
// empty, with capacity 0, and remains usable.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{ops: v.lifecycle(), log: v.log, maxBytes: v.maxBytes}
	out.data.Assign(&v.data)
	out.size, v.size = v.size, 0
	v.gen++
	return out
}

// MoveFrom destroys v's elements, releases its storage and takes ownership of
// other's storage, elements and lifecycle. other is left empty and usable.
// Moving a vector into itself does nothing.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.lifecycle().DropAll(v.live())
	v.data.Assign(&other.data)
	v.size, other.size = other.size, 0
	v.ops = other.lifecycle()
	v.gen++
	other.gen++
}

// Release destroys all elements and releases the storage. The vector stays
// usable, empty with capacity 0.
func (v *Vector[T]) Release() {
	v.lifecycle().DropAll(v.live())
	v.data.Release()
	v.size = 0
	v.gen++
}

// Swap exchanges the storage, elements and lifecycles of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.lifecycle()
	other.lifecycle()
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.ops, other.ops = other.ops, v.ops
	v.gen++
	other.gen++
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots in the current storage block.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns a pointer to element i. It panics unless 0 <= i < Len().
// The pointer is valid until the next reallocation.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range [0,%d)", i, v.size))
	}
	return v.data.At(i)
}

// Get returns a copy of element i. It panics unless 0 <= i < Len().
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Front returns a pointer to the first element. It panics if v is empty.
func (v *Vector[T]) Front() *T {
	if v.size == 0 {
		panic("vector: Front on empty vector")
	}
	return v.data.At(0)
}

// Back returns a pointer to the last element. It panics if v is empty.
func (v *Vector[T]) Back() *T {
	if v.size == 0 {
		panic("vector: Back on empty vector")
	}
	return v.data.At(v.size - 1)
}

// Slice returns the live elements. The slice aliases v's storage and is only
// meaningful until the next operation that changes Len() or Cap().
func (v *Vector[T]) Slice() []T {
	return v.live()
}

func (v *Vector[T]) live() []T {
	return v.data.Slots(0, v.size)
}

// alloc returns a block of n zero slots within the configured byte limit.
func (v *Vector[T]) alloc(n int) (rawbuf.Buffer[T], error) {
	fresh, err := rawbuf.NewLimited[T](n, v.maxBytes)
	if err != nil {
		v.debug("vector: allocation failed", "slots", n, "err", err)
		return rawbuf.Buffer[T]{}, err
	}
	return fresh.Take(), nil
}

// commit is the single irreversible step of every reallocation: it destroys
// the old elements, installs fresh as the storage and releases the old block.
func (v *Vector[T]) commit(fresh *rawbuf.Buffer[T], size int) {
	from := v.Cap()
	ops := v.lifecycle()
	if ops.Destroy != nil {
		ops.DropAll(v.live())
	}
	v.data.Swap(fresh)
	fresh.Release()
	v.size = size
	v.gen++
	v.debug("vector: reallocated", "from", from, "to", v.Cap(), "len", size)
}

func (v *Vector[T]) debug(msg string, args ...any) {
	if v.log != nil {
		v.log.Debug(msg, args...)
	}
}
