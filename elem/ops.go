// Package elem describes how a container creates, relocates and destroys
// values it keeps in raw storage.
//
// A raw slot holds the zero value of T and no live object. Ops turns a zero
// slot into a live value (Construct, CopyInto, MoveInto) and back (Drop).
// Element types opt into custom behavior by implementing Initializer,
// Copier, Mover, Destroyer or Uncopyable on their pointer type; everything
// else behaves like a plain Go value.
package elem

import "fmt"

// Initializer is implemented by *T when a default-constructed T needs more
// than its zero value.
type Initializer interface {
	Init() error
}

// Copier is implemented by *T when copying T needs more than assignment.
// The receiver is either a zero slot or a live value being overwritten.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Mover is implemented by *T when moving T needs more than assignment.
// Implementing it marks moves as fallible. On success src must be left
// valid for Destroy.
type Mover[T any] interface {
	MoveFrom(src *T) error
}

// Destroyer is implemented by *T when T owns something that must be released
// at the end of its lifetime. Destroy must accept moved-from values.
type Destroyer interface {
	Destroy()
}

// Uncopyable is a marker for types that have no copy construction.
type Uncopyable interface {
	NoCopy()
}

// Ops is the lifecycle contract for T. Nil hooks fall back to plain value
// semantics: zero initialization, assignment copy, infallible move that
// zeroes the source, and no destructor.
type Ops[T any] struct {
	// Init constructs a default value in a zero slot.
	Init func(slot *T) error

	// Copy copy-constructs (dst is zero) or copy-assigns (dst is live).
	Copy func(dst, src *T) error

	// Move move-constructs or move-assigns, leaving src valid but unspecified.
	Move func(dst, src *T) error

	// Destroy ends the lifetime of the value in slot.
	Destroy func(slot *T)

	// MoveNoFail reports that Move never returns an error. A nil Move
	// cannot fail regardless of this flag.
	MoveNoFail bool

	// NoCopy reports that T cannot be copied at all.
	NoCopy bool
}

// Plain returns the Ops of a plain Go value.
func Plain[T any]() *Ops[T] {
	return &Ops[T]{MoveNoFail: true}
}

// For derives Ops for T from the interfaces implemented by *T.
func For[T any]() *Ops[T] {
	var probe T
	p := any(&probe)

	ops := &Ops[T]{MoveNoFail: true}

	if _, ok := p.(Initializer); ok {
		ops.Init = func(slot *T) error {
			return any(slot).(Initializer).Init()
		}
	}
	if _, ok := p.(Uncopyable); ok {
		ops.NoCopy = true
	} else if _, ok := p.(Copier[T]); ok {
		ops.Copy = func(dst, src *T) error {
			return any(dst).(Copier[T]).CopyFrom(src)
		}
	}
	if _, ok := p.(Mover[T]); ok {
		ops.MoveNoFail = false
		ops.Move = func(dst, src *T) error {
			return any(dst).(Mover[T]).MoveFrom(src)
		}
	}
	if _, ok := p.(Destroyer); ok {
		ops.Destroy = func(slot *T) {
			any(slot).(Destroyer).Destroy()
		}
	}

	return ops
}

// Validate rejects hook sets that contradict themselves.
func (o *Ops[T]) Validate() error {
	if o.NoCopy && o.Copy != nil {
		return fmt.Errorf("%w: copy hook set on an uncopyable type", ErrInvalidOps)
	}
	return nil
}

// Copyable reports whether values of T can be copied.
func (o *Ops[T]) Copyable() bool {
	return !o.NoCopy
}

// MoveCannotFail reports whether moving T is guaranteed to succeed.
func (o *Ops[T]) MoveCannotFail() bool {
	return o.Move == nil || o.MoveNoFail
}

// RelocatesByMove reports whether relocation into new storage moves values:
// only when the move cannot fail or the type cannot be copied.
func (o *Ops[T]) RelocatesByMove() bool {
	return o.MoveCannotFail() || o.NoCopy
}

// Construct default-constructs a value into the zero slot.
// On failure the slot is zero again.
func (o *Ops[T]) Construct(slot *T) error {
	if o.Init == nil {
		return nil
	}
	if err := o.Init(slot); err != nil {
		clear1(slot)
		return err
	}
	return nil
}

// CopyInto copies src into dst. A zero dst is zero again on failure.
func (o *Ops[T]) CopyInto(dst, src *T) error {
	if o.NoCopy {
		return ErrNotCopyable
	}
	if o.Copy == nil {
		*dst = *src
		return nil
	}
	return o.Copy(dst, src)
}

// MoveInto moves src into dst.
func (o *Ops[T]) MoveInto(dst, src *T) error {
	if o.Move == nil {
		*dst = *src
		clear1(src)
		return nil
	}
	return o.Move(dst, src)
}

// Relocate transfers src into the zero slot dst following the relocation
// policy. The source is not destroyed.
func (o *Ops[T]) Relocate(dst, src *T) error {
	if o.RelocatesByMove() {
		return o.MoveInto(dst, src)
	}
	return o.CopyInto(dst, src)
}

// FromValue constructs value into the zero slot: a copy when T is copyable,
// a move out of value otherwise.
func (o *Ops[T]) FromValue(slot *T, value *T) error {
	var err error
	if o.NoCopy {
		err = o.MoveInto(slot, value)
	} else {
		err = o.CopyInto(slot, value)
	}
	if err != nil {
		clear1(slot)
	}
	return err
}

// Drop destroys the live value in slot and leaves it zero.
func (o *Ops[T]) Drop(slot *T) {
	if o.Destroy != nil {
		o.Destroy(slot)
	}
	clear1(slot)
}

// DropAll destroys every live value in slots.
func (o *Ops[T]) DropAll(slots []T) {
	if o.Destroy == nil {
		clear(slots)
		return
	}
	for i := range slots {
		o.Drop(&slots[i])
	}
}

func clear1[T any](p *T) {
	var zero T
	*p = zero
}
