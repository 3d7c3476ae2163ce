package rawbuf

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/joshuapare/growvec/internal/buf"
)

// DefaultMaxBytes bounds the size of a single block: 1 TiB on 64-bit hosts,
// 1 GiB on 32-bit ones. Requests above it fail with ErrAlloc. It is a sanity
// bound, not a memory budget: a request below it that the host cannot back
// is a fatal runtime error. Callers that size blocks from untrusted input
// should pass a realistic limit to NewLimited.
const DefaultMaxBytes = 1 << (30 + 10*(math.MaxInt>>62))

// Buffer owns a block of exactly Cap() slots. It never treats any slot as
// live: constructing and destroying values is the owner's job.
//
// A Buffer must not be copied; transfer ownership with Take or Assign.
type Buffer[T any] struct {
	slots  []T
	noCopy noCopy //nolint:unused // Exists only to mark values uncopyable for `go vet`.
}

// New allocates a block of capacity zero slots, limited by DefaultMaxBytes.
func New[T any](capacity int) (Buffer[T], error) {
	return NewLimited[T](capacity, DefaultMaxBytes)
}

// NewLimited allocates a block of capacity zero slots, failing with ErrAlloc
// when the block would exceed maxBytes. A maxBytes <= 0 means DefaultMaxBytes.
// Capacity 0 yields an empty buffer without allocating.
func NewLimited[T any](capacity, maxBytes int) (b Buffer[T], err error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	var zero T
	if _, sizeErr := buf.BlockBytes(capacity, int(unsafe.Sizeof(zero)), maxBytes); sizeErr != nil {
		return Buffer[T]{}, fmt.Errorf("%w: %d slots: %w", ErrAlloc, capacity, sizeErr)
	}
	if capacity == 0 {
		return Buffer[T]{}, nil
	}

	// make panics, recoverably, only for lengths past the runtime's maximum
	// allocation size. Running out of memory below that size is fatal.
	defer func() {
		if r := recover(); r != nil {
			b = Buffer[T]{}
			err = fmt.Errorf("%w: %d slots: %v", ErrAlloc, capacity, r)
		}
	}()

	return Buffer[T]{slots: make([]T, capacity)}, nil
}

// Cap returns the number of slots in the block.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// At returns the slot at index i. It panics unless 0 <= i < Cap().
func (b *Buffer[T]) At(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic(fmt.Sprintf("rawbuf: slot %d out of range [0,%d)", i, len(b.slots)))
	}
	return &b.slots[i]
}

// Slots returns the window [from, to) of the block. One past the end is
// addressable as Slots(Cap(), Cap()). It panics on any other window outside
// the block.
func (b *Buffer[T]) Slots(from, to int) []T {
	if !buf.InRange(len(b.slots), from, to) {
		panic(fmt.Sprintf("rawbuf: window [%d,%d) out of range [0,%d]", from, to, len(b.slots)))
	}
	return b.slots[from:to:to]
}

// Swap exchanges the blocks of b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Take moves the block out of b into the returned Buffer. b is left empty.
func (b *Buffer[T]) Take() Buffer[T] {
	slots := b.slots
	b.slots = nil
	return Buffer[T]{slots: slots}
}

// Assign releases b's block and takes ownership of other's. other is left
// empty. Assigning a buffer to itself does nothing.
func (b *Buffer[T]) Assign(other *Buffer[T]) {
	if b == other {
		return
	}
	b.slots, other.slots = other.slots, nil
}

// Release drops the block without touching its contents. Calling it on an
// empty buffer is a no-op.
func (b *Buffer[T]) Release() {
	b.slots = nil
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
