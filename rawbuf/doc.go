// Package rawbuf provides Buffer, an exclusively owned block of raw slots.
//
// # Overview
//
// A Buffer holds storage for exactly Cap() values of T and has no notion of
// element lifetime. Slots start out as the zero value of T and the buffer
// never constructs, copies or destroys anything in them. The owner (see the
// vector package) decides which slots are live and is responsible for
// destroying them before the block is released or swapped away.
//
// # Ownership
//
// A Buffer is not copyable. Ownership moves with Take and Assign, which leave
// the source empty, or is exchanged in constant time with Swap:
//
//	fresh, err := rawbuf.New[T](2 * old.Cap())
//	if err != nil {
//	    return err
//	}
//	// construct values into fresh.Slots(0, n)...
//	old.Swap(&fresh)
//	fresh.Release()
//
// # Allocation Failure
//
// New reports ErrAlloc for negative capacities, for capacity*sizeof(T)
// overflow, for blocks above the byte limit and for allocation panics raised
// by the runtime. Capacity 0 never allocates.
//
// # Preconditions
//
// At and Slots panic on out-of-range indexes; those are programming errors,
// not recoverable conditions.
//
// # Thread Safety
//
// Buffer instances are not thread-safe. Callers must synchronize access
// externally.
package rawbuf
