// Package vector provides Vector, a growable contiguous sequence that manages
// its own raw storage.
//
// # Overview
//
// A Vector pairs one rawbuf.Buffer with a count of live elements. Slots below
// Len() hold live values; the rest of the block is zero and holds nothing.
// Every operation that constructs, copies, moves or destroys an element goes
// through the vector's elem.Ops, so element types with resources of their own
// (see elem.Initializer, elem.Copier, elem.Mover, elem.Destroyer) are created
// and released exactly once.
//
// # Usage Example
//
//	v := vector.New[string](nil)
//	if err := v.PushBack("a"); err != nil {
//	    return err
//	}
//	if _, err := v.Insert(0, "b"); err != nil {
//	    return err
//	}
//	for i, s := range v.All() {
//	    fmt.Println(i, s)
//	}
//
// # Growth
//
// Appending to a full vector reallocates to twice its length, starting
// from 1, so capacities run 0, 1, 2, 4, 8, ... Reserve and Resize allocate
// exactly what they are asked for.
//
// # Error Safety
//
// Insertion either succeeds or leaves the vector exactly as it was. When
// storage must grow, the new element and all relocated elements are built in
// a new block, and the old block is only torn down once all of them exist.
// Relocation moves elements only when their move cannot fail or when they
// cannot be copied; otherwise it copies, since a failed copy never touches its
// source.
//
// Reserve, ShrinkToFit, Clone and the reallocating path of Assign give the
// same guarantee. Erase and the in-place path of Assign only fail when an
// element hook fails mid-way, and leave the vector valid but changed.
//
// # Preconditions
//
// Out-of-range indexes and positions, and Front/Back/PopBack on an empty
// vector, panic. They are programming errors, not recoverable conditions.
//
// # Views
//
// All, Values, Backward, Pointers and BackwardPointers return range-over-func
// views over the live elements. A view panics once the vector it was created
// from has been reallocated, resized or swapped.
//
// # Thread Safety
//
// Vector instances are not thread-safe. Callers must synchronize access
// externally.
//
// # Related Packages
//
//   - github.com/joshuapare/growvec/rawbuf: raw storage blocks
//   - github.com/joshuapare/growvec/elem: element lifecycle contract
package vector
