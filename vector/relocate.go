package vector

import (
	"fmt"

	"github.com/joshuapare/growvec/elem"
)

// Helpers in this file build values into zero slots. Each either fills all
// of dst or, on error or panic, destroys what it built and leaves dst zero.

// trivial reports whether values of T can be relocated with a memory copy
// and abandoned without running any hook.
func trivial[T any](ops *elem.Ops[T]) bool {
	return ops.Move == nil && ops.Destroy == nil
}

func uninitializedConstruct[T any](ops *elem.Ops[T], dst []T) (err error) {
	if ops.Init == nil {
		return nil
	}
	built := 0
	defer func() {
		if built < len(dst) {
			ops.DropAll(dst[:built])
			clear(dst[built:])
		}
	}()
	for ; built < len(dst); built++ {
		if err = ops.Construct(&dst[built]); err != nil {
			return fmt.Errorf("construct slot %d: %w", built, err)
		}
	}
	return nil
}

func uninitializedCopy[T any](ops *elem.Ops[T], dst, src []T) (err error) {
	if ops.Copy == nil && ops.Copyable() {
		copy(dst, src)
		return nil
	}
	built := 0
	defer func() {
		if built < len(dst) {
			ops.DropAll(dst[:built])
			clear(dst[built:])
		}
	}()
	for ; built < len(dst); built++ {
		if err = ops.CopyInto(&dst[built], &src[built]); err != nil {
			return fmt.Errorf("copy slot %d: %w", built, err)
		}
	}
	return nil
}

// uninitializedRelocate transfers src into dst under the relocation policy.
// Sources are left for the caller to destroy once the relocation commits.
// On failure, values already moved are moved back where possible.
func uninitializedRelocate[T any](ops *elem.Ops[T], dst, src []T) (err error) {
	if trivial(ops) {
		copy(dst, src)
		return nil
	}
	built := 0
	defer func() {
		if built < len(dst) {
			clear(dst[built:])
			unrelocate(ops, dst[:built], src[:built])
		}
	}()
	for ; built < len(dst); built++ {
		if err = ops.Relocate(&dst[built], &src[built]); err != nil {
			return fmt.Errorf("relocate slot %d: %w", built, err)
		}
	}
	return nil
}

// unrelocate undoes a completed uninitializedRelocate of src into dst,
// leaving dst zero. Copies are destroyed; moved values go back to src.
func unrelocate[T any](ops *elem.Ops[T], dst, src []T) {
	if trivial(ops) || !ops.RelocatesByMove() {
		ops.DropAll(dst)
		return
	}
	for i := range dst {
		if err := ops.MoveInto(&src[i], &dst[i]); err != nil {
			// src[i] keeps its moved-from value; the element is lost.
			ops.Drop(&dst[i])
			continue
		}
		ops.Drop(&dst[i])
	}
}

// copyAssign copies src over the live value in dst.
func copyAssign[T any](ops *elem.Ops[T], dst, src *T) error {
	if ops.Copy == nil && ops.Destroy != nil {
		// Plain assignment would overwrite dst without ending its lifetime.
		ops.Drop(dst)
	}
	return ops.CopyInto(dst, src)
}

// moveAssign moves src over the live value in dst.
func moveAssign[T any](ops *elem.Ops[T], dst, src *T) error {
	if ops.Move == nil && ops.Destroy != nil {
		ops.Drop(dst)
	}
	return ops.MoveInto(dst, src)
}
