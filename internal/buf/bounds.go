// Package buf contains overflow-safe size arithmetic for raw slot blocks.
package buf

import (
	"fmt"
	"math"
)

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for count * elementSize calculations when sizing blocks.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// BlockBytes returns the number of bytes needed to hold count slots of elemSize
// bytes each, or an error describing the specific failure (negative input,
// overflow, or exceeding limit). A limit <= 0 means no limit.
//
//	n, err := buf.BlockBytes(capacity, int(unsafe.Sizeof(zero)), maxBytes)
//	if err != nil {
//	    return fmt.Errorf("rawbuf: %w", err)
//	}
func BlockBytes(count, elemSize, limit int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elemSize)
	}

	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}

	if limit > 0 && total > limit {
		return 0, fmt.Errorf("limit: %d bytes > %d", total, limit)
	}

	return total, nil
}

// GrowCapacity returns the capacity that follows size when a full block must
// grow: 1 for an empty block, otherwise twice size. ok is false on overflow.
func GrowCapacity(size int) (int, bool) {
	if size <= 0 {
		return 1, true
	}
	return MulOverflowSafe(size, 2)
}

// InRange reports whether [from, to) is a valid window of a block of n slots.
func InRange(n, from, to int) bool {
	return from >= 0 && from <= to && to <= n
}
