package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestViews_Order tests forward and reverse traversal.
func TestViews_Order(t *testing.T) {
	v := intVector(t, 1, 2, 3)

	var fwd, idx []int
	for i, x := range v.All() {
		idx = append(idx, i)
		fwd = append(fwd, x)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []int{1, 2, 3}, fwd)

	var vals []int
	for x := range v.Values() {
		vals = append(vals, x)
	}
	assert.Equal(t, []int{1, 2, 3}, vals)

	var rev, ridx []int
	for i, x := range v.Backward() {
		ridx = append(ridx, i)
		rev = append(rev, x)
	}
	assert.Equal(t, []int{2, 1, 0}, ridx)
	assert.Equal(t, []int{3, 2, 1}, rev)
}

// TestViews_Empty tests that views over an empty vector yield nothing.
func TestViews_Empty(t *testing.T) {
	v := New[int](nil)
	for range v.All() {
		t.Fatal("All yielded on an empty vector")
	}
	for range v.Backward() {
		t.Fatal("Backward yielded on an empty vector")
	}
	for range v.BackwardPointers() {
		t.Fatal("BackwardPointers yielded on an empty vector")
	}
}

// TestViews_Mutable tests writing through pointer views.
func TestViews_Mutable(t *testing.T) {
	v := intVector(t, 1, 2, 3)

	for _, p := range v.Pointers() {
		*p *= 10
	}
	assert.Equal(t, []int{10, 20, 30}, ints(v))

	n := 0
	for i, p := range v.BackwardPointers() {
		*p += i
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{10, 21, 32}, ints(v))
}

// TestViews_EarlyBreak tests that stopping a range early is respected.
func TestViews_EarlyBreak(t *testing.T) {
	v := intVector(t, 1, 2, 3, 4)

	var seen []int
	for _, x := range v.All() {
		if x == 3 {
			break
		}
		seen = append(seen, x)
	}
	assert.Equal(t, []int{1, 2}, seen)
}

// TestViews_Restartable tests that a view can be ranged over repeatedly and
// reflects writes made between ranges.
func TestViews_Restartable(t *testing.T) {
	v := intVector(t, 1, 2)
	view := v.Values()

	sum := func() int {
		s := 0
		for x := range view {
			s += x
		}
		return s
	}
	assert.Equal(t, 3, sum())

	*v.At(0) = 5
	assert.Equal(t, 7, sum(), "a view is not a snapshot")
}

// TestViews_Invalidated tests that structural changes invalidate views.
func TestViews_Invalidated(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *Vector[int])
	}{
		{"push", func(v *Vector[int]) { _ = v.PushBack(9) }},
		{"insert", func(v *Vector[int]) { _, _ = v.Insert(0, 9) }},
		{"pop", func(v *Vector[int]) { v.PopBack() }},
		{"erase", func(v *Vector[int]) { _, _ = v.Erase(0) }},
		{"clear", func(v *Vector[int]) { v.Clear() }},
		{"reserve", func(v *Vector[int]) { _ = v.Reserve(64) }},
		{"resize", func(v *Vector[int]) { _ = v.Resize(1) }},
		{"swap", func(v *Vector[int]) { v.Swap(New[int](nil)) }},
		{"move", func(v *Vector[int]) { _ = v.Move() }},
		{"release", func(v *Vector[int]) { v.Release() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := intVector(t, 1, 2, 3)
			fwd, rev, ptrs := v.All(), v.Backward(), v.Pointers()

			tt.mutate(v)

			assert.Panics(t, func() {
				for range fwd {
				}
			})
			assert.Panics(t, func() {
				for range rev {
				}
			})
			assert.Panics(t, func() {
				for range ptrs {
				}
			})

			assert.NotPanics(t, func() {
				for range v.All() {
				}
			}, "a fresh view works after the change")
		})
	}
}

// TestViews_MutationDuringRange tests that changing the vector's shape while
// ranging panics instead of reading stale storage.
func TestViews_MutationDuringRange(t *testing.T) {
	v := intVector(t, 1, 2)
	require.Panics(t, func() {
		for _, x := range v.All() {
			_ = v.PushBack(x)
		}
	})
}
