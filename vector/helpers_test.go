package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/growvec/elem"
)

var errInjected = errors.New("injected failure")

// tracked is an element whose lifetime is accounted for by a registry.
// A zero tracked is an empty slot or a moved-from value.
type tracked struct {
	val  int
	live bool
}

// registry counts live tracked values and can fail the k-th fallible call.
type registry struct {
	live   int
	calls  int
	failAt int // 1-based call to fail; 0 never fails
}

func (r *registry) step() error {
	r.calls++
	if r.failAt > 0 && r.calls == r.failAt {
		return errInjected
	}
	return nil
}

// arm makes the k-th fallible call from now on fail.
func (r *registry) arm(k int) {
	r.calls = 0
	r.failAt = k
}

func (r *registry) disarm() {
	r.failAt = 0
}

// lifecycle returns Ops for tracked. Init and Copy are always fallible; Move
// is fallible only when fallibleMove is set.
func (r *registry) lifecycle(fallibleMove bool) *elem.Ops[tracked] {
	return &elem.Ops[tracked]{
		Init: func(slot *tracked) error {
			if err := r.step(); err != nil {
				return err
			}
			*slot = tracked{val: -1, live: true}
			r.live++
			return nil
		},
		Copy: func(dst, src *tracked) error {
			if !src.live {
				panic("copy from a value that is not live")
			}
			if err := r.step(); err != nil {
				return err
			}
			if !dst.live {
				r.live++
			}
			*dst = tracked{val: src.val, live: true}
			return nil
		},
		Move: func(dst, src *tracked) error {
			if fallibleMove {
				if err := r.step(); err != nil {
					return err
				}
			}
			if dst.live {
				r.live--
			}
			*dst = *src
			*src = tracked{}
			return nil
		},
		Destroy: func(slot *tracked) {
			if slot.live {
				r.live--
			}
		},
		MoveNoFail: !fallibleMove,
	}
}

// newTracked returns a vector of tracked values holding vals, with capacity
// exactly capacity.
func newTracked(t *testing.T, r *registry, fallibleMove bool, capacity int, vals ...int) *Vector[tracked] {
	t.Helper()
	v := New(&Options[tracked]{Ops: r.lifecycle(fallibleMove)})
	require.NoError(t, v.Reserve(capacity))
	for _, x := range vals {
		require.NoError(t, v.PushBack(tracked{val: x, live: true}))
	}
	require.Equal(t, capacity, v.Cap())
	return v
}

// trackedVals returns the values held by v, failing if any slot is not live.
func trackedVals(t *testing.T, v *Vector[tracked]) []int {
	t.Helper()
	out := make([]int, 0, v.Len())
	for i, x := range v.All() {
		require.True(t, x.live, "slot %d should hold a live value", i)
		out = append(out, x.val)
	}
	return out
}

// requireSpareZero checks that every slot past Len() is an empty slot.
func requireSpareZero[T comparable](t *testing.T, v *Vector[T]) {
	t.Helper()
	var zero T
	for i, x := range v.data.Slots(v.Len(), v.Cap()) {
		require.Equal(t, zero, x, "spare slot %d should be zero", v.Len()+i)
	}
}

func ints(v *Vector[int]) []int {
	return append([]int(nil), v.Slice()...)
}

func intVector(t *testing.T, vals ...int) *Vector[int] {
	t.Helper()
	v := New[int](nil)
	for _, x := range vals {
		require.NoError(t, v.PushBack(x))
	}
	return v
}
