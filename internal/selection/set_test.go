package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddRemoveIdempotent(t *testing.T) {
	s := NewSet()

	assert.True(t, s.Add(5))
	assert.False(t, s.Add(5))
	assert.True(t, s.IsSelected(5))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Remove(5))
	assert.False(t, s.Remove(5))
	assert.False(t, s.IsSelected(5))
	assert.Equal(t, 0, s.Len())

	assert.False(t, s.Remove(99), "removing an absent id is not an error")
}

func TestSetReflectsNetEffect(t *testing.T) {
	type op struct {
		add bool
		id  int
	}
	ops := []op{
		{true, 1}, {true, 2}, {true, 3},
		{false, 2}, {true, 2}, {false, 1},
		{false, 1}, {true, 4}, {false, 3},
	}

	s := NewSet()
	want := map[int]bool{}
	for _, o := range ops {
		if o.add {
			s.Add(o.id)
			want[o.id] = true
		} else {
			s.Remove(o.id)
			delete(want, o.id)
		}
	}

	for id := 0; id <= 5; id++ {
		assert.Equal(t, want[id], s.IsSelected(id), "id %d", id)
	}
	assert.Equal(t, []int{2, 4}, s.IDs())
}

func TestSetSelectedIsSnapshot(t *testing.T) {
	s := NewSet()
	s.Add(1)
	s.Add(2)

	snap := s.Selected()
	s.Add(3)
	s.Remove(1)

	assert.Len(t, snap, 2)
	assert.Contains(t, snap, 1)
	assert.NotContains(t, snap, 3)
}

func TestSetCountOfAndClear(t *testing.T) {
	s := NewSet()
	for _, id := range []int{1, 3, 5, 7} {
		s.Add(id)
	}

	assert.Equal(t, 2, s.CountOf([]int{1, 2, 3, 4}))
	assert.Equal(t, 0, s.CountOf(nil))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.IsSelected(1))
}
