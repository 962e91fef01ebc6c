package level

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(x float64, tag string) Object {
	return Object{Position: mgl64.Vec3{x, 0, 0}, Size: mgl64.Vec3{1, 1, 1}, Tag: tag}
}

func TestArenaAddUntilFull(t *testing.T) {
	a := NewArena(3)
	for i := 0; i < 3; i++ {
		idx, err := a.Add(box(float64(i), ""))
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
	assert.Equal(t, 3, a.Len())

	idx, err := a.Add(box(9, ""))
	assert.True(t, errors.Is(err, ErrArenaFull))
	assert.Equal(t, NoObject, idx)
}

func TestArenaDefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewArena(0).Cap())
}

func TestArenaClearKeepsIndices(t *testing.T) {
	a := NewArena(4)
	for i := 0; i < 3; i++ {
		_, err := a.Add(box(float64(i), ""))
		require.NoError(t, err)
	}

	require.NoError(t, a.Clear(1))
	assert.False(t, a.Occupied(1))
	assert.Equal(t, 2, a.Len())

	o, ok := a.Get(2)
	require.True(t, ok)
	assert.Equal(t, 2.0, o.Position.X())

	_, ok = a.Get(1)
	assert.False(t, ok)

	// clearing twice does not double count
	require.NoError(t, a.Clear(1))
	assert.Equal(t, 2, a.Len())

	assert.True(t, errors.Is(a.Clear(7), ErrBadIndex))
	assert.True(t, errors.Is(a.Clear(-1), ErrBadIndex))
}

func TestArenaEachOrderAndStop(t *testing.T) {
	a := NewArena(5)
	for i := 0; i < 5; i++ {
		_, err := a.Add(box(float64(i), ""))
		require.NoError(t, err)
	}
	require.NoError(t, a.Clear(2))

	var seen []int
	a.Each(func(i int, o *Object) bool {
		seen = append(seen, i)
		return i < 3
	})
	assert.Equal(t, []int{0, 1, 3}, seen)
}

func TestArenaClearTag(t *testing.T) {
	cases := []struct {
		name    string
		tags    []string
		clear   string
		cleared []int
		left    int
	}{
		{"walls", []string{"", TagSpawnWall, TagSpawnWall, "", TagSpawnWall, TagSpawnWall}, TagSpawnWall, []int{1, 2, 4, 5}, 2},
		{"no_match", []string{"", "a"}, "b", nil, 2},
		{"empty_tag_matches_untagged", []string{"", "a", ""}, "", []int{0, 2}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewArena(len(c.tags))
			for i, tag := range c.tags {
				_, err := a.Add(box(float64(i), tag))
				require.NoError(t, err)
			}
			assert.Equal(t, c.cleared, a.ClearTag(c.clear))
			assert.Equal(t, c.left, a.Len())
			assert.Empty(t, a.Tagged(c.clear))
		})
	}
}

func TestObjectBounds(t *testing.T) {
	o := Object{Position: mgl64.Vec3{0, -0.5, 0}, Size: mgl64.Vec3{10, 1, 10}}
	assert.Equal(t, 0.0, o.Top())
	assert.Equal(t, mgl64.Vec3{5, 0, 5}, o.Bounds().Max)
}
