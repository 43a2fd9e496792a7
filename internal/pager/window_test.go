package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWindow_MiddleOfFive(t *testing.T) {
	w := ComputeWindow(2, 5)
	require.NotNil(t, w)

	lowest, ok := w.Lowest()
	require.True(t, ok)
	assert.Equal(t, 0, lowest)
	lower, ok := w.Lower()
	require.True(t, ok)
	assert.Equal(t, 1, lower)
	higher, ok := w.Higher()
	require.True(t, ok)
	assert.Equal(t, 3, higher)
	highest, ok := w.Highest()
	require.True(t, ok)
	assert.Equal(t, 4, highest)

	assert.Equal(t, []int{1, 3}, w.Nearest())
	assert.Equal(t, []int{0, 1, 3, 4}, w.Neighbors())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, w.All())
}

func TestComputeWindow_Edges(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		upperBound int
		all        []int
		nearest    []int
	}{
		{"single page", 0, 1, []int{0}, []int{}},
		{"first of many", 0, 10, []int{0, 1, 2}, []int{1}},
		{"second of many", 1, 10, []int{0, 1, 2, 3}, []int{0, 2}},
		{"last of many", 9, 10, []int{7, 8, 9}, []int{8}},
		{"second to last", 8, 10, []int{6, 7, 8, 9}, []int{7, 9}},
		{"two pages, first", 0, 2, []int{0, 1}, []int{1}},
		{"two pages, second", 1, 2, []int{0, 1}, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ComputeWindow(tt.active, tt.upperBound)
			require.NotNil(t, w)
			assert.Equal(t, tt.active, w.Active())
			assert.Equal(t, tt.all, w.All())
			assert.Equal(t, tt.nearest, w.Nearest())
		})
	}
}

func TestComputeWindow_SinglePageHasNoNeighbors(t *testing.T) {
	w := ComputeWindow(0, 1)
	for _, get := range []func() (int, bool){w.Lowest, w.Lower, w.Higher, w.Highest} {
		_, ok := get()
		assert.False(t, ok)
	}
	assert.Empty(t, w.Neighbors())
}

func TestComputeWindow_ZeroPages(t *testing.T) {
	w := ComputeWindow(0, 0)
	assert.Nil(t, w)
	assert.Equal(t, -1, w.Active())
	assert.Equal(t, 0, w.UpperBound())
	assert.Empty(t, w.All())
	assert.False(t, w.Contains(0))
	assert.Nil(t, w.Update(0))
	assert.Equal(t, "window(none)", w.String())
}

func TestComputeWindow_OutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { ComputeWindow(5, 5) })
	assert.Panics(t, func() { ComputeWindow(-1, 5) })
}

func TestComputeWindow_OrderingAndBounds(t *testing.T) {
	for upper := 0; upper <= 12; upper++ {
		for active := 0; active < max(upper, 1); active++ {
			w := ComputeWindow(active, upper)
			if upper == 0 {
				assert.Nil(t, w)
				continue
			}

			all := w.All()
			assert.LessOrEqual(t, len(all), 5)
			assert.LessOrEqual(t, len(w.Neighbors()), 4)
			assert.LessOrEqual(t, len(w.Nearest()), 2)

			for i, idx := range all {
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, upper)
				if i > 0 {
					assert.Less(t, all[i-1], idx, "indices must be strictly increasing in %s", w)
				}
			}
			assert.Subset(t, all, w.Neighbors())
			assert.Subset(t, all, w.Nearest())
			assert.Subset(t, w.Neighbors(), w.Nearest())
			assert.NotContains(t, w.Neighbors(), active)
		}
	}
}

func TestWindow_UpdateIsIdempotent(t *testing.T) {
	w := ComputeWindow(3, 7)

	same := w.Update(w.Active())
	assert.Equal(t, 3, same.Active())
	assert.True(t, *w == *same)
	assert.True(t, *ComputeWindow(3, 7) == *ComputeWindow(3, 7))

	moved := w.Update(4)
	assert.Equal(t, 4, moved.Active())
	assert.Equal(t, 7, moved.UpperBound())
	assert.Equal(t, 3, w.Active(), "update must not mutate the original window")
}

func TestWindow_String(t *testing.T) {
	assert.Equal(t, "window(active=0 of 2 higher=1)", ComputeWindow(0, 2).String())
}
