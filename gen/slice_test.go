package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/shrink"
)

func TestSliceOfRespectsSizeBounds(t *testing.T) {
	g := SliceOf(Int(Size{}), Size{Min: 2, Max: 5})
	r := random.New(10)
	for i := 0; i < 100; i++ {
		xs := g.Generate(r).Value()
		require.GreaterOrEqual(t, len(xs), 2)
		require.LessOrEqual(t, len(xs), 5)
	}
}

func TestSliceOfShrinksTowardMinLength(t *testing.T) {
	g := SliceOf(Int(Size{}), Size{Min: 0, Max: 20})
	r := random.New(11)

	s := g.Generate(r)
	for len(s.Value()) == 0 {
		s = g.Generate(r)
	}

	shortest := len(s.Value())
	it := s.Shrinks().Iterator()
	for it.HasNext() {
		cand := it.Next()
		if len(cand.Value()) < shortest {
			shortest = len(cand.Value())
		}
	}
	assert.Less(t, shortest, len(s.Value()))
}

func TestSliceOfEmptyWhenMinMaxZero(t *testing.T) {
	g := SliceOf(Int(Size{}), Size{Min: 0, Max: 0})
	r := random.New(12)
	xs := g.Generate(r).Value()
	require.Empty(t, xs)
}

func TestSliceOfBulkShrinkReachesAllZero(t *testing.T) {
	// A fixed-length slice of non-negative ints should, somewhere in its
	// shrink tree, reach the all-zero slice of the same length, since every
	// element's own shrink tree converges to 0 (the range contains 0) and
	// bulk shrinking advances every element in a group simultaneously.
	g := SliceOf(IntRange(0, 1000), Size{Min: 3, Max: 3})
	r := random.New(13)
	s := g.Generate(r)

	require.True(t, bfsFindAllZero(s, 3, 5000), "expected to find an all-zero length-3 slice in the shrink tree")
}

func bfsFindAllZero(root shrink.Shrinkable[[]int], length int, budget int) bool {
	queue := []shrink.Shrinkable[[]int]{root}
	visited := 0
	for len(queue) > 0 && visited < budget {
		cur := queue[0]
		queue = queue[1:]
		visited++
		if isAllZero(cur.Value(), length) {
			return true
		}
		it := cur.Shrinks().Iterator()
		for it.HasNext() {
			queue = append(queue, it.Next())
		}
	}
	return false
}

func isAllZero(xs []int, length int) bool {
	if len(xs) != length {
		return false
	}
	for _, v := range xs {
		if v != 0 {
			return false
		}
	}
	return true
}
