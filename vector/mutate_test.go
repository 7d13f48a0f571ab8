package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-vector/vector"
)

// ─────────────────────────────────────────────────────────────────────────────
// Stack operations
// ─────────────────────────────────────────────────────────────────────────────

func TestPushPop(t *testing.T) {
	for _, v := range []*vector.Vector[int]{ints(), ints(1), ints(1, 2, 3)} {
		n := v.Len()
		require.NoError(t, v.Push(99))
		x, ok := v.Pop()
		assert.True(t, ok)
		assert.Equal(t, 99, x)
		assert.Equal(t, n, v.Len())
	}
}

func TestPopDoesNotDestroy(t *testing.T) {
	v, r := withRecorder(1, 2)
	x, ok := v.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, x)
	assert.Empty(t, r.destroyed)
}

func TestPopTopEmpty(t *testing.T) {
	v := ints()
	_, ok := v.Pop()
	assert.False(t, ok)
	_, ok = v.Top()
	assert.False(t, ok)
}

func TestTop(t *testing.T) {
	v := ints(1, 2, 3)
	x, ok := v.Top()
	assert.True(t, ok)
	assert.Equal(t, 3, x)
	assert.Equal(t, 3, v.Len())
}

func TestPopReleasesSlot(t *testing.T) {
	s := "item"
	v := vector.From([]*string{&s})
	v.Pop()
	assert.Nil(t, v.Data()[0])
}

// ─────────────────────────────────────────────────────────────────────────────
// Shift
// ─────────────────────────────────────────────────────────────────────────────

func TestShiftOpensGap(t *testing.T) {
	v := vector.From([]string{"a", "b", "c"})
	require.NoError(t, v.Shift(1, 2))
	assert.Equal(t, []string{"a", "", "", "b", "c"}, v.ToSlice())
	assert.Equal(t, 5, v.Len())
}

func TestShiftOpensGapAtEnd(t *testing.T) {
	v := ints(1, 2)
	require.NoError(t, v.Shift(2, 2))
	assert.Equal(t, []int{1, 2, 0, 0}, v.ToSlice())
}

func TestShiftNegativeAnchor(t *testing.T) {
	v := ints(1, 2, 3)
	require.NoError(t, v.Shift(-1, 1))
	assert.Equal(t, []int{1, 2, 0, 3}, v.ToSlice())
}

func TestShiftClosesGap(t *testing.T) {
	r := &recorder[string]{}
	v := vector.From([]string{"a", "b", "c"}, vector.WithDestructor[string](r.destroy))
	require.NoError(t, v.Shift(1, -1))
	assert.Equal(t, []string{"a", "c"}, v.ToSlice())
	assert.Equal(t, []string{"b"}, r.destroyed)
	assert.Equal(t, "", v.Data()[2])
}

func TestShiftClampsRemoval(t *testing.T) {
	v, r := withRecorder(1, 2, 3, 4)
	require.NoError(t, v.Shift(2, -10))
	assert.Equal(t, []int{1, 2}, v.ToSlice())
	assert.Equal(t, []int{3, 4}, r.destroyed)

	require.NoError(t, v.Shift(2, -1))
	assert.Equal(t, []int{1, 2}, v.ToSlice())
}

func TestShiftZero(t *testing.T) {
	v := ints(1, 2)
	require.NoError(t, v.Shift(0, 0))
	assert.Equal(t, []int{1, 2}, v.ToSlice())
}

func TestShiftOutOfRange(t *testing.T) {
	v := ints(1, 2)
	assert.ErrorIs(t, v.Shift(3, 1), vector.ErrIndexOutOfRange)
	assert.ErrorIs(t, v.Shift(-3, -1), vector.ErrIndexOutOfRange)
	assert.Equal(t, []int{1, 2}, v.ToSlice())
}

func TestShiftOutOfMemoryLeavesVector(t *testing.T) {
	v := vector.From([]int{1, 2, 3}, vector.WithMaxCapacity[int](4))
	assert.ErrorIs(t, v.Shift(0, 2), vector.ErrOutOfMemory)
	assert.Equal(t, []int{1, 2, 3}, v.ToSlice())
	assert.Equal(t, 3, v.Cap())
}

func TestShiftHugeCountReportsOutOfMemory(t *testing.T) {
	for _, v := range []*vector.Vector[int]{
		ints(1, 2, 3),
		vector.From([]int{1, 2, 3}, vector.WithMaxCapacity[int](16)),
	} {
		capacity := v.Cap()
		assert.ErrorIs(t, v.Shift(0, math.MaxInt), vector.ErrOutOfMemory)
		assert.ErrorIs(t, v.Shift(-1, math.MaxInt-1), vector.ErrOutOfMemory)
		assert.Equal(t, []int{1, 2, 3}, v.ToSlice())
		assert.Equal(t, capacity, v.Cap())
	}
}

func TestShiftMinIntRemovesRest(t *testing.T) {
	v, r := withRecorder(1, 2, 3)
	require.NoError(t, v.Shift(0, math.MinInt))
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, []int{1, 2, 3}, r.destroyed)

	w, r := withRecorder(1, 2, 3)
	require.NoError(t, w.Shift(1, math.MinInt))
	assert.Equal(t, []int{1}, w.ToSlice())
	assert.Equal(t, []int{2, 3}, r.destroyed)
}

func TestPushAtCeilingLeavesVector(t *testing.T) {
	v := vector.From([]int{1, 2}, vector.WithMaxCapacity[int](2))
	assert.ErrorIs(t, v.Push(3), vector.ErrOutOfMemory)
	assert.ErrorIs(t, v.Concat(ints(math.MaxInt)), vector.ErrOutOfMemory)
	assert.Equal(t, []int{1, 2}, v.ToSlice())
}

// ─────────────────────────────────────────────────────────────────────────────
// Discard / Clear
// ─────────────────────────────────────────────────────────────────────────────

func TestDiscard(t *testing.T) {
	v, r := withRecorder(1, 2, 3, 4)
	v.Discard(2)
	assert.Equal(t, []int{1, 2}, v.ToSlice())
	assert.Equal(t, []int{4, 3}, r.destroyed)

	v.Discard(10)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, []int{4, 3, 2, 1}, r.destroyed)

	v.Discard(-1)
	assert.Equal(t, 0, v.Len())
}

func TestClear(t *testing.T) {
	v, r := withRecorder(1, 2, 3)
	capacity := v.Cap()
	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, capacity, v.Cap())
	assert.ElementsMatch(t, []int{1, 2, 3}, r.destroyed)
}

// ─────────────────────────────────────────────────────────────────────────────
// Rearrangement
// ─────────────────────────────────────────────────────────────────────────────

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, ints(1, 2, 3).Reverse().ToSlice())
	assert.Empty(t, ints().Reverse().ToSlice())
}

func TestReverseSection(t *testing.T) {
	v := ints(1, 2, 3, 4, 5)
	require.NoError(t, v.ReverseSection(1, -1))
	assert.Equal(t, []int{1, 4, 3, 2, 5}, v.ToSlice())

	require.NoError(t, v.ReverseSection(3, 1))
	assert.Equal(t, []int{1, 4, 3, 2, 5}, v.ToSlice())

	assert.ErrorIs(t, v.ReverseSection(0, 6), vector.ErrIndexOutOfRange)
}

func TestRotate(t *testing.T) {
	assert.Equal(t, []int{4, 5, 1, 2, 3}, ints(1, 2, 3, 4, 5).Rotate(2).ToSlice())
	assert.Equal(t, []int{3, 4, 5, 1, 2}, ints(1, 2, 3, 4, 5).Rotate(-2).ToSlice())
	assert.Empty(t, ints().Rotate(3).ToSlice())
}

func TestRotateIdentities(t *testing.T) {
	orig := []int{1, 2, 3, 4, 5, 6, 7}
	v := ints(orig...)
	assert.Equal(t, orig, v.Rotate(v.Len()).ToSlice())

	for k := -15; k <= 15; k++ {
		assert.Equal(t, orig, v.Rotate(k).Rotate(-k).ToSlice(), "k=%d", k)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Copies
// ─────────────────────────────────────────────────────────────────────────────

func TestCopy(t *testing.T) {
	v, r := withRecorder(1, 2, 3)
	require.NoError(t, v.Resize(10))
	v.SetContext("ctx").Retain()

	c := v.Copy()
	assert.Equal(t, []int{1, 2, 3}, c.ToSlice())
	assert.Equal(t, 10, c.Cap())
	assert.Equal(t, "ctx", c.Context())
	assert.Nil(t, c.Destructor())
	assert.Equal(t, 1, c.Refs())

	c.Clear()
	assert.Empty(t, r.destroyed)
	assert.Equal(t, 3, v.Len())
}

func TestSlice(t *testing.T) {
	v := ints(1, 2, 3, 4, 5).SetContext("ctx")
	s := v.Slice(1, -1)
	assert.Equal(t, []int{2, 3, 4}, s.ToSlice())
	assert.Equal(t, 3, s.Cap())
	assert.Equal(t, "ctx", s.Context())
	assert.Equal(t, 5, v.Len())
}

func TestSliceClamps(t *testing.T) {
	v := ints(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, v.Slice(-10, 10).ToSlice())

	empty := v.Slice(2, 1)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, empty.Cap())
}

func TestRSlice(t *testing.T) {
	s := ints(1, 2, 3, 4, 5).RSlice(1, -1)
	assert.Equal(t, []int{4, 3, 2}, s.ToSlice())
	assert.Equal(t, 3, s.Cap())
}

func TestSliceDropsDestructor(t *testing.T) {
	v, _ := withRecorder(1, 2, 3)
	assert.Nil(t, v.Slice(0, 2).Destructor())
	assert.Nil(t, v.RSlice(0, 2).Destructor())
}

// ─────────────────────────────────────────────────────────────────────────────
// Joining
// ─────────────────────────────────────────────────────────────────────────────

func TestExtend(t *testing.T) {
	v1, r := withRecorder(1, 2)
	v2 := ints(3, 4)

	require.NoError(t, v1.Extend(v2))
	assert.Equal(t, []int{1, 2, 3, 4}, v1.ToSlice())
	assert.Equal(t, 0, v2.Len())
	assert.Empty(t, r.destroyed)
}

func TestExtendSelf(t *testing.T) {
	v := ints(1, 2)
	require.NoError(t, v.Extend(v))
	assert.Equal(t, []int{1, 2}, v.ToSlice())
}

func TestExtendOutOfMemory(t *testing.T) {
	v1 := vector.From([]int{1, 2}, vector.WithMaxCapacity[int](3))
	v2 := ints(3, 4)

	assert.ErrorIs(t, v1.Extend(v2), vector.ErrOutOfMemory)
	assert.Equal(t, []int{1, 2}, v1.ToSlice())
	assert.Equal(t, []int{3, 4}, v2.ToSlice())
}

func TestConcat(t *testing.T) {
	v1 := ints(1, 2)
	v2 := ints(3, 4)

	require.NoError(t, v1.Concat(v2))
	assert.Equal(t, []int{1, 2, 3, 4}, v1.ToSlice())
	assert.Equal(t, []int{3, 4}, v2.ToSlice())
}

func TestConcatSelf(t *testing.T) {
	v := ints(1, 2, 3)
	require.NoError(t, v.Concat(v))
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, v.ToSlice())
}

func TestConcatOutOfMemory(t *testing.T) {
	v := vector.From([]int{1, 2}, vector.WithMaxCapacity[int](3))
	assert.ErrorIs(t, v.Concat(v), vector.ErrOutOfMemory)
	assert.Equal(t, []int{1, 2}, v.ToSlice())
}
