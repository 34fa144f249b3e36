package ewise_test

import (
	"testing"

	"github.com/katalvlaran/sparseblas/ewise"
	"github.com/katalvlaran/sparseblas/semiring"
	"github.com/katalvlaran/sparseblas/sparsemat"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, entries map[[2]int]int32) *sparsemat.Matrix[int32] {
	t.Helper()
	m, err := sparsemat.New[int32](2, 2, semiring.Int32)
	require.NoError(t, err)
	for rc, v := range entries {
		require.NoError(t, m.SetElement(rc[0], rc[1], v))
	}
	require.NoError(t, m.Finalize())

	return m
}

func TestAddUnionsPatterns(t *testing.T) {
	t.Parallel()

	a := build(t, map[[2]int]int32{{0, 0}: 1})
	b := build(t, map[[2]int]int32{{1, 1}: 2})

	out, err := ewise.Add[int32](a, b, func(x, y int32) int32 { return x + y })
	require.NoError(t, err)

	v, ok, err := out.At(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(1), v)

	v, ok, err = out.At(1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(2), v)
}

func TestMultIntersectsPatterns(t *testing.T) {
	t.Parallel()

	a := build(t, map[[2]int]int32{{0, 0}: 3, {1, 1}: 9})
	b := build(t, map[[2]int]int32{{0, 0}: 4})

	out, err := ewise.Mult[int32](a, b, func(x, y int32) int32 { return x * y })
	require.NoError(t, err)

	v, ok, err := out.At(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(12), v)

	_, ok, err = out.At(1, 1)
	require.NoError(t, err)
	require.False(t, ok, "intersection drops a position absent from the other operand")
}

func TestDimensionMismatchRejected(t *testing.T) {
	t.Parallel()

	a, err := sparsemat.New[int32](2, 2, semiring.Int32)
	require.NoError(t, err)
	b, err := sparsemat.New[int32](3, 2, semiring.Int32)
	require.NoError(t, err)

	_, err = ewise.Add[int32](a, b, func(x, y int32) int32 { return x })
	require.ErrorIs(t, err, sparsemat.ErrDimensionMismatch)
}
