package sparsemat_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sparseblas/semiring"
	"github.com/katalvlaran/sparseblas/sparsemat"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadShape(t *testing.T) {
	t.Parallel()

	_, err := sparsemat.New[float64](0, 3, semiring.FP64)
	require.True(t, errors.Is(err, sparsemat.ErrBadShape))

	_, err = sparsemat.New[float64](3, -1, semiring.FP64)
	require.True(t, errors.Is(err, sparsemat.ErrBadShape))
}

func TestSetAndAt(t *testing.T) {
	t.Parallel()

	m, err := sparsemat.New[float64](3, 3, semiring.FP64)
	require.NoError(t, err)

	require.NoError(t, m.SetElement(1, 2, 5.0))
	v, ok, err := m.At(1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5.0, v)

	_, ok, err = m.At(0, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAtOutOfBounds(t *testing.T) {
	t.Parallel()

	m, err := sparsemat.New[float64](2, 2, semiring.FP64)
	require.NoError(t, err)

	_, _, err = m.At(5, 0)
	require.True(t, errors.Is(err, sparsemat.ErrIndexOutOfBounds))
}

// TestFinalizeCanonicalIdempotent checks that after Finalize, the matrix
// is clean, and finalizing twice is a no-op producing the same
// observable state.
func TestFinalizeCanonicalIdempotent(t *testing.T) {
	t.Parallel()

	m, err := sparsemat.New[int32](4, 4, semiring.Int32)
	require.NoError(t, err)
	require.NoError(t, m.SetElement(2, 0, 7))
	require.NoError(t, m.SetElement(0, 0, 3))
	require.NoError(t, m.SetElement(1, 3, 9))

	require.True(t, m.IsDirty())
	require.NoError(t, m.Finalize())
	require.False(t, m.IsDirty())

	nv, err := m.NVals()
	require.NoError(t, err)
	require.Equal(t, 3, nv)

	require.NoError(t, m.Finalize())
	nv2, err := m.NVals()
	require.NoError(t, err)
	require.Equal(t, nv, nv2)
}

// TestDuplicatePendingRequiresOperator covers duplicate pending tuples
// without operator_pending being an error.
func TestDuplicatePendingRequiresOperator(t *testing.T) {
	t.Parallel()

	m, err := sparsemat.New[int32](2, 2, semiring.Int32)
	require.NoError(t, err)
	require.NoError(t, m.SetElement(0, 0, 1))
	require.NoError(t, m.SetElement(0, 0, 2))

	err = m.Finalize()
	require.True(t, errors.Is(err, sparsemat.ErrDuplicatePending))

	m.SetPendingOp(func(a, b int32) int32 { return a + b })
	require.NoError(t, m.Finalize())
	v, ok, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(3), v)
}

// TestZombieThenReinsert covers a zombie-then-insert sequence observing
// only the final intended value.
func TestZombieThenReinsert(t *testing.T) {
	t.Parallel()

	m, err := sparsemat.New[int32](2, 2, semiring.Int32)
	require.NoError(t, err)
	require.NoError(t, m.SetElement(0, 0, 1))
	require.NoError(t, m.Finalize())
	require.NoError(t, m.RemoveElement(0, 0))
	require.NoError(t, m.SetElement(0, 0, 2))
	require.NoError(t, m.Finalize())

	v, ok, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(2), v)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	m, err := sparsemat.New[int32](2, 2, semiring.Int32)
	require.NoError(t, err)
	require.NoError(t, m.RemoveElement(1, 1))
	nv, err := m.NVals()
	require.NoError(t, err)
	require.Zero(t, nv)
}

func TestHyperPromotionThreshold(t *testing.T) {
	t.Parallel()

	m, err := sparsemat.New[int32](100, 100, semiring.Int32, sparsemat.WithHyperThreshold(0.5))
	require.NoError(t, err)
	require.NoError(t, m.SetElement(0, 0, 1))
	require.NoError(t, m.SetElement(1, 1, 1))
	require.NoError(t, m.Finalize())
	require.True(t, m.IsHypersparse())
}

func TestToHyperToNonHyperRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := sparsemat.New[int32](5, 5, semiring.Int32)
	require.NoError(t, err)
	require.NoError(t, m.SetElement(0, 0, 1))
	require.NoError(t, m.SetElement(4, 4, 2))
	require.NoError(t, m.Finalize())

	require.NoError(t, m.ToHyper())
	require.True(t, m.IsHypersparse())
	v, ok, err := m.At(4, 4)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(2), v)

	require.NoError(t, m.ToNonHyper())
	require.False(t, m.IsHypersparse())
	v, ok, err = m.At(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(1), v)
}
