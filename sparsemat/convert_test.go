package sparsemat_test

import (
	"testing"

	"github.com/katalvlaran/sparseblas/semiring"
	"github.com/katalvlaran/sparseblas/sparsemat"
	"github.com/stretchr/testify/require"
)

func TestTransposeRoundTrip(t *testing.T) {
	t.Parallel()

	a, err := sparsemat.New[float64](2, 3, semiring.FP64)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 1, 1.0))
	require.NoError(t, a.SetElement(1, 2, 2.0))
	require.NoError(t, a.Finalize())

	at, err := sparsemat.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())

	v, ok, err := at.At(1, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1.0, v)

	v, ok, err = at.At(2, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2.0, v)

	att, err := sparsemat.Transpose(at)
	require.NoError(t, err)
	nv, err := att.NVals()
	require.NoError(t, err)
	require.Equal(t, 2, nv)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	a, err := sparsemat.New[int32](2, 2, semiring.Int32)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 0, 1))
	require.NoError(t, a.Finalize())

	b := a.Clone()
	require.NoError(t, b.SetElement(1, 1, 2))
	require.NoError(t, b.Finalize())

	_, ok, err := a.At(1, 1)
	require.NoError(t, err)
	require.False(t, ok, "mutating the clone must not affect the original")
}
