package sparseblas_test

import (
	"testing"

	sparseblas "github.com/katalvlaran/sparseblas"
	"github.com/katalvlaran/sparseblas/descriptor"
	"github.com/katalvlaran/sparseblas/dispatch"
	"github.com/katalvlaran/sparseblas/mask"
	"github.com/katalvlaran/sparseblas/semiring"
	"github.com/katalvlaran/sparseblas/sparsemat"
	"github.com/stretchr/testify/require"
)

func set(t *testing.T, m *sparsemat.Matrix[float64], row, col int, v float64) {
	t.Helper()
	require.NoError(t, m.SetElement(row, col, v))
}

// TestGustavsonPlusTimesFloat64 multiplies two small fp64 matrices under
// the plus/times semiring and checks every output cell.
func TestGustavsonPlusTimesFloat64(t *testing.T) {
	t.Parallel()

	a, err := sparsemat.New[float64](2, 2, semiring.FP64)
	require.NoError(t, err)
	set(t, a, 0, 0, 1)
	set(t, a, 0, 1, 2)
	set(t, a, 1, 1, 3)
	require.NoError(t, a.Finalize())

	b, err := sparsemat.New[float64](2, 2, semiring.FP64)
	require.NoError(t, err)
	set(t, b, 0, 0, 4)
	set(t, b, 1, 1, 5)
	require.NoError(t, b.Finalize())

	c, err := sparsemat.New[float64](2, 2, semiring.FP64)
	require.NoError(t, err)

	sr, err := dispatch.ResolveNumeric[float64](semiring.New(semiring.PlusMonoid, semiring.Times))
	require.NoError(t, err)

	require.NoError(t, sparseblas.MxmGustavson[float64, float64](c, a, b, sr, sparseblas.MxmOptions[float64]{}))

	want := map[[2]int]float64{{0, 0}: 4, {0, 1}: 10, {1, 1}: 15}
	for r := 0; r < 2; r++ {
		for col := 0; col < 2; col++ {
			v, ok, err := c.At(r, col)
			require.NoError(t, err)
			expected, shouldExist := want[[2]int{r, col}]
			require.Equal(t, shouldExist, ok)
			if shouldExist {
				require.Equal(t, expected, v)
			}
		}
	}
}

// TestDotWithDiagonalMask restricts the dot-product kernel's output to a
// diagonal structural mask.
func TestDotWithDiagonalMask(t *testing.T) {
	t.Parallel()

	a, err := sparsemat.New[int32](3, 3, semiring.Int32)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, a.SetElement(i, i, 1))
	}
	require.NoError(t, a.Finalize())

	b, err := sparsemat.New[int32](3, 3, semiring.Int32)
	require.NoError(t, err)
	require.NoError(t, b.SetElement(0, 0, 1))
	require.NoError(t, b.SetElement(1, 1, 2))
	require.NoError(t, b.SetElement(2, 2, 3))
	require.NoError(t, b.Finalize())

	mk, err := sparsemat.New[int32](3, 3, semiring.Int32)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, mk.SetElement(i, i, 1))
	}
	require.NoError(t, mk.Finalize())
	m := mask.New(mk, mask.Structural, false, nil)

	c, err := sparsemat.New[int32](3, 3, semiring.Int32)
	require.NoError(t, err)

	sr, err := dispatch.ResolveNumeric[int32](semiring.New(semiring.PlusMonoid, semiring.Times))
	require.NoError(t, err)

	require.NoError(t, sparseblas.MxmDot[int32, int32](c, a, b, sr, sparseblas.MxmOptions[int32]{Mask: m}))

	for i := 0; i < 3; i++ {
		v, ok, err := c.At(i, i)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, int32(i+1), v)
	}
}

// TestHeapMinPlusInt64 exercises the heap-merge kernel under the
// min/plus semiring on int64 operands.
func TestHeapMinPlusInt64(t *testing.T) {
	t.Parallel()

	a, err := sparsemat.New[int64](3, 2, semiring.Int64)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 0, 1))
	require.NoError(t, a.SetElement(2, 0, 4))
	require.NoError(t, a.SetElement(1, 1, 7))
	require.NoError(t, a.Finalize())

	b, err := sparsemat.New[int64](2, 1, semiring.Int64)
	require.NoError(t, err)
	require.NoError(t, b.SetElement(0, 0, 2))
	require.NoError(t, b.SetElement(1, 0, 3))
	require.NoError(t, b.Finalize())

	c, err := sparsemat.New[int64](3, 1, semiring.Int64)
	require.NoError(t, err)

	sr, err := dispatch.ResolveNumeric[int64](semiring.New(semiring.MinMonoid, semiring.Plus))
	require.NoError(t, err)

	require.NoError(t, sparseblas.MxmHeap[int64, int64](c, a, b, sr, sparseblas.MxmOptions[int64]{}))

	v, ok, err := c.At(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(3), v)

	v, ok, err = c.At(1, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(10), v)

	v, ok, err = c.At(2, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(6), v)
}

// TestBooleanReachabilityComposition composes two boolean adjacency
// matrices under lor/land and checks the resulting reachability pattern.
func TestBooleanReachabilityComposition(t *testing.T) {
	t.Parallel()

	a, err := sparsemat.New[bool](3, 3, semiring.Bool)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 1, true))
	require.NoError(t, a.SetElement(1, 2, true))
	require.NoError(t, a.Finalize())

	b, err := sparsemat.New[bool](3, 3, semiring.Bool)
	require.NoError(t, err)
	require.NoError(t, b.SetElement(1, 2, true))
	require.NoError(t, b.SetElement(2, 0, true))
	require.NoError(t, b.Finalize())

	c, err := sparsemat.New[bool](3, 3, semiring.Bool)
	require.NoError(t, err)

	sr, err := dispatch.ResolveBoolean(semiring.New(semiring.LorMonoid, semiring.Land))
	require.NoError(t, err)

	require.NoError(t, sparseblas.MxmGustavson[bool, bool](c, a, b, sr, sparseblas.MxmOptions[bool]{}))

	v, ok, err := c.At(0, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, v)

	_, ok, err = c.At(0, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestFlipxySwapsNonCommutativeMultiplyArguments checks that Flipxy
// changes the result of a non-commutative multiply operator.
func TestFlipxySwapsNonCommutativeMultiplyArguments(t *testing.T) {
	t.Parallel()

	build := func() (*sparsemat.Matrix[float32], *sparsemat.Matrix[float32]) {
		a, err := sparsemat.New[float32](1, 1, semiring.FP32)
		require.NoError(t, err)
		require.NoError(t, a.SetElement(0, 0, 5.0))
		require.NoError(t, a.Finalize())

		b, err := sparsemat.New[float32](1, 1, semiring.FP32)
		require.NoError(t, err)
		require.NoError(t, b.SetElement(0, 0, 9.0))
		require.NoError(t, b.Finalize())

		return a, b
	}

	sr, err := dispatch.ResolveNumeric[float32](semiring.New(semiring.MinMonoid, semiring.First))
	require.NoError(t, err)
	require.False(t, sr.Commutative)

	a, b := build()
	c1, err := sparsemat.New[float32](1, 1, semiring.FP32)
	require.NoError(t, err)
	require.NoError(t, sparseblas.MxmGustavson[float32, float32](c1, a, b, sr, sparseblas.MxmOptions[float32]{}))
	v1, _, err := c1.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(5.0), v1)

	c2, err := sparsemat.New[float32](1, 1, semiring.FP32)
	require.NoError(t, err)
	require.NoError(t, sparseblas.MxmGustavson[float32, float32](c2, a, b, sr, sparseblas.MxmOptions[float32]{Descriptor: descriptor.Descriptor{Flipxy: true}}))
	v2, _, err := c2.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(9.0), v2)
}

// TestZombieThenReinsertThenMultiply checks that a removed-then-reinserted
// entry is correctly reflected by a subsequent multiply.
func TestZombieThenReinsertThenMultiply(t *testing.T) {
	t.Parallel()

	a, err := sparsemat.New[int32](1, 1, semiring.Int32)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 0, 1))
	require.NoError(t, a.Finalize())
	require.NoError(t, a.RemoveElement(0, 0))
	require.NoError(t, a.SetElement(0, 0, 2))

	b, err := sparsemat.New[int32](1, 1, semiring.Int32)
	require.NoError(t, err)
	require.NoError(t, b.SetElement(0, 0, 1))
	require.NoError(t, b.Finalize())

	c, err := sparsemat.New[int32](1, 1, semiring.Int32)
	require.NoError(t, err)

	sr, err := dispatch.ResolveNumeric[int32](semiring.New(semiring.PlusMonoid, semiring.Times))
	require.NoError(t, err)

	require.NoError(t, sparseblas.MxmGustavson[int32, int32](c, a, b, sr, sparseblas.MxmOptions[int32]{}))
	v, ok, err := c.At(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(2), v)
}

// TestRepeatedMxmWithoutAccumIsIdempotent checks that a second identical
// Mxm call with accum absent leaves C unchanged.
func TestRepeatedMxmWithoutAccumIsIdempotent(t *testing.T) {
	t.Parallel()

	a, err := sparsemat.New[int32](2, 2, semiring.Int32)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 0, 2))
	require.NoError(t, a.Finalize())

	b, err := sparsemat.New[int32](2, 2, semiring.Int32)
	require.NoError(t, err)
	require.NoError(t, b.SetElement(0, 0, 3))
	require.NoError(t, b.Finalize())

	c, err := sparsemat.New[int32](2, 2, semiring.Int32)
	require.NoError(t, err)

	sr, err := dispatch.ResolveNumeric[int32](semiring.New(semiring.PlusMonoid, semiring.Times))
	require.NoError(t, err)

	require.NoError(t, sparseblas.MxmGustavson[int32, int32](c, a, b, sr, sparseblas.MxmOptions[int32]{}))
	v1, _, err := c.At(0, 0)
	require.NoError(t, err)

	require.NoError(t, sparseblas.MxmGustavson[int32, int32](c, a, b, sr, sparseblas.MxmOptions[int32]{}))
	v2, _, err := c.At(0, 0)
	require.NoError(t, err)

	require.Equal(t, v1, v2)
}

func TestInfoForClassifiesDimensionMismatch(t *testing.T) {
	t.Parallel()

	a, err := sparsemat.New[int32](2, 2, semiring.Int32)
	require.NoError(t, err)
	b, err := sparsemat.New[int32](3, 2, semiring.Int32)
	require.NoError(t, err)
	c, err := sparsemat.New[int32](2, 2, semiring.Int32)
	require.NoError(t, err)

	sr, err := dispatch.ResolveNumeric[int32](semiring.New(semiring.PlusMonoid, semiring.Times))
	require.NoError(t, err)

	err = sparseblas.MxmGustavson[int32, int32](c, a, b, sr, sparseblas.MxmOptions[int32]{})
	require.Error(t, err)
	require.Equal(t, sparseblas.DimensionMismatch, sparseblas.InfoFor(err))
}
