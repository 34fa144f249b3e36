package semiring_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparseblas/semiring"
	"github.com/stretchr/testify/require"
)

func TestElementTypeOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, semiring.Int32, semiring.ElementTypeOf[int32]())
	require.Equal(t, semiring.FP64, semiring.ElementTypeOf[float64]())
	require.Equal(t, semiring.Uint8, semiring.ElementTypeOf[uint8]())
}

func TestMonoidIdentities(t *testing.T) {
	t.Parallel()

	require.True(t, math.IsInf(semiring.NumericIdentity(semiring.MinMonoid), 1))
	require.True(t, math.IsInf(semiring.NumericIdentity(semiring.MaxMonoid), -1))
	require.Equal(t, float64(0), semiring.NumericIdentity(semiring.PlusMonoid))
	require.Equal(t, float64(1), semiring.NumericIdentity(semiring.TimesMonoid))

	require.False(t, semiring.BooleanIdentity(semiring.LorMonoid))
	require.True(t, semiring.BooleanIdentity(semiring.LandMonoid))
	require.False(t, semiring.BooleanIdentity(semiring.LxorMonoid))
	require.True(t, semiring.BooleanIdentity(semiring.EqMonoid))
}

func TestElementTypeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "fp64", semiring.FP64.String())
	require.Equal(t, "user", semiring.User.String())
	require.True(t, semiring.Int32.IsNumeric())
	require.False(t, semiring.Bool.IsNumeric())
}
