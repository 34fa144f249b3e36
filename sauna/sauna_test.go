package sauna_test

import (
	"testing"

	"github.com/katalvlaran/sparseblas/sauna"
	"github.com/stretchr/testify/require"
)

func TestTouchAccumulateLiveCycle(t *testing.T) {
	t.Parallel()

	s := sauna.New[int32](4)
	s.EnterColumn()
	require.False(t, s.Live(0))

	s.Touch(0, 5)
	require.True(t, s.Live(0))
	require.Equal(t, int32(5), s.Work[0])

	s.Accumulate(0, 3, func(a, b int32) int32 { return a + b })
	require.Equal(t, int32(8), s.Work[0])
}

func TestEnterColumnResetsLiveness(t *testing.T) {
	t.Parallel()

	s := sauna.New[int32](2)
	s.EnterColumn()
	s.Touch(1, 9)
	require.True(t, s.Live(1))

	s.EnterColumn()
	require.False(t, s.Live(1), "liveness must not survive into the next column without a fresh Touch")
}

func TestResetRewindsGeneration(t *testing.T) {
	t.Parallel()

	s := sauna.New[int32](2)
	s.EnterColumn()
	s.Touch(0, 1)
	s.Reset()
	require.Zero(t, s.Hiwater())
	s.EnterColumn()
	require.False(t, s.Live(0))
}
