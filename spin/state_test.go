package spin_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinmix/spin"
)

// countUp scans a state the slow way; used as the oracle for Positive().
func countUp(s *spin.State) int {
	n := 0
	for i := 0; i < s.Len(); i++ {
		if s.At(i) == spin.Up {
			n++
		}
	}
	return n
}

func TestNew_Fill(t *testing.T) {
	cases := []struct {
		name string
		n    int
		fill spin.Spin
		pos  int
	}{
		{"AllUp", 5, spin.Up, 5},
		{"AllDown", 5, spin.Down, 0},
		{"Empty", 0, spin.Up, 0},
		{"NegativeSize", -3, spin.Up, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := spin.New(tc.n, tc.fill)
			require.Equal(t, tc.pos, s.Positive())
			require.Equal(t, countUp(s), s.Positive())
			require.Equal(t, s.Len()-tc.pos, s.Negative())
		})
	}
}

// TestSet_PositiveCountInvariant applies random writes and checks the
// incremental Up count against a full scan after each one.
func TestSet_PositiveCountInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := spin.New(17, spin.Down)
	for i := 0; i < 2000; i++ {
		site := rng.Intn(s.Len())
		v := spin.FromCoin(rng.Intn(2) == 0)
		prev := s.At(site)
		got := s.Set(site, v)
		require.Equal(t, prev, got, "Set must return the previous value")
		require.Equal(t, v, s.At(site))
		require.Equal(t, countUp(s), s.Positive(), "step %d", i)
	}
}

func TestMagnetization(t *testing.T) {
	s := spin.New(4, spin.Up)
	require.Equal(t, 4, s.Magnetization())
	s.Set(0, spin.Down)
	require.Equal(t, 2, s.Magnetization())
	s.Reset(spin.Down)
	require.Equal(t, -4, s.Magnetization())
}

func TestEqualAndDiffering(t *testing.T) {
	x := spin.New(6, spin.Up)
	y := spin.New(6, spin.Down)
	require.Equal(t, 6, x.Differing(y))
	require.False(t, x.Equal(y))

	for i := 0; i < 6; i++ {
		y.Set(i, spin.Up)
	}
	require.Equal(t, 0, x.Differing(y))
	require.True(t, x.Equal(y))

	short := spin.New(4, spin.Up)
	require.Equal(t, 2, x.Differing(short))
	require.False(t, x.Equal(short))
}

func TestSnapshotIsCopy(t *testing.T) {
	s := spin.New(3, spin.Up)
	snap := s.Snapshot()
	snap[0] = spin.Down
	require.Equal(t, spin.Up, s.At(0))
	require.Equal(t, 3, s.Positive())
}

func TestSpinHelpers(t *testing.T) {
	require.Equal(t, spin.Down, spin.Up.Flip())
	require.Equal(t, spin.Up, spin.Down.Flip())
	require.Equal(t, spin.Spin(3), spin.Spin(3).Flip())
	require.True(t, spin.Agree(spin.Up, spin.Up))
	require.False(t, spin.Agree(spin.Up, spin.Down))
	require.Equal(t, "+", spin.Up.String())
	require.Equal(t, "-", spin.Down.String())
	require.Equal(t, "2", spin.Spin(2).String())
	require.Equal(t, spin.Down, spin.FromCoin(true))
	require.Equal(t, spin.Up, spin.FromCoin(false))
}
