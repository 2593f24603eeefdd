package dynamics_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinmix/dynamics"
	"github.com/katalvlaran/spinmix/lattice"
	"github.com/katalvlaran/spinmix/spin"
)

// stateView adapts a topology + state pair to dynamics.View.
type stateView struct {
	topo  lattice.Topology
	state *spin.State
}

func (v stateView) At(site int) spin.Spin { return v.state.At(site) }
func (v stateView) Neighborhood(site int) lattice.Neighborhood {
	return v.topo.Neighborhood(v.state, site)
}
func (v stateView) EachNeighbor(site int, fn func(nb int)) { v.topo.EachNeighbor(site, fn) }

func torusView(t *testing.T, n int, fill spin.Spin) stateView {
	t.Helper()
	tor, err := lattice.Torus(n)
	require.NoError(t, err)
	return stateView{topo: tor, state: spin.New(tor.Size(), fill)}
}

func completeView(t *testing.T, n int, fill spin.Spin) stateView {
	t.Helper()
	kn, err := lattice.Complete(n)
	require.NoError(t, err)
	return stateView{topo: kn, state: spin.New(kn.Size(), fill)}
}

//----------------------------------------------------------------------------//
// Probability kernels
//----------------------------------------------------------------------------//

func TestPositiveProbability(t *testing.T) {
	cases := []struct {
		name string
		beta float64
		sum  int
		want float64
	}{
		{"ZeroBeta", 0, 4, 0.5},
		{"ZeroSum", 1.3, 0, 0.5},
		{"Aligned", 0.5, 2, math.Exp(1) / (math.Exp(1) + math.Exp(-1))},
		{"Opposed", 0.5, -2, math.Exp(-1) / (math.Exp(-1) + math.Exp(1))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, dynamics.PositiveProbability(tc.beta, tc.sum), 1e-12)
		})
	}
}

// TestPositiveProbability_NoOverflow checks that huge β·S saturates instead of producing NaN.
func TestPositiveProbability_NoOverflow(t *testing.T) {
	hi := dynamics.PositiveProbability(1e6, 4)
	lo := dynamics.PositiveProbability(1e6, -4)
	require.False(t, math.IsNaN(hi))
	require.False(t, math.IsNaN(lo))
	require.Equal(t, 1.0, hi)
	require.Equal(t, 0.0, lo)
}

func TestAcceptance(t *testing.T) {
	require.Equal(t, 1.0, dynamics.Acceptance(0.7, -2))
	require.Equal(t, 1.0, dynamics.Acceptance(0.7, 0))
	require.InDelta(t, math.Exp(-1.4), dynamics.Acceptance(0.7, 2), 1e-15)
	require.Equal(t, 0.0, dynamics.Acceptance(1e6, 4))
	require.Equal(t, 1.0, dynamics.Acceptance(0, 4))
}

//----------------------------------------------------------------------------//
// Rules
//----------------------------------------------------------------------------//

func TestHeatBath_Move(t *testing.T) {
	v := torusView(t, 3, spin.Up)
	m := dynamics.HeatBath{}.Move(v, 4, spin.Down, 0.25)
	require.Equal(t, spin.Up, m.Accept)
	require.Equal(t, spin.Down, m.Reject)
	require.InDelta(t, dynamics.PositiveProbability(0.25, 4), m.P, 1e-15)
	require.False(t, dynamics.HeatBath{}.Proposes())
}

// TestHeatBath_CompleteExcludesSelf checks that the site's own spin is not part of S.
func TestHeatBath_CompleteExcludesSelf(t *testing.T) {
	v := completeView(t, 5, spin.Down)
	v.state.Set(0, spin.Up)
	// Site 0 sees 4 Down neighbours: S = −4.
	m0 := dynamics.HeatBath{}.Move(v, 0, spin.Up, 0.5)
	require.InDelta(t, dynamics.PositiveProbability(0.5, -4), m0.P, 1e-15)
	// Site 1 sees 1 Up and 3 Down: S = −2.
	m1 := dynamics.HeatBath{}.Move(v, 1, spin.Up, 0.5)
	require.InDelta(t, dynamics.PositiveProbability(0.5, -2), m1.P, 1e-15)
}

func TestMetropolis_Move(t *testing.T) {
	v := torusView(t, 3, spin.Up)
	// All neighbours Up; flipping site 4 to Down raises disagreement from 0 to 4.
	m := dynamics.Metropolis{}.Move(v, 4, spin.Down, 0.3)
	require.InDelta(t, math.Exp(-1.2), m.P, 1e-15)
	require.Equal(t, spin.Down, m.Accept)
	require.Equal(t, spin.Up, m.Reject)

	// Proposing the current value is always accepted and changes nothing.
	same := dynamics.Metropolis{}.Move(v, 4, spin.Up, 0.3)
	require.Equal(t, 1.0, same.P)
	require.Equal(t, spin.Up, same.Resolve(0.999))
}

// TestMetropolisVariantsAgree verifies that for binary spins the site-based and
// edge-based Metropolis rules produce the same verdict on both topologies.
func TestMetropolisVariantsAgree(t *testing.T) {
	views := []stateView{torusView(t, 4, spin.Down), completeView(t, 9, spin.Down)}
	for _, v := range views {
		for i := 0; i < v.state.Len(); i += 3 {
			v.state.Set(i, spin.Up)
		}
		for site := 0; site < v.state.Len(); site++ {
			for _, c := range []spin.Spin{spin.Up, spin.Down} {
				a := dynamics.Metropolis{}.Move(v, site, c, 0.41)
				b := dynamics.MetropolisEdges{}.Move(v, site, c, 0.41)
				require.InDelta(t, a.P, b.P, 1e-15, "%s site=%d c=%v", v.topo.Kind(), site, c)
				require.Equal(t, a.Accept, b.Accept)
				require.Equal(t, a.Reject, b.Reject)
			}
		}
	}
}

func TestMove_Resolve(t *testing.T) {
	m := dynamics.Move{P: 0.4, Accept: spin.Up, Reject: spin.Down}
	require.Equal(t, spin.Up, m.Resolve(0.0))
	require.Equal(t, spin.Up, m.Resolve(0.4))
	require.Equal(t, spin.Down, m.Resolve(0.41))
}

func TestByName(t *testing.T) {
	for _, r := range dynamics.All() {
		got, err := dynamics.ByName(r.Name())
		require.NoError(t, err)
		require.Equal(t, r, got)
	}
	_, err := dynamics.ByName("swendsen-wang")
	if !errors.Is(err, dynamics.ErrUnknownRule) {
		t.Errorf("ByName(swendsen-wang) error = %v; want %v", err, dynamics.ErrUnknownRule)
	}
}
