package coupling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinmix/dynamics"
	"github.com/katalvlaran/spinmix/lattice"
)

func topologies(t *testing.T) []lattice.Topology {
	t.Helper()
	tor2, err := lattice.Torus(2)
	require.NoError(t, err)
	tor3, err := lattice.Torus(3)
	require.NoError(t, err)
	k1, err := lattice.Complete(1)
	require.NoError(t, err)
	k6, err := lattice.Complete(6)
	require.NoError(t, err)
	return []lattice.Topology{tor2, tor3, k1, k6}
}

// TestTrial_DiffCounterMatchesScan runs every topology/rule pair step by step and
// checks, after each step, that the incremental counter equals a full scan and
// that the counter is zero exactly when the chains are identical.
func TestTrial_DiffCounterMatchesScan(t *testing.T) {
	for _, topo := range topologies(t) {
		for _, rule := range dynamics.All() {
			for _, param := range []float64{0, 0.3, 1.2} {
				rng := rand.New(rand.NewSource(int64(topo.Size())*31 + int64(len(rule.Name()))))
				tr := newTrial(topo, rule, param, Sitewise)
				require.Equal(t, topo.Size(), tr.diff)
				require.Equal(t, topo.Size(), tr.x.state.Differing(tr.y.state))

				for i := 0; i < 5000 && !tr.coalesced(); i++ {
					tr.step(rng)
					scan := tr.x.state.Differing(tr.y.state)
					require.Equal(t, scan, tr.diff, "%s/%s step %d", topo.Kind(), rule.Name(), i)
					require.Equal(t, tr.diff == 0, tr.x.state.Equal(tr.y.state))
				}
			}
		}
	}
}

// TestTrial_MonotoneHeatBath checks that heat-bath keeps X ≥ Y site by site,
// the ordering that makes the all-Up/all-Down pair bracket every other start.
func TestTrial_MonotoneHeatBath(t *testing.T) {
	tor, err := lattice.Torus(4)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(11))
	tr := newTrial(tor, dynamics.HeatBath{}, 0.4, Sitewise)
	for i := 0; i < 20000 && !tr.coalesced(); i++ {
		tr.step(rng)
		for s := 0; s < tor.Size(); s++ {
			require.GreaterOrEqual(t, int(tr.x.state.At(s)), int(tr.y.state.At(s)))
		}
	}
}

func TestTrial_CouplingScaled(t *testing.T) {
	k, err := lattice.Complete(8)
	require.NoError(t, err)
	tr := newTrial(k, dynamics.HeatBath{}, 2, Sitewise)
	require.InDelta(t, 0.25, tr.beta, 1e-15)
}
