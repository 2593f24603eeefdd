package sweep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinmix/sweep"
)

func TestRange_Points(t *testing.T) {
	pts, err := sweep.Range{Low: 0, High: 0.02, Step: 0.01}.Points()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.01, 0.02}, pts)

	pts, err = sweep.Range{Low: 0.5, High: 0.5, Step: 0.1}.Points()
	require.NoError(t, err)
	require.Equal(t, []float64{0.5}, pts)

	pts, err = sweep.Range{Low: 1, High: 2, Step: 5}.Points()
	require.NoError(t, err)
	require.Equal(t, []float64{1}, pts)
}

func TestRange_Accumulates(t *testing.T) {
	pts, err := sweep.Range{Low: 0.01, High: 0.6, Step: 0.01}.Points()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(pts), 59)
	acc := 0.01
	for i, p := range pts {
		require.Equal(t, acc, p, "index %d", i)
		acc += 0.01
	}
	for i := 1; i < len(pts); i++ {
		require.Less(t, pts[i-1], pts[i])
	}
}

func TestRange_Errors(t *testing.T) {
	cases := []struct {
		name string
		r    sweep.Range
		want error
	}{
		{"ZeroStep", sweep.Range{Low: 0, High: 1, Step: 0}, sweep.ErrBadStep},
		{"NegativeStep", sweep.Range{Low: 0, High: 1, Step: -0.1}, sweep.ErrBadStep},
		{"NaNStep", sweep.Range{Low: 0, High: 1, Step: math.NaN()}, sweep.ErrBadStep},
		{"InfStep", sweep.Range{Low: 0, High: 1, Step: math.Inf(1)}, sweep.ErrBadStep},
		{"TooManyPoints", sweep.Range{Low: 0, High: 1, Step: 1e-9}, sweep.ErrBadStep},
		{"VanishingStep", sweep.Range{Low: 1e17, High: 1e17 + 64, Step: 1}, sweep.ErrBadStep},
		// 2^57 - 64 has a spacing of 16, 2^57 one of 32.
		{"VanishingAtHigh", sweep.Range{Low: 1<<57 - 64, High: 1 << 57, Step: 16}, sweep.ErrBadStep},
		{"Inverted", sweep.Range{Low: 1, High: 0, Step: 0.1}, sweep.ErrEmptyRange},
		{"NaNLow", sweep.Range{Low: math.NaN(), High: 1, Step: 0.1}, sweep.ErrEmptyRange},
		{"InfHigh", sweep.Range{Low: 0, High: math.Inf(1), Step: 0.1}, sweep.ErrEmptyRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.r.Validate(), tc.want)
			_, err := tc.r.Points()
			require.ErrorIs(t, err, tc.want)
		})
	}
}
