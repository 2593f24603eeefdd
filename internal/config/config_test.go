package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinmix/internal/config"
	"github.com/katalvlaran/spinmix/model"
	"github.com/katalvlaran/spinmix/sweep"
)

func TestParse_Full(t *testing.T) {
	src := `
model: torus-metropolis
n: 16
trials: 5
range: {low: 0.3, high: 0.5, step: 0.05}
seed: 42
workers: 4
max_steps: 1000000
criterion: magnetization
progress_interval: 2s
output:
  dir: out
  sink: sqlite
  sqlite_path: out/runs.db
log:
  level: debug
  json: true
  quiet: true
metrics:
  addr: 127.0.0.1:9090
`
	cfg, err := config.Parse([]byte(src))
	require.NoError(t, err)
	require.Equal(t, "torus-metropolis", cfg.Model)
	require.Equal(t, 16, cfg.N)
	require.Equal(t, &sweep.Range{Low: 0.3, High: 0.5, Step: 0.05}, cfg.Range)
	require.Equal(t, uint64(1000000), cfg.MaxSteps)
	require.Equal(t, 2*time.Second, cfg.ProgressInterval)
	require.Equal(t, config.SinkSQLite, cfg.Output.Sink)
	require.True(t, cfg.Log.JSON)
	require.True(t, cfg.Log.Quiet)
	require.Equal(t, "127.0.0.1:9090", cfg.Metrics.Addr)
}

func TestParse_DefaultsFillGaps(t *testing.T) {
	cfg, err := config.Parse([]byte("n: 8\n"))
	require.NoError(t, err)
	def := config.Default()
	def.N = 8
	require.Equal(t, def, cfg)

	cfg, err = config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"UnknownKey":   "trails: 3\n",
		"UnknownModel": "model: ising-3d\n",
		"ZeroTrials":   "trials: 0\n",
		"ZeroWorkers":  "workers: 0\n",
		"Criterion":    "criterion: energy\n",
		"Sink":         "output: {sink: kafka}\n",
		"Level":        "log: {level: loud}\n",
		"Range":        "range: {low: 1, high: 0, step: 0.1}\n",
		"NegativeN":    "n: -1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(src))
			require.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("model: nope\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	require.ErrorIs(t, err, model.ErrUnknownModel)

	_, err = config.Parse([]byte("range: {low: 0, high: 1, step: 0}\n"))
	require.ErrorIs(t, err, sweep.ErrBadStep)

	_, err = config.Parse([]byte("range: {low: 1e17, high: 1.00000000000000064e17, step: 1}\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	require.ErrorIs(t, err, sweep.ErrBadStep)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: curie-weiss-heat-bath\nn: 100\n"), 0o644))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "curie-weiss-heat-bath", cfg.Model)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_ParsesBack(t *testing.T) {
	cfg := config.Default()
	cfg.Model = "torus-heat-bath"
	cfg.Range = &sweep.Range{Low: 0.1, High: 0.2, Step: 0.01}
	data, err := cfg.Marshal()
	require.NoError(t, err)
	require.Contains(t, string(data), "progress_interval: 10s")

	back, err := config.Parse(data)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}
