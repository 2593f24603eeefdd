package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"", LevelInfo},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarn},
		{" error ", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseLevel("loud")
	require.ErrorIs(t, err, ErrBadLevel)
	require.Equal(t, "unknown", Level(42).String())
}

func TestNew_TextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: LevelWarn, Service: "spinmix", Output: &buf})
	require.NoError(t, err)
	defer l.Close()

	l.Info("hidden")
	l.Warn("shown", "param", 0.5)
	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "service=spinmix")
	require.Contains(t, out, "param=0.5")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{JSON: true, Output: &buf})
	require.NoError(t, err)
	l.Info("hello", "n", 3)
	require.Contains(t, buf.String(), `"msg":"hello"`)
	require.Contains(t, buf.String(), `"n":3`)
	require.NotContains(t, buf.String(), "service")
}

func TestNew_FileAndStream(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var buf bytes.Buffer
	l, err := New(Config{Service: "sweeper", LogDir: dir, Output: &buf})
	require.NoError(t, err)
	l.Info("both")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, strings.HasPrefix(entries[0].Name(), "sweeper_"))

	raw, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	require.Contains(t, string(raw), `"msg":"both"`)
	require.Contains(t, string(raw), `"service":"sweeper"`)
	require.Contains(t, buf.String(), "msg=both")
}

func TestNew_QuietWithoutFileDiscards(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Quiet: true, Output: &buf})
	require.NoError(t, err)
	l.Error("nothing")
	require.Empty(t, buf.String())
}
