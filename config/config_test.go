package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/config"
	"github.com/katalvlaran/hillclimb/hillclimb"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.Equal(t, "dijkstra", cfg.Frontier)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.Empty(t, cfg.Input)
}

func TestDecode(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(`
input: maps/day12.txt
workers: 3
frontier: bfs
render: true
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Input:    "maps/day12.txt",
		Workers:  3,
		Frontier: "bfs",
		Render:   true,
		LogLevel: "debug",
	}, cfg)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
}

func TestDecode_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("render: true\n"))
	require.NoError(t, err)
	want := config.Default()
	want.Render = true
	assert.Equal(t, want, cfg)

	cfg, err = config.Decode(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"UnknownKey":  "colour: blue\n",
		"BadWorkers":  "workers: 0\n",
		"BadFrontier": "frontier: astar\n",
		"BadLevel":    "log_level: loud\n",
		"NotYAML":     "workers: [1, 2\n",
		"WrongType":   "workers: many\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hillclimb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolverOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Frontier = "bfs"
	opts, err := cfg.SolverOptions(logrus.New())
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	o := hillclimb.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	assert.Equal(t, hillclimb.FrontierBFS, o.Frontier)
	assert.Equal(t, cfg.Workers, o.Workers)

	cfg.Frontier = "astar"
	_, err = cfg.SolverOptions(logrus.New())
	require.Error(t, err)

	assert.Equal(t, "bfs", config.Config{Frontier: "bfs"}.Fields()["frontier"])
}
