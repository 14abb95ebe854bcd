package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hcpath/config"
)

const sample = `
graph: data/g.txt
hops: [4, 6]
log:
  level: debug
run:
  queries: [q/g_4.query, q/g_6.query]
  answers: out
  workers: 3
  mode: upperbound
generate:
  count: 50
  out: q
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hcpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/g.txt", cfg.Graph)
	assert.Equal(t, []int{4, 6}, cfg.Hops)
	assert.Equal(t, 6, cfg.MaxHops())
	assert.Equal(t, "debug", cfg.Log.Level)
	// omitted keys keep their defaults
	assert.Equal(t, "auto", cfg.Log.Format)
	assert.Equal(t, "EVE", cfg.Run.Method)
	assert.Equal(t, 1024, cfg.Run.OrderingThreshold)
	assert.Equal(t, int64(2022), cfg.Generate.Seed)
	assert.Equal(t, 3, cfg.Run.Workers)

	require.NoError(t, cfg.ValidateRun())
	require.NoError(t, cfg.ValidateGenerate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "typo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grpah: x\n"), 0o644))
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	err := cfg.ValidateRun()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	for _, field := range []string{"Config.Graph", "Config.Hops", "RunConfig.Queries"} {
		assert.Contains(t, err.Error(), field)
	}

	cfg.Graph = "g.txt"
	cfg.Hops = []int{2}
	cfg.Run.Queries = []string{"q"}
	cfg.Run.Mode = "fast"
	err = cfg.ValidateRun()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.True(t, strings.Contains(err.Error(), "Hops[0]"), err.Error())
	assert.Contains(t, err.Error(), "RunConfig.Mode must be one of")

	cfg.Hops = []int{3}
	cfg.Run.Mode = "exact"
	cfg.MetricsAddr = "not an address"
	assert.ErrorIs(t, cfg.ValidateRun(), config.ErrInvalidConfig)

	cfg.MetricsAddr = "127.0.0.1:9090"
	assert.NoError(t, cfg.ValidateRun())

	cfg.Generate.Count = 0
	assert.ErrorIs(t, cfg.ValidateGenerate(), config.ErrInvalidConfig)
}
