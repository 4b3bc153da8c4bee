package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lanes.yaml")
	data := []byte(`
verify:
  iterations: 50
  seed: 7
  backends: [sse4, avx2]
log:
  format: json
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Verify.Iterations)
	assert.Equal(t, int64(7), cfg.Verify.Seed)
	assert.Equal(t, []string{"sse4", "avx2"}, cfg.Verify.Backends)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level, "unset keys keep defaults")
	assert.Equal(t, Default().Verify.StreamLengths, cfg.Verify.StreamLengths)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verify: [1, 2"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(env(map[string]string{
		"LANES_ITERATIONS": "9",
		"LANES_SEED":       "-3",
		"LANES_WORKERS":    "2",
		"LANES_BACKENDS":   " MMX, scalar,,mmx ",
		"LANES_LOG_LEVEL":  "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Verify.Iterations)
	assert.Equal(t, int64(-3), cfg.Verify.Seed)
	assert.Equal(t, 2, cfg.Verify.Workers)
	assert.Equal(t, []string{"mmx", "scalar"}, cfg.Verify.Backends)
	assert.Equal(t, "debug", cfg.Log.Level)

	err = cfg.ApplyEnv(env(map[string]string{"LANES_ITERATIONS": "many"}))
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"iterations":     func(c *Config) { c.Verify.Iterations = 0 },
		"workers":        func(c *Config) { c.Verify.Workers = -1 },
		"backend":        func(c *Config) { c.Verify.Backends = []string{"sse4", "neon"} },
		"stream lengths": func(c *Config) { c.Verify.StreamLengths = []int{4, -1} },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
