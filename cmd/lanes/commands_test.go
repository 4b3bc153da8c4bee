package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/lanes/features"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, lanes.CurrentName())
	assert.Contains(t, out, "host supported")
}

func TestFeatures(t *testing.T) {
	out, err := run(t, "features")
	require.NoError(t, err)
	assert.Contains(t, out, "best backend")
	assert.Contains(t, out, features.Detect().Best())
}

func TestPrintFeatures(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printFeatures(&buf, features.Set{Arch: "amd64", MMX: true, SSE2: true}))
	out := buf.String()
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, "mmx sse2")
	assert.Contains(t, out, "scalar mmx")
}

func TestVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lanes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verify:\n  stream_lengths: [5, 40]\nlog:\n  level: error\n"), 0o600))

	out, err := run(t, "verify", "--config", path, "--iterations", "10", "--backends", "scalar,sse4", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "scalar")
	assert.Contains(t, out, "sse4")
	assert.NotContains(t, out, "avx512")
	assert.Contains(t, out, `lanes_verify_checks_total{backend=scalar+sse4,stage=crosscheck} 2`)
}

func TestVerifyRejectsUnknownBackend(t *testing.T) {
	_, err := run(t, "verify", "--backends", "neon", "--log-level", "error")
	assert.Error(t, err)
}
