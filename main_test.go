package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSnapshot(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "clock.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`window_title = "Regulator"
show_readout = false
`), 0o644))
	out := filepath.Join(dir, "clock.svg")

	require.NoError(t, run([]string{"-config", cfgPath, "-log-level", "error", "-snapshot", out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	svg := string(data)
	assert.Contains(t, svg, "<title>Regulator</title>")
	assert.NotContains(t, svg, "<text")
	assert.Equal(t, 6, strings.Count(svg, "fill-rule:evenodd"))
}

func TestRunRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	err := run([]string{"-volume", "2", "-snapshot", filepath.Join(dir, "x.svg")})
	assert.ErrorContains(t, err, "volume")

	err = run([]string{"-volume", "NaN", "-snapshot", filepath.Join(dir, "x.svg")})
	assert.ErrorContains(t, err, "volume")

	err = run([]string{"-config", filepath.Join(dir, "missing.hcl")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Error(t, run([]string{"-no-such-flag"}))
	assert.NoError(t, run([]string{"-h"}))
}
