package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCommon(t *testing.T, args ...string) commonFlags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	common := addCommon(fs)
	require.NoError(t, fs.Parse(args))
	return common
}

func TestScenarioListing(t *testing.T) {
	t.Run("should lead with the config scenario when --config is set", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
scenario:
  name: Evening push
  cooking_shift_percent: 55
`), 0o644))

		presets, err := parseCommon(t, "--config", path).presets("")
		require.NoError(t, err)
		require.Len(t, presets, 5)
		assert.Equal(t, "config", presets[0].ID)
		assert.Equal(t, path, presets[0].File)

		var buf bytes.Buffer
		listScenarios(&buf, presets)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 6)
		assert.True(t, strings.HasPrefix(lines[1], "config "))
		assert.Contains(t, lines[1], "Evening push")
		assert.Contains(t, lines[1], "55")
		assert.True(t, strings.HasPrefix(lines[2], "baseline "))
	})

	t.Run("should list only the presets without a config", func(t *testing.T) {
		presets, err := parseCommon(t).presets("")
		require.NoError(t, err)
		require.Len(t, presets, 4)
		assert.Equal(t, "baseline", presets[0].ID)
	})

	t.Run("should fail on an invalid config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("params:\n  bess:\n    efficiency: 3\n"), 0o644))

		_, err := parseCommon(t, "--config", path).presets("")
		assert.Error(t, err)
	})
}

func TestLoadCommon(t *testing.T) {
	t.Run("should use the config scenario inputs", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
params:
  grid:
    peak_demand_mw: 170
scenario:
  thermal_displacement: 65
`), 0o644))

		calc, in := parseCommon(t, "--config", path).load()
		assert.Equal(t, 170.0, calc.Params().Grid.PeakDemandMW)
		assert.Equal(t, 65.0, in.ThermalDisplacement)
	})
}
