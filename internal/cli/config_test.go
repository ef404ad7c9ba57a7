package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultScanSettings(t *testing.T) {
	s := DefaultScanSettings()
	assert.Equal(t, 10_000, s.Max)
	assert.Equal(t, 1, s.Shards)
	assert.False(t, s.Verbose)
}

func TestLoadScanSettings_FullFile(t *testing.T) {
	path := writeConfig(t, "max: 500\nshards: 8\nverbose: true\n")
	s, err := LoadScanSettings(path)
	require.NoError(t, err)
	assert.Equal(t, ScanSettings{Max: 500, Shards: 8, Verbose: true}, s)
}

func TestLoadScanSettings_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "shards: 4\n")
	s, err := LoadScanSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 10_000, s.Max, "unset max keeps default")
	assert.Equal(t, 4, s.Shards)

	// An explicit zero is honored, not treated as unset.
	path = writeConfig(t, "max: 0\n")
	s, err = LoadScanSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Max)
}

func TestLoadScanSettings_Invalid(t *testing.T) {
	_, err := LoadScanSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := writeConfig(t, "max: [not a number")
	_, err = LoadScanSettings(path)
	require.Error(t, err)

	path = writeConfig(t, "max: -1\n")
	_, err = LoadScanSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")

	path = writeConfig(t, "shards: -2\n")
	_, err = LoadScanSettings(path)
	require.Error(t, err)
}
