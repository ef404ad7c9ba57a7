package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScanCommand_Golden(t *testing.T) {
	out, err := runCommand(t, "scan", "20")
	require.NoError(t, err, "scan 20 should succeed")

	g := goldie.New(t)
	g.Assert(t, "scan20", []byte(out))
}

func TestScanCommand_ViolationsDoNotFail(t *testing.T) {
	// Interior zeros are reported but never turn into a non-zero exit.
	out, err := runCommand(t, "scan", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "violations:")
	assert.Contains(t, out, "S(5)=0 but 6 is not a Lucas number")
	assert.Contains(t, out, "10 equilibria, 11 violations")
}

func TestScanCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max: 20\nshards: 4\n"), 0o644))

	out, err := runCommand(t, "scan", "--config", path)
	require.NoError(t, err)

	// Same range as the golden scan; sharding must not change the output.
	g := goldie.New(t)
	g.Assert(t, "scan20", []byte(out))
}

func TestScanCommand_ArgOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max: 100\n"), 0o644))

	out, err := runCommand(t, "scan", "--config", path, "20")
	require.NoError(t, err)
	assert.Contains(t, out, "equilibria in [0, 20]:")
}

func TestScanCommand_BadBound(t *testing.T) {
	_, err := runCommand(t, "scan", "twenty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an integer")

	_, err = runCommand(t, "scan", "--", "-5")
	require.Error(t, err)
}

func TestSeqCommand(t *testing.T) {
	out, err := runCommand(t, "seq", "fib", "100")
	require.NoError(t, err)
	assert.Equal(t, "354224848179261915075\n", out)

	out, err = runCommand(t, "seq", "lucas", "10")
	require.NoError(t, err)
	assert.Equal(t, "123\n", out)

	_, err = runCommand(t, "seq", "tribonacci", "10")
	require.Error(t, err)

	_, err = runCommand(t, "seq", "fib", "--", "-1")
	require.Error(t, err)
}

func TestDecomposeCommand(t *testing.T) {
	out, err := runCommand(t, "decompose", "100")
	require.NoError(t, err)
	assert.Equal(t, "100 = 89 + 8 + 3\n100 = F(11) + F(6) + F(4)\n", out)

	out, err = runCommand(t, "decompose", "--lucas", "100")
	require.NoError(t, err)
	assert.Equal(t, "100 = 76 + 18 + 4 + 2\n100 = L(9) + L(6) + L(3) + L(0)\n", out)

	out, err = runCommand(t, "decompose", "0")
	require.NoError(t, err)
	assert.Equal(t, "0 = (empty)\n", out)

	_, err = runCommand(t, "decompose", "12.5")
	require.Error(t, err)
}
