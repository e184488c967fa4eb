package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/nucleon"
	"github.com/katalvlaran/nucleon/internal/cli"
	"github.com/katalvlaran/nucleon/semf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs a fresh command tree against an isolated config file and
// returns stdout.
func execute(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "nucleon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	var out, errOut bytes.Buffer
	root := cli.NewRootCmd("test")
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", path, "--env-file", filepath.Join(dir, ".env")}, args...))
	err := root.Execute()

	return out.String(), err
}

func TestDecay_Text(t *testing.T) {
	out, err := execute(t, "", "decay", "80", "10", "10")
	require.NoError(t, err)
	assert.Regexp(t, `remaining:\s+40\n`, out)
}

func TestFission_JSON(t *testing.T) {
	out, err := execute(t, "", "fission", "200", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Op     string  `json:"op"`
		Mass   float64 `json:"mass"`
		Energy float64 `json:"energy"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "fission", got.Op)
	assert.Equal(t, 100.0, got.Mass)

	b, _ := semf.BindingEnergy(200, 100)
	assert.Equal(t, b*200, got.Energy)
}

func TestFusion_YAMLFromConfig(t *testing.T) {
	out, err := execute(t, "output: yaml\n", "fusion", "2", "3")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "fusion", got["op"])
	assert.EqualValues(t, 5, got["mass"])
}

func TestBinding_Terms(t *testing.T) {
	out, err := execute(t, "", "binding", "4", "2", "--terms")
	require.NoError(t, err)
	assert.Contains(t, out, "binding energy:")
	assert.Contains(t, out, "pairing:")
	assert.Contains(t, out, "-6 MeV")
}

func TestBinding_CustomPairing(t *testing.T) {
	out, err := execute(t, "coefficients:\n  pairing: 0\n", "binding", "4", "2", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Energy float64 `json:"energy"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	c := semf.DefaultCoefficients()
	c.Pairing = 0
	want, _ := c.BindingEnergy(4, 2)
	assert.Equal(t, want, got.Energy)
}

func TestBinding_DomainError(t *testing.T) {
	_, err := execute(t, "", "binding", "0", "0")
	assert.ErrorIs(t, err, semf.ErrMassNumber)
	assert.ErrorIs(t, err, nucleon.ErrDomain)
}

func TestDecay_ZeroHalfLife(t *testing.T) {
	_, err := execute(t, "", "decay", "100", "0", "5")
	assert.ErrorIs(t, err, nucleon.ErrDomain)
}

func TestParse_BadNumber(t *testing.T) {
	_, err := execute(t, "", "fission", "heavy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid MASS "heavy"`)
	assert.NotErrorIs(t, err, nucleon.ErrDomain)
}

func TestArgs_Count(t *testing.T) {
	_, err := execute(t, "", "fusion", "2")
	assert.Error(t, err)
}

func TestBatch_YAMLFile(t *testing.T) {
	batch := filepath.Join(t.TempDir(), "runs.yaml")
	require.NoError(t, os.WriteFile(batch, []byte(`
- {name: fe56, op: binding, a: 56, z: 26}
- {op: decay, initial: 100, half_life: 10, elapsed: 0}
`), 0o600))

	out, err := execute(t, "", "batch", batch)
	require.NoError(t, err)
	assert.Contains(t, out, "[0] fe56 (binding)")
	assert.Contains(t, out, "[1] decay")
	assert.Regexp(t, `remaining:\s+100\n`, out)
}

func TestBatch_JSONOutputList(t *testing.T) {
	batch := filepath.Join(t.TempDir(), "runs.json")
	require.NoError(t, os.WriteFile(batch, []byte(`[{"op":"fission","mass":200},{"op":"fusion","mass1":2,"mass2":3}]`), 0o600))

	out, err := execute(t, "", "batch", batch, "-o", "json")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.EqualValues(t, 1, got[1]["index"])
	assert.EqualValues(t, 5, got[1]["mass"])
}

func TestBatch_StopsOnDomainError(t *testing.T) {
	batch := filepath.Join(t.TempDir(), "runs.yaml")
	require.NoError(t, os.WriteFile(batch, []byte("- {op: fission, mass: 200}\n- {name: bad, op: decay, initial: 1}\n"), 0o600))

	out, err := execute(t, "", "batch", batch)
	assert.ErrorIs(t, err, nucleon.ErrDomain)
	assert.Contains(t, err.Error(), "request 1 (bad)")
	assert.Empty(t, strings.TrimSpace(out))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "nucleon test\n", out)
}
