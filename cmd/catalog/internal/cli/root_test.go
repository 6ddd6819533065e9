package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/valueplus/cmd/catalog/internal/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--locale", "en-US"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Modular Kitchen Upgrade")
	assert.Contains(t, out, "₹150,000")
	assert.Contains(t, out, "~10%")
}

func TestMatch(t *testing.T) {
	out, err := run(t, "match", "--budget", "60000", "--type", "Villa", "--area", "2000")
	require.NoError(t, err)

	assert.Contains(t, out, "Smart Home Integration")
	assert.Contains(t, out, "Terrace Garden/Rooftop Oasis")
	assert.NotContains(t, out, "Modular Kitchen Upgrade")

	out, err = run(t, "match", "--budget", "10", "--type", "Apartment", "--area", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "No recommendations found for your budget.")

	_, err = run(t, "match", "--budget", "lots", "--type", "Apartment", "--area", "2000")
	assert.Error(t, err)

	_, err = run(t, "match", "--type", "Apartment", "--area", "2000")
	assert.Error(t, err)

	_, err = run(t, "match", "--budget", "60000", "--area", "2000")
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	out, err := run(t, "report", "--budget", "₹80,000", "--type", "Apartment", "--area", "900")
	require.NoError(t, err)

	assert.Contains(t, out, "* Install Energy Efficient Windows | Exterior | ₹80,000 | ~5% value add")
	assert.Contains(t, out, "Total: ₹190,000 for 3 upgrades within ₹80,000")
}

func TestProperties(t *testing.T) {
	out, err := run(t, "properties")
	require.NoError(t, err)

	assert.Contains(t, out, "Green Park")
	assert.Contains(t, out, "Villa")
}

func TestSeedOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recs.csv")
	require.NoError(t, os.WriteFile(path, []byte("title,cost,category\nSolar Panels,200000,Sustainability\n"), 0o600))

	out, err := run(t, "--recommendations", path, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Solar Panels")
	assert.NotContains(t, out, "Modular Kitchen Upgrade")
}
