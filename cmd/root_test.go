package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsim/edsim/sim/report"
)

func TestRunCommand_PrintsSummaryAndWritesOutputs(t *testing.T) {
	// GIVEN a small run with every output enabled
	dir := t.TempDir()
	results := filepath.Join(dir, "results.yaml")
	prom := filepath.Join(dir, "edsim.prom")
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"run", "--patients", "10", "--horizon", "600", "--chart",
		"--results", results, "--prom-out", prom})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		resultsPath, promPath, showChart = "", "", false
	})

	// WHEN executed
	require.NoError(t, rootCmd.Execute())

	// THEN the summary and charts go to stdout
	out := buf.String()
	assert.Contains(t, out, "=== Simulation Results ===")
	assert.Contains(t, out, "Resource Utilization Summary")
	assert.Contains(t, out, "Queue Lengths Over Time")

	// AND the results file holds the effective configuration
	rf, err := report.ReadResults(results)
	require.NoError(t, err)
	assert.Equal(t, 10, rf.Config.Patients)
	assert.Equal(t, 600.0, rf.Config.Horizon)
	assert.Equal(t, 10, rf.Result.Spawned)
	assert.FileExists(t, prom)
}
