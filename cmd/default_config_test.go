package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsim/edsim/sim/hospital"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := loadConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, hospital.DefaultConfig(), cfg)
}

func TestLoadConfigFile_OverlaysDefaults(t *testing.T) {
	// GIVEN a file that sets only some fields
	path := writeFile(t, `
beds: 9
patients: 20
activities:
  admit:
    mean: 45
    stddev: 2
    floor: 10
probabilities:
  admit: 0.25
`)

	// WHEN loaded
	cfg, err := loadConfigFile(path)
	require.NoError(t, err)

	// THEN those fields change and the rest keep their defaults
	def := hospital.DefaultConfig()
	assert.Equal(t, 9, cfg.Beds)
	assert.Equal(t, 20, cfg.Patients)
	assert.Equal(t, hospital.Distribution{Mean: 45, StdDev: 2, Floor: 10}, cfg.Activities.Admit)
	assert.Equal(t, 0.25, cfg.Probabilities.Admit)
	assert.Equal(t, def.Probabilities.FastTrack, cfg.Probabilities.FastTrack)
	assert.Equal(t, def.EDDoctors, cfg.EDDoctors)
	assert.Equal(t, def.Activities.Consult, cfg.Activities.Consult)
}

func TestLoadConfigFile_UnknownFieldRejected(t *testing.T) {
	path := writeFile(t, "bedz: 3\n")
	_, err := loadConfigFile(path)
	assert.Error(t, err)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResolveConfig_FlagsOverrideFileOnlyWhenChanged(t *testing.T) {
	// GIVEN a command with model flags and a config file
	c := &cobra.Command{Use: "test"}
	addModelFlags(c)
	configFile = writeFile(t, "beds: 9\npatients: 20\nseed: 5\n")
	t.Cleanup(func() { configFile = "" })

	// WHEN only --patients is set on the command line
	require.NoError(t, c.Flags().Set("patients", "7"))
	cfg, err := resolveConfig(c.Flags())
	require.NoError(t, err)

	// THEN the flag wins for patients and the file wins elsewhere
	assert.Equal(t, 7, cfg.Patients)
	assert.Equal(t, 9, cfg.Beds)
	assert.Equal(t, int64(5), cfg.Seed)
}
