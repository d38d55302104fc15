package hospital

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edsim/edsim/sim"
)

// fixedActivities returns a table with zero variance so durations equal the means.
func fixedActivities() ActivityTable {
	t := DefaultActivities()
	for _, d := range []*Distribution{
		&t.Consult, &t.Medication, &t.Review, &t.Admit,
		&t.FastLab, &t.FastLabWait, &t.MainLab, &t.MainLabWait,
	} {
		d.StdDev = 0
	}
	return t
}

// singleStaffConfig is a one-unit-per-pool configuration.
func singleStaffConfig() Config {
	cfg := DefaultConfig()
	cfg.FastDoctors, cfg.FastNurses, cfg.EDDoctors, cfg.EDNurses, cfg.Beds = 1, 1, 1, 1, 1
	return cfg
}

// newTestModel wires a model by hand so tests can spawn patients directly.
func newTestModel(t *testing.T, cfg Config) (*sim.Simulator, *model) {
	t.Helper()
	require.NoError(t, cfg.Validate())
	s := sim.NewSimulator(sim.NewSimulationKey(cfg.Seed))
	h, err := NewHospital(s, cfg)
	require.NoError(t, err)
	return s, &model{
		cfg:      cfg,
		hospital: h,
		routing:  s.RNG.Variates(sim.SubsystemRouting),
		service:  s.RNG.Variates(sim.SubsystemService),
		result:   &Result{Series: &Series{}},
	}
}
