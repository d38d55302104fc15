package hospital

import (
	"fmt"
	"math"

	"github.com/edsim/edsim/sim"
)

// Distribution is a floor-clamped normal: max(Floor, N(Mean, StdDev)), in minutes.
type Distribution struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Floor  float64 `yaml:"floor"`
}

func (d Distribution) validate(name string) error {
	if !(d.Mean > 0) || math.IsInf(d.Mean, 0) {
		return fmt.Errorf("%w: activity %s mean must be > 0, got %v", sim.ErrInvalidConfiguration, name, d.Mean)
	}
	if !(d.StdDev >= 0) || math.IsInf(d.StdDev, 0) {
		return fmt.Errorf("%w: activity %s stddev must be >= 0, got %v", sim.ErrInvalidConfiguration, name, d.StdDev)
	}
	if !(d.Floor >= 0) || math.IsInf(d.Floor, 0) {
		return fmt.Errorf("%w: activity %s floor must be >= 0, got %v", sim.ErrInvalidConfiguration, name, d.Floor)
	}
	return nil
}

// ActivityTable holds the duration distribution of every timed activity.
type ActivityTable struct {
	Consult     Distribution `yaml:"consult"`
	Medication  Distribution `yaml:"medication"`
	Review      Distribution `yaml:"review"`
	Admit       Distribution `yaml:"admit"`
	FastLab     Distribution `yaml:"fast_lab"`
	FastLabWait Distribution `yaml:"fast_lab_wait"`
	MainLab     Distribution `yaml:"main_lab"`
	MainLabWait Distribution `yaml:"main_lab_wait"`
}

// DefaultActivities returns the standard activity table.
func DefaultActivities() ActivityTable {
	return ActivityTable{
		Consult:     Distribution{Mean: 20, StdDev: 5, Floor: 5},
		Medication:  Distribution{Mean: 15, StdDev: 3, Floor: 5},
		Review:      Distribution{Mean: 10, StdDev: 3, Floor: 3},
		Admit:       Distribution{Mean: 30, StdDev: 5, Floor: 5},
		FastLab:     Distribution{Mean: 6, StdDev: 3, Floor: 1},
		FastLabWait: Distribution{Mean: 25, StdDev: 5, Floor: 10},
		MainLab:     Distribution{Mean: 10, StdDev: 4, Floor: 3},
		MainLabWait: Distribution{Mean: 40, StdDev: 10, Floor: 15},
	}
}

func (t ActivityTable) validate() error {
	for _, a := range []struct {
		name string
		d    Distribution
	}{
		{"consult", t.Consult},
		{"medication", t.Medication},
		{"review", t.Review},
		{"admit", t.Admit},
		{"fast_lab", t.FastLab},
		{"fast_lab_wait", t.FastLabWait},
		{"main_lab", t.MainLab},
		{"main_lab_wait", t.MainLabWait},
	} {
		if err := a.d.validate(a.name); err != nil {
			return err
		}
	}
	return nil
}

// Probabilities are the per-patient branch probabilities. Each is drawn
// independently per patient and per decision point.
type Probabilities struct {
	FastTrack float64 `yaml:"fast_track"` // patient is assigned the fast track
	FastLab   float64 `yaml:"fast_lab"`   // fast-track patient needs labs
	MainLab   float64 `yaml:"main_lab"`   // main-department patient needs labs
	Admit     float64 `yaml:"admit"`      // main-department patient is admitted to a bed
}

// DefaultProbabilities returns the standard branch probabilities.
func DefaultProbabilities() Probabilities {
	return Probabilities{FastTrack: 0.3, FastLab: 0.3, MainLab: 0.7, Admit: 0.5}
}

func (p Probabilities) validate() error {
	for _, v := range []struct {
		name string
		p    float64
	}{
		{"fast_track", p.FastTrack},
		{"fast_lab", p.FastLab},
		{"main_lab", p.MainLab},
		{"admit", p.Admit},
	} {
		if !(v.p >= 0 && v.p <= 1) {
			return fmt.Errorf("%w: probability %s must be in [0, 1], got %v", sim.ErrInvalidConfiguration, v.name, v.p)
		}
	}
	return nil
}

// Config is the full parameter bundle for one run. Times are in minutes.
type Config struct {
	FastDoctors int `yaml:"fast_doctors"`
	FastNurses  int `yaml:"fast_nurses"`
	EDDoctors   int `yaml:"ed_doctors"`
	EDNurses    int `yaml:"ed_nurses"`
	Beds        int `yaml:"beds"`

	Patients        int     `yaml:"patients"`
	Horizon         float64 `yaml:"horizon"`
	ArrivalMean     float64 `yaml:"arrival_mean"` // mean inter-arrival time
	Seed            int64   `yaml:"seed"`
	MonitorInterval float64 `yaml:"monitor_interval"`

	Activities    ActivityTable `yaml:"activities"`
	Probabilities Probabilities `yaml:"probabilities"`
}

// DefaultConfig returns a one-day scenario with a fixed seed.
func DefaultConfig() Config {
	return Config{
		FastDoctors:     1,
		FastNurses:      1,
		EDDoctors:       5,
		EDNurses:        5,
		Beds:            5,
		Patients:        144,
		Horizon:         1440,
		ArrivalMean:     10,
		Seed:            42,
		MonitorInterval: DefaultMonitorInterval,
		Activities:      DefaultActivities(),
		Probabilities:   DefaultProbabilities(),
	}
}

// Validate checks the bundle before any scheduling happens. All failures wrap
// sim.ErrInvalidConfiguration. Zero patients is allowed: the monitor still runs.
func (c Config) Validate() error {
	for _, r := range []struct {
		name string
		n    int
	}{
		{"fast_doctors", c.FastDoctors},
		{"fast_nurses", c.FastNurses},
		{"ed_doctors", c.EDDoctors},
		{"ed_nurses", c.EDNurses},
		{"beds", c.Beds},
	} {
		if r.n <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %d", sim.ErrInvalidConfiguration, r.name, r.n)
		}
	}
	if c.Patients < 0 {
		return fmt.Errorf("%w: patients must be >= 0, got %d", sim.ErrInvalidConfiguration, c.Patients)
	}
	if !(c.Horizon > 0) || math.IsInf(c.Horizon, 0) {
		return fmt.Errorf("%w: horizon must be > 0, got %v", sim.ErrInvalidConfiguration, c.Horizon)
	}
	if !(c.ArrivalMean > 0) || math.IsInf(c.ArrivalMean, 0) {
		return fmt.Errorf("%w: arrival_mean must be > 0, got %v", sim.ErrInvalidConfiguration, c.ArrivalMean)
	}
	if !(c.MonitorInterval > 0) || math.IsInf(c.MonitorInterval, 0) {
		return fmt.Errorf("%w: monitor_interval must be > 0, got %v", sim.ErrInvalidConfiguration, c.MonitorInterval)
	}
	if err := c.Activities.validate(); err != nil {
		return err
	}
	return c.Probabilities.validate()
}
