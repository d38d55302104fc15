package hospital

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/edsim/edsim/sim"
)

// Result is everything a run hands to reporting.
type Result struct {
	WaitTimes []float64       `yaml:"wait_times"` // per-patient minutes, in completion order
	Series    *Series         `yaml:"series"`
	Journeys  []Journey       `yaml:"journeys"`
	Pools     []sim.PoolStats `yaml:"pools"` // pool state at the end of the run
	Spawned   int             `yaml:"spawned"`
	Completed int             `yaml:"completed"`
	EndTime   float64         `yaml:"end_time"`
}

// InProgress is the number of patients still in the department at the horizon.
func (r *Result) InProgress() int {
	return r.Spawned - r.Completed
}

// model is the shared state of one run that processes read and append to.
type model struct {
	cfg      Config
	hospital *Hospital
	routing  *sim.Variates
	service  *sim.Variates
	result   *Result
}

// Run validates cfg, simulates one department run up to cfg.Horizon and
// returns the collected data. The engine state is discarded on return.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := sim.NewSimulator(sim.NewSimulationKey(cfg.Seed))
	h, err := NewHospital(s, cfg)
	if err != nil {
		return nil, err
	}
	m := &model{
		cfg:      cfg,
		hospital: h,
		routing:  s.RNG.Variates(sim.SubsystemRouting),
		service:  s.RNG.Variates(sim.SubsystemService),
		result:   &Result{Series: &Series{}},
	}

	logrus.Infof("Starting simulation: %d patients, horizon=%.0f min, arrival mean=%.2f min, seed=%d",
		cfg.Patients, cfg.Horizon, cfg.ArrivalMean, cfg.Seed)

	s.Spawn(newArrivalGenerator(m, s.RNG.Variates(sim.SubsystemArrivals)))
	s.Spawn(NewMonitor(h, cfg.MonitorInterval, m.result.Series))

	if err := s.Run(cfg.Horizon); err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}

	m.result.EndTime = s.Now()
	for _, p := range h.Pools() {
		m.result.Pools = append(m.result.Pools, p.Stats())
	}
	if n := m.result.InProgress(); n > 0 {
		logrus.Warnf("%d of %d patients still in the department at t=%.0f", n, m.result.Spawned, s.Now())
	}
	logrus.Infof("Simulation complete: %d patients finished, %d events", m.result.Completed, s.Processed())
	return m.result, nil
}
