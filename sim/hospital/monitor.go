package hospital

import "github.com/edsim/edsim/sim"

// DefaultMonitorInterval is the sampling period in minutes.
const DefaultMonitorInterval = 5.0

// Monitor samples queue lengths and utilizations every interval. It has no
// terminal state; it stops when the scheduler does. It only reads the pools.
type Monitor struct {
	hospital *Hospital
	interval float64
	series   *Series
}

// NewMonitor returns a monitor appending to series.
func NewMonitor(h *Hospital, interval float64, series *Series) *Monitor {
	return &Monitor{hospital: h, interval: interval, series: series}
}

// Name implements sim.Process.
func (m *Monitor) Name() string { return "monitor" }

// Resume records one snapshot and sleeps for one interval.
func (m *Monitor) Resume(s *sim.Simulator) error {
	m.series.Append(m.Sample(s.Now()))
	return s.ScheduleAfter(m.interval, m)
}

// Sample reads the current state of the hospital.
func (m *Monitor) Sample(now float64) Snapshot {
	h := m.hospital
	return Snapshot{
		Time:           now,
		QueueFast:      h.FastQueue(),
		QueueMain:      h.MainQueue(),
		UtilFastDoctor: h.FastDoctor.Utilization(),
		UtilFastNurse:  h.FastNurse.Utilization(),
		UtilMainDoctor: h.MainDoctor.Utilization(),
		UtilMainNurse:  h.MainNurse.Utilization(),
		UtilBeds:       h.Beds.Utilization(),
	}
}
