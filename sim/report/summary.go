package report

import (
	"github.com/edsim/edsim/sim/hospital"
)

// ResourceSummary is the average and peak utilization of one pool plus its
// lifetime counters.
type ResourceSummary struct {
	Name         string  `yaml:"name"`
	Label        string  `yaml:"label"`
	Capacity     int     `yaml:"capacity"`
	AvgUtil      float64 `yaml:"avg_utilization"`
	PeakUtil     float64 `yaml:"peak_utilization"`
	Acquisitions int     `yaml:"acquisitions"`
	Immediate    int     `yaml:"immediate"`
	PeakQueue    int     `yaml:"peak_queue"`
}

// Summary aggregates a hospital.Result for display.
type Summary struct {
	Spawned    int `yaml:"spawned"`
	Completed  int `yaml:"completed"`
	InProgress int `yaml:"in_progress"`

	AvgWait    float64 `yaml:"avg_wait"`
	MaxWait    float64 `yaml:"max_wait"`
	MedianWait float64 `yaml:"median_wait"`
	P90Wait    float64 `yaml:"p90_wait"`

	AvgQueueFast float64 `yaml:"avg_queue_fast"`
	AvgQueueMain float64 `yaml:"avg_queue_main"`
	MaxQueueFast int     `yaml:"max_queue_fast"`
	MaxQueueMain int     `yaml:"max_queue_main"`

	Resources []ResourceSummary `yaml:"resources"`
}

// resourceLabels maps pool names to display labels, in report order.
var resourceLabels = []struct {
	name  string
	label string
}{
	{hospital.PoolFastDoctor, "Fast-Track Doctor Util"},
	{hospital.PoolFastNurse, "Fast-Track Nurse Util"},
	{hospital.PoolMainDoctor, "Main ED Doctor Util"},
	{hospital.PoolMainNurse, "Main ED Nurse Util"},
	{hospital.PoolBeds, "Bed Utilization"},
}

// Summarize computes aggregate statistics from a Result.
// Safe for nil or empty results (returns zero-value fields).
func Summarize(r *hospital.Result) *Summary {
	s := &Summary{}
	if r == nil {
		return s
	}
	s.Spawned = r.Spawned
	s.Completed = r.Completed
	s.InProgress = r.InProgress()

	s.AvgWait = CalculateMean(r.WaitTimes)
	s.MaxWait = CalculateMax(r.WaitTimes)
	s.MedianWait = CalculatePercentile(r.WaitTimes, 50)
	s.P90Wait = CalculatePercentile(r.WaitTimes, 90)

	stats := make(map[string]int, len(r.Pools))
	for i, p := range r.Pools {
		stats[p.Name] = i
	}

	var utils map[string][]float64
	if r.Series != nil {
		s.AvgQueueFast = CalculateMean(r.Series.QueueFast)
		s.AvgQueueMain = CalculateMean(r.Series.QueueMain)
		s.MaxQueueFast = int(CalculateMax(r.Series.QueueFast))
		s.MaxQueueMain = int(CalculateMax(r.Series.QueueMain))
		utils = r.Series.Utilizations()
	}

	for _, rl := range resourceLabels {
		rs := ResourceSummary{
			Name:     rl.name,
			Label:    rl.label,
			AvgUtil:  CalculateMean(utils[rl.name]),
			PeakUtil: CalculateMax(utils[rl.name]),
		}
		if i, ok := stats[rl.name]; ok {
			p := r.Pools[i]
			rs.Capacity = p.Capacity
			rs.Acquisitions = p.Acquisitions
			rs.Immediate = p.Immediate
			rs.PeakQueue = p.PeakQueue
		}
		s.Resources = append(s.Resources, rs)
	}
	return s
}
