package report

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry builds a prometheus registry holding the summary as gauges.
// A fresh registry is used so repeated runs in one process never collide.
func Registry(s *Summary) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()

	patients := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "edsim_patients",
		Help: "Patients by outcome at the end of the run",
	}, []string{"state"})
	wait := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "edsim_wait_minutes",
		Help: "Total time in the department per patient, in minutes",
	}, []string{"stat"})
	queue := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "edsim_queue_length_avg",
		Help: "Average sampled queue length",
	}, []string{"queue"})
	util := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "edsim_resource_utilization_avg",
		Help: "Average sampled utilization (0-1)",
	}, []string{"resource"})
	capacity := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "edsim_resource_capacity",
		Help: "Configured units per resource",
	}, []string{"resource"})
	peakQueue := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "edsim_resource_peak_queue",
		Help: "Longest wait list observed per resource",
	}, []string{"resource"})

	for _, c := range []prometheus.Collector{patients, wait, queue, util, capacity, peakQueue} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	patients.WithLabelValues("spawned").Set(float64(s.Spawned))
	patients.WithLabelValues("completed").Set(float64(s.Completed))
	patients.WithLabelValues("in_progress").Set(float64(s.InProgress))

	wait.WithLabelValues("avg").Set(s.AvgWait)
	wait.WithLabelValues("median").Set(s.MedianWait)
	wait.WithLabelValues("p90").Set(s.P90Wait)
	wait.WithLabelValues("max").Set(s.MaxWait)

	queue.WithLabelValues("fast_track").Set(s.AvgQueueFast)
	queue.WithLabelValues("main").Set(s.AvgQueueMain)

	for _, r := range s.Resources {
		util.WithLabelValues(r.Name).Set(r.AvgUtil)
		capacity.WithLabelValues(r.Name).Set(float64(r.Capacity))
		peakQueue.WithLabelValues(r.Name).Set(float64(r.PeakQueue))
	}
	return reg, nil
}

// WritePrometheus writes the summary to path in the text exposition format
// read by the node_exporter textfile collector.
func WritePrometheus(path string, s *Summary) error {
	reg, err := Registry(s)
	if err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, reg)
}
