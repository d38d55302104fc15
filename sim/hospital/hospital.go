package hospital

import "github.com/edsim/edsim/sim"

// Pool names, also used as report labels.
const (
	PoolFastDoctor = "fast_doctor"
	PoolFastNurse  = "fast_nurse"
	PoolMainDoctor = "ed_doctor"
	PoolMainNurse  = "ed_nurse"
	PoolBeds       = "beds"
)

// Hospital owns the five resource pools of one run.
type Hospital struct {
	FastDoctor *sim.ResourcePool
	FastNurse  *sim.ResourcePool
	MainDoctor *sim.ResourcePool
	MainNurse  *sim.ResourcePool
	Beds       *sim.ResourcePool
}

// NewHospital builds the pools with the capacities in cfg.
func NewHospital(s *sim.Simulator, cfg Config) (*Hospital, error) {
	h := &Hospital{}
	for _, p := range []struct {
		dst      **sim.ResourcePool
		name     string
		capacity int
	}{
		{&h.FastDoctor, PoolFastDoctor, cfg.FastDoctors},
		{&h.FastNurse, PoolFastNurse, cfg.FastNurses},
		{&h.MainDoctor, PoolMainDoctor, cfg.EDDoctors},
		{&h.MainNurse, PoolMainNurse, cfg.EDNurses},
		{&h.Beds, PoolBeds, cfg.Beds},
	} {
		pool, err := sim.NewResourcePool(s, p.name, p.capacity)
		if err != nil {
			return nil, err
		}
		*p.dst = pool
	}
	return h, nil
}

// Pools returns the pools in report order.
func (h *Hospital) Pools() []*sim.ResourcePool {
	return []*sim.ResourcePool{h.FastDoctor, h.FastNurse, h.MainDoctor, h.MainNurse, h.Beds}
}

// FastQueue is the number of patients waiting for fast-track staff.
func (h *Hospital) FastQueue() int {
	return h.FastDoctor.QueueLength() + h.FastNurse.QueueLength()
}

// MainQueue is the number of patients waiting for main-department staff.
// Bed waits are not included.
func (h *Hospital) MainQueue() int {
	return h.MainDoctor.QueueLength() + h.MainNurse.QueueLength()
}

func (h *Hospital) doctor(t Track) *sim.ResourcePool {
	if t == TrackFast {
		return h.FastDoctor
	}
	return h.MainDoctor
}

func (h *Hospital) nurse(t Track) *sim.ResourcePool {
	if t == TrackFast {
		return h.FastNurse
	}
	return h.MainNurse
}
