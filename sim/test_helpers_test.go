package sim

import "fmt"

// recorder is a Process that appends "name@time" to a shared log every time
// it is resumed and optionally reschedules itself.
type recorder struct {
	name  string
	log   *[]string
	times *[]float64
	every float64 // reschedule period; 0 means run once
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Resume(sim *Simulator) error {
	if r.log != nil {
		*r.log = append(*r.log, fmt.Sprintf("%s@%g", r.name, sim.Now()))
	}
	if r.times != nil {
		*r.times = append(*r.times, sim.Now())
	}
	if r.every > 0 {
		return sim.ScheduleAfter(r.every, r)
	}
	return nil
}

// holder acquires one unit of pool, holds it for hold, then releases it.
// onStep, if set, runs after every acquire and release.
type holder struct {
	name   string
	pool   *ResourcePool
	hold   float64
	onStep func()

	grant      *Grant
	step       int
	waited     bool
	acquiredAt float64
	releasedAt float64
	order      *[]string
}

func (h *holder) Name() string { return h.name }

func (h *holder) Resume(sim *Simulator) error {
	switch h.step {
	case 0:
		g, ok := h.pool.Acquire(h)
		h.grant = g
		h.step = 1
		if h.onStep != nil {
			h.onStep()
		}
		if !ok {
			h.waited = true
			return nil
		}
		fallthrough
	case 1:
		h.acquiredAt = sim.Now()
		h.step = 2
		if h.order != nil {
			*h.order = append(*h.order, h.name)
		}
		return sim.ScheduleAfter(h.hold, h)
	case 2:
		h.releasedAt = sim.Now()
		h.step = 3
		err := h.pool.Release(h.grant)
		if h.onStep != nil {
			h.onStep()
		}
		return err
	}
	return nil
}

func (h *holder) done() bool { return h.step == 3 }
