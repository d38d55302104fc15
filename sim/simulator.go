// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// State is the lifecycle state of a Simulator.
type State int

const (
	StateIdle    State = iota // nothing has run yet
	StateRunning              // inside Run
	StateHalted               // horizon reached, queue drained, or a process failed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Simulator is the core object that holds simulation time, the event queue and
// the seeded random source for one run.
//
// Execution is single-threaded and cooperative: exactly one process runs at
// any virtual instant, so the clock and every ResourcePool are only touched
// from the Run loop and need no locking.
type Simulator struct {
	clock     float64
	queue     EventQueue
	seq       uint64
	state     State
	processed int

	// RNG is the per-run random source. Processes take their streams from here.
	RNG *PartitionedRNG
}

// NewSimulator creates an idle simulator at time 0 seeded with key.
func NewSimulator(key SimulationKey) *Simulator {
	s := &Simulator{
		queue: make(EventQueue, 0),
		state: StateIdle,
		RNG:   NewPartitionedRNG(key),
	}
	heap.Init(&s.queue)
	return s
}

// Now returns the current virtual time.
func (sim *Simulator) Now() float64 {
	return sim.clock
}

// State returns the lifecycle state.
func (sim *Simulator) State() State {
	return sim.state
}

// Pending returns the number of scheduled events not yet executed.
func (sim *Simulator) Pending() int {
	return sim.queue.Len()
}

// Processed returns the number of events executed so far.
func (sim *Simulator) Processed() int {
	return sim.processed
}

// ScheduleAfter arranges for p to be resumed at Now()+delay.
// Events with equal timestamps are resumed in the order they were scheduled.
func (sim *Simulator) ScheduleAfter(delay float64, p Process) error {
	if delay < 0 || math.IsNaN(delay) {
		return fmt.Errorf("%w: %v requested by %s at t=%.3f", ErrInvalidDelay, delay, p.Name(), sim.clock)
	}
	sim.push(sim.clock+delay, p)
	return nil
}

// Spawn starts p at the current instant, after every event already
// scheduled for this instant.
func (sim *Simulator) Spawn(p Process) {
	logrus.Debugf("[t=%9.3f] spawn %s", sim.clock, p.Name())
	sim.push(sim.clock, p)
}

func (sim *Simulator) push(at float64, p Process) {
	sim.seq++
	heap.Push(&sim.queue, &event{time: at, seq: sim.seq, target: p})
}

// Run executes events in (time, seq) order until the next event lies beyond
// until or the queue is empty. On normal completion the clock is left at
// until, even if no event fired exactly there. An error returned by a process
// halts the run immediately and is returned wrapped.
func (sim *Simulator) Run(until float64) error {
	if until < sim.clock || math.IsNaN(until) {
		return fmt.Errorf("%w: horizon %v is before current time %v", ErrInvalidDelay, until, sim.clock)
	}
	sim.state = StateRunning
	for sim.queue.Len() > 0 && sim.queue[0].time <= until {
		// get the next event to be simulated
		ev := heap.Pop(&sim.queue).(*event)
		// advance the clock
		sim.clock = ev.time
		sim.processed++
		logrus.Tracef("[t=%9.3f] resume %s", sim.clock, ev.target.Name())
		if err := ev.target.Resume(sim); err != nil {
			sim.state = StateHalted
			return fmt.Errorf("process %s at t=%.3f: %w", ev.target.Name(), sim.clock, err)
		}
	}
	sim.clock = until
	sim.state = StateHalted
	logrus.Debugf("[t=%9.3f] simulation halted, %d events processed, %d pending", sim.clock, sim.processed, sim.queue.Len())
	return nil
}
