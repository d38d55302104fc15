package sim

// Process is one independently scheduled unit of simulated behavior: a
// patient's journey, the arrival generator or the monitor.
//
// Resume runs the process from its current suspension point up to the next
// one. A process suspends by scheduling itself with ScheduleAfter (timed
// delay) or by being parked in a ResourcePool wait list, and then returning.
// Resume must never block.
type Process interface {
	Name() string
	Resume(sim *Simulator) error
}

// ProcessFunc adapts a plain function to the Process interface.
type ProcessFunc struct {
	name string
	fn   func(*Simulator) error
}

// NewProcessFunc returns a Process named name that calls fn on every resume.
func NewProcessFunc(name string, fn func(*Simulator) error) *ProcessFunc {
	return &ProcessFunc{name: name, fn: fn}
}

// Name returns the process name.
func (p *ProcessFunc) Name() string { return p.name }

// Resume invokes the wrapped function.
func (p *ProcessFunc) Resume(sim *Simulator) error { return p.fn(sim) }

// event is a pending resumption of target at time.
// seq is assigned at schedule time and breaks timestamp ties in insertion order.
type event struct {
	time   float64
	seq    uint64
	target Process
}

// EventQueue implements heap.Interface and orders events by (time, seq).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []*event

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	if eq[i].time != eq[j].time {
		return eq[i].time < eq[j].time
	}
	return eq[i].seq < eq[j].seq
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(*event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*eq = old[0 : n-1]
	return item
}
