package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Grant is the handle for one unit of a ResourcePool. It is pending while its
// owner waits in the pool's queue, active once admitted, and invalid after
// Release.
type Grant struct {
	pool   *ResourcePool
	id     uint64
	owner  Process
	active bool
}

// Active reports whether the grant currently holds a unit.
func (g *Grant) Active() bool { return g.active }

// Pool returns the pool that issued the grant.
func (g *Grant) Pool() *ResourcePool { return g.pool }

func (g *Grant) String() string {
	return fmt.Sprintf("%s#%d(%s)", g.pool.name, g.id, g.owner.Name())
}

// PoolStats is a point-in-time view of a pool plus its lifetime counters.
type PoolStats struct {
	Name         string `yaml:"name"`
	Capacity     int    `yaml:"capacity"`
	Occupancy    int    `yaml:"occupancy"`
	QueueLength  int    `yaml:"queue_length"`
	Acquisitions int    `yaml:"acquisitions"`
	Immediate    int    `yaml:"immediate"`
	PeakQueue    int    `yaml:"peak_queue"`
}

// ResourcePool is a capacity-bounded shared resource with FIFO admission.
//
// Invariants: 0 <= occupancy <= capacity, and occupancy + QueueLength()
// equals the number of grants handed out and not yet released.
type ResourcePool struct {
	sim       *Simulator
	name      string
	capacity  int
	occupancy int
	waiting   WaitQueue

	nextID       uint64
	acquisitions int
	immediate    int
	peakQueue    int
}

// NewResourcePool creates a pool of capacity units bound to sim.
func NewResourcePool(sim *Simulator, name string, capacity int) (*ResourcePool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: pool %q capacity must be > 0, got %d", ErrInvalidConfiguration, name, capacity)
	}
	return &ResourcePool{sim: sim, name: name, capacity: capacity}, nil
}

// Acquire requests one unit on behalf of p.
//
// If a unit is free it is taken at once: the returned grant is active and ok
// is true, and p carries on without suspending. Otherwise the pending grant
// joins the back of the wait list, ok is false, and p must return from Resume.
// p is resumed at the instant a Release admits it, with the grant active.
func (rp *ResourcePool) Acquire(p Process) (g *Grant, ok bool) {
	rp.nextID++
	rp.acquisitions++
	g = &Grant{pool: rp, id: rp.nextID, owner: p}
	if rp.occupancy < rp.capacity {
		rp.occupancy++
		rp.immediate++
		g.active = true
		return g, true
	}
	rp.waiting.Enqueue(g)
	if n := rp.waiting.Len(); n > rp.peakQueue {
		rp.peakQueue = n
	}
	logrus.Tracef("[t=%9.3f] %s waits on %s (queue=%d)", rp.sim.Now(), p.Name(), rp.name, rp.waiting.Len())
	return g, false
}

// Release returns the unit held by g. If anyone is waiting, the head of the
// wait list is admitted immediately and scheduled to resume at the current
// instant; no other process can claim the unit in between.
func (rp *ResourcePool) Release(g *Grant) error {
	if g == nil || g.pool != rp {
		return fmt.Errorf("%w: %s", ErrForeignGrant, rp.name)
	}
	if !g.active {
		return fmt.Errorf("%w: %s", ErrDoubleRelease, g)
	}
	g.active = false
	rp.occupancy--

	next := rp.waiting.Dequeue()
	if next == nil {
		return nil
	}
	rp.occupancy++
	next.active = true
	logrus.Tracef("[t=%9.3f] %s admitted to %s", rp.sim.Now(), next.owner.Name(), rp.name)
	return rp.sim.ScheduleAfter(0, next.owner)
}

// Name returns the pool name.
func (rp *ResourcePool) Name() string { return rp.name }

// Capacity returns the fixed number of units.
func (rp *ResourcePool) Capacity() int { return rp.capacity }

// Occupancy returns the number of units currently held.
func (rp *ResourcePool) Occupancy() int { return rp.occupancy }

// QueueLength returns the number of waiting requesters.
func (rp *ResourcePool) QueueLength() int { return rp.waiting.Len() }

// Utilization returns occupancy / capacity, in [0, 1].
func (rp *ResourcePool) Utilization() float64 {
	return float64(rp.occupancy) / float64(rp.capacity)
}

// Stats returns the current PoolStats.
func (rp *ResourcePool) Stats() PoolStats {
	return PoolStats{
		Name:         rp.name,
		Capacity:     rp.capacity,
		Occupancy:    rp.occupancy,
		QueueLength:  rp.waiting.Len(),
		Acquisitions: rp.acquisitions,
		Immediate:    rp.immediate,
		PeakQueue:    rp.peakQueue,
	}
}
