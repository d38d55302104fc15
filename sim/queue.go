// Implements the WaitQueue, which holds the grants parked on a full
// ResourcePool. Grants are enqueued on a blocked Acquire.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of pending grants.
// Admission always takes the head; there is no priority and no preemption.
type WaitQueue struct {
	queue []*Grant // FIFO queue of grants
}

// Enqueue adds a grant to the back of the wait queue.
func (wq *WaitQueue) Enqueue(g *Grant) {
	wq.queue = append(wq.queue, g)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, g := range wq.queue {
		sb.WriteString(fmt.Sprint(g))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of grants in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the grant at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Grant {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Dequeue removes and returns the grant at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Grant {
	if len(wq.queue) == 0 {
		return nil
	}
	g := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return g
}
