package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitQueue_FIFO(t *testing.T) {
	s := NewSimulator(NewSimulationKey(1))
	pool, _ := NewResourcePool(s, "q", 1)
	wq := &WaitQueue{}
	g1 := &Grant{pool: pool, id: 1, owner: &recorder{name: "a"}}
	g2 := &Grant{pool: pool, id: 2, owner: &recorder{name: "b"}}

	assert.Nil(t, wq.Peek())
	assert.Nil(t, wq.Dequeue())

	wq.Enqueue(g1)
	wq.Enqueue(g2)
	assert.Equal(t, 2, wq.Len())
	assert.Same(t, g1, wq.Peek())
	assert.Equal(t, "[q#1(a) q#2(b)]", wq.String())

	assert.Same(t, g1, wq.Dequeue())
	assert.Same(t, g2, wq.Dequeue())
	assert.Equal(t, 0, wq.Len())
	assert.Equal(t, "[]", wq.String())
}
