package ctmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventHeap_OrdersByTimeThenNodeThenID(t *testing.T) {
	// GIVEN completions scheduled out of order, with ties on time
	h := NewEventHeap()
	h.Schedule(&Completion{Time: 2, Node: 0, ID: 0})
	h.Schedule(&Completion{Time: 1, Node: 1, ID: 1})
	h.Schedule(&Completion{Time: 1, Node: 0, ID: 3})
	h.Schedule(&Completion{Time: 1, Node: 0, ID: 2})

	// WHEN they are popped
	var got []int64
	for h.Len() > 0 {
		got = append(got, h.PopNext().ID)
	}

	// THEN time, node and ID break ties in that order
	assert.Equal(t, []int64{2, 3, 1, 0}, got)
}

func TestEventHeap_Empty(t *testing.T) {
	h := NewEventHeap()
	assert.Nil(t, h.PopNext())
	assert.Nil(t, h.Peek())
}

func TestEventHeap_Peek_DoesNotRemove(t *testing.T) {
	h := NewEventHeap()
	h.Schedule(&Completion{Time: 5, ID: 9})
	assert.Equal(t, int64(9), h.Peek().ID)
	assert.Equal(t, 1, h.Len())
}
