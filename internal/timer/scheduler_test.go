package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.Schedule(1.0, 0, func() { order = append(order, "late") })
	s.Schedule(0.5, 0, func() { order = append(order, "early") })
	s.Schedule(0.5, 0, func() { order = append(order, "early-2") })

	s.Advance(0.4)
	assert.Empty(t, order)

	s.Advance(0.7)
	assert.Equal(t, []string{"early", "early-2", "late"}, order)
	assert.Zero(t, s.Pending())
	assert.InDelta(t, 1.1, s.Now(), 1e-9)
}

func TestScheduler_Cancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	h := s.Schedule(1, 0, func() { fired = true })

	assert.True(t, s.Cancel(h))
	assert.False(t, s.Cancel(h))
	s.Advance(2)
	assert.False(t, fired)
}

func TestScheduler_CancelOwner(t *testing.T) {
	s := NewScheduler()
	var fired []int
	s.Schedule(1, 7, func() { fired = append(fired, 1) })
	s.Schedule(2, 7, func() { fired = append(fired, 2) })
	s.Schedule(1, 8, func() { fired = append(fired, 3) })

	assert.Equal(t, 2, s.CancelOwner(7))
	s.Advance(5)
	assert.Equal(t, []int{3}, fired)
}

func TestScheduler_NestedScheduleFiresWhenDue(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Schedule(0.1, 0, func() {
		count++
		s.Schedule(0, 0, func() { count++ })
		s.Schedule(10, 0, func() { count++ })
	})

	s.Advance(0.2)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, s.Pending())
}
