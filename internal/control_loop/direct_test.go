package control_loop

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSimple(t *testing.T) {
	// GIVEN
	loop := NewDirectControlLoop(nil)
	loop.Cycle(0)

	// WHEN
	newTarget := loop.Cycle(10)

	// THEN
	assert.Equal(t, 10, newTarget)

	// WHEN
	newTarget = loop.Cycle(10)

	// THEN
	assert.Equal(t, 10, newTarget)
}

func TestMaxChange(t *testing.T) {
	// GIVEN
	maxChangePerCycle := 2
	loop := NewDirectControlLoop(&maxChangePerCycle)
	loop.Cycle(0)

	// WHEN
	newTarget := loop.Cycle(10)

	// THEN
	assert.Equal(t, 2, newTarget)

	// WHEN
	newTarget = loop.Cycle(10)

	// THEN
	assert.Equal(t, 4, newTarget)
}

func TestMaxChangeDownwards(t *testing.T) {
	// GIVEN
	maxChangePerCycle := 30
	loop := NewDirectControlLoop(&maxChangePerCycle)
	loop.Cycle(100)

	// WHEN
	newTarget := loop.Cycle(0)

	// THEN
	assert.Equal(t, 70, newTarget)

	// WHEN
	newTarget = loop.Cycle(0)

	// THEN
	assert.Equal(t, 40, newTarget)
}

func TestTargetIsClamped(t *testing.T) {
	// GIVEN
	loop := NewDirectControlLoop(nil)

	// WHEN & THEN
	assert.Equal(t, 100, loop.Cycle(150))
	assert.Equal(t, 0, loop.Cycle(-20))
}
