package control_loop

import (
	"math"

	"github.com/fanctrld/fanctrld/internal/util"
)

// DirectControlLoop is a very simple control that directly applies the given
// target duty cycle. It can also be used to gracefully approach the target by
// utilizing the "maxDutyChangePerCycle" property.
type DirectControlLoop struct {
	// limits the maximum allowed duty cycle change per cycle
	maxDutyChangePerCycle *int
	lastOutput            float64
}

// NewDirectControlLoop creates a DirectControlLoop. maxDutyChangePerCycle
// can be used to limit the maximum allowed duty cycle change per cycle,
// nil applies the target directly.
func NewDirectControlLoop(
	maxDutyChangePerCycle *int,
) *DirectControlLoop {
	return &DirectControlLoop{
		maxDutyChangePerCycle: maxDutyChangePerCycle,
	}
}

func (l *DirectControlLoop) Cycle(target int) int {
	stepTarget := float64(target)

	if l.maxDutyChangePerCycle != nil {
		// we can be above or below the target duty cycle,
		// so we add or subtract at most the max change,
		// capped to having reached the target
		maxChange := float64(*l.maxDutyChangePerCycle)
		err := float64(target) - l.lastOutput
		stepTarget = l.lastOutput + util.Coerce(err, -maxChange, maxChange)
	}

	stepTarget = util.Coerce(stepTarget, 0, 100)
	l.lastOutput = stepTarget
	return int(math.Round(stepTarget))
}
