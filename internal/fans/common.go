package fans

import (
	"errors"
	"fmt"
	"math"

	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/fanctrld/fanctrld/internal/util"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var ErrOutputUnavailable = errors.New("pwm output unavailable")

const (
	MinDuty = 0
	MaxDuty = 100

	MinPwmValue = 0
	MaxPwmValue = 255
)

var (
	FanMap = cmap.New[Fan]()
)

type Fan interface {
	GetId() string

	GetConfig() configuration.FanConfig

	// GetDuty returns the duty cycle (percent) last successfully applied
	GetDuty() int

	// GetPwm returns the current raw pwm value of this fan
	GetPwm() (int, error)

	// SetDuty applies the given duty cycle (percent) to the output.
	// Out-of-range values are clamped to 0..100, not rejected.
	SetDuty(percent int) error
}

func NewFan(config configuration.FanConfig) (Fan, error) {
	if config.File != nil {
		return &FileFan{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdFan{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching fan type for fan: %s", config.Id)
}

// GetFan returns the fan with the given id from the registry.
func GetFan(id string) (Fan, error) {
	fan, exists := FanMap.Get(id)
	if !exists {
		return nil, fmt.Errorf("no fan with id found: %s", id)
	}
	return fan, nil
}

// dutyToPwm translates a duty cycle percent into the raw pwm value to write.
// A duty cycle of exactly 0 always turns the fan off, regardless of the
// scaling curve.
func dutyToPwm(percent int, scaling map[int]int) int {
	if percent <= MinDuty {
		return MinPwmValue
	}

	if len(scaling) == 0 {
		return int(math.Round(float64(percent) * MaxPwmValue / MaxDuty))
	}

	steps := make(map[int]float64, len(scaling))
	for duty, pwm := range scaling {
		steps[duty] = float64(pwm)
	}
	value := util.CalculateInterpolatedCurveValue(steps, util.InterpolationTypeLinear, float64(percent))
	return int(math.Round(util.Coerce(value, MinPwmValue, MaxPwmValue)))
}
