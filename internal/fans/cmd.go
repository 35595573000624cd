package fans

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/fanctrld/fanctrld/internal/util"
)

// CmdFan invokes a command to apply the duty cycle, with the raw pwm
// value appended as the last argument.
type CmdFan struct {
	Config configuration.FanConfig `json:"configuration"`
	Duty   int                     `json:"duty"`

	lastPwm int
}

func (fan *CmdFan) GetId() string {
	return fan.Config.Id
}

func (fan *CmdFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *CmdFan) GetDuty() int {
	return fan.Duty
}

func (fan *CmdFan) GetPwm() (int, error) {
	// there is no read path for a command driven fan
	return fan.lastPwm, nil
}

func (fan *CmdFan) SetDuty(percent int) error {
	percent = int(util.Coerce(float64(percent), MinDuty, MaxDuty))
	pwm := dutyToPwm(percent, fan.Config.Scaling)

	timeout := 2 * time.Second
	executable := fan.Config.Cmd.Exec
	args := append(append([]string{}, fan.Config.Cmd.Args...), strconv.Itoa(pwm))
	_, err := util.SafeCmdExecution(executable, args, timeout)
	if err != nil {
		return fmt.Errorf("%w: fan %s: %s", ErrOutputUnavailable, fan.GetId(), err)
	}

	fan.Duty = percent
	fan.lastPwm = pwm
	return nil
}
