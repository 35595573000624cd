package sensors

import (
	"fmt"
	"strconv"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/fanctrld/fanctrld/internal/util"
)

// CmdSensor retrieves the temperature from the output of a command,
// expected to print degrees celsius as a plain number.
type CmdSensor struct {
	Config configuration.SensorConfig `json:"configuration"`

	windowSize   int
	movingWindow *rolling.PointPolicy
}

func (sensor *CmdSensor) GetId() string {
	return sensor.Config.Id
}

func (sensor *CmdSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor *CmdSensor) GetValue() (float64, error) {
	timeout := 2 * time.Second
	executable := sensor.Config.Cmd.Exec
	args := sensor.Config.Cmd.Args
	result, err := util.SafeCmdExecution(executable, args, timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: sensor %s: %s", ErrSensorUnavailable, sensor.GetId(), err)
	}

	temperature, err := strconv.ParseFloat(result, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: sensor %s: unable to parse command output %q", ErrSensorUnavailable, sensor.GetId(), result)
	}

	return temperature, nil
}

func (sensor *CmdSensor) GetMovingAvg() float64 {
	if sensor.movingWindow == nil {
		return 0
	}
	return util.GetWindowAvg(sensor.movingWindow)
}

func (sensor *CmdSensor) AppendValue(value float64) {
	if sensor.movingWindow == nil {
		sensor.movingWindow = util.CreateRollingWindow(sensor.windowSize)
		util.FillWindow(sensor.movingWindow, sensor.windowSize, value)
		return
	}
	sensor.movingWindow.Append(value)
}
