package sensors

import (
	"fmt"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/asecurityteam/rolling"
	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/fanctrld/fanctrld/internal/util"
)

// FileSensor reads the temperature from a sysfs-style file containing
// millidegrees celsius, e.g. /sys/class/thermal/thermal_zone0/temp.
type FileSensor struct {
	Config configuration.SensorConfig `json:"configuration"`

	windowSize   int
	movingWindow *rolling.PointPolicy
}

func (sensor *FileSensor) GetId() string {
	return sensor.Config.Id
}

func (sensor *FileSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor *FileSensor) GetValue() (float64, error) {
	filePath := sensor.Config.File.Path
	// resolve home dir path
	if strings.HasPrefix(filePath, "~") {
		currentUser, err := user.Current()
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrSensorUnavailable, err)
		}

		filePath = filepath.Join(currentUser.HomeDir, filePath[1:])
	}

	integer, err := util.ReadIntFromFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %s", ErrSensorUnavailable, filePath, err)
	}

	return float64(integer) / 1000, nil
}

func (sensor *FileSensor) GetMovingAvg() float64 {
	if sensor.movingWindow == nil {
		return 0
	}
	return util.GetWindowAvg(sensor.movingWindow)
}

func (sensor *FileSensor) AppendValue(value float64) {
	if sensor.movingWindow == nil {
		// fill the window with the first reading to avoid a cold-start ramp
		sensor.movingWindow = util.CreateRollingWindow(sensor.windowSize)
		util.FillWindow(sensor.movingWindow, sensor.windowSize, value)
		return
	}
	sensor.movingWindow.Append(value)
}
