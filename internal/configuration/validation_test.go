package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() Configuration {
	return Configuration{
		SchedulePath:          "/etc/fanctrld/schedule",
		UpdateInterval:        2 * time.Second,
		TempRollingWindowSize: 10,
		Sensor: SensorConfig{
			File: &FileSensorConfig{Path: "/sys/class/thermal/thermal_zone0/temp"},
		},
		Fan: FanConfig{
			File: &FileFanConfig{Path: "/sys/class/hwmon/hwmon0/pwm1"},
		},
	}
}

func TestValidateOk(t *testing.T) {
	// GIVEN
	config := validTestConfig()

	// WHEN
	err := Validate(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidateSensorMissing(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Sensor = SensorConfig{}

	// WHEN
	err := Validate(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateSensorAmbiguous(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Sensor.Cmd = &CmdSensorConfig{Exec: "/usr/bin/gettemp"}

	// WHEN
	err := Validate(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateFanMissing(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Fan = FanConfig{}

	// WHEN
	err := Validate(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateScalingCurve(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Fan.Scaling = map[int]int{0: 24, 50: 38, 100: 255}

	// WHEN
	err := Validate(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidateScalingCurveDecreasing(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Fan.Scaling = map[int]int{0: 100, 50: 38, 100: 255}

	// WHEN
	err := Validate(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateScalingCurveOutOfRange(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Fan.Scaling = map[int]int{0: 0, 110: 255}

	// WHEN
	err := Validate(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateUpdateInterval(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.UpdateInterval = 0

	// WHEN
	err := Validate(&config)

	// THEN
	assert.Error(t, err)
}
