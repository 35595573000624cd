package sensors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/stretchr/testify/assert"
)

func createFileSensor(t *testing.T, content string) *FileSensor {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temp")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)

	configuration.CurrentConfig.TempRollingWindowSize = 5
	sensor, err := NewSensor(configuration.SensorConfig{
		Id:   "cpu",
		File: &configuration.FileSensorConfig{Path: path},
	})
	assert.NoError(t, err)

	return sensor.(*FileSensor)
}

func TestFileSensorGetValue(t *testing.T) {
	// GIVEN
	sensor := createFileSensor(t, "52500\n")

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 52.5, value)
}

func TestFileSensorMissingFile(t *testing.T) {
	// GIVEN
	configuration.CurrentConfig.TempRollingWindowSize = 5
	sensor, err := NewSensor(configuration.SensorConfig{
		Id:   "cpu",
		File: &configuration.FileSensorConfig{Path: "/does/not/exist"},
	})
	assert.NoError(t, err)

	// WHEN
	_, err = sensor.GetValue()

	// THEN
	assert.ErrorIs(t, err, ErrSensorUnavailable)
}

func TestFileSensorMovingAvg(t *testing.T) {
	// GIVEN
	sensor := createFileSensor(t, "50000")

	// WHEN
	sensor.AppendValue(50)
	sensor.AppendValue(60)

	// THEN
	assert.InDelta(t, 52.0, sensor.GetMovingAvg(), 0.01)
}

func TestNewSensorWithoutSubConfig(t *testing.T) {
	// WHEN
	_, err := NewSensor(configuration.SensorConfig{Id: "cpu"})

	// THEN
	assert.Error(t, err)
}
