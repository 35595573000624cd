package sensors

import (
	"errors"
	"fmt"

	"github.com/fanctrld/fanctrld/internal/configuration"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var ErrSensorUnavailable = errors.New("sensor unavailable")

var (
	SensorMap = cmap.New[Sensor]()
)

type Sensor interface {
	GetId() string

	GetConfig() configuration.SensorConfig

	// GetValue returns the current temperature of this sensor in degrees celsius
	GetValue() (float64, error)

	// GetMovingAvg returns the average over the rolling window of recent readings
	GetMovingAvg() float64
	// AppendValue adds a reading to the rolling window
	AppendValue(value float64)
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	size := configuration.CurrentConfig.TempRollingWindowSize
	if size <= 0 {
		size = 1
	}

	if config.File != nil {
		return &FileSensor{
			Config:     config,
			windowSize: size,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdSensor{
			Config:     config,
			windowSize: size,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type for sensor: %s", config.Id)
}

// GetSensor returns the sensor with the given id from the registry.
func GetSensor(id string) (Sensor, error) {
	sensor, exists := SensorMap.Get(id)
	if !exists {
		return nil, fmt.Errorf("no sensor with id found: %s", id)
	}
	return sensor, nil
}
