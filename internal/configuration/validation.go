package configuration

import (
	"fmt"

	"github.com/fanctrld/fanctrld/internal/util"
)

func Validate(config *Configuration) error {
	if err := validateSensor(config); err != nil {
		return err
	}
	if err := validateFan(config); err != nil {
		return err
	}
	return validateTiming(config)
}

func validateSensor(config *Configuration) error {
	subConfigs := 0
	if config.Sensor.File != nil {
		subConfigs++
	}
	if config.Sensor.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return fmt.Errorf("sensor: only one sensor type can be used, use one of: file | cmd")
	}
	if subConfigs <= 0 {
		return fmt.Errorf("sensor: sub-configuration is missing, use one of: file | cmd")
	}

	if config.Sensor.File != nil && len(config.Sensor.File.Path) <= 0 {
		return fmt.Errorf("sensor: file path must not be empty")
	}
	if config.Sensor.Cmd != nil && len(config.Sensor.Cmd.Exec) <= 0 {
		return fmt.Errorf("sensor: cmd exec must not be empty")
	}

	return nil
}

func validateFan(config *Configuration) error {
	subConfigs := 0
	if config.Fan.File != nil {
		subConfigs++
	}
	if config.Fan.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return fmt.Errorf("fan: only one fan type can be used, use one of: file | cmd")
	}
	if subConfigs <= 0 {
		return fmt.Errorf("fan: sub-configuration is missing, use one of: file | cmd")
	}

	if config.Fan.File != nil && len(config.Fan.File.Path) <= 0 {
		return fmt.Errorf("fan: file path must not be empty")
	}
	if config.Fan.Cmd != nil && len(config.Fan.Cmd.Exec) <= 0 {
		return fmt.Errorf("fan: cmd exec must not be empty")
	}

	if config.Fan.Scaling != nil {
		if len(config.Fan.Scaling) < 2 {
			return fmt.Errorf("fan: scaling curve needs at least two entries")
		}
		lastValue := -1
		for _, percent := range util.SortedKeys(config.Fan.Scaling) {
			value := config.Fan.Scaling[percent]
			if percent < 0 || percent > 100 {
				return fmt.Errorf("fan: scaling percent %d is outside 0..100", percent)
			}
			if value < 0 || value > 255 {
				return fmt.Errorf("fan: scaling pwm value %d is outside 0..255", value)
			}
			if value < lastValue {
				return fmt.Errorf("fan: scaling pwm values must not decrease, got %d -> %d", percent, value)
			}
			lastValue = value
		}
	}

	return nil
}

func validateTiming(config *Configuration) error {
	if config.UpdateInterval <= 0 {
		return fmt.Errorf("updateInterval must be positive")
	}
	if config.TempRollingWindowSize <= 0 {
		return fmt.Errorf("tempRollingWindowSize must be positive")
	}
	if config.MaxDutyChangePerCycle < 0 {
		return fmt.Errorf("maxDutyChangePerCycle must not be negative")
	}
	if config.InitialSpinupDelay < 0 {
		return fmt.Errorf("initialSpinupDelay must not be negative")
	}
	return nil
}
