package configuration

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fanctrld/fanctrld/internal/schedule"
	"github.com/fanctrld/fanctrld/internal/ui"
)

var ErrConfigInvalid = errors.New("invalid schedule config")

const (
	scheduleKeyDayProfile   = "DayProfile"
	scheduleKeyNightProfile = "NightProfile"
	scheduleKeyNightHours   = "NightHours"
)

// ScheduleConfig selects the day and night profiles and the night window.
// It is loaded once at startup and immutable for the life of the process.
type ScheduleConfig struct {
	DayProfile   string          `json:"dayProfile"`
	NightProfile string          `json:"nightProfile"`
	NightWindow  schedule.Window `json:"nightWindow"`
}

// Schedule converts the config into a schedule selector.
func (c ScheduleConfig) Schedule() schedule.Schedule {
	return schedule.Schedule{
		DayProfile:   c.DayProfile,
		NightProfile: c.NightProfile,
		NightWindow:  c.NightWindow,
	}
}

// ReadScheduleFile parses the key-value schedule file at the given path.
// All three keys (DayProfile, NightProfile, NightHours) are required,
// blank lines and lines starting with '#' are ignored.
func ReadScheduleFile(path string) (ScheduleConfig, error) {
	var config ScheduleConfig
	nightHoursSeen := false

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("%w: cannot read schedule file %s: %s", ErrConfigInvalid, path, err)
	}

	for lineNumber, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 0 || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return config, fmt.Errorf("%w: malformed line %d in %s: %q", ErrConfigInvalid, lineNumber+1, path, line)
		}

		key, value := fields[0], fields[1]
		switch key {
		case scheduleKeyDayProfile:
			config.DayProfile = value
		case scheduleKeyNightProfile:
			config.NightProfile = value
		case scheduleKeyNightHours:
			window, err := schedule.ParseWindow(value)
			if err != nil {
				return config, fmt.Errorf("%w: line %d in %s: %s", ErrConfigInvalid, lineNumber+1, path, err)
			}
			config.NightWindow = window
			nightHoursSeen = true
		default:
			ui.Warning("Ignoring unknown schedule key on line %d in %s: %s", lineNumber+1, path, key)
		}
	}

	if len(config.DayProfile) <= 0 {
		return config, fmt.Errorf("%w: missing required key %s in %s", ErrConfigInvalid, scheduleKeyDayProfile, path)
	}
	if len(config.NightProfile) <= 0 {
		return config, fmt.Errorf("%w: missing required key %s in %s", ErrConfigInvalid, scheduleKeyNightProfile, path)
	}
	if !nightHoursSeen {
		return config, fmt.Errorf("%w: missing required key %s in %s", ErrConfigInvalid, scheduleKeyNightHours, path)
	}

	return config, nil
}
