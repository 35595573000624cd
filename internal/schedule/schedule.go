package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time of day in minutes since midnight [0, 1440).
type TimeOfDay int

// ParseTimeOfDay parses a "HH:MM" string.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	hourPart, minutePart, found := strings.Cut(value, ":")
	if !found {
		return 0, fmt.Errorf("invalid time of day: %s", value)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in time of day: %s", value)
	}

	minute, err := strconv.Atoi(minutePart)
	if err != nil || len(minutePart) != 2 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in time of day: %s", value)
	}

	return TimeOfDay(hour*60 + minute), nil
}

// TimeOfDayFrom extracts the time of day from the given timestamp.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Window is a circular interval on the 24-hour clock. Start is inclusive,
// End is exclusive. A window with Start > End wraps past midnight,
// a window with Start == End is empty.
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseWindow parses a "HH:MM-HH:MM" string.
func ParseWindow(value string) (Window, error) {
	startPart, endPart, found := strings.Cut(value, "-")
	if !found {
		return Window{}, fmt.Errorf("invalid window, expected HH:MM-HH:MM: %s", value)
	}

	start, err := ParseTimeOfDay(startPart)
	if err != nil {
		return Window{}, err
	}
	end, err := ParseTimeOfDay(endPart)
	if err != nil {
		return Window{}, err
	}

	return Window{Start: start, End: end}, nil
}

func (w Window) Contains(t TimeOfDay) bool {
	if w.Start <= w.End {
		return t >= w.Start && t < w.End
	}
	// wraps past midnight: [Start, 24:00) ∪ [00:00, End)
	return t >= w.Start || t < w.End
}

func (w Window) String() string {
	return fmt.Sprintf("%s-%s", w.Start, w.End)
}

// Schedule selects between a day and a night profile based on the
// configured night window.
type Schedule struct {
	DayProfile   string
	NightProfile string
	NightWindow  Window
}

// ActiveProfile returns the name of the profile active at the given time.
func (s Schedule) ActiveProfile(now time.Time) string {
	if s.NightWindow.Contains(TimeOfDayFrom(now)) {
		return s.NightProfile
	}
	return s.DayProfile
}

// IsNight reports whether the given time falls into the night window.
func (s Schedule) IsNight(now time.Time) bool {
	return s.NightWindow.Contains(TimeOfDayFrom(now))
}
