package schedule

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func timeAt(hour int, minute int) time.Time {
	return time.Date(2024, 6, 1, hour, minute, 0, 0, time.Local)
}

func TestParseTimeOfDay(t *testing.T) {
	// GIVEN
	expectedInputOutput := map[string]TimeOfDay{
		"00:00": 0,
		"9:30":  9*60 + 30,
		"22:30": 22*60 + 30,
		"23:59": 23*60 + 59,
	}

	for input, output := range expectedInputOutput {
		// WHEN
		result, err := ParseTimeOfDay(input)

		// THEN
		assert.NoError(t, err)
		assert.Equal(t, output, result)
	}
}

func TestParseTimeOfDayInvalid(t *testing.T) {
	// GIVEN
	inputs := []string{"", "22", "24:00", "12:60", "12:5", "ab:cd", "12-30"}

	for _, input := range inputs {
		// WHEN
		_, err := ParseTimeOfDay(input)

		// THEN
		assert.Error(t, err, input)
	}
}

func TestParseWindow(t *testing.T) {
	// GIVEN
	input := "22:30-10:00"

	// WHEN
	window, err := ParseWindow(input)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, TimeOfDay(22*60+30), window.Start)
	assert.Equal(t, TimeOfDay(10*60), window.End)
}

func TestParseWindowInvalid(t *testing.T) {
	// GIVEN
	inputs := []string{"", "22:30", "22:30-", "-10:00", "22:30/10:00", "25:00-10:00"}

	for _, input := range inputs {
		// WHEN
		_, err := ParseWindow(input)

		// THEN
		assert.Error(t, err, input)
	}
}

func TestWindowContainsNonWrapping(t *testing.T) {
	// GIVEN
	window := Window{Start: 8 * 60, End: 17 * 60}

	// WHEN & THEN
	assert.False(t, window.Contains(7*60+59))
	assert.True(t, window.Contains(8*60))
	assert.True(t, window.Contains(12*60))
	assert.True(t, window.Contains(16*60+59))
	assert.False(t, window.Contains(17*60))
	assert.False(t, window.Contains(23*60))
}

func TestWindowContainsWrapping(t *testing.T) {
	// GIVEN
	window := Window{Start: 22*60 + 30, End: 10 * 60}

	// WHEN & THEN
	assert.True(t, window.Contains(22*60+30))
	assert.True(t, window.Contains(23*60))
	assert.True(t, window.Contains(0))
	assert.True(t, window.Contains(9*60+59))
	assert.False(t, window.Contains(10*60))
	assert.False(t, window.Contains(12*60))
	assert.False(t, window.Contains(22*60+29))
}

func TestWindowContainsEmpty(t *testing.T) {
	// GIVEN
	window := Window{Start: 12 * 60, End: 12 * 60}

	// WHEN & THEN
	assert.False(t, window.Contains(12*60))
	assert.False(t, window.Contains(0))
	assert.False(t, window.Contains(23*60+59))
}

func TestActiveProfile(t *testing.T) {
	// GIVEN
	window, err := ParseWindow("22:30-10:00")
	assert.NoError(t, err)
	sched := Schedule{
		DayProfile:   "Max",
		NightProfile: "VeryQuiet",
		NightWindow:  window,
	}

	// WHEN & THEN
	assert.Equal(t, "VeryQuiet", sched.ActiveProfile(timeAt(23, 0)))
	assert.Equal(t, "VeryQuiet", sched.ActiveProfile(timeAt(9, 59)))
	// exclusive end boundary
	assert.Equal(t, "Max", sched.ActiveProfile(timeAt(10, 0)))
	// inclusive start boundary
	assert.Equal(t, "VeryQuiet", sched.ActiveProfile(timeAt(22, 30)))
	assert.Equal(t, "Max", sched.ActiveProfile(timeAt(12, 0)))
}

func TestWindowString(t *testing.T) {
	// GIVEN
	window := Window{Start: 22*60 + 30, End: 10 * 60}

	// WHEN
	result := window.String()

	// THEN
	assert.Equal(t, "22:30-10:00", result)
}
