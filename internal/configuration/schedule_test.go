package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fanctrld/fanctrld/internal/schedule"
	"github.com/stretchr/testify/assert"
)

func writeScheduleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

func TestReadScheduleFile(t *testing.T) {
	// GIVEN
	path := writeScheduleFile(t, `
# fanctrld schedule
DayProfile Max
NightProfile VeryQuiet
NightHours 22:30-10:00
`)

	// WHEN
	config, err := ReadScheduleFile(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "Max", config.DayProfile)
	assert.Equal(t, "VeryQuiet", config.NightProfile)
	assert.Equal(t, schedule.Window{Start: 22*60 + 30, End: 10 * 60}, config.NightWindow)
}

func TestReadScheduleFileMissingKey(t *testing.T) {
	// GIVEN
	path := writeScheduleFile(t, `
DayProfile Max
NightHours 22:30-10:00
`)

	// WHEN
	_, err := ReadScheduleFile(path)

	// THEN
	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestReadScheduleFileMalformedLine(t *testing.T) {
	// GIVEN
	path := writeScheduleFile(t, `
DayProfile Max Extra
NightProfile VeryQuiet
NightHours 22:30-10:00
`)

	// WHEN
	_, err := ReadScheduleFile(path)

	// THEN
	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestReadScheduleFileInvalidWindow(t *testing.T) {
	// GIVEN
	path := writeScheduleFile(t, `
DayProfile Max
NightProfile VeryQuiet
NightHours 25:00-10:00
`)

	// WHEN
	_, err := ReadScheduleFile(path)

	// THEN
	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestReadScheduleFileNotFound(t *testing.T) {
	// WHEN
	_, err := ReadScheduleFile(filepath.Join(t.TempDir(), "does-not-exist"))

	// THEN
	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestReadScheduleFileIgnoresUnknownKeys(t *testing.T) {
	// GIVEN
	path := writeScheduleFile(t, `
DayProfile Max
NightProfile VeryQuiet
NightHours 22:30-10:00
FutureOption on
`)

	// WHEN
	config, err := ReadScheduleFile(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "Max", config.DayProfile)
}
