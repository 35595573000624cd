package fans

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/fanctrld/fanctrld/internal/util"
	"github.com/stretchr/testify/assert"
)

func createFileFan(t *testing.T, scaling map[int]int) (*FileFan, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pwm1")
	err := os.WriteFile(path, []byte("0"), 0644)
	assert.NoError(t, err)

	fan, err := NewFan(configuration.FanConfig{
		Id:      "fan",
		File:    &configuration.FileFanConfig{Path: path},
		Scaling: scaling,
	})
	assert.NoError(t, err)

	return fan.(*FileFan), path
}

func TestFileFanSetDuty(t *testing.T) {
	// GIVEN
	fan, path := createFileFan(t, nil)

	// WHEN
	err := fan.SetDuty(50)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 50, fan.GetDuty())
	value, err := util.ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 128, value)
}

func TestFileFanSetDutyClampsInput(t *testing.T) {
	// GIVEN
	fan, path := createFileFan(t, nil)

	// WHEN
	err := fan.SetDuty(150)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 100, fan.GetDuty())
	value, err := util.ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 255, value)

	// WHEN
	err = fan.SetDuty(-10)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 0, fan.GetDuty())
	value, err = util.ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 0, value)
}

func TestFileFanScalingCurve(t *testing.T) {
	// GIVEN
	scaling := map[int]int{0: 24, 50: 38, 100: 255}
	fan, path := createFileFan(t, scaling)

	// WHEN
	err := fan.SetDuty(75)

	// THEN
	assert.NoError(t, err)
	value, err := util.ReadIntFromFile(path)
	assert.NoError(t, err)
	// halfway between 38 (at 50%) and 255 (at 100%)
	assert.Equal(t, 147, value)
}

func TestFileFanZeroDutyIgnoresScaling(t *testing.T) {
	// GIVEN
	scaling := map[int]int{0: 24, 100: 255}
	fan, path := createFileFan(t, scaling)

	// WHEN
	err := fan.SetDuty(0)

	// THEN
	assert.NoError(t, err)
	value, err := util.ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 0, value)
}

func TestFileFanOutputUnavailable(t *testing.T) {
	// GIVEN
	fan, err := NewFan(configuration.FanConfig{
		Id:   "fan",
		File: &configuration.FileFanConfig{Path: "/does/not/exist/pwm1"},
	})
	assert.NoError(t, err)

	// WHEN
	err = fan.SetDuty(50)

	// THEN
	assert.ErrorIs(t, err, ErrOutputUnavailable)
	assert.Equal(t, 0, fan.GetDuty())
}

func TestNewFanWithoutSubConfig(t *testing.T) {
	// WHEN
	_, err := NewFan(configuration.FanConfig{Id: "fan"})

	// THEN
	assert.Error(t, err)
}
