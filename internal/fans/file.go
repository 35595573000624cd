package fans

import (
	"fmt"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/fanctrld/fanctrld/internal/util"
)

// FileFan drives a sysfs-style pwm file expecting raw values 0..255,
// e.g. /sys/class/hwmon/hwmon0/pwm1.
type FileFan struct {
	Config configuration.FanConfig `json:"configuration"`
	Duty   int                     `json:"duty"`
}

func (fan *FileFan) GetId() string {
	return fan.Config.Id
}

func (fan *FileFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *FileFan) GetDuty() int {
	return fan.Duty
}

func (fan *FileFan) GetPwm() (int, error) {
	filePath, err := fan.resolvePath()
	if err != nil {
		return MinPwmValue, err
	}

	value, err := util.ReadIntFromFile(filePath)
	if err != nil {
		return MinPwmValue, fmt.Errorf("%w: %s: %s", ErrOutputUnavailable, filePath, err)
	}
	return value, nil
}

func (fan *FileFan) SetDuty(percent int) error {
	percent = int(util.Coerce(float64(percent), MinDuty, MaxDuty))
	pwm := dutyToPwm(percent, fan.Config.Scaling)

	filePath, err := fan.resolvePath()
	if err != nil {
		return err
	}

	err = util.WriteIntToFileAtomic(pwm, filePath)
	if err != nil {
		// sysfs files cannot be replaced by rename, write in place instead
		err = util.WriteIntToFile(pwm, filePath)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrOutputUnavailable, filePath, err)
	}

	fan.Duty = percent
	return nil
}

func (fan *FileFan) resolvePath() (string, error) {
	filePath := fan.Config.File.Path
	// resolve home dir path
	if strings.HasPrefix(filePath, "~") {
		currentUser, err := user.Current()
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrOutputUnavailable, err)
		}

		filePath = filepath.Join(currentUser.HomeDir, filePath[1:])
	}
	return filePath, nil
}
