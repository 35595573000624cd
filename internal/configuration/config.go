package configuration

import (
	"os"
	"time"

	"github.com/fanctrld/fanctrld/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	// SchedulePath is the path of the day/night profile schedule file.
	SchedulePath string `json:"schedulePath"`
	DbPath       string `json:"dbPath"`

	// UpdateInterval is the fixed time between control loop iterations.
	UpdateInterval        time.Duration `json:"updateInterval"`
	TempRollingWindowSize int           `json:"tempRollingWindowSize"`

	// MaxDutyChangePerCycle limits how far the applied duty cycle may move
	// towards the target per iteration. Zero applies the target directly.
	MaxDutyChangePerCycle int `json:"maxDutyChangePerCycle"`
	// InitialSpinupDelay runs the fan at full speed for this long at startup
	// as an audible confirmation. Zero disables the spin-up.
	InitialSpinupDelay time.Duration `json:"initialSpinupDelay"`

	Sensor SensorConfig `json:"sensor"`
	Fan    FanConfig    `json:"fan"`

	// Profiles defines additional fan curves, merged over the built-in
	// profile table. Keys are temperature thresholds (°C), values duty (%).
	Profiles map[string]map[int]int `json:"profiles"`

	Api        ApiConfig        `json:"api"`
	Statistics StatisticsConfig `json:"statistics"`
}

var CurrentConfig Configuration

// InitConfig sets up the config file search paths and default values.
func InitConfig(cfgFile string) {
	viper.SetConfigName("fanctrld")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/fanctrld/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("SchedulePath", "/etc/fanctrld/schedule")
	viper.SetDefault("DbPath", "/etc/fanctrld/fanctrld.db")

	viper.SetDefault("UpdateInterval", 2*time.Second)
	viper.SetDefault("TempRollingWindowSize", 10)
	viper.SetDefault("MaxDutyChangePerCycle", 0)
	viper.SetDefault("InitialSpinupDelay", 0*time.Second)

	viper.SetDefault("Sensor.Id", "cpu")
	viper.SetDefault("Sensor.File.Path", "/sys/class/thermal/thermal_zone0/temp")
	viper.SetDefault("Fan.Id", "fan")
	viper.SetDefault("Fan.File.Path", "/sys/class/hwmon/hwmon0/pwm1")

	viper.SetDefault("Api.Enabled", false)
	viper.SetDefault("Api.Host", "localhost")
	viper.SetDefault("Api.Port", 9001)

	viper.SetDefault("Statistics.Enabled", false)
	viper.SetDefault("Statistics.Port", 9000)
}

// DetectConfigFile returns the path of the config file viper picked up.
// The daemon config file is optional, every key has a default.
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			ui.Fatal("Error reading config file: %v", err)
		}
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			stepMapHookFunc(),
		),
	))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}
