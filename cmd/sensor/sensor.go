package sensor

import (
	"fmt"

	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/fanctrld/fanctrld/internal/sensors"
	"github.com/fanctrld/fanctrld/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "sensor",
	Short: "Print the current temperature of the configured sensor",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		sensor, err := getSensor()
		if err != nil {
			return err
		}

		value, err := sensor.GetValue()
		if err != nil {
			return err
		}
		fmt.Printf("%.1f", value)
		return nil
	},
}

func getSensor() (sensors.Sensor, error) {
	configPath := configuration.DetectConfigFile()
	if len(configPath) > 0 {
		ui.Info("Using configuration file at: %s", configPath)
	}
	configuration.LoadConfig()
	if err := configuration.Validate(&configuration.CurrentConfig); err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}

	return sensors.NewSensor(configuration.CurrentConfig.Sensor)
}
