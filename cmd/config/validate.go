package config

import (
	"os"

	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/fanctrld/fanctrld/internal/profiles"
	"github.com/fanctrld/fanctrld/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the current configuration and schedule",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// note: config file path parameter comes from the root command (-c)
		configPath := configuration.DetectConfigFile()
		if len(configPath) > 0 {
			ui.Info("Using configuration file at: %s", configPath)
		}
		configuration.LoadConfig()

		if err := configuration.Validate(&configuration.CurrentConfig); err != nil {
			ui.Error("Validation failed: %v", err)
			os.Exit(1)
		}

		if err := profiles.LoadTable(configuration.CurrentConfig.Profiles); err != nil {
			ui.Error("Validation failed: %v", err)
			os.Exit(1)
		}

		schedulePath := configuration.CurrentConfig.SchedulePath
		scheduleConfig, err := configuration.ReadScheduleFile(schedulePath)
		if err != nil {
			ui.Error("Validation of schedule file %s failed: %v", schedulePath, err)
			os.Exit(1)
		}

		sched := scheduleConfig.Schedule()
		for _, profileName := range []string{sched.DayProfile, sched.NightProfile} {
			if _, err := profiles.GetProfile(profileName); err != nil {
				ui.Error("Validation of schedule file %s failed: %v", schedulePath, err)
				os.Exit(1)
			}
		}

		ui.Success("Config looks good! :)")
		return nil
	},
}

func init() {
	Command.AddCommand(validateCmd)
}
