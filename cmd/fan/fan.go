package fan

import (
	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/fanctrld/fanctrld/internal/fans"
	"github.com/fanctrld/fanctrld/internal/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func getFan() (fans.Fan, error) {
	configPath := configuration.DetectConfigFile()
	if len(configPath) > 0 {
		ui.Info("Using configuration file at: %s", configPath)
	}
	configuration.LoadConfig()
	if err := configuration.Validate(&configuration.CurrentConfig); err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}

	return fans.NewFan(configuration.CurrentConfig.Fan)
}
