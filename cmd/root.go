package cmd

import (
	"fmt"
	"os"

	"github.com/fanctrld/fanctrld/cmd/config"
	"github.com/fanctrld/fanctrld/cmd/fan"
	"github.com/fanctrld/fanctrld/cmd/global"
	"github.com/fanctrld/fanctrld/cmd/profile"
	"github.com/fanctrld/fanctrld/cmd/sensor"
	"github.com/fanctrld/fanctrld/internal"
	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/fanctrld/fanctrld/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fanctrld",
	Short: "A daemon to control the fan of a single board computer.",
	Long: `fanctrld is a simple daemon that controls the fan
of a single board computer based on a temperature sensor
and a day/night profile schedule.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		configPath := configuration.DetectConfigFile()
		if len(configPath) > 0 {
			ui.Info("Using configuration file at: %s", configPath)
		} else {
			ui.Info("No configuration file found, using defaults")
		}
		configuration.LoadConfig()

		internal.RunDaemon()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is /etc/fanctrld/fanctrld.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(config.Command)
	rootCmd.AddCommand(profile.Command)
	rootCmd.AddCommand(sensor.Command)
	rootCmd.AddCommand(fan.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("fanctrl", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("d", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("fanctrld")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
