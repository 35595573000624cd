package cmd

import (
	"github.com/fanctrld/fanctrld/internal/ui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fanctrld",
	Long:  `All software has versions. This is fanctrld's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln("0.2.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
