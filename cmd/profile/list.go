package profile

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fanctrld/fanctrld/cmd/global"
	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/fanctrld/fanctrld/internal/profiles"
	"github.com/fanctrld/fanctrld/internal/ui"
	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the fan profile table to console",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		configPath := configuration.DetectConfigFile()
		if len(configPath) > 0 {
			ui.Info("Using configuration file at: %s", configPath)
		}
		configuration.LoadConfig()

		if err = profiles.LoadTable(configuration.CurrentConfig.Profiles); err != nil {
			ui.Fatal("Invalid profile table: %v", err)
		}

		for idx, name := range profiles.Names() {
			if idx > 0 {
				ui.Printfln("")
				ui.Printfln("")
			}

			profile, err := profiles.GetProfile(name)
			if err != nil {
				return err
			}

			var steps []string
			for _, step := range profile.Steps {
				steps = append(steps, fmt.Sprintf("%d°C: %d%%", step.Threshold, step.Duty))
			}

			// print table
			tab := table.Table{
				Headers: []string{"Profile", "Steps"},
				Rows: [][]string{
					{profile.Name, strings.Join(steps, ", ")},
				},
			}
			var buf bytes.Buffer
			tableErr := tab.WriteTable(&buf, &table.Config{
				ShowIndex:       false,
				Color:           !global.NoColor,
				AlternateColors: true,
				TitleColorCode:  ansi.ColorCode("white+buf"),
				AltColorCodes: []string{
					ansi.ColorCode("white"),
					ansi.ColorCode("white:236"),
				},
			})
			if tableErr != nil {
				panic(tableErr)
			}
			tableString := buf.String()
			ui.Printfln(tableString)

			graphValues := graphValuesOf(profile)
			if graphValues == nil {
				continue
			}

			caption := "Duty (%) / Temperature (°C)"
			graph := asciigraph.Plot(graphValues, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
			ui.Printfln(graph)
		}

		return nil
	},
}

// graphValuesOf evaluates the step table of the given profile for every
// degree between the first and the last threshold
func graphValuesOf(profile profiles.Profile) []float64 {
	if len(profile.Steps) < 2 {
		return nil
	}

	start := profile.Steps[0].Threshold
	stop := profile.Steps[len(profile.Steps)-1].Threshold

	values := make([]float64, 0, stop-start+1)
	for temperature := start; temperature <= stop; temperature++ {
		values = append(values, float64(profile.ResolveDuty(float64(temperature))))
	}
	return values
}

func init() {
	Command.AddCommand(listCmd)
}
