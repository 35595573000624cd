package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/fanctrld/fanctrld/cmd/global"
	"github.com/fanctrld/fanctrld/internal/hwmon"
	"github.com/fanctrld/fanctrld/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect devices",
	Long:  `Detects all usable temperature inputs and pwm outputs and prints them as a list`,
	Run: func(cmd *cobra.Command, args []string) {
		controllers := hwmon.GetChips()

		// === Print detected devices ===
		tableConfig := &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		}

		for _, controller := range controllers {
			if len(controller.Name) <= 0 {
				continue
			}

			ui.Printfln("> %s", controller.Name)

			var sensorRows [][]string
			for _, input := range controller.TempInputs {
				_, file := filepath.Split(input.Path)
				labelAndFile := fmt.Sprintf("%s (%s)", input.Label, file)

				sensorRows = append(sensorRows, []string{
					"", strconv.Itoa(input.Index), labelAndFile, strconv.Itoa(int(input.Value)),
				})
			}
			sensorTable := table.Table{
				Headers: []string{"Sensors", "Index", "Label", "Value"},
				Rows:    sensorRows,
			}

			var pwmRows [][]string
			for _, output := range controller.PwmOutputs {
				pwmRows = append(pwmRows, []string{
					"", strconv.Itoa(output.Index), output.Label, output.Path, strconv.Itoa(output.Value),
				})
			}
			pwmTable := table.Table{
				Headers: []string{"Outputs", "Index", "Label", "Path", "PWM"},
				Rows:    pwmRows,
			}

			tables := []table.Table{sensorTable, pwmTable}

			for idx, tab := range tables {
				if tab.Rows == nil {
					continue
				}
				var buf bytes.Buffer
				tableErr := tab.WriteTable(&buf, tableConfig)
				if tableErr != nil {
					ui.Fatal("Error printing table: %v", tableErr)
				}
				tableString := buf.String()
				if idx < (len(tables) - 1) {
					ui.Printf(tableString)
				} else {
					ui.Printfln(tableString)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
