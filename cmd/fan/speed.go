package fan

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Get/Set the current duty cycle of the fan ([0..100])",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, err := getFan()
		if err != nil {
			return err
		}

		if len(args) > 0 {
			duty, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return fan.SetDuty(duty)
		}

		pwm, err := fan.GetPwm()
		if err != nil {
			return err
		}
		fmt.Printf("%d", pwm)
		return nil
	},
}

func init() {
	Command.AddCommand(speedCmd)
}
