package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var (
	armCode  string
	armState string
)

// armCmd sets the panel's arm state
var armCmd = &cobra.Command{
	Use:   "arm",
	Short: "Arm or disarm the panel",
	Long: `Sets the panel's arm state. The code and state are sent to the
server as-is; the server rejects bad input.`,
	Example: `  sectoralarm-cli arm --code 1234 --state ARMED_AWAY
  sectoralarm-cli arm --code 1234 --state DISARMED`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupSession()
		defer api.Close()

		fmt.Printf("Setting arm state to %s...\n", armState)

		confirmation, err := api.SetArmState(armCode, armState)
		if err != nil {
			fmt.Printf("Error setting arm state: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(confirmation)
			return
		}
		fmt.Println("Success.")
	},
}

func init() {
	rootCmd.AddCommand(armCmd)

	armCmd.Flags().StringVar(&armCode, "code", "", "Personal alarm code (four or six digits)")
	armCmd.Flags().StringVar(&armState, "state", "", "ARMED_HOME, ARMED_AWAY or DISARMED")
	_ = armCmd.MarkFlagRequired("code")
	_ = armCmd.MarkFlagRequired("state")
}
