package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// statusCmd shows the panel's arm state
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the panel's current arm state",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupSession()
		defer api.Close()

		state, err := api.GetArmState()
		if err != nil {
			fmt.Printf("Error fetching arm state: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(state)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "STATE\tCHANGED\tBY")
		fmt.Fprintln(w, "-----\t-------\t--")
		fmt.Fprintf(w, "%s\t%s\t%s\n", state.StatusType, state.Time, state.User)
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
