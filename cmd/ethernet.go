package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// ethernetCmd shows the panel's wired network status
var ethernetCmd = &cobra.Command{
	Use:   "ethernet",
	Short: "Show the panel's ethernet status",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupSession()
		defer api.Close()

		status, err := api.GetEthernetStatus()
		if err != nil {
			fmt.Printf("Error fetching ethernet status: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(status)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tSERIAL\tSTATUS")
		fmt.Fprintln(w, "----\t------\t------")
		fmt.Fprintf(w, "%s\t%s\t%s\n", status.Name, status.SerialNo, status.StatusType)
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(ethernetCmd)
}
