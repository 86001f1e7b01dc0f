package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyOffset int

// historyCmd lists recent panel events
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent panel events",
	Long: `Fetches the panel's event log. Event times arrive from the API as
short dates ("Today 14:30") and are shown as absolute timestamps.`,
	Example: `  sectoralarm-cli history
  sectoralarm-cli history --offset 20`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupSession()
		defer api.Close()

		entries, err := api.GetHistory(historyOffset)
		if err != nil {
			fmt.Printf("Error fetching history: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(entries)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "TIME\tEVENT\tUSER")
		fmt.Fprintln(w, "----\t-----\t----")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Time, e.EventType, e.User)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "Start index into the event log")
}
