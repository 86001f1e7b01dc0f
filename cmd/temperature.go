package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var temperatureSerial string

// temperatureCmd lists the panel's temperature sensors
var temperatureCmd = &cobra.Command{
	Use:   "temperature",
	Short: "List temperature readings",
	Example: `  sectoralarm-cli temperature
  sectoralarm-cli temperature --serial ABC123`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupSession()
		defer api.Close()

		readings, err := api.GetTemperature(temperatureSerial)
		if err != nil {
			fmt.Printf("Error fetching temperatures: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(readings)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "SERIAL\tLABEL\tTEMP")
		fmt.Fprintln(w, "------\t-----\t----")
		for _, r := range readings {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.SerialNo, r.Label, r.Temperature)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(temperatureCmd)

	temperatureCmd.Flags().StringVar(&temperatureSerial, "serial", "", "Only show the sensor with this serial number")
}
