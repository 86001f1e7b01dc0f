package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var (
	lockSerial string
	lockCode   string
	lockLabel  string
)

// Parent Command
var locksCmd = &cobra.Command{
	Use:   "locks",
	Short: "Manage door locks",
	Long:  `List lock devices, check their state, lock or unlock a door.`,
}

// List Command
var locksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all lock devices",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupSession()
		defer api.Close()

		devices, err := api.GetLockDevices()
		if err != nil {
			fmt.Printf("Error fetching lock devices: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(devices)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "SERIAL\tLABEL\tAREA")
		fmt.Fprintln(w, "------\t-----\t----")
		for _, d := range devices {
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.SerialNo, d.Label, d.Area)
		}
		w.Flush()
	},
}

// Status Command
var locksStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current state of every lock",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupSession()
		defer api.Close()

		statuses, err := api.GetLockStatus()
		if err != nil {
			fmt.Printf("Error fetching lock status: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(statuses)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "SERIAL\tLABEL\tSTATE")
		fmt.Fprintln(w, "------\t-----\t-----")
		for _, s := range statuses {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.SerialNo, s.Label, s.Status)
		}
		w.Flush()
	},
}

// Lock Command
var locksLockCmd = &cobra.Command{
	Use:     "lock",
	Short:   "Lock a door",
	Example: `  sectoralarm-cli locks lock --serial SN-1 --code 123456`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupSession()
		defer api.Close()

		if _, err := api.LockDoor(lockSerial, lockCode); err != nil {
			fmt.Printf("Error locking door: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Locked.")
	},
}

// Unlock Command
var locksUnlockCmd = &cobra.Command{
	Use:     "unlock",
	Short:   "Unlock a door",
	Example: `  sectoralarm-cli locks unlock --serial SN-1 --code 123456`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupSession()
		defer api.Close()

		if _, err := api.UnlockDoor(lockSerial, lockCode); err != nil {
			fmt.Printf("Error unlocking door: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Unlocked.")
	},
}

// Config Command
var locksConfigCmd = &cobra.Command{
	Use:     "config",
	Short:   "Show a lock's configuration",
	Example: `  sectoralarm-cli locks config --label "Front door"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupSession()
		defer api.Close()

		config, err := api.GetLockConfig(lockLabel)
		if err != nil {
			fmt.Printf("Error fetching lock config: %v\n", err)
			os.Exit(1)
		}
		printJSON(config)
	},
}

func init() {
	// Register Parent
	rootCmd.AddCommand(locksCmd)

	// Register Subcommands
	locksCmd.AddCommand(locksListCmd)
	locksCmd.AddCommand(locksStatusCmd)
	locksCmd.AddCommand(locksLockCmd)
	locksCmd.AddCommand(locksUnlockCmd)
	locksCmd.AddCommand(locksConfigCmd)

	// Flags for lock/unlock
	for _, c := range []*cobra.Command{locksLockCmd, locksUnlockCmd} {
		c.Flags().StringVar(&lockSerial, "serial", "", "Serial number of the lock")
		c.Flags().StringVar(&lockCode, "code", "", "Lock code")
		_ = c.MarkFlagRequired("serial")
		_ = c.MarkFlagRequired("code")
	}

	// Flags for config
	locksConfigCmd.Flags().StringVar(&lockLabel, "label", "", "Device label of the lock")
	_ = locksConfigCmd.MarkFlagRequired("label")
}
