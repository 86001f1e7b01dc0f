package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sectoralarm-cli/internal/config"
)

// logoutCmd invalidates the saved session
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the saved session cookie",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupSession()
		defer api.Close()

		if err := api.Logout(); err != nil {
			fmt.Printf("Error logging out: %v\n", err)
			os.Exit(1)
		}

		// Drop the stale identifiers from the config file.
		if err := config.SaveSession("", ""); err != nil {
			fmt.Printf("Warning: could not update config file: %v\n", err)
		}

		fmt.Println("Logged out.")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
