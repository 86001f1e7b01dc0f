package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sectoralarm-cli/internal/client"
	"sectoralarm-cli/internal/config"
)

// Variables to hold flag values
var (
	host  string
	user  string
	pass  string
	panel string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the Sector Alarm app API",
	Long: `Verifies the credentials against the app API, obtains the session
cookie (vid) and panel group id (giid) the cookie-authenticated calls
need, and saves everything locally for future commands.

Example:
  sectoralarm-cli login --username me@example.com --password secret --panel 01234`,
	Run: func(cmd *cobra.Command, args []string) {
		// Clean up input host (remove trailing slash if present)
		host = strings.TrimRight(host, "/")

		var opts []client.Option
		if host != "" {
			opts = append(opts, client.WithBaseURL(host))
		}

		api, err := client.New(user, pass, panel, opts...)
		if err != nil {
			log.Fatalf("Fatal: %v", err)
		}
		defer api.Close()

		fmt.Printf("Authenticating as user '%s' for panel %s...\n", user, panel)

		if err := api.Login(); err != nil {
			log.Fatalf("Fatal: Login failed: %v", err)
		}

		fmt.Println("Login successful. Saving configuration...")

		// Persist credentials and host so subsequent commands can
		// rebuild the session.
		viper.Set("username", user)
		viper.Set("password", pass)
		viper.Set("panel", panel)
		if host != "" {
			viper.Set("base_url", host)
		}

		if err := config.SaveSession(api.VID(), api.GIID()); err != nil {
			log.Fatalf("Failed to save configuration file: %v", err)
		}

		fmt.Println("Session saved. You can now run commands like './sectoralarm-cli status'.")
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	// Define Flags
	// We use local flags because these are specific only to the login action.
	loginCmd.Flags().StringVar(&host, "host", "", "API base URL (defaults to the production host)")
	loginCmd.Flags().StringVarP(&user, "username", "u", "", "Sector Alarm username (email)")
	loginCmd.Flags().StringVarP(&pass, "password", "p", "", "Sector Alarm password")
	loginCmd.Flags().StringVar(&panel, "panel", "", "Panel id shown in the app")

	// Mark required flags to ensure the user provides necessary info
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
	_ = loginCmd.MarkFlagRequired("panel")
}
