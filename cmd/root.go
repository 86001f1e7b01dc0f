package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sectoralarm-cli/internal/client"
	"sectoralarm-cli/internal/config"
)

var cfgFile string
var jsonOutput bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sectoralarm-cli",
	Short: "A CLI for the Sector Alarm app API",
	Long: `Check and control your Sector Alarm panel (arm state, door locks,
temperature sensors, event history) via the mobile app API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sectoralarm-cli.yaml)")

	// Add the persistent flag here
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}

// setupSession builds a Session from the saved configuration.
// The library takes credentials programmatically; reading config files
// and environment is strictly this binary's business.
func setupSession() *client.Session {
	username := viper.GetString("username")
	password := viper.GetString("password")
	panel := viper.GetString("panel")

	if username == "" || password == "" || panel == "" {
		fmt.Println("Error: Not logged in. Please run 'sectoralarm-cli login' first.")
		os.Exit(1)
	}

	var opts []client.Option
	if base := viper.GetString("base_url"); base != "" {
		opts = append(opts, client.WithBaseURL(base))
	}
	if vid := viper.GetString("vid"); vid != "" {
		opts = append(opts, client.WithVID(vid))
	}
	if giid := viper.GetString("giid"); giid != "" {
		opts = append(opts, client.WithGIID(giid))
	}

	api, err := client.New(username, password, panel, opts...)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return api
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Printf("Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
