// Package cmd provides the CLI commands for valve-sizing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"valve-sizing/internal/config"
	"valve-sizing/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "valve-sizing",
	Short: "Size and select industrial control valves",
	Long: `valve-sizing computes the required flow coefficient (Cv) for liquid
or gas service per ISA S75.01 / IEC 60534, evaluates cavitation and
flashing risk, predicts noise, sizes the actuator and recommends
construction materials.

Results are representative engineering estimates, not a substitute for
vendor-certified sizing software.

Examples:
  valve-sizing size ./case.hcl
  valve-sizing size --format json ./case.json
  valve-sizing catalog styles --type "Globe"`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.valve-sizing.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("valve-sizing version 0.1.0")
	},
}
