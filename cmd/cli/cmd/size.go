// Package cmd - size command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"valve-sizing/adapters/casefile"
	"valve-sizing/core/engine"
	"valve-sizing/core/output"
	"valve-sizing/internal/config"
	"valve-sizing/internal/logging"
)

var outputFormat string

// sizeCmd represents the size command
var sizeCmd = &cobra.Command{
	Use:   "size <case-file>",
	Short: "Run a sizing case and print the report",
	Long: `Run a complete sizing calculation for a case file.

The case file describes the process conditions and the selected valve,
in HCL or JSON.

Examples:
  valve-sizing size ./case.hcl
  valve-sizing size --format markdown ./case.hcl
  valve-sizing size --format json ./case.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSize,
}

func init() {
	sizeCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
}

func runSize(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("case file does not exist: %s", path)
	}

	c, err := casefile.Load(path)
	if err != nil {
		return err
	}
	if c.Process.UnitSystem == "" {
		c.Process.UnitSystem = config.Get().Units.DefaultSystem
	}

	logging.Info("running sizing case", zap.String("file", path))

	report, err := engine.Run(*c)
	if err != nil {
		return err
	}

	format := output.Format(outputFormat)
	if format == "" {
		format = output.Format(config.Get().Output.DefaultFormat)
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}
	if cli, ok := formatter.(*output.CLIFormatter); ok {
		cli.ShowDetails = config.Get().Output.ShowDetails
	}

	return formatter.Render(os.Stdout, report)
}
