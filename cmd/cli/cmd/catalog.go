// Package cmd - catalog commands
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"valve-sizing/core/types"
	"valve-sizing/core/valvedata"
)

var catalogValveType string

// catalogCmd groups reference data inspection commands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the valve reference data",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// catalogStylesCmd lists valve styles with their coefficients
var catalogStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List valve styles and characteristic coefficients",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, vt := range catalogTypes() {
			fmt.Printf("%s:\n", vt)
			for _, style := range valvedata.Styles(vt) {
				c := valvedata.Coefficients(vt, style)
				fmt.Printf("  %-32s FL=%.2f Kc=%.2f Xt=%.2f R=%.0f:1\n",
					style, c.FL, c.Kc, c.Xt, c.Rangeability)
				fmt.Printf("  %34s%s\n", "", c.Style)
			}
		}
		return nil
	},
}

// catalogSizesCmd lists the nominal sizes per valve type
var catalogSizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List available nominal sizes (inches)",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, vt := range catalogTypes() {
			fmt.Printf("%s: %v\n", vt, valvedata.SizesFor(vt))
		}
		return nil
	},
}

// catalogRatedCvCmd looks up the rated Cv for a nominal size
var catalogRatedCvCmd = &cobra.Command{
	Use:   "rated-cv <size>",
	Short: "Show the typical rated Cv for a nominal size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("size must be an integer number of inches: %q", args[0])
		}
		fmt.Printf("%d\" rated Cv: %.0f\n", size, valvedata.RatedCv(size))
		return nil
	},
}

func catalogTypes() []types.ValveType {
	all := []types.ValveType{types.Globe, types.BallSegmented, types.Butterfly}
	if catalogValveType == "" {
		return all
	}
	return []types.ValveType{types.ValveType(catalogValveType)}
}

func init() {
	catalogCmd.PersistentFlags().StringVarP(&catalogValveType, "type", "t", "", "restrict to one valve type")
	catalogCmd.AddCommand(catalogStylesCmd)
	catalogCmd.AddCommand(catalogSizesCmd)
	catalogCmd.AddCommand(catalogRatedCvCmd)
}
