package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ardakazanci/customslider/internal/valuerange"
)

var (
	rangeMin  float64
	rangeMax  float64
	tickCount int
)

var snapCmd = &cobra.Command{
	Use:   "snap <value>",
	Short: "Snap a value to the nearest tick of a range",
	Long: `Snap rounds the value to the nearest of --ticks evenly spaced ticks across
[--min, --max] and clamps the result into the range. Ties round up. With
fewer than two ticks the value is printed unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnap,
}

func init() {
	addRangeFlags(snapCmd)
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&rangeMin, "min", 0, "range start")
	cmd.Flags().Float64Var(&rangeMax, "max", 100, "range end")
	cmd.Flags().IntVar(&tickCount, "ticks", 0, "number of ticks")
}

func runSnap(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	r := valuerange.New(rangeMin, rangeMax)
	fmt.Fprintln(cmd.OutOrStdout(), formatValue(valuerange.Snap(v, r, tickCount)))
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
