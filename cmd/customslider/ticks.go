package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ardakazanci/customslider/internal/valuerange"
)

var (
	ticksValue   float64
	ticksNoColor bool
)

var ticksCmd = &cobra.Command{
	Use:   "ticks",
	Short: "List the tick values of a range",
	Long: `Ticks prints one line per tick. With --value the tick that value snaps to is
highlighted and marked with an arrow.`,
	Args: cobra.NoArgs,
	RunE: runTicks,
}

func init() {
	addRangeFlags(ticksCmd)
	ticksCmd.Flags().Float64Var(&ticksValue, "value", 0, "highlight the tick this value snaps to")
	ticksCmd.Flags().BoolVar(&ticksNoColor, "no-color", false, "disable colored output")
}

func runTicks(cmd *cobra.Command, args []string) error {
	r := valuerange.New(rangeMin, rangeMax)
	ticks := valuerange.Ticks(r, tickCount)
	if ticks == nil {
		return fmt.Errorf("no ticks: need --ticks >= 2 and --max > --min")
	}

	selected := -1
	if cmd.Flags().Changed("value") {
		selected = valuerange.TickIndex(ticksValue, r, tickCount)
	}

	hi := color.New(color.Bold, color.FgHiGreen)
	if ticksNoColor || color.NoColor {
		hi.DisableColor()
	}

	out := cmd.OutOrStdout()
	for i, t := range ticks {
		line := fmt.Sprintf("%d\t%s", i, formatValue(t))
		if i == selected {
			fmt.Fprintln(out, hi.Sprint(line+"\t<-"))
			continue
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
