package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ardakazanci/customslider/internal/sliderapp"
)

var trace bool

var rootCmd = &cobra.Command{
	Use:   "customslider",
	Short: "Morphing slider demo and snap arithmetic tools",
	Long: `customslider opens a window with a draggable slider whose thumb stretches
while it is dragged. The snap and ticks subcommands expose the value
arithmetic on the command line.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		sliderapp.SetTraceLogEnabled(trace)
		slog.SetDefault(sliderapp.NewLogger(os.Stderr))
	},
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "enable debug logging of drag state and values")
	addDemoFlags(rootCmd)

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(snapCmd)
	rootCmd.AddCommand(ticksCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
