package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ardakazanci/customslider/internal/config"
	"github.com/ardakazanci/customslider/internal/sliderapp"
)

var (
	demoConfigPath string
	demoSnap       bool
	demoTicks      int
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the slider demo window",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	addDemoFlags(demoCmd)
}

func addDemoFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&demoConfigPath, "config", "", "config file (default: user config dir)")
	cmd.Flags().BoolVar(&demoSnap, "snap", false, "snap the value to ticks")
	cmd.Flags().IntVar(&demoTicks, "ticks", 0, "number of ticks (overrides config when set)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadDemoConfig(cmd)
	if err != nil {
		return err
	}
	slog.Debug("starting demo", "config", cfg.Path(), "snap", cfg.SnapToTicks, "ticks", cfg.TickCount)
	sliderapp.NewApp(cfg).Run()
	return nil
}

// loadDemoConfig reads the config file and applies flags the user set
// explicitly. Flag overrides are not written back unless the window saves.
func loadDemoConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if demoConfigPath != "" {
		cfg, err = config.LoadFile(demoConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("snap") {
		cfg.SnapToTicks = demoSnap
	}
	if cmd.Flags().Changed("ticks") {
		if demoTicks < 0 {
			return nil, fmt.Errorf("--ticks must not be negative, got %d", demoTicks)
		}
		cfg.TickCount = demoTicks
	}
	return cfg, nil
}
