package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/led-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively",
	Long: `Shows a picker over the registered variants and plays the chosen one.
Play flags apply to the chosen variant.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDriver, "driver", "", "Output driver: terminal or stream (default from config)")
	menuCmd.Flags().StringVar(&flagDevice, "device", "", "Device or FIFO written by the stream driver")
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadPlayConfig()
	if err != nil {
		return err
	}
	if cfg.Display.Driver == "none" {
		return fmt.Errorf("the menu needs a terminal driver")
	}

	variant, err := tui.RunMenu(cfg.Variant)
	if err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	if variant == "" {
		return nil // user quit
	}
	return play(cfg, variant)
}
