// ledarcade runs tic-tac-toe on a 16x16 LED matrix, or on a terminal
// emulation of one.
//
// Usage:
//
//	ledarcade list                      - List available variants
//	ledarcade play [variant]            - Play a variant
//	ledarcade menu                      - Pick a variant interactively
//	ledarcade replay <variant> <key>... - Feed keys and print the resulting frame
//	ledarcade keys                      - Show the key code table
//
// Global flags:
//
//	--fps <rate>         - Render tick rate (default from config: 60)
//	--config <path>      - Config file (default: ~/.ledarcade/config.yaml)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/led-arcade/internal/games/simple"
	_ "github.com/vovakirdan/led-arcade/internal/games/ultimate"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ledarcade",
	Short: "LED Arcade - tic-tac-toe on a 16x16 LED matrix",
	Long: `LED Arcade runs tic-tac-toe and ultimate tic-tac-toe on a 16x16
serpentine LED matrix. Without hardware, the terminal emulates the panel.

Available commands:
  list     - Show all available variants
  play     - Play a variant
  menu     - Interactive variant picker
  replay   - Feed keys to a variant and print the final frame
  keys     - Show the keyboard code table

Examples:
  ledarcade list
  ledarcade play ultimate
  ledarcade play simple --driver stream --device /dev/spidev0.0
  ledarcade replay ultimate kp5 5 enter`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Render tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(keysCmd)
}
