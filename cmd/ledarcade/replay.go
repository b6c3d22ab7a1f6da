package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/led-arcade/internal/game"
	"github.com/vovakirdan/led-arcade/internal/input"
	"github.com/vovakirdan/led-arcade/internal/platform/tui"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/render"
)

var flagAt time.Duration

var replayCmd = &cobra.Command{
	Use:   "replay <variant> [key...]",
	Short: "Feed keys to a variant and print the final frame",
	Long: `Runs the keys through the decoder and the game engine without timing,
then prints the frame the renderer would show --at after the last
transition. Keys are table names (see 'ledarcade keys') or usage IDs.

Examples:
  ledarcade replay simple kp1 kp5 kp9
  ledarcade replay ultimate 5 5 --at 250ms
  ledarcade replay ultimate 0x5D 0x5D`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().DurationVar(&flagAt, "at", 0, "Time since the last transition to render at")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine, err := registry.Create(args[0])
	if err != nil {
		return err
	}

	stage, err := replay(engine, args[1:])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	frame := render.Compose(stage, flagAt, render.StyleFromConfig(cfg))
	fmt.Fprintln(out, tui.RenderFrame(frame))
	printStage(out, engine.Title(), stage)
	return nil
}

// replay feeds keys to engine in order and returns the last stage.
// Keys the decoder does not map are skipped like on the console.
func replay(engine game.Engine, keys []string) (game.Stage, error) {
	stage := engine.Stage()
	for _, k := range keys {
		code, err := input.ParseKey(k)
		if err != nil {
			return nil, err
		}
		in, ok := input.Decode(code)
		if !ok {
			continue
		}
		stage, _ = engine.Handle(in)
	}
	return stage, nil
}
