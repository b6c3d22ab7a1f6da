package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/input"
	"github.com/vovakirdan/led-arcade/internal/output"
	"github.com/vovakirdan/led-arcade/internal/pipeline"
	"github.com/vovakirdan/led-arcade/internal/platform/tui"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/render"
)

var (
	flagDriver string
	flagDevice string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start the console with the specified variant (default from config).

Drivers:
  terminal - Emulate the LED panel in the terminal
  stream   - Write GRB frames to --device and mirror them in the terminal
  none     - Headless: read key names or codes from stdin, one per line

Controls (terminal):
  1-9 / q w e a s d z x c - Keypad positions
  Arrows                  - Directions
  Enter                   - Confirm / restart after a finished game
  ?                       - Toggle help
  Esc/Ctrl+C              - Quit

Examples:
  ledarcade play
  ledarcade play simple
  ledarcade play ultimate --driver stream --device /dev/ttyUSB0
  printf 'kp5\n5\n' | ledarcade play simple --driver none`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDriver, "driver", "", "Output driver: terminal, stream, none (default from config)")
	playCmd.Flags().StringVar(&flagDevice, "device", "", "Device or FIFO written by the stream driver")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadPlayConfig()
	if err != nil {
		return err
	}

	variant := cfg.Variant
	if len(args) > 0 {
		variant = args[0]
	}
	return play(cfg, variant)
}

// loadPlayConfig loads the config with the play flags applied.
func loadPlayConfig() (config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, err
	}
	if flagDriver != "" {
		cfg.Display.Driver = flagDriver
	}
	if flagDevice != "" {
		cfg.Display.Device = flagDevice
	}
	return cfg, cfg.Validate()
}

// play runs variant until the user quits.
func play(cfg config.Config, variant string) error {
	engine, err := registry.Create(variant)
	if err != nil {
		hint("Run 'ledarcade list' to see available variants.")
		return err
	}

	style := render.StyleFromConfig(cfg)

	if cfg.Display.Driver == "none" {
		logger, err := newLogger(os.Stderr, cfg.LogLevel)
		if err != nil {
			return err
		}
		p := pipeline.New(engine, runtimeConfig(cfg), style, output.Discard, logger)
		return runHeadless(p, os.Stdin, logger)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the terminal emulator needs a TTY; use --driver none for headless runs")
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, cfg.LogLevel)
	if err != nil {
		return err
	}

	display := tui.NewDisplay()
	var driver output.Driver = display
	if cfg.Display.Driver == "stream" {
		dev, err := os.OpenFile(cfg.Display.Device, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("open device: %w", err)
		}
		defer dev.Close()
		driver = output.Tee(output.NewStreamDriver(dev, cfg.Display.Brightness), display)
		logger.Info("streaming frames", "device", cfg.Display.Device, "brightness", cfg.Display.Brightness)
	}

	p := pipeline.New(engine, runtimeConfig(cfg), style, driver, logger)
	p.OnRoundEnd(display.ReportRound)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	program := tui.NewProgram(engine.Title(), p.Decoder(), display)
	_, uiErr := program.Run()

	// Detach before stopping so the sink does not send to a dead program.
	display.Attach(nil)
	cancel()
	runErr := <-done

	if uiErr != nil {
		return fmt.Errorf("terminal UI: %w", uiErr)
	}
	return runErr
}

// runHeadless feeds keys read from r, one per line, until EOF or a signal.
func runHeadless(p *pipeline.Pipeline, r io.Reader, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return feedHeadless(ctx, p, r, logger)
}

// feedHeadless runs p while feeding keys from r. It returns once r is
// exhausted or ctx is cancelled, whichever comes first; a reader blocked
// on input does not hold up shutdown.
func feedHeadless(ctx context.Context, p *pipeline.Pipeline, r io.Reader, logger *log.Logger) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- p.Run(runCtx) }()

	// Keys are fed one at a time; the key mailbox holds a single value.
	eof := make(chan struct{})
	go func() {
		defer close(eof)
		feedKeys(runCtx, p.Decoder(), r, logger, func() {
			for p.KeyPending() {
				select {
				case <-runCtx.Done():
					return
				case <-time.After(time.Millisecond):
				}
			}
		})
	}()

	select {
	case <-eof:
	case <-ctx.Done():
		logger.Info("stopping on signal")
	}

	cancel()
	return <-done
}

// feedKeys parses one key per line and calls settle after each fed key.
// Blank lines and lines starting with '#' are skipped. It stops early
// once ctx is cancelled.
func feedKeys(ctx context.Context, d *input.Decoder, r io.Reader, logger *log.Logger, settle func()) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		code, err := input.ParseKey(line)
		if err != nil {
			logger.Warn("skipping line", "line", line, "error", err)
			continue
		}
		if !d.Feed(code) {
			logger.Debug("key not mapped", "code", fmt.Sprintf("0x%02X", uint8(code)))
			continue
		}
		if settle != nil {
			settle()
		}
	}
	if err := sc.Err(); err != nil {
		logger.Error("reading keys", "error", err)
	}
}
