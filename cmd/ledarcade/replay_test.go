package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/game"
	"github.com/vovakirdan/led-arcade/internal/input"
	"github.com/vovakirdan/led-arcade/internal/mailbox"
	"github.com/vovakirdan/led-arcade/internal/output"
	"github.com/vovakirdan/led-arcade/internal/pipeline"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/render"
)

func TestReplaySimpleWin(t *testing.T) {
	engine, err := registry.Create("simple")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	// Row digits: player one takes the top row.
	stage, err := replay(engine, []string{"1", "4", "2", "5", "3"})
	if err != nil {
		t.Fatalf("replay() failed: %v", err)
	}

	won, ok := stage.(game.Won)
	if !ok {
		t.Fatalf("stage = %s, expected won", game.StageName(stage))
	}
	if won.Winner != game.PlayerOne {
		t.Errorf("winner = %v, expected player one", won.Winner)
	}
}

func TestReplaySkipsUnmappedAndRejectsUnknown(t *testing.T) {
	engine, err := registry.Create("ultimate")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	// 0x04 is a valid usage ID the decoder does not map.
	stage, err := replay(engine, []string{"0x04"})
	if err != nil {
		t.Fatalf("replay() failed: %v", err)
	}
	if _, ok := stage.(game.InProgress); !ok {
		t.Errorf("stage = %s, expected in_progress", game.StageName(stage))
	}

	if _, err := replay(engine, []string{"banana"}); err == nil {
		t.Error("replay() accepted an unknown key name")
	}
}

func TestFeedKeysSkipsCommentsAndBadLines(t *testing.T) {
	keys := mailbox.New[core.KeyboardInput]()
	d := input.NewDecoder(keys)

	src := strings.NewReader("# opening\n\nnope\nkp5\n")
	feedKeys(context.Background(), d, src, log.New(io.Discard), nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, err := keys.Wait(ctx)
	if err != nil {
		t.Fatalf("no key decoded: %v", err)
	}
	if got != core.Numpad(5) {
		t.Errorf("decoded %v, expected keypad 5", got)
	}
	if keys.Stats().Writes != 1 {
		t.Errorf("writes = %d, expected 1", keys.Stats().Writes)
	}
}

func TestPrintStage(t *testing.T) {
	color.NoColor = true
	b := game.NewUltimateBoard()

	tests := []struct {
		stage    game.Stage
		expected string
	}{
		{game.InProgress{Board: b, Selection: game.SelectGrid()}, "Ultimate: in_progress\n"},
		{game.IllegalMove{Board: b, Selection: game.SelectCell(4), Attempt: game.Move{Grid: 4, Cell: 2}}, "Ultimate: illegal_move (grid 4 cell 2)\n"},
		{game.Won{Winner: game.PlayerTwo, Board: b}, "Ultimate: won (player two)\n"},
		{game.Draw{Board: b}, "Ultimate: draw\n"},
	}

	for _, tc := range tests {
		var buf bytes.Buffer
		printStage(&buf, "Ultimate", tc.stage)
		if buf.String() != tc.expected {
			t.Errorf("printStage() = %q, expected %q", buf.String(), tc.expected)
		}
	}
}

func newHeadlessPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	engine, err := registry.Create("simple")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	return pipeline.New(engine, core.DefaultConfig(), render.DefaultStyle(), output.Discard, log.New(io.Discard))
}

func TestFeedHeadlessStopsAtEOF(t *testing.T) {
	p := newHeadlessPipeline(t)

	done := make(chan error, 1)
	go func() {
		done <- feedHeadless(context.Background(), p, strings.NewReader("1\n4\n2\n"), log.New(io.Discard))
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("feedHeadless() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("feedHeadless did not return at EOF")
	}

	// Every line reached the engine one at a time.
	if got := p.Stats().Keys.Takes; got != 3 {
		t.Errorf("keys taken = %d, expected 3", got)
	}
}

func TestFeedHeadlessStopsOnCancelWithOpenInput(t *testing.T) {
	p := newHeadlessPipeline(t)
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- feedHeadless(ctx, p, pr, log.New(io.Discard)) }()

	if _, err := pw.Write([]byte("5\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	cancel()

	// Input keeps arriving after the stop; nobody consumes it any more.
	go func() { _, _ = pw.Write([]byte("6\n")) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("feedHeadless() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("feedHeadless still running 2s after cancel (KeyPending=%v)", p.KeyPending())
	}
}
