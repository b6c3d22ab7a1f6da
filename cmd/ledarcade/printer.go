package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/vovakirdan/led-arcade/internal/game"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// printError prints err to stderr in red.
func printError(err error) {
	red.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, err)
}

// hint prints a follow-up suggestion to stderr.
func hint(format string, a ...any) {
	yellow.Fprintf(os.Stderr, format+"\n", a...)
}

// printStage writes a one-line summary of st, colored by stage.
func printStage(w io.Writer, title string, st game.Stage) {
	c := cyan
	detail := ""
	switch st := st.(type) {
	case game.Won:
		c = green
		detail = "player " + st.Winner.String()
	case game.Draw:
		c = yellow
	case game.IllegalMove:
		c = red
		detail = fmt.Sprintf("grid %d cell %d", st.Attempt.Grid, st.Attempt.Cell)
	}

	fmt.Fprintf(w, "%s: ", title)
	c.Fprint(w, game.StageName(st))
	if detail != "" {
		fmt.Fprintf(w, " (%s)", detail)
	}
	fmt.Fprintln(w)
}
