package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/led-arcade/internal/input"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the keyboard code table",
	Long: `Lists every USB HID usage ID the input decoder understands, the name
accepted by 'replay', and the input it produces. Keypad digits are flipped
vertically so the keypad layout matches the board.`,
	Run: runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Code", "Name", "Input").
		StyleFunc(tableStyle)
	for _, k := range input.Keys() {
		t.Row(fmt.Sprintf("0x%02X", uint8(k.Code)), k.Name, k.Input.String())
	}
	fmt.Println(t.Render())
}
