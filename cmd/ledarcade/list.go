package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/led-arcade/internal/registry"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows a list of all game variants registered in the console.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title").
		StyleFunc(tableStyle)
	for _, v := range variants {
		t.Row(v.ID, v.Title)
	}

	fmt.Println("Available variants:")
	fmt.Println(t.Render())
	fmt.Println()
	fmt.Println("Run 'ledarcade play <id>' to play a variant.")
}

func tableStyle(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}
