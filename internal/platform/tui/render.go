package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// ledGlyph is drawn for every LED; two cells wide so the matrix looks square.
const ledGlyph = "██"

// offColor is shown for unlit LEDs so the grid stays visible.
var offColor = lipgloss.Color("#161616")

// boost maps a PWM channel value to a screen value. LEDs are far brighter
// than a monitor at low duty cycles, so the curve lifts dim values.
func boost(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return uint8(math.Round(math.Sqrt(float64(v)/255) * 255))
}

// ledColor returns the terminal color for one LED.
func ledColor(c core.RGB) lipgloss.Color {
	if c.IsBlack() {
		return offColor
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", boost(c.R), boost(c.G), boost(c.B)))
}

// RenderFrame converts a frame to a styled string, one row per line.
// Groups adjacent LEDs with the same color to minimize ANSI escape sequences.
func RenderFrame(f *core.Frame) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(f.Width()*f.Height()*8 + f.Height())

	for y := 0; y < f.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < f.Width() {
			start := f.Get(x, y)

			// Collect consecutive LEDs with same color
			n := 0
			for x < f.Width() && f.Get(x, y) == start {
				n++
				x++
			}

			style := lipgloss.NewStyle().Foreground(ledColor(start))
			sb.WriteString(style.Render(strings.Repeat(ledGlyph, n)))
		}
	}
	return sb.String()
}
