package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/edgewalk/edgewalk/pkg/engine"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// nodeColorStyles renders "Color N" labels in the color they stand for,
// matching the node fills used by the render command. Colorings beyond the
// palette wrap around.
var nodeColorStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
	lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + path)
}

// =============================================================================
// Result Colorization
// =============================================================================

var coloringLineRe = regexp.MustCompile(`^Node (\d+): Color (\d+)$`)

// colorizeResult decorates algorithm output for terminal display. Only the
// coloring result gets decoration: each "Color N" label is rendered in the
// color it assigns. Everything else passes through unchanged, so output
// stays grep-friendly.
func colorizeResult(op engine.Operation, result string) string {
	if op != engine.OpDSatur {
		return result
	}

	lines := strings.Split(result, "\n")
	for i, line := range lines {
		m := coloringLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		color, _ := strconv.Atoi(m[2])
		style := nodeColorStyles[(color-1)%len(nodeColorStyles)]
		lines[i] = fmt.Sprintf("Node %s: %s", m[1], style.Render("Color "+m[2]))
	}
	return strings.Join(lines, "\n")
}
