package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
)

var (
	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const iconSuccess = "✓"

// render applies s only when output goes to a terminal.
func (c *CLI) render(s lipgloss.Style, text string) string {
	if !c.styled {
		return text
	}
	return s.Render(text)
}

// printSuccess prints a success message. Plain output carries no icon so
// that the line can be matched by scripts.
func (c *CLI) printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !c.styled {
		fmt.Fprintln(c.Out, msg)
		return
	}
	fmt.Fprintln(c.Out, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printSaved prints "<prefix> <path>" with the path highlighted.
func (c *CLI) printSaved(prefix, path string) {
	c.printSuccess("%s %s", prefix, c.render(StyleValue, path))
}
