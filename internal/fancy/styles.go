package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Common styles that can be used across the application
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	EnabledStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// FlagText renders a boolean flag as enabled/disabled
func FlagText(enabled bool) string {
	if enabled {
		return EnabledStyle.Render("enabled")
	}
	return InfoStyle.Render("disabled")
}

// Swatch renders a small block in the given hex color, or an empty string
// when hex is empty.
func Swatch(hex string) string {
	if hex == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render("  ")
}

// ValidText styles valid status text (green)
func ValidText(text string) string {
	return EnabledStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// PathText styles file paths (gray)
func PathText(text string) string {
	return InfoStyle.Render(text)
}

// SummaryText styles summary information (dark gray)
func SummaryText(text string) string {
	return BranchStyle.Render(text)
}
