// Package fancy provides pretty printing utilities and styling for CLI output
package fancy

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Common colors for different types of elements
var (
	ColorBlue     = lipgloss.Color("39")  // Blue
	ColorGreen    = lipgloss.Color("82")  // Green
	ColorYellow   = lipgloss.Color("228") // Yellow
	ColorCyan     = lipgloss.Color("45")  // Cyan
	ColorRed      = lipgloss.Color("196") // Red
	ColorGray     = lipgloss.Color("250") // Light gray
	ColorWhite    = lipgloss.Color("15")  // White
	ColorDarkGray = lipgloss.Color("240") // Dark gray for branches
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode creates a styled section header node
func BranchNode(title string, info string) *tree.Tree {
	return tree.New().Root(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HeaderStyle.Render(title),
			" ",
			InfoStyle.Render(info),
		),
	)
}

// KeyValue renders "key: value" with the key styled as a label
func KeyValue(key, value string) string {
	return KeyStyle.Render(key+":") + " " + ValueStyle.Render(value)
}

// TruncateString truncates a string if it exceeds maxLength
func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
