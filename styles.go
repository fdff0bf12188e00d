package tokencss

import "github.com/charmbracelet/lipgloss"

// Terminal styles for the report writer. Lipgloss degrades colors
// automatically based on terminal capabilities.
var (
	// StyleCyan is used for section headers and counts.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleYellow is used for diagnostics.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen is used for candidate headers and success lines.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for hints and secondary detail.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderStyle applies a lipgloss style when colors are enabled.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
