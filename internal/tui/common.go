package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the fatih/color output of the CLI commands
var (
	ColorGreen  = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}
	ColorCyan   = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}
	ColorWhite  = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}
	ColorGray   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
	ColorRed    = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}

	// ColorTeal frames the focused pane
	ColorTeal   = lipgloss.AdaptiveColor{Light: "#008787", Dark: "#1BA8A0"}
	ColorOrange = lipgloss.AdaptiveColor{Light: "#D75F00", Dark: "#FF8700"}
)

// Reusable styles
var (
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for the selected row
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	// StyleSubtitle is for author lines, counts and file kinds
	StyleSubtitle = lipgloss.NewStyle().Foreground(ColorCyan)

	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleWarning is for destructive confirmations
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true)

	StyleStatus = lipgloss.NewStyle().Foreground(ColorGreen)

	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)

	StyleBorderFocused = StyleBorder.BorderForeground(ColorTeal)
)
