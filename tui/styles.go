package tui

import (
	"github.com/charmbracelet/lipgloss"

	"quantum-exchange/charts"
	"quantum-exchange/models"
	"quantum-exchange/visualization"
)

var (
	// Colors - quantum blue/violet theme
	primaryColor   = lipgloss.Color("#7C3AED") // Violet
	secondaryColor = lipgloss.Color("#3B82F6") // Blue
	accentColor    = lipgloss.Color("#06B6D4") // Cyan
	successColor   = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray
	surfaceColor   = lipgloss.Color("#374151")

	// Cards
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor)

	modalStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(primaryColor)

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	valueStyle = lipgloss.NewStyle().
			Foreground(textColor)

	// Tabs
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(mutedColor)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(textColor).
			Background(primaryColor).
			Bold(true)

	// Form controls
	selectedStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(textColor).
			Background(secondaryColor)

	focusedButtonStyle = buttonStyle.
				Background(primaryColor).
				Bold(true)

	disabledButtonStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Foreground(mutedColor).
				Background(surfaceColor)

	// Status styles
	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Session activity pane
	sessionActionStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Italic(true)

	sessionStatusStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	sessionSuccessValueStyle = lipgloss.NewStyle().
					Foreground(successColor)

	sessionWarningValueStyle = lipgloss.NewStyle().
					Foreground(warningColor)

	sessionErrorValueStyle = lipgloss.NewStyle().
				Foreground(errorColor)

	sessionNeutralValueStyle = lipgloss.NewStyle().
					Foreground(textColor)
)

// toneStyle colours a security level the way the level bar does.
func toneStyle(t models.LevelTone) lipgloss.Style {
	switch t {
	case models.ToneSuccess:
		return successStyle
	case models.ToneWarning:
		return warningStyle
	default:
		return errorStyle
	}
}

func toneColor(t models.LevelTone) lipgloss.Color {
	switch t {
	case models.ToneSuccess:
		return successColor
	case models.ToneWarning:
		return warningColor
	default:
		return errorColor
	}
}

func stageStyle(s models.StageState) lipgloss.Style {
	switch s {
	case models.StageComplete:
		return successStyle
	case models.StageActive:
		return warningStyle
	default:
		return labelStyle
	}
}

func fieldStyles() visualization.Styles {
	return visualization.NewStyles(primaryColor, successColor, errorColor, mutedColor)
}

func chartPalette(series lipgloss.Color) charts.Palette {
	return charts.NewPalette(series, mutedColor)
}
