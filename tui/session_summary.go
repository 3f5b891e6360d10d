package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderOutputSummary generates the content for the right pane with scrolling
func (m Model) renderOutputSummary() string {
	var s strings.Builder

	s.WriteString(highlightStyle.Render("Session Activity") + "\n\n")

	if len(m.outputSummary) == 0 {
		s.WriteString(helpStyle.Render("Nothing yet.\n\nProtocol changes, file\nselection and exchanges\nwill appear here."))
		return s.String()
	}

	visibleLines := m.summaryVisibleLines()
	startIdx := min(m.outputScrollOffset, max(len(m.outputSummary)-1, 0))
	endIdx := min(startIdx+visibleLines, len(m.outputSummary))

	s.WriteString(strings.Join(m.outputSummary[startIdx:endIdx], "\n"))

	if len(m.outputSummary) > visibleLines {
		s.WriteString("\n\n" + helpStyle.Render("PgUp/PgDn or mouse wheel to scroll"))
	}
	return s.String()
}

func (m Model) summaryVisibleLines() int {
	return max(m.height-8, 5) // borders, padding, title
}

// addToOutputSummary adds an item to the output summary
func (m *Model) addToOutputSummary(item string) {
	m.outputSummary = append(m.outputSummary, item)
}

// formatSessionAction formats an action with a timestamp
func formatSessionAction(action string, at time.Time) string {
	return sessionStatusStyle.Render(at.Format("15:04:05")+" ") + sessionActionStyle.Render(action)
}

// formatSessionStatus formats a status line with key: value format and coloring
func formatSessionStatus(key, value string) string {
	return sessionStatusStyle.Render(key+": ") + determineValueStyle(key, value).Render(value)
}

// determineValueStyle picks a value colour from the key and value text
func determineValueStyle(key, value string) lipgloss.Style {
	lowerKey := strings.ToLower(key)
	lowerValue := strings.ToLower(value)

	switch lowerKey {
	case "file", "size":
		return sessionWarningValueStyle
	case "protocol", "key exchange":
		return sessionSuccessValueStyle
	}

	for _, pattern := range []string{"missing", "invalid", "failed", "error"} {
		if strings.Contains(lowerValue, pattern) {
			return sessionErrorValueStyle
		}
	}
	for _, pattern := range []string{"not saved", "cancelled", "skipped"} {
		if strings.Contains(lowerValue, pattern) {
			return sessionWarningValueStyle
		}
	}
	return sessionNeutralValueStyle
}

// addFormattedAction adds a timestamped action to the output summary
func (m *Model) addFormattedAction(action string) {
	m.addToOutputSummary(formatSessionAction(action, time.Now()))
}

func (m *Model) addFormattedStatus(key, value string) {
	m.addToOutputSummary(formatSessionStatus(key, value))
}

func (m *Model) addFormattedStatusIndented(key, value string) {
	m.addToOutputSummary("  " + formatSessionStatus(key, value))
}
