package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quantum-exchange/utils"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showDetails {
		return m.viewDetails()
	}

	width := m.contentWidth()

	var body string
	switch m.tab {
	case TabSetup:
		body = m.viewSetup(width)
	case TabVisualization:
		body = m.viewVisualization(width)
	case TabMetrics:
		body = m.viewMetrics(width)
	}

	sections := []string{m.viewHeader(width), m.viewTabs()}
	if n := m.viewNotice(width); n != "" {
		sections = append(sections, n)
	}
	sections = append(sections, body, m.viewBottomCards(width), m.help.View(m.keys))

	return m.renderWithDynamicWidth(strings.Join(sections, "\n\n"))
}

// contentWidth is the usable width inside the left pane
func (m Model) contentWidth() int {
	if m.leftPaneWidth <= 0 {
		return 80
	}
	return max(m.leftPaneWidth-6, 40) // border and padding
}

func (m Model) viewHeader(width int) string {
	title := titleStyle.Render(atomGlyph(m.frame) + " Quantum Secure Exchange")
	status := successStyle.Render("● Online")
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(status), 1)
	return title + strings.Repeat(" ", gap) + status
}

func (m Model) viewTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := string(rune('1'+i)) + " " + name
		if Tab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewNotice(width int) string {
	if m.notice == nil {
		return ""
	}
	style, color, glyph := highlightStyle, secondaryColor, "ℹ"
	switch m.notice.tone {
	case noticeSuccess:
		style, color, glyph = successStyle, successColor, "✓"
	case noticeWarning:
		style, color, glyph = warningStyle, warningColor, "⚠"
	case noticeDanger:
		style, color, glyph = errorStyle, errorColor, "✗"
	}
	text := style.Render(glyph+" "+m.notice.title) + "\n" + valueStyle.Render(utils.TruncateString(m.notice.body, width-4))
	return cardStyle.BorderForeground(color).Render(text)
}

// renderWithDynamicWidth renders content with two-pane layout
func (m Model) renderWithDynamicWidth(content string) string {
	if m.width > 0 && m.height > 0 {
		if m.showRightPane && m.leftPaneWidth > 0 && m.rightPaneWidth > 0 {
			return m.renderTwoPaneLayout(content)
		}
		return m.renderSinglePaneLayout(content)
	}

	return content
}

// renderSinglePaneLayout renders content in single pane mode
func (m Model) renderSinglePaneLayout(content string) string {
	contentWidth := max(m.width-4, 40) // 2 for border, 2 for padding

	mainStyle := lipgloss.NewStyle().
		Width(contentWidth).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor)

	return mainStyle.Render(content)
}

// renderTwoPaneLayout renders content with the activity pane on the right
func (m Model) renderTwoPaneLayout(content string) string {
	contentHeight := max(m.height-2, 10) // 2 for border

	leftPane := lipgloss.NewStyle().
		Width(m.leftPaneWidth-4).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor).
		Render(content)

	rightPane := lipgloss.NewStyle().
		Width(m.rightPaneWidth-4).
		Height(contentHeight).
		Padding(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor).
		Render(m.renderOutputSummary())

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, " ", rightPane)
}
