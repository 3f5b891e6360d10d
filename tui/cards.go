package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quantum-exchange/exchange"
	"quantum-exchange/models"
	"quantum-exchange/utils"
)

// card draws a bordered box with a title and optional subtitle
func card(title, subtitle, body string, width int) string {
	head := cardTitleStyle.Render(title)
	if subtitle != "" {
		head += "\n" + subtitleStyle.Render(subtitle)
	}
	return cardStyle.Width(max(width-2, 10)).Render(head + "\n\n" + body)
}

// kv renders a "label  value" row with the value right-aligned to width
func kv(label, value string, width int, style lipgloss.Style) string {
	v := style.Render(value)
	gap := max(width-lipgloss.Width(label)-lipgloss.Width(v), 1)
	return labelStyle.Render(label) + strings.Repeat(" ", gap) + v
}

// viewProcessingCard shows progress while an exchange runs
func (m Model) viewProcessingCard(width int) string {
	snap := m.ex.Snapshot()
	inner := max(width-6, 20)

	header := m.spinner.View() + " " + warningStyle.Render("Exchange in Progress")
	cancel := buttonStyle.Render("Cancel (x)")
	header += strings.Repeat(" ", max(inner-lipgloss.Width(header)-lipgloss.Width(cancel), 1)) + cancel

	bar := m.progressBar.ViewAs(float64(snap.Progress) / models.MaxProgress)

	rows := []string{
		kv("Protocol", snap.Protocol.String(), inner, valueStyle),
		kv("Qubits Processed", fmt.Sprintf("%d/%d", snap.QubitsProcessed, models.QubitCount), inner, valueStyle),
		kv("Error Rate", models.ErrorRate, inner, successStyle),
		kv("Estimated Time", fmt.Sprintf("%d seconds", snap.EstimatedSeconds), inner, valueStyle),
	}

	body := header + "\n\n" + bar + "\n\n" + strings.Join(rows, "\n")
	return cardStyle.Width(max(width-2, 10)).BorderForeground(warningColor).Render(body)
}

// viewCompletedCard summarises a finished exchange
func (m Model) viewCompletedCard(width int) string {
	inner := max(width-6, 20)
	file, _ := m.ex.File()

	header := successStyle.Render("✓ Exchange Completed")
	details := buttonStyle.Render("View Details (d)")
	header += strings.Repeat(" ", max(inner-lipgloss.Width(header)-lipgloss.Width(details), 1)) + details

	rows := []string{
		kv("File", utils.TruncateString(file.Name, inner/2), inner, valueStyle),
		kv("Encryption", models.EncryptionLabel, inner, valueStyle),
		kv("Key Exchange", m.ex.Protocol().String(), inner, valueStyle),
		kv("Timestamp", m.ex.CompletedAt().Format("2006-01-02 15:04:05"), inner, valueStyle),
	}

	body := header + "\n\n" + strings.Join(rows, "\n")
	return cardStyle.Width(max(width-2, 10)).BorderForeground(successColor).Render(body)
}

// securityStatus is the static real-time monitoring card content
var securityStatus = []struct {
	label string
	value string
	tone  models.LevelTone
}{
	{"Quantum Resistance", "Strong", models.ToneSuccess},
	{"Eavesdropping Detection", "Active", models.ToneSuccess},
	{"Key Integrity", "Verified", models.ToneSuccess},
	{"Channel Security", "Moderate", models.ToneWarning},
}

func (m Model) viewSecurityStatusCard(width int) string {
	inner := max(width-4, 10)
	rows := make([]string, len(securityStatus))
	for i, r := range securityStatus {
		rows[i] = kv(r.label, r.value, inner, toneStyle(r.tone))
	}
	return card("Security Status", "Real-time monitoring", strings.Join(rows, "\n"), width)
}

func (m Model) viewRecentExchangesCard(width int) string {
	inner := max(width-4, 10)
	history := m.ex.History()
	rows := make([]string, 0, len(history))
	for i, rec := range history {
		if i == maxHistoryRows {
			rows = append(rows, helpStyle.Render(fmt.Sprintf("… %d more", len(history)-i)))
			break
		}
		name := utils.TruncateString(rec.FileName, max(inner-12, 8))
		rows = append(rows, kv("▪ "+name, rec.When, inner, labelStyle))
	}
	return card("Recent Exchanges", "Last 24 hours", strings.Join(rows, "\n"), width)
}

const maxHistoryRows = 4

// viewKeyCard shows the receiving key, masked until revealed
func (m Model) viewKeyCard(width int) string {
	inner := max(width-4, 10)

	var keyText string
	if m.keyVisible {
		keyText = valueStyle.Render(wrapHard(m.ex.ReceiveKey(), inner))
	} else {
		keyText = labelStyle.Render(exchange.Mask(8))
	}

	reveal := "Show (v)"
	if m.keyVisible {
		reveal = "Hide (v)"
	}
	copyLabel := buttonStyle.Render("Copy (y)")
	if m.copied {
		copyLabel = buttonStyle.Background(successColor).Render("✓ Copied")
	}
	buttons := buttonStyle.Render(reveal) + " " + copyLabel + " " + buttonStyle.Render("Regenerate (g)")

	return card("Your Quantum Key", "For receiving files", keyText+"\n\n"+buttons, width)
}

// viewBottomCards lays the three status cards side by side, or stacked on
// narrow terminals
func (m Model) viewBottomCards(width int) string {
	if width < 90 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.viewSecurityStatusCard(width),
			m.viewRecentExchangesCard(width),
			m.viewKeyCard(width))
	}
	w := width / 3
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewSecurityStatusCard(w),
		m.viewRecentExchangesCard(w),
		m.viewKeyCard(width-2*w))
}

// wrapHard breaks s into lines of at most width runes
func wrapHard(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	var lines []string
	for len(r) > width {
		lines = append(lines, string(r[:width]))
		r = r[width:]
	}
	lines = append(lines, string(r))
	return strings.Join(lines, "\n")
}
