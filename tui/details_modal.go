package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quantum-exchange/exchange"
	"quantum-exchange/models"
	"quantum-exchange/utils"
)

const (
	partialKeyChars    = 32
	recipientPreview   = 16
	modalMaxInnerWidth = 72
)

// updateDetails closes the modal. "Download Certificate" writes nothing.
func (m Model) updateDetails(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Details):
		m.showDetails = false
	case key.Matches(msg, m.keys.Select):
		m.showDetails = false
		m.logger.Info("certificate download requested")
		m.addFormattedStatus("Certificate", "not saved")
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return m, nil
}

// viewDetails renders the exchange details modal
func (m Model) viewDetails() string {
	inner := min(max(m.width-10, 50), modalMaxInnerWidth)
	file, _ := m.ex.File()

	var s strings.Builder
	s.WriteString(titleStyle.Render("Exchange Details") + "\n\n")

	s.WriteString(labelStyle.Render("Generated Quantum Key (Partial)") + "\n")
	s.WriteString(inputStyle.Render(wrapHard(exchange.Partial(m.ex.Key(), partialKeyChars), inner-2)) + "\n\n")

	s.WriteString(labelStyle.Render("Security Metrics") + "\n")
	half := inner / 2
	metric := func(label, value string) string {
		return lipgloss.NewStyle().Width(half).Render(labelStyle.Render(label) + "\n" + cardTitleStyle.Render(value))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		metric("Quantum Bit Error Rate", models.ErrorRate),
		metric("Privacy Amplification", models.PrivacyAmplification)) + "\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		metric("Entropy", models.EntropyFigure),
		metric("Secure Key Rate", models.SecureKeyRate)) + "\n\n")

	s.WriteString(labelStyle.Render("File Information") + "\n")
	rows := [][2]string{
		{"Name:", utils.TruncateString(file.Name, inner-14)},
		{"Size:", utils.FormatKB(file)},
		{"Encryption:", models.EncryptionLabel},
		{"Recipient:", utils.Prefix(m.ex.Recipient(), recipientPreview)},
	}
	for _, r := range rows {
		s.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", r[0])) + valueStyle.Render(r[1]) + "\n")
	}

	s.WriteString("\n" + lipgloss.NewStyle().Foreground(errorColor).Render("Close (esc)") +
		"   " + focusedButtonStyle.Render("Download Certificate (enter)"))

	box := modalStyle.Width(inner + 4).Render(s.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
