package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quantum-exchange/models"
	"quantum-exchange/utils"
)

// updateSetup handles keys for the setup form
func (m Model) updateSetup(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.dropdownOpen {
		return m.updateDropdown(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextItem), key.Matches(msg, m.keys.Down):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevItem), key.Matches(msg, m.keys.Up):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Select):
		switch m.focus {
		case FocusProtocol:
			m.dropdownOpen = true
			m.dropdownCursor = protocolIndex(m.ex.Protocol())
		case FocusFile:
			m.picking = true
			return m, m.picker.Init()
		case FocusRecipient:
			return m, m.recipientInput.Focus()
		case FocusStart:
			return m.startExchange()
		}
	}
	return m, nil
}

func (m Model) setFocus(f Focus) (Model, tea.Cmd) {
	m.focus = f
	if f == FocusRecipient {
		return m, m.recipientInput.Focus()
	}
	m.recipientInput.Blur()
	return m, nil
}

// updateDropdown moves through the open protocol list
func (m Model) updateDropdown(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.dropdownCursor > 0 {
			m.dropdownCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.dropdownCursor < len(models.Protocols)-1 {
			m.dropdownCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.dropdownOpen = false
		return m.selectProtocol(models.Protocols[m.dropdownCursor])
	case key.Matches(msg, m.keys.Close):
		m.dropdownOpen = false
	}
	return m, nil
}

func (m Model) selectProtocol(p models.Protocol) (Model, tea.Cmd) {
	if p == m.ex.Protocol() {
		return m, nil
	}
	m.ex.SetProtocol(p)
	m.logger.Info("protocol changed", "protocol", p, "security_level", p.SecurityLevel())
	m.addFormattedAction("Protocol changed")
	m.addFormattedStatusIndented("Protocol", p.Label())
	m.addFormattedStatusIndented("Security Level", fmt.Sprintf("%d/10", p.SecurityLevel()))
	return m, nil
}

// updateRecipient feeds keys to the text input. Navigation keys fall through
// to the form.
func (m Model) updateRecipient(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down", "pgup", "pgdn":
		return false, m, nil
	case "esc":
		m.recipientInput.Blur()
		return true, m, nil
	case "enter":
		m, cmd := m.setFocus(FocusStart)
		return true, m, cmd
	}

	var cmd tea.Cmd
	m.recipientInput, cmd = m.recipientInput.Update(msg)
	m.ex.SetRecipient(m.recipientInput.Value())
	return true, m, cmd
}

// updatePicker hands keys to the file picker until a file is chosen
func (m Model) updatePicker(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Close) {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.picking = false
		return m, tea.Batch(cmd, selectFileCmd(path))
	}
	return m, cmd
}

// viewSetup renders the setup form and the exchange status card
func (m Model) viewSetup(width int) string {
	if m.picking {
		return m.viewPicker(width)
	}

	var s strings.Builder
	s.WriteString(m.viewProtocolField() + "\n\n")
	s.WriteString(m.viewFileField(width) + "\n\n")
	s.WriteString(m.viewRecipientField() + "\n\n")
	s.WriteString(m.viewSecurityLevel(width) + "\n\n")
	s.WriteString(m.viewProtocolInfo() + "\n\n")
	s.WriteString(m.viewStartButton())

	form := s.String()
	switch m.ex.Status() {
	case models.StatusProcessing:
		form += "\n\n" + m.viewProcessingCard(width)
	case models.StatusCompleted:
		form += "\n\n" + m.viewCompletedCard(width)
	}
	return form
}

func (m Model) fieldLabel(f Focus, label string) string {
	if m.focus == f {
		return selectedStyle.Render("> " + label)
	}
	return cardTitleStyle.Render("  " + label)
}

func (m Model) viewProtocolField() string {
	var s strings.Builder
	s.WriteString(m.fieldLabel(FocusProtocol, "Protocol Selection") + "\n")

	if !m.dropdownOpen {
		s.WriteString("  " + inputStyle.Render(m.ex.Protocol().Label()+" ▾"))
		return s.String()
	}

	for i, p := range models.Protocols {
		line := "    " + p.Label()
		if i == m.dropdownCursor {
			line = selectedStyle.Render("  ▸ " + p.Label())
		}
		s.WriteString(line)
		if i < len(models.Protocols)-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (m Model) viewFileField(width int) string {
	var s strings.Builder
	s.WriteString(m.fieldLabel(FocusFile, "File Selection") + "\n")
	s.WriteString("  " + buttonStyle.Render("Browse…"))

	if file, ok := m.ex.File(); ok {
		name := utils.TruncateString(file.Name, max(width-24, 12))
		s.WriteString("\n  " + labelStyle.Render("Selected: ") +
			valueStyle.Render(name) + labelStyle.Render(" ("+utils.FormatKB(file)+")"))
	}
	return s.String()
}

func (m Model) viewRecipientField() string {
	var s strings.Builder
	s.WriteString(m.fieldLabel(FocusRecipient, "Recipient's Quantum Key") + "\n")
	s.WriteString("  " + inputStyle.Render(m.recipientInput.View()))
	return s.String()
}

// viewSecurityLevel draws the level bar with its Standard/Enhanced/Maximum
// scale
func (m Model) viewSecurityLevel(width int) string {
	level := m.ex.SecurityLevel()
	tone := models.Tone(level)
	barWidth := max(min(width-10, 50), 10)
	filled := barWidth * level / 10

	bar := lipgloss.NewStyle().Foreground(toneColor(tone)).Render(strings.Repeat("█", filled)) +
		labelStyle.Render(strings.Repeat("░", barWidth-filled))

	header := cardTitleStyle.Render("  Security Level") + "  " +
		labelStyle.Render("Quantum Resistance ") + toneStyle(tone).Render(fmt.Sprintf("%d/10", level))

	scale := spread([]string{"Standard", "Enhanced", "Maximum"}, barWidth)
	return header + "\n  " + bar + "\n  " + labelStyle.Render(scale)
}

func (m Model) viewProtocolInfo() string {
	p := m.ex.Protocol()
	rows := [][2]string{
		{"Protocol:", p.FullName()},
		{"Key Size:", models.KeySizeLabel},
		{"Encryption:", models.ProtocolEncryption},
	}
	var s strings.Builder
	s.WriteString(cardTitleStyle.Render("  Protocol Information"))
	for _, r := range rows {
		s.WriteString("\n  " + labelStyle.Render(fmt.Sprintf("%-12s", r[0])) + valueStyle.Render(r[1]))
	}
	return s.String()
}

func (m Model) viewStartButton() string {
	label := "Start Secure Exchange"
	switch {
	case m.ex.Status() == models.StatusProcessing:
		return "  " + disabledButtonStyle.Render(label)
	case m.focus == FocusStart:
		return "  " + focusedButtonStyle.Render("▶ "+label)
	default:
		return "  " + buttonStyle.Render(label)
	}
}

func (m Model) viewPicker(width int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Select File") + "\n")
	s.WriteString(subtitleStyle.Render(utils.TruncateString(m.picker.CurrentDirectory, width)) + "\n\n")
	s.WriteString(m.picker.View() + "\n\n")
	s.WriteString(helpStyle.Render("enter: select • ←/h: up a directory • esc: back to the form"))
	return s.String()
}

// spread lays labels out evenly across width: first left, last right
func spread(labels []string, width int) string {
	if len(labels) == 0 {
		return ""
	}
	total := 0
	for _, l := range labels {
		total += len(l)
	}
	if len(labels) == 1 || total >= width {
		return strings.Join(labels, " ")
	}
	gaps := len(labels) - 1
	space := width - total
	var b strings.Builder
	for i, l := range labels {
		b.WriteString(l)
		if i < gaps {
			n := space / gaps
			if i < space%gaps {
				n++
			}
			b.WriteString(strings.Repeat(" ", n))
		}
	}
	return b.String()
}
