package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quantum-exchange/models"
)

const fieldHeight = 14

// viewVisualization renders the particle field and its three info cards
func (m Model) viewVisualization(width int) string {
	snap := m.ex.Snapshot()
	active := snap.Status == models.StatusProcessing

	field := m.field.Render(max(width-4, 10), fieldHeight, snap.Protocol.FullName(), active, fieldStyles())
	fieldBox := cardStyle.Width(max(width-2, 10)).Render(field)

	var cards string
	if width < 90 {
		cards = lipgloss.JoinVertical(lipgloss.Left,
			m.viewProtocolCard(width),
			m.viewQuantumStatesCard(width),
			m.viewStagesCard(width, snap.Stages))
	} else {
		w := width / 3
		cards = lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewProtocolCard(w),
			m.viewQuantumStatesCard(w),
			m.viewStagesCard(width-2*w, snap.Stages))
	}
	return fieldBox + "\n" + cards
}

func (m Model) viewProtocolCard(width int) string {
	p := m.ex.Protocol()
	inner := max(width-4, 10)
	pct := p.SecurityPercent()

	barWidth := max(inner-6, 4)
	filled := barWidth * pct / 100
	bar := lipgloss.NewStyle().Foreground(primaryColor).Render(strings.Repeat("█", filled)) +
		labelStyle.Render(strings.Repeat("░", barWidth-filled))

	body := valueStyle.Render(p.FullName()) + "\n\n" +
		kv("Security", fmt.Sprintf("%d%%", pct), inner, highlightStyle) + "\n" + bar
	return card("Protocol", "", body, width)
}

func (m Model) viewQuantumStatesCard(width int) string {
	p := m.ex.Protocol()
	inner := max(width-4, 10)
	rows := []string{
		kv("Qubits", fmt.Sprintf("%d", models.QubitCount), inner, valueStyle),
		kv("Bases", fmt.Sprintf("%d", p.Bases()), inner, valueStyle),
		kv("Error Rate", models.ErrorRate, inner, successStyle),
		kv("Efficiency", p.Efficiency(), inner, valueStyle),
	}
	return card("Quantum States", "", strings.Join(rows, "\n"), width)
}

func (m Model) viewStagesCard(width int, stages []models.Stage) string {
	inner := max(width-4, 10)
	rows := make([]string, len(stages))
	for i, st := range stages {
		rows[i] = kv(st.Name, st.State.String(), inner, stageStyle(st.State))
	}
	return card("Exchange Status", "", strings.Join(rows, "\n"), width)
}
