package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quantum-exchange/charts"
)

const chartHeight = 10

// viewMetrics renders the four security charts as a 2x2 grid, or a single
// column on narrow terminals
func (m Model) viewMetrics(width int) string {
	if width < 90 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.viewQBERChart(width),
			m.viewKeyRateChart(width),
			m.viewEntropyChart(width),
			m.viewRadarChart(width))
	}
	left := width / 2
	right := width - left
	top := lipgloss.JoinHorizontal(lipgloss.Top, m.viewQBERChart(left), m.viewKeyRateChart(right))
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, m.viewEntropyChart(left), m.viewRadarChart(right))
	return top + "\n" + bottom
}

// cachedChart renders a chart through the render cache, keyed by name and
// size
func (m Model) cachedChart(name string, w, h int, render func() string) string {
	return m.cache.GetOrRender(fmt.Sprintf("%s:%dx%d", name, w, h), render)
}

func (m Model) viewQBERChart(width int) string {
	w := max(width-4, 20)
	metrics := m.ex.Metrics()
	s := charts.Series{Name: "QBER (%)", Labels: metrics.Times(), Values: metrics.QBERSeries()}
	body := m.cachedChart("qber", w, chartHeight, func() string {
		return charts.Line(s, w, chartHeight, chartPalette(primaryColor))
	})
	return card("Quantum Bit Error Rate", "Real-time monitoring", body, width)
}

func (m Model) viewKeyRateChart(width int) string {
	w := max(width-4, 20)
	metrics := m.ex.Metrics()
	s := charts.Series{Name: "Key Rate (kbps)", Labels: metrics.Times(), Values: metrics.KeyRateSeries()}
	body := m.cachedChart("keyrate", w, chartHeight, func() string {
		return charts.Area(s, w, chartHeight, chartPalette(successColor))
	})
	return card("Secure Key Rate", "Bits per second", body, width)
}

func (m Model) viewEntropyChart(width int) string {
	w := max(width-4, 20)
	metrics := m.ex.Metrics()
	s := charts.Series{Name: "Entropy", Labels: metrics.Times(), Values: metrics.EntropySeries()}
	body := m.cachedChart("entropy", w, chartHeight, func() string {
		return charts.Bar(s, w, chartHeight, chartPalette(warningColor))
	})
	return card("Entropy Analysis", "Bits per byte", body, width)
}

func (m Model) viewRadarChart(width int) string {
	metrics := m.ex.Metrics()
	axes := make([]charts.Axis, len(metrics.RadarData))
	for i, p := range metrics.RadarData {
		axes[i] = charts.Axis{Label: p.Subject, Value: p.Value, Max: p.FullMark}
	}

	legend := charts.RadarLegend(axes)
	legendWidth := 0
	for _, l := range legend {
		legendWidth = max(legendWidth, lipgloss.Width(l))
	}

	w := max(width-4-legendWidth-2, 16)
	plot := m.cachedChart("radar", w, chartHeight, func() string {
		return charts.Radar(axes, w, chartHeight, chartPalette(accentColor))
	})
	body := lipgloss.JoinHorizontal(lipgloss.Top, plot, "  ", labelStyle.Render(strings.Join(legend, "\n")))
	return card("Security Assessment", "Multi-factor analysis", body, width)
}
