package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"quantum-exchange/exchange"
	"quantum-exchange/models"
	"quantum-exchange/utils"
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB"))
	sectionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
)

// Color helper functions
func ColorTitle(text string) string     { return titleStyle.Render(text) }
func ColorSuccess(text string) string   { return successStyle.Render(text) }
func ColorError(text string) string     { return errorStyle.Render(text) }
func ColorWarning(text string) string   { return warningStyle.Render(text) }
func ColorInfo(text string) string      { return infoStyle.Render(text) }
func ColorSection(text string) string   { return sectionStyle.Render(text) }
func ColorHighlight(text string) string { return highlightStyle.Render(text) }
func ColorDimText(text string) string   { return dimStyle.Render(text) }

const sectionWidth = 60

// PrintBanner displays the application banner
func PrintBanner(w io.Writer) {
	banner := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#06B6D4")).
		Padding(0, 2).
		Width(sectionWidth - 2).
		Render(ColorTitle("Quantum Secure Exchange") + "\n" +
			ColorInfo("Simulated quantum key distribution dashboard"))
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, ColorDimText("  Progress is simulated. No data leaves this machine."))
}

// PrintSectionHeader prints a formatted section header
func PrintSectionHeader(w io.Writer, title string) {
	head := "─ " + title + " "
	dashes := strings.Repeat("─", max(sectionWidth-lipgloss.Width(head), 0))
	fmt.Fprintln(w, ColorSection("┌"+head+dashes+"┐"))
}

// PrintSectionFooter prints a formatted section footer
func PrintSectionFooter(w io.Writer) {
	fmt.Fprintln(w, ColorSection("└"+strings.Repeat("─", sectionWidth)+"┘"))
}

// PrintExchangeSetup lists what is about to be exchanged
func PrintExchangeSetup(w io.Writer, ex *exchange.Exchange) {
	file, _ := ex.File()
	p := ex.Protocol()
	PrintSectionHeader(w, "Exchange Setup")
	fmt.Fprintf(w, "  %-18s %s\n", "Protocol:", ColorHighlight(p.FullName()))
	fmt.Fprintf(w, "  %-18s %s (%s)\n", "File:", ColorHighlight(file.Name), utils.FormatKB(file))
	fmt.Fprintf(w, "  %-18s %s\n", "Exact Size:", utils.FormatFileSize(file.Size))
	fmt.Fprintf(w, "  %-18s %s\n", "Recipient:", utils.Prefix(ex.Recipient(), 16))
	fmt.Fprintf(w, "  %-18s %d/10\n", "Security Level:", p.SecurityLevel())
	fmt.Fprintf(w, "  %-18s %s\n", "Encryption:", models.ProtocolEncryption)
	PrintSectionFooter(w)
}

// ProgressLine renders one snapshot as a single line: bar, percentage,
// qubits and the stage currently in flight.
func ProgressLine(snap exchange.Snapshot, barWidth int) string {
	filled := barWidth * snap.Progress / models.MaxProgress
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	stage := "Pending"
	for _, st := range snap.Stages {
		if st.State == models.StageActive {
			stage = st.Name
			break
		}
		if st.State == models.StageComplete {
			stage = st.Name
		}
	}

	return fmt.Sprintf("  [%s] %3d%%  qubits %3d/%d  eta %2ds  %s",
		bar, snap.Progress, snap.QubitsProcessed, models.QubitCount, snap.EstimatedSeconds, stage)
}

// PrintCompletion prints the completed exchange summary
func PrintCompletion(w io.Writer, ex *exchange.Exchange) {
	file, _ := ex.File()
	PrintSectionHeader(w, "Exchange Completed")
	fmt.Fprintf(w, "  %-18s %s\n", "File:", file.Name)
	fmt.Fprintf(w, "  %-18s %s\n", "Encryption:", models.EncryptionLabel)
	fmt.Fprintf(w, "  %-18s %s\n", "Key Exchange:", ex.Protocol())
	fmt.Fprintf(w, "  %-18s %s\n", "Timestamp:", ex.CompletedAt().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  %-18s %s\n", "Duration:", utils.FormatDuration(ex.CompletedAt().Sub(ex.StartedAt())))
	fmt.Fprintf(w, "  %-18s %s\n", "Key (partial):", exchange.Partial(ex.Key(), 32))
	fmt.Fprintf(w, "  %-18s %s   %-10s %s\n", "QBER:", models.ErrorRate, "Entropy:", models.EntropyFigure)
	fmt.Fprintf(w, "  %-18s %s   %-10s %s\n", "Privacy Amp.:", models.PrivacyAmplification, "Key Rate:", models.SecureKeyRate)
	PrintSectionFooter(w)
	fmt.Fprintln(w, ColorSuccess("  ✓ Secure exchange completed"))
}

// PrintCancelled reports an interrupted exchange
func PrintCancelled(w io.Writer) {
	fmt.Fprintln(w, ColorWarning("  Exchange cancelled; progress reset to 0%"))
}

// ProtocolTable renders the protocol lookup table
func ProtocolTable(protocols []models.Protocol) string {
	rows := make([][]string, len(protocols))
	for i, p := range protocols {
		rows[i] = []string{
			p.String(),
			p.FullName(),
			fmt.Sprintf("%d/10", p.SecurityLevel()),
			fmt.Sprintf("%d%%", p.SecurityPercent()),
			fmt.Sprintf("%d", p.Bases()),
			p.Efficiency(),
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#7C3AED"))
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Protocol", "Name", "Security", "Visual", "Bases", "Efficiency").
		Rows(rows...).
		String()
}
