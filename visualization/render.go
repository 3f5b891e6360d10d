package visualization

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles colours the field. The zero value renders plain text.
type Styles struct {
	Particles [3]lipgloss.Style
	Channel   lipgloss.Style
	Node      lipgloss.Style
	Bit       lipgloss.Style
	Caption   lipgloss.Style
	Live      lipgloss.Style
	Dim       lipgloss.Style
	styled    bool
}

// NewStyles builds field styles from the dashboard palette.
func NewStyles(primary, success, danger, muted lipgloss.Color) Styles {
	return Styles{
		Particles: [3]lipgloss.Style{
			lipgloss.NewStyle().Foreground(primary),
			lipgloss.NewStyle().Foreground(success),
			lipgloss.NewStyle().Foreground(danger),
		},
		Channel: lipgloss.NewStyle().Foreground(primary).Faint(true),
		Node:    lipgloss.NewStyle().Foreground(primary).Bold(true),
		Bit:     lipgloss.NewStyle().Foreground(primary).Bold(true),
		Caption: lipgloss.NewStyle().Foreground(muted),
		Live:    lipgloss.NewStyle().Foreground(success),
		Dim:     lipgloss.NewStyle().Faint(true),
		styled:  true,
	}
}

const (
	SenderLabel   = "( Sender )"
	ReceiverLabel = "( Receiver )"
	LiveCaption   = "● Transmitting quantum states..."
	captionRows   = 2
)

type glyph struct {
	r     rune
	style *lipgloss.Style
}

// Render draws the field into exactly height lines of width cells. The last
// two lines carry the protocol caption and, while active, the live caption.
func (f *Field) Render(width, height int, caption string, active bool, st Styles) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	fieldH := max(height-captionRows, 1)
	grid := make([][]glyph, height)
	for y := range grid {
		grid[y] = make([]glyph, width)
		for x := range grid[y] {
			grid[y][x] = glyph{r: ' '}
		}
	}
	put := func(x, y int, r rune, s *lipgloss.Style) {
		if x >= 0 && y >= 0 && x < width && y < height {
			grid[y][x] = glyph{r: r, style: s}
		}
	}
	text := func(x, y int, s string, style *lipgloss.Style) {
		for i, r := range []rune(s) {
			put(x+i, y, r, style)
		}
	}

	channelY := fieldH / 2
	for x := 0; x < width; x++ {
		put(x, channelY, '─', &st.Channel)
	}

	for _, p := range f.particles {
		px, py := f.Position(p, active)
		x := int(math.Round(px / 100 * float64(width-1)))
		y := int(math.Round(py / 100 * float64(fieldH-1)))
		style := &st.Particles[int(p.Color)%len(st.Particles)]
		if f.Opacity(p, active) < 0.5 {
			dim := style.Faint(true)
			style = &dim
		}
		put(x, y, particleGlyph(p), style)
	}

	for _, bx := range f.Bits(active) {
		put(int(math.Round(bx/100*float64(width-1))), channelY, '◆', &st.Bit)
	}

	senderCol := int(senderX*float64(width)) - len(SenderLabel)/2
	receiverCol := int(receiverX*float64(width)) - len(ReceiverLabel)/2
	text(max(senderCol, 0), channelY, SenderLabel, &st.Node)
	text(min(receiverCol, width-len(ReceiverLabel)), channelY, ReceiverLabel, &st.Node)

	if height > fieldH {
		text(centered(caption, width), fieldH, caption, &st.Caption)
	}
	if active && height > fieldH+1 {
		text(centered(LiveCaption, width), fieldH+1, LiveCaption, &st.Live)
	}

	lines := make([]string, height)
	for y, row := range grid {
		lines[y] = renderRow(row, st.styled)
	}
	return strings.Join(lines, "\n")
}

// particleGlyph picks a dot size from the particle's size and current scale.
func particleGlyph(p Particle) rune {
	switch s := p.Size * p.scale; {
	case s >= 4:
		return '●'
	case s >= 2.5:
		return '•'
	default:
		return '·'
	}
}

func centered(s string, width int) int {
	return max((width-len([]rune(s)))/2, 0)
}

func renderRow(row []glyph, styled bool) string {
	var b strings.Builder
	start := 0
	for x := 1; x <= len(row); x++ {
		if x < len(row) && row[x].style == row[start].style {
			continue
		}
		var run strings.Builder
		for _, g := range row[start:x] {
			run.WriteRune(g.r)
		}
		if styled && row[start].style != nil {
			b.WriteString(row[start].style.Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		start = x
	}
	return b.String()
}
