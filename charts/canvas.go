// Package charts renders small line, area, bar and radar charts as
// terminal text.
package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tone selects the style of a canvas cell.
type Tone int

const (
	ToneBlank Tone = iota
	ToneAxis
	ToneGrid
	ToneSeries
	TonePoint
)

// Palette maps tones to styles. The zero value renders unstyled text.
type Palette struct {
	Axis   lipgloss.Style
	Grid   lipgloss.Style
	Series lipgloss.Style
	Point  lipgloss.Style

	styled bool
}

// NewPalette builds a palette around a series colour.
func NewPalette(series, muted lipgloss.Color) Palette {
	return Palette{
		Axis:   lipgloss.NewStyle().Foreground(muted),
		Grid:   lipgloss.NewStyle().Foreground(muted).Faint(true),
		Series: lipgloss.NewStyle().Foreground(series),
		Point:  lipgloss.NewStyle().Foreground(series).Bold(true),
		styled: true,
	}
}

func (p Palette) style(t Tone) (lipgloss.Style, bool) {
	if !p.styled {
		return lipgloss.Style{}, false
	}
	switch t {
	case ToneAxis:
		return p.Axis, true
	case ToneGrid:
		return p.Grid, true
	case ToneSeries:
		return p.Series, true
	case TonePoint:
		return p.Point, true
	default:
		return lipgloss.Style{}, false
	}
}

type cell struct {
	r    rune
	tone Tone
}

// canvas is a fixed grid of runes, each tagged with a tone.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' '}
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune, t Tone) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, tone: t}
}

func (c *canvas) get(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.cells[y][x].r
}

// setIfBlank draws only over empty cells, so grids never cover data.
func (c *canvas) setIfBlank(x, y int, r rune, t Tone) {
	if c.get(x, y) == ' ' {
		c.set(x, y, r, t)
	}
}

func (c *canvas) text(x, y int, s string, t Tone) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, t)
	}
}

// lines renders each row, grouping runs of equal tone into one styled span.
func (c *canvas) lines(p Palette) []string {
	out := make([]string, c.h)
	for y, row := range c.cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].tone == row[start].tone {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:x] {
				run.WriteRune(cl.r)
			}
			if st, ok := p.style(row[start].tone); ok {
				b.WriteString(st.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			start = x
		}
		out[y] = b.String()
	}
	return out
}

// scale maps values in [lo, hi] to rows 0..rows-1, with hi on row 0.
type scale struct {
	lo, hi float64
	rows   int
}

func (s scale) row(v float64) int {
	if s.rows <= 1 || s.hi == s.lo {
		return 0
	}
	r := int(math.Round((s.hi - v) / (s.hi - s.lo) * float64(s.rows-1)))
	return clamp(r, 0, s.rows-1)
}

// paddedScale leaves a tenth of the data range free above and below.
func paddedScale(values []float64, rows int) scale {
	lo, hi := bounds(values)
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.1, 1)
	}
	return scale{lo: lo - pad, hi: hi + pad, rows: rows}
}

// zeroScale starts at zero and ends at the next whole number above the data.
func zeroScale(values []float64, rows int) scale {
	_, hi := bounds(values)
	top := math.Ceil(hi)
	if top <= 0 {
		top = 1
	}
	return scale{lo: 0, hi: top, rows: rows}
}

func bounds(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// pointColumn spreads n points evenly across cols columns.
func pointColumn(i, n, cols int) int {
	if n <= 1 || cols <= 1 {
		return 0
	}
	return int(math.Round(float64(i) * float64(cols-1) / float64(n-1)))
}

// interpolate samples the series at fractional index t.
func interpolate(values []float64, t float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if t <= 0 {
		return values[0]
	}
	last := float64(len(values) - 1)
	if t >= last {
		return values[len(values)-1]
	}
	i := int(t)
	frac := t - float64(i)
	return values[i] + (values[i+1]-values[i])*frac
}

// tickLabel formats an axis value with the precision the range needs.
func tickLabel(v, span float64) string {
	switch {
	case span >= 10:
		return fmt.Sprintf("%.0f", v)
	case span >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
