package charts

import (
	"math"
	"strings"
)

// Series is a labelled sequence of values sharing one x axis.
type Series struct {
	Name   string
	Labels []string
	Values []float64
}

const minPlotHeight = 2

// frame is the shared layout of the cartesian charts: a y axis with three
// ticks on the left, the plot area, and one row of x labels at the bottom.
type frame struct {
	axisW  int
	plotW  int
	plotH  int
	sc     scale
	canvas *canvas
}

func newFrame(s Series, width, height int, sc scale) frame {
	plotH := sc.rows
	ticks := []float64{sc.hi, (sc.hi + sc.lo) / 2, sc.lo}
	span := sc.hi - sc.lo

	labels := make([]string, len(ticks))
	axisW := 0
	for i, v := range ticks {
		labels[i] = tickLabel(v, span)
		axisW = max(axisW, len(labels[i]))
	}
	axisW++ // axis line

	plotW := max(width-axisW, len(s.Values), 1)
	f := frame{
		axisW:  axisW,
		plotW:  plotW,
		plotH:  plotH,
		sc:     sc,
		canvas: newCanvas(axisW+plotW, height),
	}

	tickRows := []int{0, sc.row(ticks[1]), plotH - 1}
	for y := 0; y < plotH; y++ {
		f.canvas.set(axisW-1, y, '│', ToneAxis)
	}
	for i, y := range tickRows {
		label := labels[i]
		f.canvas.text(axisW-1-len(label), y, label, ToneAxis)
		f.canvas.set(axisW-1, y, '┤', ToneAxis)
		for x := 0; x < plotW; x += 2 {
			f.canvas.set(axisW+x, y, '·', ToneGrid)
		}
	}
	return f
}

// labelX writes x labels centred on the given plot columns, dropping any
// label that would overlap the previous one.
func (f frame) labelX(labels []string, cols []int) {
	y := f.canvas.h - 1
	lastEnd := f.axisW - 1
	for i, label := range labels {
		if i >= len(cols) {
			break
		}
		n := len([]rune(label))
		start := f.axisW + cols[i] - n/2
		start = clamp(start, f.axisW, f.canvas.w-n)
		if start <= lastEnd {
			continue
		}
		f.canvas.text(start, y, label, ToneAxis)
		lastEnd = start + n
	}
}

func (f frame) pointCols(n int) []int {
	cols := make([]int, n)
	for i := range cols {
		cols[i] = pointColumn(i, n, f.plotW)
	}
	return cols
}

// columnRows samples the interpolated series once per plot column.
func (f frame) columnRows(values []float64) []int {
	rows := make([]int, f.plotW)
	n := len(values)
	for c := range rows {
		t := 0.0
		if f.plotW > 1 {
			t = float64(c) * float64(n-1) / float64(f.plotW-1)
		}
		rows[c] = f.sc.row(interpolate(values, t))
	}
	return rows
}

func (f frame) render(p Palette) string {
	return strings.Join(f.canvas.lines(p), "\n")
}

func plotRows(height int) int {
	return max(height-1, minPlotHeight)
}

// Line draws the series as a connected line with markers on each sample.
func Line(s Series, width, height int, p Palette) string {
	f := newFrame(s, width, height, paddedScale(s.Values, plotRows(height)))
	if len(s.Values) > 0 {
		rows := f.columnRows(s.Values)
		for c, r := range rows {
			ch := '─'
			if c > 0 {
				prev := rows[c-1]
				switch {
				case r < prev:
					ch = '╱'
				case r > prev:
					ch = '╲'
				}
				for y := min(r, prev) + 1; y < max(r, prev); y++ {
					f.canvas.set(f.axisW+c, y, '│', ToneSeries)
				}
			}
			f.canvas.set(f.axisW+c, r, ch, ToneSeries)
		}
		for i, c := range f.pointCols(len(s.Values)) {
			f.canvas.set(f.axisW+c, f.sc.row(s.Values[i]), '●', TonePoint)
		}
	}
	f.labelX(s.Labels, f.pointCols(len(s.Labels)))
	return f.render(p)
}

// Area draws the series as a filled region under its curve.
func Area(s Series, width, height int, p Palette) string {
	f := newFrame(s, width, height, paddedScale(s.Values, plotRows(height)))
	if len(s.Values) > 0 {
		for c, r := range f.columnRows(s.Values) {
			f.canvas.set(f.axisW+c, r, '▓', ToneSeries)
			for y := r + 1; y < f.plotH; y++ {
				f.canvas.set(f.axisW+c, y, '░', ToneSeries)
			}
		}
		for i, c := range f.pointCols(len(s.Values)) {
			f.canvas.set(f.axisW+c, f.sc.row(s.Values[i]), '●', TonePoint)
		}
	}
	f.labelX(s.Labels, f.pointCols(len(s.Labels)))
	return f.render(p)
}

var partialBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

// Bar draws one vertical bar per sample from a zero baseline, using eighth
// blocks for the fractional top.
func Bar(s Series, width, height int, p Palette) string {
	f := newFrame(s, width, height, zeroScale(s.Values, plotRows(height)))
	centers := barCenters(len(s.Values), f.plotW)
	slot := float64(f.plotW) / float64(max(len(s.Values), 1))
	barW := max(int(slot*0.6), 1)

	for i, v := range s.Values {
		eighths := BarEighths(v, f.sc.hi, f.plotH)
		full, rem := eighths/8, eighths%8
		start := centers[i] - barW/2
		for x := start; x < start+barW; x++ {
			for k := 0; k < full; k++ {
				f.canvas.set(f.axisW+x, f.plotH-1-k, '█', ToneSeries)
			}
			if rem > 0 && full < f.plotH {
				f.canvas.set(f.axisW+x, f.plotH-1-full, partialBlocks[rem], ToneSeries)
			}
		}
	}
	f.labelX(s.Labels, barCenters(len(s.Labels), f.plotW))
	return f.render(p)
}

// BarEighths is the bar height in eighths of a row.
func BarEighths(v, top float64, rows int) int {
	if top <= 0 || v <= 0 {
		return 0
	}
	e := int(math.Round(v / top * float64(rows*8)))
	return clamp(e, 0, rows*8)
}

func barCenters(n, cols int) []int {
	centers := make([]int, n)
	if n == 0 {
		return centers
	}
	slot := float64(cols) / float64(n)
	for i := range centers {
		centers[i] = int((float64(i) + 0.5) * slot)
	}
	return centers
}
