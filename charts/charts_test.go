package charts

import (
	"strings"
	"testing"
	"unicode/utf8"
)

var qber = Series{
	Name:   "QBER (%)",
	Labels: []string{"00:00", "00:05", "00:10", "00:15", "00:20", "00:25", "00:30"},
	Values: []float64{0.05, 0.04, 0.06, 0.03, 0.04, 0.02, 0.03},
}

var entropy = Series{
	Name:   "Entropy",
	Labels: qber.Labels,
	Values: []float64{7.92, 7.94, 7.91, 7.96, 7.95, 7.98, 7.97},
}

func checkSize(t *testing.T, out string, width, height int) []string {
	t.Helper()
	lines := strings.Split(out, "\n")
	if len(lines) != height {
		t.Fatalf("got %d lines, want %d", len(lines), height)
	}
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != width {
			t.Errorf("line %d is %d cells wide, want %d: %q", i, n, width, l)
		}
	}
	return lines
}

func TestLine(t *testing.T) {
	out := Line(qber, 40, 10, Palette{})
	lines := checkSize(t, out, 40, 10)

	if got := strings.Count(out, "●"); got != 7 {
		t.Errorf("got %d markers, want 7", got)
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last, "00:00") || !strings.Contains(last, "00:30") {
		t.Errorf("x axis missing first or last label: %q", last)
	}
	if !strings.HasPrefix(lines[0], "0.06") {
		t.Errorf("top tick = %q, want 0.06", lines[0])
	}

	// The highest sample sits above the lowest one.
	const axisW, plotW = 5, 35
	rowOf := func(i int) int {
		col := axisW + pointColumn(i, len(qber.Values), plotW)
		for y, l := range lines {
			if []rune(l)[col] == '●' {
				return y
			}
		}
		t.Fatalf("no marker in column %d", col)
		return -1
	}
	if rowOf(2) >= rowOf(5) {
		t.Errorf("max sample row %d not above min sample row %d", rowOf(2), rowOf(5))
	}
}

func TestArea(t *testing.T) {
	out := Area(qber, 40, 10, Palette{})
	checkSize(t, out, 40, 10)
	if !strings.Contains(out, "░") || !strings.Contains(out, "▓") {
		t.Error("area chart has no fill")
	}
	if got := strings.Count(out, "●"); got != 7 {
		t.Errorf("got %d markers, want 7", got)
	}
}

func TestBar(t *testing.T) {
	out := Bar(entropy, 40, 10, Palette{})
	lines := checkSize(t, out, 40, 10)

	if !strings.HasPrefix(lines[0], "8.0") {
		t.Errorf("top tick = %q, want 8.0", lines[0])
	}
	if !strings.Contains(lines[0], "█") {
		t.Error("the 7.98 bar should reach the top row")
	}
	if !strings.Contains(lines[0], "▇") {
		t.Error("the 7.91 bar should end in a partial block on the top row")
	}
}

func TestBarEighths(t *testing.T) {
	tests := []struct {
		v, top float64
		rows   int
		want   int
	}{
		{7.98, 8, 9, 72},
		{7.91, 8, 9, 71},
		{4, 8, 9, 36},
		{0, 8, 9, 0},
		{-1, 8, 9, 0},
		{12, 8, 9, 72},
		{1, 0, 9, 0},
	}
	for _, tt := range tests {
		if got := BarEighths(tt.v, tt.top, tt.rows); got != tt.want {
			t.Errorf("BarEighths(%v, %v, %d) = %d, want %d", tt.v, tt.top, tt.rows, got, tt.want)
		}
	}
}

func TestEmptySeries(t *testing.T) {
	out := Line(Series{}, 20, 6, Palette{})
	if got := len(strings.Split(out, "\n")); got != 6 {
		t.Errorf("empty line chart has %d lines, want 6", got)
	}
	if strings.Contains(out, "●") {
		t.Error("empty series drew markers")
	}
}

var assessment = []Axis{
	{Label: "Key Security", Value: 95, Max: 100},
	{Label: "Eavesdropping Resistance", Value: 90, Max: 100},
	{Label: "Quantum Resistance", Value: 98, Max: 100},
	{Label: "Forward Secrecy", Value: 85, Max: 100},
	{Label: "Authentication", Value: 80, Max: 100},
	{Label: "Error Correction", Value: 88, Max: 100},
}

func TestRadar(t *testing.T) {
	out := Radar(assessment, 40, 15, Palette{})
	checkSize(t, out, 40, 15)

	if got := strings.Count(out, "◆"); got != 6 {
		t.Errorf("got %d vertices, want 6", got)
	}
	for _, n := range []string{"1", "2", "3", "4", "5", "6"} {
		if !strings.Contains(out, n) {
			t.Errorf("spoke %s not labelled", n)
		}
	}
}

func TestRadarTooSmall(t *testing.T) {
	out := Radar(assessment, 4, 2, Palette{})
	if strings.Contains(out, "◆") {
		t.Error("radar drew into a canvas too small to hold it")
	}
}

func TestRadarLegend(t *testing.T) {
	lines := RadarLegend(assessment)
	if len(lines) != 6 {
		t.Fatalf("got %d legend lines, want 6", len(lines))
	}
	if !strings.HasPrefix(lines[0], "1 Key Security") || !strings.HasSuffix(lines[0], " 95") {
		t.Errorf("legend[0] = %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], " 98") {
		t.Errorf("legend[2] = %q", lines[2])
	}
}

func TestInterpolate(t *testing.T) {
	v := []float64{0, 10, 20}
	tests := map[float64]float64{-1: 0, 0: 0, 0.5: 5, 1.25: 12.5, 2: 20, 3: 20}
	for in, want := range tests {
		if got := interpolate(v, in); got != want {
			t.Errorf("interpolate(%v) = %v, want %v", in, got, want)
		}
	}
}
