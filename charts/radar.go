package charts

import (
	"fmt"
	"math"
	"strings"
)

// Axis is one spoke of a radar chart.
type Axis struct {
	Label string
	Value float64
	Max   float64
}

// terminal cells are roughly twice as tall as they are wide
const cellAspect = 2.0

// Radar draws the axes as a polygon on concentric rings. Spoke ends are
// numbered from 1 in axis order; RadarLegend prints the matching key.
func Radar(axes []Axis, width, height int, p Palette) string {
	c := newCanvas(max(width, 1), max(height, 1))
	if len(axes) == 0 || height < 3 || width < 5 {
		return strings.Join(c.lines(p), "\n")
	}

	cx := float64(c.w-1) / 2
	cy := float64(c.h-1) / 2
	// leave one row and two columns for the spoke numbers
	ry := cy - 1
	rx := math.Min(ry*cellAspect, cx-2)
	ry = rx / cellAspect

	at := func(i int, frac float64) (int, int) {
		theta := -math.Pi/2 + float64(i)*2*math.Pi/float64(len(axes))
		x := cx + math.Cos(theta)*rx*frac
		y := cy + math.Sin(theta)*ry*frac
		return int(math.Round(x)), int(math.Round(y))
	}

	for _, ring := range []float64{0.5, 1} {
		for i := range axes {
			x0, y0 := at(i, ring)
			x1, y1 := at((i+1)%len(axes), ring)
			drawSegment(c, x0, y0, x1, y1, '·', ToneGrid)
		}
	}
	ox, oy := int(math.Round(cx)), int(math.Round(cy))
	for i := range axes {
		x, y := at(i, 1)
		drawSegment(c, ox, oy, x, y, '·', ToneGrid)
	}

	vertices := make([][2]int, len(axes))
	for i, a := range axes {
		frac := 0.0
		if a.Max > 0 {
			frac = math.Max(0, math.Min(a.Value/a.Max, 1))
		}
		x, y := at(i, frac)
		vertices[i] = [2]int{x, y}
	}
	for i := range vertices {
		a, b := vertices[i], vertices[(i+1)%len(vertices)]
		drawSegment(c, a[0], a[1], b[0], b[1], '•', ToneSeries)
	}
	for _, v := range vertices {
		c.set(v[0], v[1], '◆', TonePoint)
	}

	for i := range axes {
		theta := -math.Pi/2 + float64(i)*2*math.Pi/float64(len(axes))
		x, y := at(i, 1)
		x += int(math.Round(math.Cos(theta) * cellAspect))
		y += int(math.Round(math.Sin(theta)))
		c.text(x, y, fmt.Sprintf("%d", i+1), ToneAxis)
	}

	return strings.Join(c.lines(p), "\n")
}

// RadarLegend lists the numbered axes with their scores, one per line.
func RadarLegend(axes []Axis) []string {
	width := 0
	for _, a := range axes {
		width = max(width, len(a.Label))
	}
	out := make([]string, len(axes))
	for i, a := range axes {
		out[i] = fmt.Sprintf("%d %-*s %3.0f", i+1, width, a.Label, a.Value)
	}
	return out
}

// drawSegment steps along a straight segment, filling blank cells only.
func drawSegment(c *canvas, x0, y0, x1, y1 int, r rune, t Tone) {
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		c.setIfBlank(x0, y0, r, t)
		return
	}
	for s := 0; s <= steps; s++ {
		x := x0 + int(math.Round(float64(dx*s)/float64(steps)))
		y := y0 + int(math.Round(float64(dy*s)/float64(steps)))
		if t == ToneSeries {
			if existing := c.get(x, y); existing == ' ' || existing == '·' {
				c.set(x, y, r, t)
			}
			continue
		}
		c.setIfBlank(x, y, r, t)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
