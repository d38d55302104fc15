package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/edsim/edsim/sim/hospital"
)

const (
	chartWidth  = 72
	chartHeight = 10
)

// ChartGenerator renders monitor series as ASCII charts.
type ChartGenerator struct {
	width  int
	height int
}

// NewChartGenerator creates a chart generator. Non-positive dimensions fall
// back to the defaults.
func NewChartGenerator(width, height int) *ChartGenerator {
	if width <= 0 {
		width = chartWidth
	}
	if height <= 0 {
		height = chartHeight
	}
	return &ChartGenerator{width: width, height: height}
}

// Line is one named sequence drawn with Mark.
type Line struct {
	Label  string
	Mark   byte
	Values []float64
}

// Render draws lines against times. Later lines overwrite earlier ones where
// they share a cell. yMax <= 0 scales to the data.
func (g *ChartGenerator) Render(title string, times []float64, yMax float64, lines ...Line) string {
	if len(times) == 0 {
		return "No data to display\n"
	}
	if yMax <= 0 {
		for _, l := range lines {
			yMax = math.Max(yMax, CalculateMax(l.Values))
		}
		if yMax <= 0 {
			yMax = 1
		}
	}

	cols := min(g.width, len(times))
	grid := make([][]byte, g.height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", cols))
	}
	for _, l := range lines {
		for x := 0; x < cols; x++ {
			idx := sampleIndex(x, cols, len(l.Values))
			if idx < 0 {
				continue
			}
			level := int(math.Round(l.Values[idx] / yMax * float64(g.height)))
			if level <= 0 {
				continue
			}
			row := g.height - min(level, g.height)
			grid[row][x] = l.Mark
		}
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", cols+9))
	sb.WriteString("\n")
	for r, row := range grid {
		y := yMax * float64(g.height-r) / float64(g.height)
		sb.WriteString(fmt.Sprintf("%6.2f |", y))
		sb.Write(row)
		sb.WriteString("\n")
	}
	sb.WriteString("       +")
	sb.WriteString(strings.Repeat("-", cols))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("        t=%-.0f .. %.0f min\n", times[0], times[len(times)-1]))
	for _, l := range lines {
		sb.WriteString(fmt.Sprintf("        %c %s\n", l.Mark, l.Label))
	}
	return sb.String()
}

// sampleIndex maps chart column x to an index into a sequence of length n.
func sampleIndex(x, cols, n int) int {
	if n == 0 {
		return -1
	}
	if cols <= 1 {
		return 0
	}
	return int(float64(x) / float64(cols-1) * float64(n-1))
}

// RenderSeries draws the queue, doctor, nurse and bed charts of a run.
func (g *ChartGenerator) RenderSeries(s *hospital.Series) string {
	if s == nil || s.Len() == 0 {
		return "No data to display\n"
	}
	toFloat := func(v []int) []float64 {
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out
	}

	var sb strings.Builder
	sb.WriteString(g.Render("Queue Lengths Over Time", s.Times, 0,
		Line{Label: "Fast-Track Queue", Mark: 'F', Values: toFloat(s.QueueFast)},
		Line{Label: "Main ED Queue", Mark: 'M', Values: toFloat(s.QueueMain)},
	))
	sb.WriteString("\n")
	sb.WriteString(g.Render("Doctor Utilization Over Time", s.Times, 1,
		Line{Label: "Fast-Track Doctor", Mark: 'F', Values: s.UtilFastDoctor},
		Line{Label: "Main ED Doctor", Mark: 'M', Values: s.UtilMainDoctor},
	))
	sb.WriteString("\n")
	sb.WriteString(g.Render("Nurse Utilization Over Time", s.Times, 1,
		Line{Label: "Fast-Track Nurse", Mark: 'F', Values: s.UtilFastNurse},
		Line{Label: "Main ED Nurse", Mark: 'M', Values: s.UtilMainNurse},
	))
	sb.WriteString("\n")
	sb.WriteString(g.Render("Admission Bed Utilization Over Time", s.Times, 1,
		Line{Label: "Bed Utilization", Mark: 'B', Values: s.UtilBeds},
	))
	return sb.String()
}
