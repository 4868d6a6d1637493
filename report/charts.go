package report

import (
	"fmt"
	"strings"
)

const barWidth = 40

// chartSpec names one metric and how to read and format it.
type chartSpec struct {
	title   string
	value   func(Row) float64
	integer bool
}

var chartSpecs = []chartSpec{
	{"Time (ms)", func(r Row) float64 {
		return float64(r.Metrics.Elapsed.Nanoseconds()) / 1e6
	}, false},
	{"Expanded nodes", func(r Row) float64 { return float64(r.Metrics.Expanded) }, true},
	{"Generated nodes", func(r Row) float64 { return float64(r.Metrics.Generated) }, true},
	{"Explored (peak)", func(r Row) float64 { return float64(r.Metrics.MaxExplored) }, true},
	{"Frontier (peak)", func(r Row) float64 { return float64(r.Metrics.MaxFrontier) }, true},
	{"Peak structures", func(r Row) float64 { return float64(r.Metrics.MaxStructures) }, true},
	{"Path cost", func(r Row) float64 { return float64(r.Metrics.PathCost) }, true},
}

// Charts renders one horizontal bar chart per metric, bars scaled to the
// largest value in that chart. Charts are separated by blank lines.
func Charts(rows []Row) string {
	sections := make([]string, 0, len(chartSpecs))
	for _, spec := range chartSpecs {
		sections = append(sections, renderChart(spec, rows))
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func renderChart(spec chartSpec, rows []Row) string {
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	rendered := make([]string, len(rows))

	labelW, valueW := 0, 0
	max := 0.0
	for i, r := range rows {
		labels[i] = Label(r.Algorithm, r.Heuristic)
		values[i] = spec.value(r)
		if spec.integer {
			rendered[i] = fmt.Sprintf("%d", int(values[i]))
		} else {
			rendered[i] = fmt.Sprintf("%.3f", values[i])
		}
		if len(labels[i]) > labelW {
			labelW = len(labels[i])
		}
		if len(rendered[i]) > valueW {
			valueW = len(rendered[i])
		}
		if values[i] > max {
			max = values[i]
		}
	}

	// One grid for the whole chart: title row, then a bar row per run.
	c := newCanvas(labelW+2+barWidth+2+valueW, len(rows)+1)
	c.writeString(0, 0, spec.title)
	for i := range rows {
		y := i + 1
		c.writeString(0, y, labels[i])
		for x := 0; x < barLength(values[i], max); x++ {
			c.set(labelW+2+x, y, '#')
		}
		c.writeString(labelW+2+barWidth+2, y, rendered[i])
	}
	return c.String()
}

// barLength scales value against the chart maximum, keeping any nonzero
// value visible as at least one mark.
func barLength(value, max float64) int {
	if max <= 0 || value <= 0 {
		return 0
	}
	n := int(value/max*barWidth + 0.5)
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return n
}

// canvas is a fixed-size rune grid the charts draw onto. Out-of-bounds
// writes are dropped.
type canvas struct {
	cells  [][]rune
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &canvas{cells: cells, width: width, height: height}
}

func (c *canvas) set(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

func (c *canvas) writeString(x, y int, s string) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r)
	}
}

// String joins the rows, trimming trailing blanks so the text files stay
// clean.
func (c *canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(strings.TrimRight(string(c.cells[y]), " "))
	}
	return sb.String()
}
