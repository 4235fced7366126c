package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"
)

// Plot renders a captioned line chart of values, downsampled to width.
// Input without finite values renders as "".
func Plot(caption string, values []float64, width, height int) string {
	data := finite(values)
	if len(data) == 0 {
		return ""
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}

// PlotSeries overlays several series on one chart, one colour each.
func PlotSeries(caption string, series [][]float64, width, height int) string {
	data := make([][]float64, 0, len(series))
	for _, s := range series {
		if f := finite(s); len(f) > 1 {
			data = append(data, f)
		}
	}
	if len(data) == 0 {
		return ""
	}
	colors := []asciigraph.AnsiColor{asciigraph.Cyan, asciigraph.Yellow, asciigraph.Green, asciigraph.Red}
	return asciigraph.PlotMany(data,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors[:min(len(data), len(colors))]...),
	)
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
