package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/acibeam/internal/beam"
)

// DrawCapacityCurve plots φMn (kip-ft) against As as a terminal line chart.
// Samples are assumed evenly spaced in As.
func DrawCapacityCurve(points []beam.CurvePoint) string {
	if len(points) < 2 {
		return ""
	}

	series := make([]float64, len(points))
	for i, p := range points {
		series[i] = p.PhiMnKipFt
	}

	caption := fmt.Sprintf("φMn (kip-ft) vs As, 0 to %.2f in² (balanced)", points[len(points)-1].As)
	return asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	)
}
