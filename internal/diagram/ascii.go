package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gorcv/internal/model"
)

// PlotASCII renders the reduced capacity envelope φPn(φMn) as a
// terminal graph: axial capacity on the vertical axis, sampled over
// the traversal from pure compression to pure tension.
func PlotASCII(d *model.InteractionDiagram, width, height int) string {
	if len(d.Points) == 0 {
		return ""
	}
	if width <= 0 {
		width = 60
	}
	if height <= 0 {
		height = 18
	}

	series := make([]float64, 0, len(d.Points))
	for _, p := range d.Points {
		series = append(series, p.PhiPn)
	}

	var sb strings.Builder
	sb.WriteString("\n  P-M INTERACTION DIAGRAM (" + d.Axis.String() + " axis)\n")
	sb.WriteString("  φPn (kN) over the compression→tension traversal\n\n")
	sb.WriteString(asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
	))
	sb.WriteString("\n")

	maxM := 0.0
	for _, p := range d.Points {
		maxM = math.Max(maxM, p.PhiMn)
	}
	sb.WriteString(fmt.Sprintf("\n  φPn range: %.1f to %.1f kN, peak φMn: %.1f kN·m\n",
		d.Points[len(d.Points)-1].PhiPn, d.Points[0].PhiPn, maxM))
	return sb.String()
}

// DrawSummaryBox creates a bordered summary box for CLI reports.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
