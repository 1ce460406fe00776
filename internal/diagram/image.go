package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gorcv/internal/model"
)

// ExportImage writes the capacity envelope, and optionally the demand
// points, to a PNG/SVG/PDF file chosen by extension.
func ExportImage(d *model.InteractionDiagram, demands []model.ForceDemand, filename string) error {
	p := plot.New()
	p.Title.Text = "P-M Interaction Diagram (" + d.Axis.String() + " axis)"
	p.X.Label.Text = "φMn (kN·m)"
	p.Y.Label.Text = "φPn (kN)"

	envelope := make(plotter.XYs, 0, len(d.Points))
	for _, pt := range d.Points {
		envelope = append(envelope, plotter.XY{X: pt.PhiMn, Y: pt.PhiPn})
	}
	line, err := plotter.NewLine(envelope)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	// Nominal curve for reference, dashed.
	nominal := make(plotter.XYs, 0, len(d.Points))
	for _, pt := range d.Points {
		nominal = append(nominal, plotter.XY{X: pt.Mn, Y: pt.Pn})
	}
	nomLine, err := plotter.NewLine(nominal)
	if err != nil {
		return err
	}
	nomLine.LineStyle.Width = vg.Points(1)
	nomLine.LineStyle.Color = color.Gray{Y: 128}
	nomLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(nomLine)

	if len(demands) > 0 {
		pts := make(plotter.XYs, 0, len(demands))
		for _, dm := range demands {
			m := dm.Moment(d.Axis)
			if m < 0 {
				m = -m
			}
			pts = append(pts, plotter.XY{X: m, Y: dm.P})
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(scatter)
	}

	// Zero-moment axis reference.
	axis, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: envelope[0].Y},
		{X: 0, Y: envelope[len(envelope)-1].Y},
	})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Gray{Y: 200}
	p.Add(axis)

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
