package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/steelcode/goec3/internal/ec3"
)

var curveColors = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
}

// ExportBucklingCurves plots the reduction factor χ over the relative
// slenderness for all five imperfection curves and saves the chart to
// filename. The image format follows the file extension.
func ExportBucklingCurves(filename string) error {
	p := plot.New()
	p.Title.Text = "Flexural Buckling Curves (EN 1993-1-1)"
	p.X.Label.Text = "Relative slenderness λ̄"
	p.Y.Label.Text = "Reduction factor χ"
	p.Y.Min, p.Y.Max = 0, 1.1

	curves := []ec3.BucklingCurve{ec3.CurveA0, ec3.CurveA, ec3.CurveB, ec3.CurveC, ec3.CurveD}
	for idx, curve := range curves {
		pts := make(plotter.XYs, 0, 61)
		for i := 0; i <= 60; i++ {
			lambdaBar := float64(i) * 0.05
			chi, err := ec3.Chi(lambdaBar, curve)
			if err != nil {
				return err
			}
			pts = append(pts, plotter.XY{X: lambdaBar, Y: chi})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = curveColors[idx%len(curveColors)]
		p.Add(line)
		p.Legend.Add("curve "+curve.String(), line)
	}

	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
