// Package chartplot renders sampling results to image files with gonum/plot.
// The output format (PNG, JPEG or PDF) follows the file extension.
package chartplot

import (
	"github.com/EvgenyNerush/fp-simple/pkg/summary"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// MakeHistogramPlot draws bin counts against bin centers as a line with
// a marker on every bin.
func MakeHistogramPlot(h summary.Histogram, title, filename string) error {
	dc, out, err := newCanvas(filename)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "count"
	p.X.Min = 0
	p.X.Max = 1
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(h))
	for i, b := range h {
		pts[i].X = b.Center
		pts[i].Y = float64(b.Count)
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return errors.Wrap(err, "failed to build histogram line")
	}
	points.Radius = vg.Points(2.5)
	p.Add(line, points)

	p.Draw(dc)
	return save(out, filename)
}
