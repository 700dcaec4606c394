package chartplot

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// MakeAcceptancePlot draws an acceptance grid over the unit square as a
// heat map with a legend on the right. Row r of data is the r-th strip
// of y values, column c the c-th strip of x values.
func MakeAcceptancePlot(data *mat.Dense, title, filename string) error {
	dc, out, err := newCanvas(filename)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (proposal)"
	p.Y.Label.Text = "y (comparison)"

	pal := palette.Heat(10, 1)
	heatmap := plotter.NewHeatMap(matrixToGrid(data), pal)
	heatmap.Min = 0
	heatmap.Max = 1
	p.Add(heatmap)

	// Create a legend.
	l := plot.NewLegend()
	thumbs := plotter.PaletteThumbnailers(pal)
	labels := floats.Span(make([]float64, len(thumbs)), heatmap.Min, heatmap.Max)
	for i := len(thumbs) - 1; i >= 0; i-- {
		l.Add(fmt.Sprintf("%.1f", labels[i]), thumbs[i])
	}

	p.X.Padding = 0
	p.Y.Padding = 0

	l.Top = true
	// Calculate the width of the legend.
	r := l.Rectangle(dc)
	legendWidth := r.Max.X - r.Min.X
	l.YOffs = -p.Title.TextStyle.FontExtents().Height // Adjust the legend down a little.

	l.Draw(dc)
	dc = draw.Crop(dc, 0, -legendWidth-vg.Millimeter, 0, 0) // Make space for the legend.
	p.Draw(dc)

	return save(out, filename)
}

func matrixToGrid(matrix *mat.Dense) plotter.GridXYZ {
	rows, cols := matrix.Dims()
	return grid{Matrix: matrix, Rows: rows, Cols: cols}
}

type grid struct {
	Matrix     *mat.Dense
	Rows, Cols int
}

func (g grid) Dims() (c, r int)   { return g.Cols, g.Rows }
func (g grid) Z(c, r int) float64 { return g.Matrix.At(r, c) }
func (g grid) X(c int) float64    { return (float64(c) + 0.5) / float64(g.Cols) }
func (g grid) Y(r int) float64    { return (float64(r) + 0.5) / float64(g.Rows) }
