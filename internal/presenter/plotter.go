package presenter

import (
	"github.com/EvgenyNerush/fp-simple/pkg/chartplot"
	"github.com/EvgenyNerush/fp-simple/pkg/summary"

	"gonum.org/v1/gonum/mat"
)

func GenerateHistogramPlot(outputPath string, title string, h summary.Histogram) error {
	return chartplot.MakeHistogramPlot(h, title, outputPath)
}

func GenerateAcceptanceMap(outputPath string, title string, grid *mat.Dense) error {
	return chartplot.MakeAcceptancePlot(grid, title, outputPath)
}
