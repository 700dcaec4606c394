package sampler

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var ErrGridSize = errors.New("sampler: grid needs at least one cell per side")

// AcceptanceGrid splits the unit square into cells x cells squares and
// returns, for each square, the fraction of pairs falling into it that
// were accepted. Row r holds y in [r/cells, (r+1)/cells), column c holds
// x in [c/cells, (c+1)/cells). Squares without pairs stay at zero.
func AcceptanceGrid(pairs []Pair, cells int) (*mat.Dense, error) {
	if cells <= 0 {
		return nil, errors.Wrapf(ErrGridSize, "got %d", cells)
	}
	total := mat.NewDense(cells, cells, nil)
	hits := mat.NewDense(cells, cells, nil)

	for _, p := range pairs {
		r, c := cell(p.Y, cells), cell(p.X, cells)
		total.Set(r, c, total.At(r, c)+1)
		if _, ok := p.Accept(); ok {
			hits.Set(r, c, hits.At(r, c)+1)
		}
	}

	grid := mat.NewDense(cells, cells, nil)
	grid.Apply(func(i, j int, v float64) float64 {
		n := total.At(i, j)
		if n == 0 {
			return 0
		}
		return v / n
	}, hits)
	return grid, nil
}

func cell(v float64, cells int) int {
	i := int(v * float64(cells))
	if i < 0 {
		return 0
	}
	if i >= cells {
		return cells - 1
	}
	return i
}
