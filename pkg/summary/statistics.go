// Package summary reduces a sample to the numbers that get reported:
// population mean and variance, and an equal-width histogram over [0, 1].
package summary

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrEmptySample = errors.New("summary: statistics of an empty sample are undefined")

// Statistics holds the population moments of a sample.
type Statistics struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
}

// StdDev is the square root of the population variance.
func (s Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance)
}

// ComputeStatistics returns the mean and the population variance (the
// sum of squared deviations divided by n, not n-1). An empty sample
// yields ErrEmptySample.
func ComputeStatistics(samples []float64) (Statistics, error) {
	if len(samples) == 0 {
		return Statistics{}, ErrEmptySample
	}
	return Statistics{
		Mean:     floats.Sum(samples) / float64(len(samples)),
		Variance: stat.PopVariance(samples, nil),
	}, nil
}
