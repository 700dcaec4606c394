package summary

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrBinCount = errors.New("summary: histogram needs a positive number of bins")

// Bin is one histogram column.
type Bin struct {
	Center float64 `json:"center"`
	Count  int     `json:"count"`
}

// Histogram is an ordered list of bins with increasing centers.
type Histogram []Bin

// ComputeHistogram splits [0, 1] into binCount bins of width dx and
// counts the samples in each. Bin i is centered at i/binCount + dx/2 and
// covers (center - dx/2, center + dx/2]: a sample lying exactly on the
// border between two bins belongs to the lower one, so 0 itself is not
// counted and 1 goes into the last bin. Samples outside (0, 1] are left
// out, hence the counts may add up to less than len(samples).
func ComputeHistogram(samples []float64, binCount int) (Histogram, error) {
	if binCount <= 0 {
		return nil, errors.Wrapf(ErrBinCount, "got %d", binCount)
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	k := float64(binCount)
	dx := 1 / k
	hist := make(Histogram, binCount)
	for i := range hist {
		center := float64(i)/k + 0.5*dx
		lo := center - 0.5*dx
		hi := center + 0.5*dx
		hist[i] = Bin{
			Center: center,
			Count:  countAtMost(sorted, hi) - countAtMost(sorted, lo),
		}
	}
	return hist, nil
}

// countAtMost returns the number of values <= v in a sorted slice.
func countAtMost(sorted []float64, v float64) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] > v })
}

func (h Histogram) Centers() []float64 {
	c := make([]float64, len(h))
	for i, b := range h {
		c[i] = b.Center
	}
	return c
}

func (h Histogram) Counts() []int {
	c := make([]int, len(h))
	for i, b := range h {
		c[i] = b.Count
	}
	return c
}

// Total is the number of samples that landed in some bin.
func (h Histogram) Total() int {
	n := 0
	for _, b := range h {
		n += b.Count
	}
	return n
}

// Max is the largest bin count, 0 for an empty histogram.
func (h Histogram) Max() int {
	m := 0
	for _, b := range h {
		m = max(m, b.Count)
	}
	return m
}
