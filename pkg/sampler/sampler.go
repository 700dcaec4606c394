// Package sampler draws values with density f(x) = x on [0, 1] by
// rejection sampling.
//
// A candidate is a pair (x, y) of independent Uniform(0, 1) draws. The
// proposal is x, the envelope is the uniform density and y is the
// comparison variable: x is kept when y < x, i.e. when the point lies
// under the line y = x. Half of all candidates are accepted on average.
package sampler

import "github.com/EvgenyNerush/fp-simple/pkg/randsource"

// Pair is a single candidate of the rejection procedure.
type Pair struct {
	X, Y float64
}

// Accept returns the candidate's x and true if the pair lies under the
// target density. A rejected pair yields no value.
func (p Pair) Accept() (float64, bool) {
	if p.Y < p.X {
		return p.X, true
	}
	return 0, false
}

// Sampler turns a stream of uniform draws into accepted samples.
type Sampler struct {
	src randsource.Source
}

func New(src randsource.Source) *Sampler {
	return &Sampler{src: src}
}

// Pool draws poolSize candidate pairs. For every pair x is drawn before y.
// A non-positive poolSize gives an empty pool.
func (s *Sampler) Pool(poolSize int) []Pair {
	if poolSize <= 0 {
		return []Pair{}
	}
	pairs := make([]Pair, poolSize)
	for i := range pairs {
		x := s.src.Float64()
		y := s.src.Float64()
		pairs[i] = Pair{X: x, Y: y}
	}
	return pairs
}

// Sample runs poolSize trials and returns the accepted values in the
// order they were generated. The result is usually shorter than
// poolSize and may be empty.
func (s *Sampler) Sample(poolSize int) []float64 {
	return Filter(s.Pool(poolSize))
}

// Preview draws n values for x, then n values for y, pairs them up
// index by index and filters the pairs. It returns both columns along
// with the accepted values, which is handy for showing the procedure
// step by step on a handful of points.
func (s *Sampler) Preview(n int) (xs, ys, accepted []float64) {
	xs = randsource.Take(s.src, n)
	ys = randsource.Take(s.src, n)
	return xs, ys, Filter(Zip(xs, ys))
}

// Zip pairs xs[i] with ys[i]. The shorter slice determines the length.
func Zip(xs, ys []float64) []Pair {
	n := min(len(xs), len(ys))
	pairs := make([]Pair, n)
	for i := range n {
		pairs[i] = Pair{X: xs[i], Y: ys[i]}
	}
	return pairs
}

// Filter keeps the x of every accepted pair.
func Filter(pairs []Pair) []float64 {
	accepted := make([]float64, 0, len(pairs)/2+1)
	for _, p := range pairs {
		if x, ok := p.Accept(); ok {
			accepted = append(accepted, x)
		}
	}
	return accepted
}

// AcceptanceRate is the fraction of accepted pairs, 0 for an empty pool.
func AcceptanceRate(pairs []Pair) float64 {
	if len(pairs) == 0 {
		return 0
	}
	n := 0
	for _, p := range pairs {
		if _, ok := p.Accept(); ok {
			n++
		}
	}
	return float64(n) / float64(len(pairs))
}
