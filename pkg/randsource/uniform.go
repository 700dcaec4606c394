package randsource

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source supplies independent draws from Uniform(0, 1).
// Every call to Float64 advances the underlying stream exactly once.
type Source interface {
	Float64() float64
}

// Uniform draws from the half-open interval [0, 1).
type Uniform struct {
	dist distuv.Uniform
	seed uint64
}

// NewUniform creates a new generator. A zero seed is replaced by the
// current time, so consecutive runs produce different streams.
func NewUniform(seed uint64) *Uniform {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Uniform{
		dist: distuv.Uniform{
			Min: 0,
			Max: 1,
			Src: rand.NewPCG(seed, seed),
		},
		seed: seed,
	}
}

// Float64 returns the next draw.
func (u *Uniform) Float64() float64 {
	return u.dist.Rand()
}

// Seed reports the seed the stream was started from.
func (u *Uniform) Seed() uint64 {
	return u.seed
}

// RandN returns n consecutive draws.
func (u *Uniform) RandN(n int) []float64 {
	return Take(u, n)
}

// Take reads n draws from src into a new slice.
func Take(src Source, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	r := make([]float64, n)
	for i := range r {
		r[i] = src.Float64()
	}
	return r
}
