package sampler

import (
	"testing"

	"github.com/EvgenyNerush/fp-simple/pkg/randsource"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair_Accept(t *testing.T) {
	tests := []struct {
		pair Pair
		ok   bool
	}{
		{Pair{X: 0.8, Y: 0.3}, true},
		{Pair{X: 0.3, Y: 0.8}, false},
		{Pair{X: 0.5, Y: 0.5}, false},
		{Pair{X: 0, Y: 0}, false},
		{Pair{X: 0.1, Y: 0}, true},
	}
	for _, tt := range tests {
		x, ok := tt.pair.Accept()
		assert.Equal(t, tt.ok, ok, "pair %+v", tt.pair)
		if ok {
			assert.Equal(t, tt.pair.X, x)
		}
	}
}

func TestSampler_FixedDraws(t *testing.T) {
	// (0.9, 0.1) accept, (0.2, 0.7) reject, (0.6, 0.6) reject, (0.4, 0.05) accept
	src := randsource.NewSequence(0.9, 0.1, 0.2, 0.7, 0.6, 0.6, 0.4, 0.05)
	got := New(src).Sample(4)

	assert.Equal(t, []float64{0.9, 0.4}, got)
	assert.Equal(t, 0, src.Remaining())
}

func TestSampler_PoolDrawOrder(t *testing.T) {
	src := randsource.NewSequence(0.1, 0.2, 0.3, 0.4)
	pool := New(src).Pool(2)
	assert.Equal(t, []Pair{{0.1, 0.2}, {0.3, 0.4}}, pool)
}

func TestSampler_NonPositivePool(t *testing.T) {
	src := randsource.NewSequence()
	s := New(src)
	for _, n := range []int{0, -1, -100} {
		got := s.Sample(n)
		require.NotNil(t, got)
		assert.Empty(t, got)
		assert.Empty(t, s.Pool(n))
	}
}

func TestSampler_LengthAndRange(t *testing.T) {
	s := New(randsource.NewUniform(11))
	for _, n := range []int{1, 2, 5, 50, 1000} {
		got := s.Sample(n)
		assert.LessOrEqual(t, len(got), n)
		for _, x := range got {
			assert.GreaterOrEqual(t, x, 0.0)
			assert.Less(t, x, 1.0)
		}
	}
}

func TestSampler_TargetMean(t *testing.T) {
	s := New(randsource.NewUniform(2024))
	got := s.Sample(100000)

	// about half of the pool survives
	assert.InDelta(t, 50000, len(got), 1000)

	sum := 0.0
	for _, x := range got {
		sum += x
	}
	// E[x] for density 2x on [0, 1]
	assert.InDelta(t, 2.0/3.0, sum/float64(len(got)), 0.02)
}

func TestSampler_Reproducible(t *testing.T) {
	draws := randsource.NewUniform(99).RandN(400)
	a := New(randsource.NewSequence(draws...)).Sample(200)
	b := New(randsource.NewSequence(draws...)).Sample(200)
	assert.Equal(t, a, b)
}

func TestSampler_Preview(t *testing.T) {
	src := randsource.NewSequence(0.5, 0.2, 0.9, 0.6, 0.3, 0.1)
	xs, ys, accepted := New(src).Preview(3)

	assert.Equal(t, []float64{0.5, 0.2, 0.9}, xs)
	assert.Equal(t, []float64{0.6, 0.3, 0.1}, ys)
	assert.Equal(t, []float64{0.9}, accepted)
}

func TestZip(t *testing.T) {
	assert.Equal(t, []Pair{{1, 3}, {2, 4}}, Zip([]float64{1, 2}, []float64{3, 4, 5}))
	assert.Empty(t, Zip(nil, []float64{1}))
}

func TestAcceptanceRate(t *testing.T) {
	assert.Equal(t, 0.0, AcceptanceRate(nil))
	pairs := []Pair{{0.9, 0.1}, {0.1, 0.9}, {0.7, 0.2}, {0.2, 0.2}}
	assert.Equal(t, 0.5, AcceptanceRate(pairs))
}

func TestAcceptanceGrid(t *testing.T) {
	pairs := []Pair{
		{X: 0.75, Y: 0.25}, // lower right, accepted
		{X: 0.9, Y: 0.1},   // lower right, accepted
		{X: 0.25, Y: 0.75}, // upper left, rejected
		{X: 0.4, Y: 0.3},   // lower left, accepted
		{X: 0.3, Y: 0.4},   // lower left, rejected
	}
	grid, err := AcceptanceGrid(pairs, 2)
	require.NoError(t, err)

	r, c := grid.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 0.5, grid.At(0, 0))
	assert.Equal(t, 1.0, grid.At(0, 1))
	assert.Equal(t, 0.0, grid.At(1, 0))
	assert.Equal(t, 0.0, grid.At(1, 1))
}

func TestAcceptanceGrid_Shape(t *testing.T) {
	pool := New(randsource.NewUniform(5)).Pool(20000)
	grid, err := AcceptanceGrid(pool, 10)
	require.NoError(t, err)

	// cells strictly below the diagonal accept everything, cells above nothing
	assert.Equal(t, 1.0, grid.At(0, 9))
	assert.Equal(t, 0.0, grid.At(9, 0))
	assert.InDelta(t, 0.5, grid.At(4, 4), 0.15)
}

func TestAcceptanceGrid_BadSize(t *testing.T) {
	_, err := AcceptanceGrid(nil, 0)
	assert.True(t, errors.Is(err, ErrGridSize))
}
