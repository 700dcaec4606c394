package chartplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/EvgenyNerush/fp-simple/pkg/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func fileNotEmpty(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestMakeHistogramPlot(t *testing.T) {
	h, err := summary.ComputeHistogram([]float64{0.15, 0.55, 0.56, 0.95, 0.97, 0.99}, 10)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"plot.png", "plot.PDF", "plot.jpg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, MakeHistogramPlot(h, "Rejection sampling", path))
		fileNotEmpty(t, path)
	}
}

func TestMakeHistogramPlot_AllZero(t *testing.T) {
	h, err := summary.ComputeHistogram(nil, 10)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, MakeHistogramPlot(h, "", path))
	fileNotEmpty(t, path)
}

func TestMakeAcceptancePlot(t *testing.T) {
	data := mat.NewDense(3, 3, []float64{
		0.5, 1, 1,
		0, 0.5, 1,
		0, 0, 0.5,
	})
	path := filepath.Join(t.TempDir(), "acceptance.png")
	require.NoError(t, MakeAcceptancePlot(data, "Acceptance", path))
	fileNotEmpty(t, path)
}

func TestUnsupportedFormat(t *testing.T) {
	h, err := summary.ComputeHistogram(nil, 2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plot.gif")
	err = MakeHistogramPlot(h, "", path)
	assert.ErrorContains(t, err, `unsupported image format ".gif"`)
	assert.NoFileExists(t, path)

	err = MakeAcceptancePlot(mat.NewDense(1, 1, nil), "", path)
	assert.Error(t, err)
}

func TestCreateFails(t *testing.T) {
	h, err := summary.ComputeHistogram(nil, 2)
	require.NoError(t, err)
	err = MakeHistogramPlot(h, "", filepath.Join(t.TempDir(), "missing", "plot.png"))
	assert.ErrorContains(t, err, "failed to create plot file")
}
