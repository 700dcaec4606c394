package chartplot

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

const (
	width  = 12 * vg.Centimeter
	height = 9 * vg.Centimeter
)

// newCanvas picks the backend from the file extension.
func newCanvas(filename string) (draw.Canvas, io.WriterTo, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		img := vgimg.New(width, height)
		return draw.New(img), vgimg.PngCanvas{Canvas: img}, nil
	case ".jpg", ".jpeg":
		img := vgimg.New(width, height)
		return draw.New(img), vgimg.JpegCanvas{Canvas: img}, nil
	case ".pdf":
		pdf := vgpdf.New(width, height)
		return draw.New(pdf), pdf, nil
	default:
		return draw.Canvas{}, nil, errors.Errorf("unsupported image format %q", ext)
	}
}

func save(out io.WriterTo, filename string) error {
	w, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create plot file")
	}
	defer w.Close()

	if _, err = out.WriteTo(w); err != nil {
		return errors.Wrapf(err, "failed to write %s", filename)
	}
	return w.Close()
}
