package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/EvgenyNerush/fp-simple/pkg/summary"
)

const barWidth = 50

// Preview is the step by step demonstration on a few points.
type Preview struct {
	Xs, Ys, Accepted []float64
}

// WritePreviewPairs prints both columns of the preview and the pairs
// made from them.
func WritePreviewPairs(w io.Writer, p *Preview) error {
	var b strings.Builder
	fmt.Fprintln(&b, "---- preview ----")
	fmt.Fprintf(&b, "xs = %s\n", formatFloats(p.Xs))
	fmt.Fprintf(&b, "ys = %s\n", formatFloats(p.Ys))
	fmt.Fprintf(&b, "zs = %s\n", formatPairs(p.Xs, p.Ys))
	_, err := io.WriteString(w, b.String())
	return err
}

// WritePreviewAccepted prints what survived the filter.
func WritePreviewAccepted(w io.Writer, p *Preview) error {
	_, err := fmt.Fprintf(w, "rs = %s\n", formatFloats(p.Accepted))
	return err
}

// Report collects everything printed after a run.
type Report struct {
	PoolSize       int
	AcceptanceRate float64
	Samples        []float64
	// Show limits how many accepted values are echoed.
	Show int

	// Stats is nil when nothing was accepted.
	Stats     *summary.Statistics
	Histogram summary.Histogram
}

// WriteText prints the report in a human readable form.
func WriteText(w io.Writer, r *Report) error {
	var b strings.Builder

	fmt.Fprintln(&b, "---- sample ----")
	fmt.Fprintf(&b, "accepted %d of %d candidates (rate %.4f)\n", len(r.Samples), r.PoolSize, r.AcceptanceRate)
	shown := r.Samples[:min(r.Show, len(r.Samples))]
	if len(shown) < len(r.Samples) {
		fmt.Fprintf(&b, "rs = %s ... (%d more)\n", strings.TrimSuffix(formatFloats(shown), "]"), len(r.Samples)-len(shown))
	} else {
		fmt.Fprintf(&b, "rs = %s\n", formatFloats(shown))
	}

	if r.Stats != nil {
		fmt.Fprintf(&b, "mu = %.6f, sigma = %.6f, variance = %.6f\n", r.Stats.Mean, r.Stats.StdDev(), r.Stats.Variance)
	} else {
		fmt.Fprintln(&b, "mu and sigma are undefined: no samples were accepted")
	}

	fmt.Fprintf(&b, "binCenters = %s\n", formatFloats(r.Histogram.Centers()))
	fmt.Fprintf(&b, "binNumbers = %v\n", r.Histogram.Counts())
	writeBars(&b, r.Histogram)

	_, err := io.WriteString(w, b.String())
	return err
}

// writeBars draws one bar per bin, scaled to the fullest bin.
func writeBars(b *strings.Builder, h summary.Histogram) {
	maxCount := h.Max()
	half := 0.0
	if len(h) > 0 {
		half = 0.5 / float64(len(h))
	}
	for _, bin := range h {
		n := 0
		if maxCount > 0 {
			n = int(float64(bin.Count) / float64(maxCount) * barWidth)
		}
		fmt.Fprintf(b, "%.2f-%.2f: %s %d\n",
			bin.Center-half, bin.Center+half, strings.Repeat("█", n), bin.Count)
	}
}

func formatFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%.4f", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatPairs(xs, ys []float64) string {
	n := min(len(xs), len(ys))
	parts := make([]string, n)
	for i := range n {
		parts[i] = fmt.Sprintf("(%.4f, %.4f)", xs[i], ys[i])
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
