package presenter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/EvgenyNerush/fp-simple/pkg/summary"
	"github.com/pkg/errors"
)

// WriteHistogramCSV writes a center,count row per bin after a header.
func WriteHistogramCSV(w io.Writer, h summary.Histogram) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"center", "count"}); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}
	for _, b := range h {
		record := []string{
			strconv.FormatFloat(b.Center, 'f', -1, 64),
			strconv.Itoa(b.Count),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write csv row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush csv")
}
