package presenter

import (
	"encoding/json"
	"io"

	"github.com/EvgenyNerush/fp-simple/pkg/summary"
	"github.com/pkg/errors"
)

type jsonReport struct {
	Pool           int                 `json:"pool"`
	Accepted       int                 `json:"accepted"`
	AcceptanceRate float64             `json:"acceptance_rate"`
	Statistics     *summary.Statistics `json:"statistics"`
	Histogram      summary.Histogram   `json:"histogram"`
}

// WriteJSON prints the summary of a run as an indented JSON document.
// The accepted values themselves are left out, statistics is null when
// nothing was accepted.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(jsonReport{
		Pool:           r.PoolSize,
		Accepted:       len(r.Samples),
		AcceptanceRate: r.AcceptanceRate,
		Statistics:     r.Stats,
		Histogram:      r.Histogram,
	})
	return errors.Wrap(err, "failed to encode report")
}
