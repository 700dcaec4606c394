package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/EvgenyNerush/fp-simple/internal/config"
	"github.com/EvgenyNerush/fp-simple/internal/console"
	"github.com/EvgenyNerush/fp-simple/internal/presenter"
	"github.com/EvgenyNerush/fp-simple/pkg/randsource"
	"github.com/EvgenyNerush/fp-simple/pkg/sampler"
	"github.com/EvgenyNerush/fp-simple/pkg/summary"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "fp-simple",
		Short: "Rejection sampling of the density f(x) = x on [0, 1]",
		Long: `fp-simple draws pairs of uniform numbers, keeps x whenever y < x and
reports the mean, the variance and a histogram of the accepted values.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.ConfigFile != "" {
				if err := cfg.LoadFile(cfg.ConfigFile, cmd.Flags()); err != nil {
					return err
				}
			}
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cfg.Level()
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return run(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
		},
	}
	cfg.Bind(cmd.Flags())
	return cmd
}

// run executes one sampling pass. The prompt goes to errOut unless the
// report is plain text, so that csv and json output stay parseable.
func run(cfg *config.Config, in io.Reader, out, errOut io.Writer, logger *slog.Logger) error {
	logger.Info("Starting sampler...")
	logger.Debug("Configuration of the run:\n" + cfg.ToString())

	src, err := newSource(cfg, logger)
	if err != nil {
		return err
	}

	s := sampler.New(src)
	text := cfg.Format == "text"
	showPreview := text && cfg.Preview > 0

	preview := &presenter.Preview{}
	if cfg.Preview > 0 {
		preview.Xs, preview.Ys, preview.Accepted = s.Preview(cfg.Preview)
	}
	if showPreview {
		if err := presenter.WritePreviewPairs(out, preview); err != nil {
			return errors.Wrap(err, "failed to write preview")
		}
	}

	if cfg.Ask {
		prompt := errOut
		if text {
			prompt = out
		}
		n := console.Ask(prompt, in, "Enter an integer (or not):")
		fmt.Fprintf(prompt, "You have entered %d\n", n)
	}

	if showPreview {
		if err := presenter.WritePreviewAccepted(out, preview); err != nil {
			return errors.Wrap(err, "failed to write preview")
		}
	}

	report := &presenter.Report{PoolSize: cfg.PoolSize, Show: cfg.Show}

	pool := s.Pool(cfg.PoolSize)
	report.Samples = sampler.Filter(pool)
	report.AcceptanceRate = sampler.AcceptanceRate(pool)
	logger.Info("sampling done", "pool", len(pool), "accepted", len(report.Samples))

	stats, err := summary.ComputeStatistics(report.Samples)
	switch {
	case errors.Is(err, summary.ErrEmptySample):
		logger.Warn("no samples accepted, skipping mean and variance", "pool", cfg.PoolSize)
	case err != nil:
		return err
	default:
		report.Stats = &stats
	}

	report.Histogram, err = summary.ComputeHistogram(report.Samples, cfg.Bins)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "csv":
		err = presenter.WriteHistogramCSV(out, report.Histogram)
	case "json":
		err = presenter.WriteJSON(out, report)
	default:
		err = presenter.WriteText(out, report)
	}
	if err != nil {
		return errors.Wrap(err, "failed to write report")
	}

	if cfg.PlotFile != "" {
		if err := presenter.GenerateHistogramPlot(cfg.PlotFile, "Rejection sampling, f(x) = x", report.Histogram); err != nil {
			logger.Warn("histogram chart not saved", "file", cfg.PlotFile, "error", err)
		} else {
			logger.Info("histogram chart saved", "file", cfg.PlotFile)
		}
	}

	if cfg.AcceptanceMap != "" {
		grid, err := sampler.AcceptanceGrid(pool, cfg.GridCells)
		if err != nil {
			return err
		}
		if err := presenter.GenerateAcceptanceMap(cfg.AcceptanceMap, "Acceptance rate", grid); err != nil {
			logger.Warn("acceptance map not saved", "file", cfg.AcceptanceMap, "error", err)
		} else {
			logger.Info("acceptance map saved", "file", cfg.AcceptanceMap)
		}
	}

	return nil
}

func newSource(cfg *config.Config, logger *slog.Logger) (randsource.Source, error) {
	if cfg.DrawsFile == "" {
		u := randsource.NewUniform(cfg.Seed)
		logger.Debug("random source ready", "seed", u.Seed())
		return u, nil
	}

	seq, err := randsource.ReadDraws(cfg.DrawsFile)
	if err != nil {
		return nil, err
	}
	if need := cfg.DrawsNeeded(); seq.Len() < need {
		return nil, errors.Errorf("%s holds %d draws, the run needs %d", cfg.DrawsFile, seq.Len(), need)
	}
	logger.Debug("replaying fixed draws", "file", cfg.DrawsFile, "count", seq.Len())
	return seq, nil
}
