package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/taigrr/sugarbomb/internal/accuracy"
	"github.com/taigrr/sugarbomb/internal/config"
	"go.uber.org/zap"
)

var errBoundsExceeded = errors.New("error bound exceeded")

func runAccuracy(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("accuracy", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	samples := fs.Int("samples", 0, fmt.Sprintf("Samples per routine (default %d)", config.DefaultSamples))
	if done, err := parseCommandFlags(fs, args); done {
		return err
	}
	e.cfg.Resolve(config.Flags{Samples: *samples})
	if err := e.cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	start := time.Now()
	results, err := accuracy.Run(ctx, accuracy.DefaultChecks(), e.cfg.Accuracy.Samples)
	if err != nil {
		return fmt.Errorf("measure: %w", err)
	}
	e.logger.Debug("accuracy measured",
		zap.Int("routines", len(results)),
		zap.Int("samples", e.cfg.Accuracy.Samples),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := writeResults(e.stdout, results); err != nil {
		return err
	}

	failed := accuracy.Failed(results)
	for _, r := range failed {
		e.logger.Warn("bound exceeded",
			zap.String("routine", r.Name),
			zap.Float64("max_err", r.MaxErr),
			zap.Float32("at", r.At),
			zap.Float64("bound", r.Bound),
		)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d routines: %w", len(failed), len(results), errBoundsExceeded)
	}
	return nil
}

func writeResults(w io.Writer, results []accuracy.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUTINE\tMAX ERROR\tAT\tBOUND\tKIND\tSTATUS")
	for _, r := range results {
		kind := "abs"
		if r.Relative {
			kind = "rel"
		}
		status := "ok"
		if !r.Within {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%.3g\t%g\t%.0e\t%s\t%s\n", r.Name, r.MaxErr, r.At, r.Bound, kind, status)
	}
	return tw.Flush()
}
