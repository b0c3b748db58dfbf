package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shortest/metrics"
	"github.com/katalvlaran/shortest/report"
	"github.com/katalvlaran/shortest/sssp"
)

// batchResult is one input's outcome, kept in input order.
type batchResult struct {
	input string
	rep   *sssp.Report
	err   error
}

func (a *app) newBatchCmd() *cobra.Command {
	var (
		flags     computeFlags
		workers   int
		timingLog string
	)

	cmd := &cobra.Command{
		Use:   "batch <input>...",
		Short: "Compute shortest paths for several graph files",
		Long: `batch runs one independent computation per input on a bounded worker pool.
Reports are printed and timings appended in input order once every run is done.
The default of one worker keeps the timings free of contention.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.Workers = workers
			}
			if cmd.Flags().Changed("timing-log") {
				a.cfg.TimingLog = timingLog
			}
			if err := flags.apply(cmd, a.cfg); err != nil {
				return err
			}

			return a.batch(cmd, args)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "concurrent computations (1..64)")
	cmd.Flags().StringVar(&timingLog, "timing-log", "", "append elapsed microseconds of each run to this file")

	return cmd
}

func (a *app) batch(cmd *cobra.Command, inputs []string) error {
	opts, format, err := a.computeOptions()
	if err != nil {
		return err
	}

	results := make([]batchResult, len(inputs))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep, err := sssp.ComputeFile(ctx, in, opts...)
			results[i] = batchResult{input: in, rep: rep, err: err}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	col := metrics.New()
	failed := 0
	for i, res := range results {
		if res.err != nil {
			failed++
			col.ObserveError()
			a.log.Error("batch input failed", slog.String("input", res.input), slog.String("err", res.err.Error()))
			continue
		}
		col.Observe(res.rep)

		if format == report.FormatText {
			if i > 0 {
				fmt.Fprintln(a.out)
			}
			fmt.Fprintf(a.out, "==> %s <==\n", res.input)
		}
		if err = a.emit(res.rep, format); err != nil {
			return err
		}
		if a.cfg.TimingLog != "" {
			if err = report.AppendTiming(a.cfg.TimingLog, res.rep.Micros); err != nil {
				return err
			}
		}
	}

	if a.cfg.MetricsFile != "" {
		if err = col.WriteTextfile(a.cfg.MetricsFile); err != nil {
			return err
		}
	}
	a.log.Info("batch finished",
		slog.Int("inputs", len(inputs)),
		slog.Int("failed", failed),
		slog.Int("workers", a.cfg.Workers),
	)
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d inputs failed", failed, len(inputs))
	}

	return nil
}
