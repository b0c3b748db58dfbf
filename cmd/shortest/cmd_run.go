package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortest/metrics"
	"github.com/katalvlaran/shortest/report"
	"github.com/katalvlaran/shortest/sssp"
)

func (a *app) newRunCmd() *cobra.Command {
	var flags computeFlags

	cmd := &cobra.Command{
		Use:   "run <input> [timing-log]",
		Short: "Compute shortest paths for one graph file",
		Long: `run loads the graph in <input>, computes the minimum cost and path from the
source to every vertex and prints them. When [timing-log] is given, the elapsed
microseconds are appended to it followed by a single space.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a.cfg); err != nil {
				return err
			}
			if len(args) == 2 {
				a.cfg.TimingLog = args[1]
			}

			return a.run(cmd, args[0])
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *app) run(cmd *cobra.Command, input string) error {
	opts, format, err := a.computeOptions()
	if err != nil {
		return err
	}

	var col *metrics.Collector
	if a.cfg.MetricsFile != "" {
		col = metrics.New()
	}

	rep, err := sssp.ComputeFile(cmd.Context(), input, opts...)
	if err != nil {
		a.log.Error("run failed", slog.String("input", input), slog.String("err", err.Error()))
		if col != nil {
			col.ObserveError()
			if werr := col.WriteTextfile(a.cfg.MetricsFile); werr != nil {
				a.log.Warn("metrics export failed",
					slog.String("path", a.cfg.MetricsFile),
					slog.String("err", werr.Error()),
				)
			}
		}
		return err
	}

	if err = a.emit(rep, format); err != nil {
		return err
	}
	if a.cfg.TimingLog != "" {
		if err = report.AppendTiming(a.cfg.TimingLog, rep.Micros); err != nil {
			return err
		}
	}
	if col != nil {
		col.Observe(rep)
		return col.WriteTextfile(a.cfg.MetricsFile)
	}

	return nil
}
