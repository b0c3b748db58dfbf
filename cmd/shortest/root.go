package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortest/config"
	"github.com/katalvlaran/shortest/core"
	"github.com/katalvlaran/shortest/report"
	"github.com/katalvlaran/shortest/sssp"
	"github.com/katalvlaran/shortest/timing"
)

// app is the state shared by every subcommand.
type app struct {
	out, errOut io.Writer

	configPath string
	env        string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "shortest",
		Short: "Single-source shortest paths over weighted directed graphs",
		Long: `shortest reads a graph as a vertex count followed by "from to cost" lines,
runs Dijkstra from a source vertex and prints the minimum cost and path to
every vertex, together with the time the computation took.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (SHORTEST_* env vars override it)")
	root.PersistentFlags().StringVar(&a.env, "env", "", "log environment: local, dev or prod")

	root.AddCommand(a.newRunCmd(), a.newBatchCmd(), a.newGenCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("env") {
		cfg.Environment = a.env
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.log = newLogger(cfg.Environment, a.errOut)
	a.log.Debug("config loaded", slog.String("env", cfg.Environment), slog.String("path", a.configPath))

	return nil
}

// computeFlags are shared by run and batch.
type computeFlags struct {
	source       int
	format       string
	region       string
	lenientCount bool
	showGraph    bool
	metricsFile  string
	maxLineBytes int
}

func (f *computeFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.source, "source", "s", 1, "source vertex (1-based)")
	fs.StringVarP(&f.format, "format", "f", "text", "output format: text, json or yaml")
	fs.StringVar(&f.region, "region", "load+solve", "timed region: load+solve or solve")
	fs.BoolVar(&f.lenientCount, "lenient-count", false, "treat an unparsable vertex count as 0")
	fs.BoolVar(&f.showGraph, "show-graph", false, "print the adjacency table before the results")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
	fs.IntVar(&f.maxLineBytes, "max-line-bytes", 0, "longest accepted input line (0 keeps the default)")
}

// apply copies every flag the user set over the loaded config.
func (f *computeFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("source") {
		cfg.Source = f.source
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("region") {
		cfg.Region = f.region
	}
	if fs.Changed("lenient-count") {
		cfg.LenientCount = f.lenientCount
	}
	if fs.Changed("show-graph") {
		cfg.ShowGraph = f.showGraph
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if fs.Changed("max-line-bytes") {
		cfg.MaxLineBytes = f.maxLineBytes
	}

	return cfg.Validate()
}

// computeOptions turns the effective config into pipeline options.
func (a *app) computeOptions() ([]sssp.Option, report.Format, error) {
	format, err := report.ParseFormat(a.cfg.Format)
	if err != nil {
		return nil, "", err
	}
	region, err := timing.ParseRegion(a.cfg.Region)
	if err != nil {
		return nil, "", err
	}

	opts := []sssp.Option{
		sssp.WithSource(core.VertexID(a.cfg.Source)),
		sssp.WithRegion(region),
		sssp.WithLogger(a.log),
	}
	if a.cfg.LenientCount {
		opts = append(opts, sssp.WithLenientCount())
	}
	if a.cfg.MaxLineBytes > 0 {
		opts = append(opts, sssp.WithMaxLineBytes(a.cfg.MaxLineBytes))
	}

	return opts, format, nil
}

// emit writes one report, preceded by the adjacency table when requested.
func (a *app) emit(rep *sssp.Report, format report.Format) error {
	if a.cfg.ShowGraph {
		if err := report.WriteAdjacency(a.out, rep.Adjacency); err != nil {
			return err
		}
	}
	if err := report.Write(a.out, rep, format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
