package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortest/builder"
	"github.com/katalvlaran/shortest/core"
)

func (a *app) newGenCmd() *cobra.Command {
	var (
		output string
		chain  bool
		loops  bool
	)

	cmd := &cobra.Command{
		Use:   "gen <vertices> <degree> [max-cost] [seed]",
		Short: "Generate a random graph in the input format",
		Long: `gen writes a random directed graph with <vertices> vertices and <degree>
outgoing edges per vertex. Costs are drawn uniformly from [1, max-cost]. The same
seed always yields the same graph.`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ints, err := parseInts(args)
			if err != nil {
				return err
			}
			n, degree := ints[0], ints[1]
			maxCost, seed := builder.DefaultMaxCost, builder.DefaultSeed
			if len(ints) > 2 {
				maxCost = int64(ints[2])
			}
			if len(ints) > 3 {
				seed = int64(ints[3])
			}
			if maxCost < builder.DefaultMinCost {
				return fmt.Errorf("gen: max-cost must be at least %d", builder.DefaultMinCost)
			}

			opts := []builder.Option{builder.WithSeed(seed), builder.WithMaxCost(maxCost)}
			if chain {
				opts = append(opts, builder.WithChain())
			}
			if loops {
				opts = append(opts, builder.WithLoops())
			}
			edges, err := builder.Random(n, degree, opts...)
			if err != nil {
				return err
			}

			if output == "" {
				err = builder.Write(a.out, n, edges)
			} else {
				err = writeGraphFile(output, n, edges)
			}
			if err != nil {
				return err
			}
			a.log.Debug("graph generated",
				slog.Int("vertices", n),
				slog.Int("edges", len(edges)),
				slog.Int64("seed", seed),
			)

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&chain, "chain", false, "add a 1->2->...->n chain so every vertex is reachable from 1")
	cmd.Flags().BoolVar(&loops, "loops", false, "allow self-loops")

	return cmd
}

// writeGraphFile creates name and writes the graph, reporting close errors.
func writeGraphFile(name string, n int, edges []core.Edge) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	if err = builder.Write(f, n, edges); err != nil {
		_ = f.Close()
		return fmt.Errorf("gen: %s: %w", name, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("gen: close %s: %w", name, err)
	}

	return nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("gen: argument %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}
