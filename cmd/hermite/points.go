package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tphakala/simd/cpu"

	"github.com/tphakala/go-hermite"
)

func newPointsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Print the estimated largest zero, largest extremum and fade-out point",
		Args:  cobra.NoArgs,
		RunE:  runPoints,
	}
	addBasisFlags(cmd)
	return cmd
}

func runPoints(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	basis, err := hermite.NewBasis(cfg.Order, cfg.Alpha, cfg.Mu)
	if err != nil {
		return err
	}

	estimates := []struct {
		name     string
		estimate func() (float64, error)
	}{
		{"largest zero", basis.LargestZeroX},
		{"largest extremum", basis.LargestExtremumX},
		{"fade-out", basis.FadeoutX},
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Hermite function n=%d alpha=%g mu=%g\n", basis.N, basis.Alpha, basis.Mu)
	for _, p := range estimates {
		x, err := p.estimate()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-17s %14.6f  (mirror %.6f)\n", p.name+":", x, hermite.Mirror(x, basis.Mu))
	}
	return nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print SIMD and parallelism information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			evaluator := cfg.Evaluator.toConfig()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "SIMD:     %s\n", cpu.Info())
			fmt.Fprintf(out, "Workers:  %d\n", evaluator.Workers)
			fmt.Fprintf(out, "Parallel: %t\n", evaluator.EnableParallel)
			return nil
		},
	}
}
