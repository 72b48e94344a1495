package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tphakala/go-hermite"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate orders 0..n and write the table as CSV",
		Long: `eval writes one CSV row per x with the columns x, phi_0 .. phi_n.
Without --x the points span the mirrored fade-out interval of order n.
Columns that failed numerically are written as NaN and reported on stderr.`,
		Args: cobra.NoArgs,
		RunE: runEval,
	}
	addBasisFlags(cmd)
	cmd.Flags().Float64Slice("x", nil, "Comma-separated evaluation points")
	cmd.Flags().IntP("points", "p", defaultPoints, "Grid size when --x is not given")
	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	cmd.Flags().Int("block", 0, "Evaluate and write this many points at a time (0 = all at once)")
	return cmd
}

func runEval(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	basis, err := hermite.NewBasis(cfg.Order, cfg.Alpha, cfg.Mu)
	if err != nil {
		return err
	}

	x, err := cmd.Flags().GetFloat64Slice("x")
	if err != nil {
		return err
	}
	if len(x) == 0 {
		if x, err = basis.Grid(cfg.Points); err != nil {
			return err
		}
	}

	e, err := hermite.New(cfg.Evaluator.toConfig())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	block, err := cmd.Flags().GetInt("block")
	if err != nil {
		return err
	}
	if block <= 0 {
		block = len(x)
	}

	cw := csv.NewWriter(out)
	if err := writeHeader(cw, basis.N+1); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	// numeric failures leave NaN columns and are reported after all rows
	var failures []error
	for start := 0; start < len(x); start += block {
		end := min(start+block, len(x))
		table, err := e.Evaluate(basis.N, basis.Alpha, basis.Mu, x[start:end])
		var batchErr *hermite.BatchError
		if err != nil && !errors.As(err, &batchErr) {
			return err
		}
		if batchErr != nil {
			failures = append(failures, batchErr)
		}
		if err := writeRows(cw, table); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	logger.Info("table written", "orders", basis.N+1, "points", len(x), "block", block)

	return errors.Join(failures...)
}

func writeHeader(cw *csv.Writer, orders int) error {
	header := make([]string, orders+1)
	header[0] = "x"
	for k := range orders {
		header[k+1] = columnPrefix + strconv.Itoa(k)
	}
	return cw.Write(header)
}

// writeRows writes one row per argument: x followed by every order.
func writeRows(cw *csv.Writer, table *hermite.Table) error {
	record := make([]string, table.Orders()+1)
	for i, xi := range table.X() {
		record[0] = formatFloat(xi)
		for k, v := range table.Column(i) {
			record[k+1] = formatFloat(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, defaultFormat, -1, floatBits)
}
