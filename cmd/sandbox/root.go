package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/neuralnet/matrix"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var errNoRows = errors.New("sandbox: at least one --row is required")

// app holds state shared by the subcommands of one invocation.
type app struct {
	verbose bool
	rows    []string
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "sandbox",
		Short:        "Exercise the matrix package from the command line",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every step at debug level")
	root.PersistentFlags().StringArrayVarP(&a.rows, "row", "r", nil, "matrix row as comma-separated numbers (repeat per row)")

	root.AddCommand(newDetCmd(a), newSubCmd(a), newResizeCmd(a))

	return root
}

// matrixFromFlags parses the --row values into a Dense.
func (a *app) matrixFromFlags() (*matrix.Dense, error) {
	if len(a.rows) == 0 {
		return nil, errNoRows
	}
	data, err := parseRows(a.rows)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDenseFromRows(data)
	if err != nil {
		return nil, fmt.Errorf("sandbox: %w", err)
	}
	a.logger.Debug("matrix parsed", "rows", m.Rows(), "cols", m.Cols())

	return m, nil
}

// parseRows turns "1, 2,3" style strings into float rows. Empty fields are
// dropped, so a trailing comma is tolerated.
func parseRows(rows []string) ([][]float64, error) {
	out := make([][]float64, 0, len(rows))
	for i, row := range rows {
		fields := lo.Filter(
			lo.Map(strings.Split(row, ","), func(s string, _ int) string { return strings.TrimSpace(s) }),
			func(s string, _ int) bool { return s != "" },
		)
		values := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("sandbox: row %d field %d: %w", i, j, err)
			}
			values[j] = v
		}
		out = append(out, values)
	}

	return out, nil
}
