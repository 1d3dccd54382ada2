package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/neuralnet/matrix"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newDetCmd(a *app) *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "det",
		Short: "Print the wrapped-diagonal determinant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.matrixFromFlags()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if trace {
				terms, err := m.DiagonalTerms()
				if err != nil {
					return fmt.Errorf("sandbox: %w", err)
				}
				for _, term := range terms {
					fmt.Fprintln(out, formatTerm(m, term))
					a.logger.Debug("diagonal", "sign", term.Sign, "column", term.Column, "product", term.Product)
				}
			}
			fmt.Fprintf(out, "SUM %s\n", strconv.FormatFloat(m.Determinant(), 'g', -1, 64))

			return nil
		},
	}
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "print every diagonal product before the sum")

	return cmd
}

// formatTerm renders one diagonal as "[row, col] value ... RES product".
func formatTerm(m *matrix.Dense, term matrix.DiagonalTerm) string {
	cells := lo.Map(term.Cells, func(c matrix.Cell, _ int) string {
		v, _ := m.At(c.Row, c.Col)
		return fmt.Sprintf("[%d, %d] %g", c.Row, c.Col, v)
	})

	return fmt.Sprintf("%s RES %g", strings.Join(cells, " "), term.Product)
}

func newSubCmd(a *app) *cobra.Command {
	var rows, cols, atRow, atCol int

	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Print a submatrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.matrixFromFlags()
			if err != nil {
				return err
			}
			sub, err := m.SubmatrixAt(rows, atRow, cols, atCol)
			if err != nil {
				return fmt.Errorf("sandbox: %w", err)
			}
			a.logger.Debug("submatrix", "rows", rows, "cols", cols, "at_row", atRow, "at_col", atCol)
			fmt.Fprint(cmd.OutOrStdout(), sub)

			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 1, "submatrix rows")
	cmd.Flags().IntVar(&cols, "cols", 1, "submatrix columns")
	cmd.Flags().IntVar(&atRow, "at-row", 0, "source row anchor")
	cmd.Flags().IntVar(&atCol, "at-col", 0, "source column anchor")

	return cmd
}

func newResizeCmd(a *app) *cobra.Command {
	var rows, cols, originRow, originCol int

	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Print the matrix after an origin-offset resize",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.matrixFromFlags()
			if err != nil {
				return err
			}
			if err = m.ResizeAt(rows, originRow, cols, originCol); err != nil {
				return fmt.Errorf("sandbox: %w", err)
			}
			a.logger.Debug("resized", "rows", rows, "cols", cols, "origin_row", originRow, "origin_col", originCol)
			fmt.Fprint(cmd.OutOrStdout(), m)

			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 1, "new row count")
	cmd.Flags().IntVar(&cols, "cols", 1, "new column count")
	cmd.Flags().IntVar(&originRow, "origin-row", 0, "row offset into the old matrix")
	cmd.Flags().IntVar(&originCol, "origin-col", 0, "column offset into the old matrix")

	return cmd
}
