package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nanite-go/nanite/fit"
)

func newFitCmd(a *app) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "fit <curve.csv>",
		Short: "Fit the model to a force curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if method != "" {
				a.cfg.Method = method
			}
			opts, err := a.cfg.FitOptions()
			if err != nil {
				return err
			}
			opts = append(opts, fit.WithLogger(a.logger))

			m, err := a.resolveModel()
			if err != nil {
				return err
			}
			params, err := a.parameters(m)
			if err != nil {
				return err
			}
			c, err := readCurveCSV(args[0])
			if err != nil {
				return err
			}

			res, err := fit.Fit(cmd.Context(), m, c, params, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)

			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", "", "optimizer (nelder-mead, lbfgs, bfgs, gradient-descent)")

	return cmd
}
