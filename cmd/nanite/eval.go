package main

import (
	"encoding/csv"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nanite-go/nanite/model"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <curve.csv>",
		Short: "Evaluate the model and residual at the configured parameters",
		Long: "Reads a delta,force curve and writes delta, force, model force and " +
			"weighted residual as CSV to stdout.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			predicted, err := m.Evaluate(params, c.Delta())
			if err != nil {
				return err
			}
			var opts []model.ResidualOption
			if a.cfg.WeightCP != nil {
				opts = append(opts, model.WithWeightCP(*a.cfg.WeightCP))
			}
			resid, err := m.Residual(params, c.Delta(), c.Force(), opts...)
			if err != nil {
				return err
			}

			w := csv.NewWriter(cmd.OutOrStdout())
			if err := w.Write([]string{"delta", "force", "model", "residual"}); err != nil {
				return err
			}
			for i := range predicted {
				if err := w.Write([]string{
					formatFloat(c.Delta()[i]),
					formatFloat(c.Force()[i]),
					formatFloat(predicted[i]),
					formatFloat(resid[i]),
				}); err != nil {
					return err
				}
			}
			w.Flush()

			return w.Error()
		},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
