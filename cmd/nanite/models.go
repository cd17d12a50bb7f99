package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nanite-go/nanite/model"
)

func newModelsCmd(_ *app) *cobra.Command {
	var xAxis, yAxis string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the available models and their default parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (xAxis == "") != (yAxis == "") {
				return errors.New("--x-axis and --y-axis must be given together")
			}

			out := cmd.OutOrStdout()
			for _, key := range model.Keys() {
				m, err := model.Get(key)
				if err != nil {
					return err
				}
				md := m.Metadata()
				if xAxis != "" && !md.SupportsAxes(xAxis, yAxis) {
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", md.Key, md.Name)
				fmt.Fprintf(out, "  axes: x=%s y=%s\n", strings.Join(md.ValidAxesX, "|"), strings.Join(md.ValidAxesY, "|"))

				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "  key\tname\tunit\tvalue\tmin\tmax\tvary")
				for pk, p := range m.Defaults().All() {
					fmt.Fprintf(tw, "  %s\t%s\t%s\t%g\t%g\t%g\t%t\n", pk, p.Name, md.Unit(pk), p.Value, p.Min, p.Max, p.Vary)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&xAxis, "x-axis", "", `only list models that accept this x axis, e.g. "tip position"`)
	cmd.Flags().StringVar(&yAxis, "y-axis", "", `only list models that accept this y axis, e.g. "force"`)

	return cmd
}
