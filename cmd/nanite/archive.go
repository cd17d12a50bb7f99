package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nanite-go/nanite/curve"
	"github.com/nanite-go/nanite/format"
)

func newPackCmd(a *app) *cobra.Command {
	var (
		compression string
		bigEndian   bool
	)

	cmd := &cobra.Command{
		Use:   "pack <curve.csv> <archive>",
		Short: "Store a CSV curve as a compressed binary archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if compression != "" {
				a.cfg.Compression = compression
			}
			ct, err := a.cfg.CompressionType()
			if err != nil {
				return err
			}
			c, err := readCurveCSV(args[0])
			if err != nil {
				return err
			}

			opts := []curve.EncoderOption{curve.WithCompression(ct)}
			if bigEndian {
				opts = append(opts, curve.WithBigEndian())
			}
			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			n, err := curve.EncodeTo(f, c, opts...)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(args[1])
				return err
			}

			a.logger.Info().
				Str("compression", ct.String()).
				Int("points", c.Len()).
				Int64("bytes", n).
				Str("id", fmt.Sprintf("%016x", c.ID())).
				Msg("curve packed")

			return nil
		},
	}
	cmd.Flags().StringVar(&compression, "compression", "",
		fmt.Sprintf("payload compression (%s, %s, %s, %s)",
			format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4))
	cmd.Flags().BoolVar(&bigEndian, "big-endian", false, "write the archive in big-endian byte order")

	return cmd
}

func newUnpackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <archive>",
		Short: "Write an archived curve as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			c, err := curve.Decode(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			a.logger.Debug().Int("points", c.Len()).Msg("curve unpacked")

			return curve.WriteCSV(cmd.OutOrStdout(), c)
		},
	}
}
