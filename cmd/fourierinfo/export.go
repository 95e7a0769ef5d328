package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fourier/export"
)

func newExportCmd() *cobra.Command {
	var (
		flags  waveformFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <waveform>",
		Short: "Write a full analysis record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, fn, err := flags.build(args[0])
			if err != nil {
				return err
			}

			rec, err := export.Analyze(fn, flags.period, flags.harmonics,
				export.WithPoints(flags.points))
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return rec.WriteJSON(cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}

			if err := rec.WriteJSON(f); err != nil {
				f.Close()
				return err
			}

			return f.Close()
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
