package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fourier/waveform"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in waveform catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintf(tw, "Name\tTitle\tFormula\n")
			fmt.Fprintf(tw, "----\t-----\t-------\n")

			for _, typ := range waveform.Types() {
				info := waveform.Info(typ)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", typ, info.Name, info.Formula)
			}

			return tw.Flush()
		},
	}
}
