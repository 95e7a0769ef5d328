package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fourier/measure/fidelity"
	"github.com/cwbudde/algo-fourier/measure/harmonics"
	"github.com/cwbudde/algo-fourier/series"
	"github.com/cwbudde/algo-fourier/spectrum"
	"github.com/cwbudde/algo-fourier/waveform"
)

func newAnalyzeCmd() *cobra.Command {
	var flags waveformFlags

	cmd := &cobra.Command{
		Use:   "analyze <waveform>",
		Short: "Decompose a waveform and report coefficients, content, and fidelity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, fn, err := flags.build(args[0])
			if err != nil {
				return err
			}

			return runAnalyze(cmd.OutOrStdout(), typ, fn, &flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func runAnalyze(out io.Writer, typ waveform.Type, fn series.Func, flags *waveformFlags) error {
	ana, err := series.NewAnalyzer(flags.period, series.WithPoints(flags.points))
	if err != nil {
		return err
	}

	c, err := ana.Coefficients(fn, flags.harmonics)
	if err != nil {
		return err
	}

	times, original, err := ana.Sample(fn)
	if err != nil {
		return err
	}

	reconstructed, err := ana.Reconstruct(c, times)
	if err != nil {
		return err
	}

	progressive, err := ana.Progressive(c, times)
	if err != nil {
		return err
	}

	content, err := harmonics.Analyze(c.An, c.Bn)
	if err != nil {
		return err
	}

	metrics, err := fidelity.Compare(original, reconstructed)
	if err != nil {
		return err
	}

	convergence, err := fidelity.Convergence(original, progressive, c.An, c.Bn)
	if err != nil {
		return err
	}

	info := waveform.Info(typ)

	fmt.Fprintf(out, "Waveform: %s\n", info.Name)
	fmt.Fprintf(out, "Formula:  %s\n", info.Formula)
	fmt.Fprintf(out, "Period: %g  Harmonics: %d  Points: %d\n\n",
		flags.period, flags.harmonics, flags.points)

	if err := printCoefficients(out, c); err != nil {
		return err
	}

	printMetrics(out, metrics)
	printContent(out, content)
	printCapture(out, convergence)

	return nil
}

func printCoefficients(w io.Writer, c series.Coefficients) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "n\tan\tbn\t|An|\n")
	fmt.Fprintf(tw, "--\t--------\t--------\t--------\n")
	fmt.Fprintf(tw, "DC\t%.6f\t-\t%.6f\n", c.A0/2, math.Abs(c.A0/2))

	mags := spectrum.Magnitude(c)
	for k := range c.An {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\n", k+1, c.An[k], c.Bn[k], mags[k])
	}

	return tw.Flush()
}

func printMetrics(w io.Writer, m fidelity.Result) {
	fmt.Fprintf(w, "\nReconstruction fidelity:\n")
	fmt.Fprintf(w, "  RMS error:      %.6g\n", m.RMSError)
	fmt.Fprintf(w, "  Max error:      %.6g\n", m.MaxError)
	fmt.Fprintf(w, "  SNR:            %.2f dB\n", m.SNR_dB)
	fmt.Fprintf(w, "  Relative error: %.6g\n", m.RelativeError)
}

func printContent(w io.Writer, a harmonics.Analysis) {
	fmt.Fprintf(w, "\nHarmonic content:\n")
	fmt.Fprintf(w, "  Total power:  %.6g\n", a.TotalPower)
	fmt.Fprintf(w, "  Fundamental:  %.6g\n", a.FundamentalPower)
	fmt.Fprintf(w, "  THD:          %.2f%%\n", a.THD)
	fmt.Fprintf(w, "  Dominant:     %s\n", joinInts(a.Dominant))
}

func printCapture(w io.Writer, points []fidelity.ConvergencePoint) {
	fmt.Fprintf(w, "\nPower capture:\n")

	for _, percent := range []float64{95, 99} {
		if h := fidelity.CaptureIndex(points, percent); h > 0 {
			fmt.Fprintf(w, "  %.0f%% at %d harmonics\n", percent, h)
		} else {
			fmt.Fprintf(w, "  %.0f%% not reached\n", percent)
		}
	}
}

func joinInts(vals []int) string {
	if len(vals) == 0 {
		return "-"
	}

	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}
