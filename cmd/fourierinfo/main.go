// Command fourierinfo analyzes periodic waveforms through their
// trigonometric series.
//
// Usage:
//
//	fourierinfo list
//	fourierinfo analyze <waveform> [flags]
//	fourierinfo export <waveform> [flags]
//
// Examples:
//
//	fourierinfo list
//	fourierinfo analyze square --harmonics 15
//	fourierinfo analyze pulse_train --duty 0.3 --amplitude 2
//	fourierinfo export sawtooth --output sawtooth.json
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fourier/series"
	"github.com/cwbudde/algo-fourier/waveform"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fourierinfo",
		Short: "Trigonometric series analysis of periodic waveforms",
		Long: "fourierinfo decomposes periodic test waveforms into trigonometric\n" +
			"series coefficients and reports harmonic content, reconstruction\n" +
			"fidelity, and convergence behavior.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newListCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newExportCmd())

	return root
}

// waveformFlags holds the generator parameters shared by the analyze and
// export subcommands.
type waveformFlags struct {
	period    float64
	harmonics int
	points    int
	amplitude float64
	duty      float64
}

func (f *waveformFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.period, "period", 2*math.Pi, "waveform period")
	cmd.Flags().IntVar(&f.harmonics, "harmonics", 10, "number of harmonics")
	cmd.Flags().IntVar(&f.points, "points", 2000, "samples per period")
	cmd.Flags().Float64Var(&f.amplitude, "amplitude", 1, "waveform amplitude")
	cmd.Flags().Float64Var(&f.duty, "duty", 0.2, "duty cycle for pulse trains")
}

func (f *waveformFlags) build(name string) (waveform.Type, series.Func, error) {
	typ, err := waveform.ParseType(name)
	if err != nil {
		return 0, nil, err
	}

	fn, err := waveform.New(typ,
		waveform.WithAmplitude(f.amplitude),
		waveform.WithPeriod(f.period),
		waveform.WithDuty(f.duty),
	)
	if err != nil {
		return 0, nil, err
	}

	return typ, fn, nil
}
