package waveform_test

import (
	"fmt"

	"github.com/cwbudde/algo-fourier/waveform"
)

func ExampleNew() {
	fn, err := waveform.New(waveform.TypeSquare,
		waveform.WithAmplitude(2),
		waveform.WithPeriod(1),
	)
	if err != nil {
		panic(err)
	}

	samples, err := fn([]float64{0, 0.25, 0.5, 0.75})
	if err != nil {
		panic(err)
	}

	fmt.Println(samples)
	// Output:
	// [2 2 -2 -2]
}

func ExampleTypes() {
	for _, typ := range waveform.Types() {
		info := waveform.Info(typ)
		fmt.Printf("%s: %s\n", typ, info.Name)
	}
	// Output:
	// square: Square Wave
	// sawtooth: Sawtooth Wave
	// triangle: Triangle Wave
	// half_wave: Half-Wave Rectified Sine
	// pulse_train: Pulse Train
}
