package series

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fourier/internal/testutil"
)

func BenchmarkCoefficients(b *testing.B) {
	sizes := []int{512, 2000, 8192}
	for _, points := range sizes {
		b.Run("points_"+itoa(points), func(b *testing.B) {
			a, err := NewAnalyzer(2*math.Pi, WithPoints(points))
			if err != nil {
				b.Fatalf("NewAnalyzer error: %v", err)
			}

			fn := testutil.SquareFunc(1.0, 2*math.Pi)

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				_, _ = a.Coefficients(fn, 15)
			}
		})
	}
}

func BenchmarkProgressive(b *testing.B) {
	a, err := NewAnalyzer(2*math.Pi, WithPoints(2000))
	if err != nil {
		b.Fatalf("NewAnalyzer error: %v", err)
	}

	c, err := a.Coefficients(testutil.SquareFunc(1.0, 2*math.Pi), 15)
	if err != nil {
		b.Fatalf("Coefficients error: %v", err)
	}

	ts := a.SampleTimes()

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_, _ = a.Progressive(c, ts)
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}

	buf := [20]byte{}

	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}

	return string(buf[i:])
}
