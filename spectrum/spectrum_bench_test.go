package spectrum

import (
	"math"
	"testing"
)

func BenchmarkCoefficients(b *testing.B) {
	sizes := []int{256, 2048, 8192}
	for _, n := range sizes {
		b.Run("points_"+itoa(n), func(b *testing.B) {
			samples := make([]float64, n)
			for i := range samples {
				samples[i] = math.Sin(2*math.Pi*float64(i)/float64(n)) +
					0.25*math.Sin(6*math.Pi*float64(i)/float64(n))
			}

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				_, _ = Coefficients(samples, 10)
			}
		})
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
