package fidelity

import (
	"math"
	"testing"
)

func BenchmarkCompare(b *testing.B) {
	sizes := []int{512, 2000, 8192}
	for _, n := range sizes {
		b.Run("points_"+itoa(n), func(b *testing.B) {
			original := make([]float64, n)
			reconstructed := make([]float64, n)

			for i := range original {
				x := 2 * math.Pi * float64(i) / float64(n)
				original[i] = math.Sin(x)
				reconstructed[i] = math.Sin(x) + 0.01*math.Sin(3*x)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				_, _ = Compare(original, reconstructed)
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
