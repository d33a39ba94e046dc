package littled_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wigner/littled"
)

// benchDegrees are the lMax values to benchmark.
var benchDegrees = []int{100, 1000, 10000}

// sinks to defeat dead-code elimination
var (
	sinkD  []float64
	sinkDC []complex128
)

func BenchmarkLittleD(b *testing.B) {
	b.ReportAllocs()
	for _, l := range benchDegrees {
		b.Run(fmt.Sprintf("lMax=%d", l), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				d, err := littled.LittleD(2, l, 2, -2, 0.7)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

func BenchmarkLegendre(b *testing.B) {
	b.ReportAllocs()
	for _, l := range benchDegrees {
		b.Run(fmt.Sprintf("lMax=%d", l), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p, err := littled.Legendre(0, l, 0.3)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = p
			}
		})
	}
}

func BenchmarkBigD(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		D, err := littled.BigD(3, 1000, 3, 1, 0.1, 0.7, 0.2)
		if err != nil {
			b.Fatal(err)
		}
		sinkDC = D
	}
}
