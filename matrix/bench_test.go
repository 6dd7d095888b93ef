// Package matrix_test provides benchmarks for construction, comparison and transpose.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/umatrix/matrix"
)

// benchShapes cover square and strongly rectangular layouts.
var benchShapes = [][2]int{{128, 128}, {64, 1024}, {1024, 64}}

// sinks to defeat dead-code elimination
var (
	sinkD *matrix.Dense
	sinkB bool
)

func BenchmarkNew(b *testing.B) {
	for _, s := range benchShapes {
		data := Sequence(s[0] * s[1])
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, err := matrix.New(s[0], s[1], data)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			x := MustNew(b, s[0], s[1], Sequence(s[0]*s[1]))
			y := MustNew(b, s[0], s[1], Sequence(s[0]*s[1]))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = matrix.Equal(x, y)
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			m := MustNew(b, s[0], s[1], Sequence(s[0]*s[1]))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := m.Transpose(); err != nil {
					b.Fatal(err)
				}
			}
			sinkD = m
		})
	}
}
