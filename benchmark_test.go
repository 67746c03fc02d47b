package pixscale

import (
	"fmt"
	"testing"
)

func benchmarkSource(w, h int) *Pixmap {
	src := NewPixmap(w, h)
	src.Clear(White)
	for i := 0; i < w && i < h; i++ {
		src.SetPixel(i, i, Black)
		src.SetPixel(w-1-i, i, Red)
	}
	for x := 0; x < w; x++ {
		src.SetPixel(x, h/2, Blue)
	}
	return src
}

func BenchmarkScaleSharp(b *testing.B) {
	src := benchmarkSource(64, 64)
	for _, factor := range []int{2, 4} {
		s := New(WithWorkers(1), WithoutAccelerator())
		b.Run(fmt.Sprintf("%dx", factor), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := s.Scale(src, 64*factor, 64*factor); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkScaleSharpParallel(b *testing.B) {
	src := benchmarkSource(256, 240)
	s := New(WithoutAccelerator())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Scale(src, 1024, 960); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScaleSimple(b *testing.B) {
	src := benchmarkSource(64, 64)
	for _, f := range []Filter{FilterNearest, FilterLinear} {
		s := New(WithFilter(f))
		b.Run(f.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := s.Scale(src, 256, 256); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkKernelAt(b *testing.B) {
	src := benchmarkSource(64, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		KernelAt(src, i%256, (i/256)%256, 256, 256)
	}
}
