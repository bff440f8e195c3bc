package array

import (
	"fmt"
	"testing"

	"github.com/drape-ml/drape/internal/parallel"
)

func BenchmarkDelayedAccess(b *testing.B) {
	arr := ramp(1 << 16)

	b.Run("AtLinear", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = arr.AtLinear(i & 0xffff)
		}
	})

	b.Run("At", func(b *testing.B) {
		c := Coord{0}
		for i := 0; i < b.N; i++ {
			c[0] = i & 0xffff
			_, _ = arr.At(c)
		}
	})
}

func BenchmarkMapChain(b *testing.B) {
	for _, depth := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("depth-%d", depth), func(b *testing.B) {
			var src Source[int] = ramp(1 << 10)
			for d := 0; d < depth; d++ {
				src = Map[int, int](src, func(v int) (int, error) { return v + 1, nil })
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = src.AtLinear(i & 1023)
			}
		})
	}
}

func BenchmarkZipAccess(b *testing.B) {
	x := ramp(1 << 10)
	y := ramp(1 << 10)
	equalShapes := Zip2(func(a, c int) (int, error) { return a + c, nil }, x, y)
	reshaped := Zip2(func(a, c int) (int, error) { return a + c, nil }, x, ramp(1<<9))

	b.Run("equal-shapes", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = equalShapes.AtLinear(i & 511)
		}
	})

	b.Run("reshaped", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = reshaped.AtLinear(i & 511)
		}
	})
}

func BenchmarkForce(b *testing.B) {
	const n = 1 << 16
	pipeline := Zip2(func(x, y int) (int, error) { return x + y, nil },
		ramp(n),
		Map[int, int](ramp(n), func(v int) (int, error) { return v * 3, nil }))

	b.Run("sequential", func(b *testing.B) {
		cfg := parallel.Sequential()
		for i := 0; i < b.N; i++ {
			_, _ = ForceWith[int](pipeline, cfg)
		}
	})

	b.Run("parallel", func(b *testing.B) {
		cfg := parallel.DefaultConfig()
		for i := 0; i < b.N; i++ {
			_, _ = ForceWith[int](pipeline, cfg)
		}
	})
}
