package fastblur

import (
	"fmt"
	"math/rand"
	"testing"
)

func benchInput(n int) []byte {
	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, n)
	rng.Read(buf)
	return buf
}

func BenchmarkEncrypt(b *testing.B) {
	sizes := []int{64, 256, 4096, 64 * 1024, 1 << 20}
	strategies := []Strategy{StrategyAdaptive, StrategyDirect, StrategyUnrolled, StrategyLookup, StrategyBatched}
	for _, strat := range strategies {
		for _, size := range sizes {
			b.Run(fmt.Sprintf("%s/%d", strat, size), func(b *testing.B) {
				e, err := New(WithStrategy(strat))
				if err != nil {
					b.Fatal(err)
				}
				data := benchInput(size)
				b.SetBytes(int64(size))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					e.EncryptInPlace(data)
				}
			})
		}
	}
}

func BenchmarkEncryptParallel(b *testing.B) {
	sizes := []int{64 * 1024, 1 << 20, 8 << 20}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			e, err := New(WithParallel())
			if err != nil {
				b.Fatal(err)
			}
			data := benchInput(size)
			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.EncryptInPlace(data)
			}
		})
	}
}

func BenchmarkEncryptFixedMode(b *testing.B) {
	e, err := New(WithFixedShift(3))
	if err != nil {
		b.Fatal(err)
	}
	data := benchInput(64 * 1024)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.EncryptInPlace(data)
	}
}
