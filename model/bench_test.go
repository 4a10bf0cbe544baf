package model

import (
	"fmt"
	"testing"
)

func BenchmarkAdvance(b *testing.B) {
	sizes := []int{40, 128, 512}
	workerConfs := []int{1, 2, 4, 8}

	for _, size := range sizes {
		for _, workers := range workerConfs {
			name := fmt.Sprintf("size=%dx%d_workers=%d", size, size, workers)
			b.Run(name, func(b *testing.B) {
				g := NewGrid(size, size)
				Randomize(g, 0.3, newTestRand())
				e := NewEngine(workers)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					e.Advance(g)
				}
			})
		}
	}
}
