package slotmap_test

import (
	"fmt"
	"testing"

	"github.com/edwinsyarief/slotmap"
)

var benchSizes = []int{1000, 10000, 100000}

func sizeName(size int) string {
	return fmt.Sprintf("%dK", size/1000)
}

type particle struct {
	X, Y   float32
	DX, DY float32
}

func BenchmarkInsert(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				m := slotmap.New[particle](size)
				b.StartTimer()
				for j := 0; j < size; j++ {
					m.Insert(particle{X: float32(j)})
				}
			}
		})
	}
}

func BenchmarkInsertAutoExpand(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var m slotmap.SlotMap[particle]
				for j := 0; j < size; j++ {
					m.Insert(particle{X: float32(j)})
				}
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			m := slotmap.New[particle](size)
			handles := make([]slotmap.Handle[particle], size)
			for j := range size {
				handles[j], _ = m.CreateHandle(m.Insert(particle{X: float32(j)}))
			}
			b.ReportAllocs()
			b.ResetTimer()
			var sum float32
			for i := 0; i < b.N; i++ {
				p, _ := m.Get(handles[i%size])
				sum += p.X
			}
			_ = sum
		})
	}
}

func BenchmarkEraseInsertChurn(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			m := slotmap.New[particle](size)
			for j := range size {
				m.Insert(particle{X: float32(j)})
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.EraseIndex(i % m.Len())
				m.Insert(particle{X: float32(i)})
			}
		})
	}
}

func BenchmarkIteratePointers(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			m := slotmap.New[particle](size)
			for range size {
				m.Insert(particle{DX: 1, DY: 1})
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for p := range m.Pointers() {
					p.X += p.DX
					p.Y += p.DY
				}
			}
		})
	}
}

func BenchmarkClear(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			m := slotmap.New[particle](size)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				for j := 0; j < size; j++ {
					m.Insert(particle{})
				}
				b.StartTimer()
				m.Clear()
			}
		})
	}
}
