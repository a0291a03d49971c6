package vec_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/vec"
)

// BenchmarkAppend measures sequential append patterns
// These dominate real workloads, so amortized growth cost matters most
func BenchmarkAppend(b *testing.B) {
	sizes := []int{16, 256, 4096, 65536}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Vector/size-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v := vec.New[int]()
				for j := 0; j < size; j++ {
					v.PushBack(j)
				}
				v.Destroy()
			}
		})

		b.Run(fmt.Sprintf("Builtin/size-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < size; j++ {
					s = append(s, j)
				}
				_ = s
			}
		})
	}
}

// BenchmarkAppendReserved measures appends with capacity reserved up front
func BenchmarkAppendReserved(b *testing.B) {
	const size = 4096

	b.Run("Vector", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := vec.New[int]()
			v.Reserve(size)
			for j := 0; j < size; j++ {
				v.PushBack(j)
			}
			v.Destroy()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, size)
			for j := 0; j < size; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})
}

// BenchmarkInsert measures positional insertion at the worst and best spots
func BenchmarkInsert(b *testing.B) {
	const size = 1024

	b.Run("Front", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := vec.New[int]()
			v.Reserve(size)
			for j := 0; j < size; j++ {
				v.Insert(0, j)
			}
			v.Destroy()
		}
	})

	b.Run("Back", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := vec.New[int]()
			v.Reserve(size)
			for j := 0; j < size; j++ {
				v.Insert(v.Len(), j)
			}
			v.Destroy()
		}
	})
}

// BenchmarkEraseFront measures the shifting cost of front erases
func BenchmarkEraseFront(b *testing.B) {
	const size = 1024

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v := vec.New[int]()
		for j := 0; j < size; j++ {
			v.PushBack(j)
		}
		b.StartTimer()

		for v.Len() > 0 {
			v.Erase(0)
		}
		v.Destroy()
	}
}

// BenchmarkLifecycleOverhead compares trivial elements against elements
// with counting lifecycle hooks
func BenchmarkLifecycleOverhead(b *testing.B) {
	const size = 4096

	b.Run("Trivial", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := vec.New[int]()
			for j := 0; j < size; j++ {
				v.PushBack(j)
			}
			v.Destroy()
		}
	})

	b.Run("Hooked", func(b *testing.B) {
		lc := vec.Lifecycle[int]{
			Clone:   func(p *int) (int, error) { return *p, nil },
			Destroy: func(p *int) { *p = 0 },
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := vec.NewWithLifecycle(lc)
			for j := 0; j < size; j++ {
				v.PushBack(j)
			}
			v.Destroy()
		}
	})
}
