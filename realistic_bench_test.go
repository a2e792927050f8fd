package arena

import (
	"fmt"
	"runtime"
	"testing"
)

// BenchmarkRealisticUsage tests scenarios where arena should excel
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Many small allocations released together
	b.Run("ManySmallAllocs/Arena", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			a, _ := NewArena(100 * 64)
			for j := 0; j < 100; j++ {
				_, _ = a.Allocate(64, 8)
			}
			_ = a.Release()
		}
	})

	b.Run("ManySmallAllocs/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			objects := make([][]byte, 100)
			for j := 0; j < 100; j++ {
				objects[j] = make([]byte, 64)
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	// Test 2: Struct allocation patterns
	type TestStruct struct {
		ID   int64
		Data [56]byte // Total 64 bytes
	}

	b.Run("StructAllocs/Arena", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			a, _ := NewArena(50 * 64)
			for j := 0; j < 50; j++ {
				s, _ := Alloc(a, TestStruct{ID: int64(j)})
				s.Data[0] = byte(j)
			}
			_ = a.Release()
		}
	})

	b.Run("StructAllocs/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			structs := make([]*TestStruct, 50)
			for j := 0; j < 50; j++ {
				structs[j] = &TestStruct{ID: int64(j)}
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	// Test 3: Off-heap backing
	b.Run("StructAllocs/Mmap", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			a, err := NewArena(50*64, WithMmap())
			if err != nil {
				b.Skip(err)
			}
			for j := 0; j < 50; j++ {
				_, _ = Alloc(a, TestStruct{ID: int64(j)})
			}
			_ = a.Release()
		}
	})
}

// BenchmarkAllocationSizes covers small, medium and large single requests.
func BenchmarkAllocationSizes(b *testing.B) {
	sizes := []int{8, 64, 256, 1024, 8192, 65536}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Arena_%dB", size), func(b *testing.B) {
			const perArena = 64
			a, _ := NewArena(perArena * size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := a.Allocate(uintptr(size), 8); err != nil {
					b.StopTimer()
					a, _ = NewArena(perArena * size)
					b.StartTimer()
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%dB", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = make([]byte, size)
			}
		})
	}
}

// BenchmarkFitQueries measures the cost of asking before allocating.
func BenchmarkFitQueries(b *testing.B) {
	a, _ := NewArena(4096)
	_, _ = a.Allocate(3, 1)

	b.Run("CanFit", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = CanFit[uint64](a)
		}
	})

	b.Run("CanFitSlice", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = CanFitSlice[uint64](a, i&511)
		}
	})

	b.Run("OutOfMemory", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = a.Allocate(1<<20, 8)
		}
	})
}
