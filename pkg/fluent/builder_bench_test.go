package fluent

import (
	"testing"
)

// BenchmarkBuild benchmarks builder resolution for the common shapes.
func BenchmarkBuild(b *testing.B) {
	base := func() int { return 3 }

	b.Run("Empty", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = New[int]().Build(base)
		}
	})

	b.Run("Value", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = New[int]().Value(5).Build(base)
		}
	})

	b.Run("Fluent", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = New[int]().
				Fluent(func(v int) int { return v + 1 }).
				Fluent(func(v int) int { return v * 2 }).
				Build(base)
		}
	})

	b.Run("FluentMut", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = New[int]().
				FluentMut(func(v *int) { *v++ }).
				Build(base)
		}
	})

	b.Run("Stateful", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = FromSeed[int, string]("seed").
				Fluent("seed", func(v int, _ string) int { return v + 1 }).
				Build(func(string) int { return 3 })
		}
	})
}
