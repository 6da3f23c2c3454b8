package work_test

import (
	"testing"

	"github.com/tensolab/forcelib/table"
	"github.com/tensolab/forcelib/work"
)

// benchmarkWork runs the integral over a synthetic single-test view of n
// rows. It resets the timer after fixture construction.
func benchmarkWork(b *testing.B, n int) {
	rows := make([]table.Row, n)
	for i := range rows {
		rows[i] = table.Row{
			Test:         "Test 1",
			Seconds:      float64(i),
			Displacement: table.Val(float64(i) * 0.01),
			Force:        table.Val(10 + float64(i%7)),
		}
	}
	v := table.New(rows).All()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := work.Work(v, nil); err != nil {
			b.Fatalf("Work failed: %v", err)
		}
	}
}

// BenchmarkWork_1k benchmarks a short test run.
func BenchmarkWork_1k(b *testing.B) { benchmarkWork(b, 1_000) }

// BenchmarkWork_100k benchmarks a long high-rate capture.
func BenchmarkWork_100k(b *testing.B) { benchmarkWork(b, 100_000) }
