package threadpool

import (
	"testing"
)

// BenchmarkSubmit measures submission overhead under concurrent producers.
func BenchmarkSubmit(b *testing.B) {
	pool, err := New(4)
	if err != nil {
		b.Fatal(err)
	}
	defer pool.Shutdown()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := Submit(pool, func() (int, error) {
				return 0, nil
			})
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkSubmitAndWait measures full round-trip latency through the queue,
// a worker and the future.
func BenchmarkSubmitAndWait(b *testing.B) {
	pool, err := New(4)
	if err != nil {
		b.Fatal(err)
	}
	defer pool.Shutdown()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fut, err := Submit(pool, func() (int, error) {
			return i * i, nil
		})
		if err != nil {
			b.Fatal(err)
		}
		if _, err := fut.Wait(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSubmitWithWork measures throughput with a small CPU-bound task.
func BenchmarkSubmitWithWork(b *testing.B) {
	pool, err := New(8)
	if err != nil {
		b.Fatal(err)
	}
	defer pool.Shutdown()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			fut, err := Submit(pool, func() (int, error) {
				sum := 0
				for i := 0; i < 1000; i++ {
					sum += i
				}
				return sum, nil
			})
			if err != nil {
				b.Fatal(err)
			}
			if _, err := fut.Wait(); err != nil {
				b.Fatal(err)
			}
		}
	})
}
