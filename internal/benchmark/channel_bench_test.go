package benchmark

import (
	"context"
	"testing"

	"github.com/vnykmshr/piflow/pkg/estimate"
	"github.com/vnykmshr/piflow/pkg/streaming/channel"
	"github.com/vnykmshr/piflow/pkg/streaming/sampler"
)

// BenchmarkChannelSend measures send operation performance.
func BenchmarkChannelSend(b *testing.B) {
	for _, bufSize := range []int{10, 100, 1000} {
		b.Run(sizeLabel(bufSize), func(b *testing.B) {
			ch, err := channel.New[int](bufSize)
			if err != nil {
				b.Fatal(err)
			}

			// Consumer goroutine
			done := make(chan struct{})
			go func() {
				defer close(done)
				ctx := context.Background()
				for {
					if _, err := ch.Receive(ctx); err != nil {
						return
					}
				}
			}()

			b.ReportAllocs()
			b.ResetTimer()
			ctx := context.Background()
			for i := 0; i < b.N; i++ {
				_ = ch.Send(ctx, i)
			}
			b.StopTimer()

			_ = ch.Close()
			<-done
		})
	}
}

// BenchmarkChannelTrySendReceive measures the uncontended path.
func BenchmarkChannelTrySendReceive(b *testing.B) {
	ch, err := channel.New[int](1)
	if err != nil {
		b.Fatal(err)
	}
	defer func() { _ = ch.Close() }()

	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ch.TrySend(i)
		_, _ = ch.Receive(ctx)
	}
}

// BenchmarkTally measures consumer throughput against a growing number of
// coprime-sampling producers.
func BenchmarkTally(b *testing.B) {
	for _, producers := range []int{1, 3, 7} {
		b.Run(workerLabel(producers), func(b *testing.B) {
			queue, err := channel.New[bool](1024)
			if err != nil {
				b.Fatal(err)
			}

			ctx := context.Background()
			group, err := sampler.Start(ctx, sampler.Config{Producers: producers, Seed: 1}, queue)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()
			if _, err := estimate.Tally(ctx, queue, uint64(b.N)); err != nil {
				b.Fatal(err)
			}
			b.StopTimer()

			_ = queue.Close()
			if err := group.Wait(); err != nil {
				b.Fatal(err)
			}
		})
	}
}

// BenchmarkCoprime measures the pair predicate alone.
func BenchmarkCoprime(b *testing.B) {
	src := sampler.NewRandomSource(1, sampler.DefaultMaxValue)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, c := src.Next()
		_ = sampler.Coprime(a, c)
	}
}

// sizeLabel returns a label for a buffer size.
func sizeLabel(size int) string {
	switch {
	case size >= 10000:
		return "10k"
	case size >= 1000:
		return "1k"
	case size >= 100:
		return "100"
	default:
		return "10"
	}
}
