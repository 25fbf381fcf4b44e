package estimate_test

import (
	"context"
	"fmt"

	"github.com/vnykmshr/piflow/pkg/config"
	"github.com/vnykmshr/piflow/pkg/estimate"
	"github.com/vnykmshr/piflow/pkg/streaming/sampler"
)

func ExampleEstimator_Series() {
	cfg := config.Default()
	cfg.Series.Terms = 1_000_000
	cfg.Series.Workers = 4

	est, err := estimate.New(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := est.Series(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("pi ~= %.5f\n", res.Pi)
	// Output: pi ~= 3.14159
}

type everyOther struct{ n uint64 }

func (s *everyOther) Next() (uint64, uint64) {
	s.n++
	if s.n%2 == 0 {
		return 4, 6
	}
	return 5, 7
}

func ExampleEstimator_Coprime() {
	cfg := config.Default()
	cfg.Sampling.Quota = 1000
	cfg.Sampling.Producers = 1
	cfg.Sampling.QueueCapacity = 8

	est, err := estimate.New(cfg, estimate.WithSource(func(int, uint64) sampler.PairSource {
		return &everyOther{}
	}))
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := est.Coprime(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("fraction = %.2f\n", res.Fraction)
	fmt.Printf("pi ~= %.4f\n", res.Pi)
	// Output:
	// fraction = 0.50
	// pi ~= 3.4641
}

func ExampleTally() {
	ch := make(chan bool, 4)
	for _, v := range []bool{true, false, true, true} {
		ch <- v
	}

	counts, err := estimate.Tally(context.Background(), chanReceiver(ch), 4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(counts.Hits, counts.Total)
	// Output: 3 4
}

type chanReceiver chan bool

func (c chanReceiver) Receive(ctx context.Context) (bool, error) {
	select {
	case v := <-c:
		return v, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
