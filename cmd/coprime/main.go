// Command coprime estimates pi from the probability that two random
// integers are coprime, sampled by one producer per spare CPU.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/vnykmshr/piflow/internal/logging"
	"github.com/vnykmshr/piflow/pkg/config"
	"github.com/vnykmshr/piflow/pkg/estimate"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "coprime:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	est, err := estimate.New(cfg, estimate.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("sampling coprime pairs",
		zap.Int("producers", cfg.Sampling.Producers),
		zap.Uint64("quota", cfg.Sampling.Quota),
		zap.Int("queue_capacity", cfg.Sampling.QueueCapacity))

	res, err := est.Coprime(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("result = '%s'\n", strconv.FormatFloat(res.Fraction, 'f', -1, 64))
	fmt.Printf("pi ~= '%s'\n", strconv.FormatFloat(res.Pi, 'f', -1, 64))
	return nil
}
