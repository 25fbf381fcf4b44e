// Command series estimates pi by summing the paired Leibniz series across
// one worker per CPU.
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
		fmt.Fprintln(os.Stderr, "series:", err)
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

	logger.Info(fmt.Sprintf("creating %d worker threads", cfg.Series.Workers),
		zap.Uint64("terms", cfg.Series.Terms))

	res, err := est.Series(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("pi ~= %s\n", strconv.FormatFloat(res.Pi, 'f', -1, 64))
	return nil
}
