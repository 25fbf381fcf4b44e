// Package config holds the sizing of an estimation run: how many series
// terms, how many workers, how many samples and how large the sample queue.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/vnykmshr/piflow/pkg/common/validation"
)

// Defaults used when a field is left unset.
const (
	DefaultTerms         uint64 = 1_000_000_000
	DefaultSampleQuota   uint64 = 10_000_000
	DefaultQueueCapacity        = 1024
	DefaultMaxValue      uint64 = 1 << 32
	DefaultLogLevel             = "info"
)

// LogLevels lists the accepted values of Config.LogLevel.
var LogLevels = []string{"debug", "info", "warn", "error"}

// SeriesConfig sizes the partial-sum engine.
type SeriesConfig struct {
	// Terms is the number of series terms summed, indices [0, Terms).
	Terms uint64 `yaml:"terms"`

	// Workers is the number of partitions and worker goroutines.
	Workers int `yaml:"workers"`
}

// SamplingConfig sizes the sampling engine.
type SamplingConfig struct {
	// Quota is the exact number of samples the aggregator consumes.
	Quota uint64 `yaml:"quota"`

	// Producers is the number of producer goroutines.
	Producers int `yaml:"producers"`

	// QueueCapacity is the capacity of the bounded sample queue.
	QueueCapacity int `yaml:"queue_capacity"`

	// Seed is the base random seed; zero picks one at random.
	Seed uint64 `yaml:"seed"`

	// MaxValue bounds the random integers drawn for each pair.
	MaxValue uint64 `yaml:"max_value"`
}

// Config is the complete sizing of an estimation run.
type Config struct {
	Series   SeriesConfig   `yaml:"series"`
	Sampling SamplingConfig `yaml:"sampling"`
	LogLevel string         `yaml:"log_level"`
}

// Default returns the production sizing: one series worker per CPU and one
// CPU left free of sample producers for the aggregator.
func Default() Config {
	cpus := runtime.NumCPU()
	return Config{
		Series: SeriesConfig{
			Terms:   DefaultTerms,
			Workers: cpus,
		},
		Sampling: SamplingConfig{
			Quota:         DefaultSampleQuota,
			Producers:     max(1, cpus-1),
			QueueCapacity: DefaultQueueCapacity,
			MaxValue:      DefaultMaxValue,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Parse overlays the YAML document data on Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Validate checks every field. Terms may be zero; counts of workers,
// producers, samples and queue slots may not.
func (c Config) Validate() error {
	checks := []error{
		validation.ValidatePositive("config", "series.workers", c.Series.Workers),
		validation.ValidateNonZero("config", "sampling.quota", c.Sampling.Quota),
		validation.ValidatePositive("config", "sampling.producers", c.Sampling.Producers),
		validation.ValidatePositive("config", "sampling.queue_capacity", c.Sampling.QueueCapacity),
		validation.ValidateNonZero("config", "sampling.max_value", c.Sampling.MaxValue),
		validation.ValidateOneOf("config", "log_level", c.LogLevel, LogLevels...),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
