package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tektronix/TekHSI/internal/ports"
)

type Config struct {
	Instrument InstrumentConfig `yaml:"instrument"`
	Acquire    AcquireConfig    `yaml:"acquire"`
	Parallel   ParallelConfig   `yaml:"parallel"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type InstrumentConfig struct {
	URL               string        `yaml:"url"`
	ClientName        string        `yaml:"client_name"`
	KeepAliveInterval time.Duration `yaml:"keepalive_interval"`
	KeepAliveMisses   int           `yaml:"keepalive_misses"`
}

type AcquireConfig struct {
	Symbols          []string      `yaml:"symbols"`
	ChunkSize        int           `yaml:"chunk_size"`
	IdleSleep        time.Duration `yaml:"idle_sleep"`
	CoherenceRetries int           `yaml:"coherence_retries"`
	Normalized       bool          `yaml:"normalized"`
}

// ParallelConfig gates the experimental parallel-read path. The TEKHSI_*
// environment variables override whatever the file says.
type ParallelConfig struct {
	Enabled   bool `yaml:"enabled"`
	Threshold int  `yaml:"threshold"`
	Workers   int  `yaml:"workers"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.Acquire.ChunkSize == 0 {
		c.Acquire.ChunkSize = 80000
	}
	if c.Acquire.IdleSleep == 0 {
		c.Acquire.IdleSleep = 50 * time.Millisecond
	}
	if c.Acquire.CoherenceRetries == 0 {
		c.Acquire.CoherenceRetries = 3
	}
	if c.Instrument.KeepAliveInterval == 0 {
		c.Instrument.KeepAliveInterval = 5 * time.Second
	}
	if c.Instrument.KeepAliveMisses == 0 {
		c.Instrument.KeepAliveMisses = 3
	}
	if c.Parallel.Threshold == 0 {
		c.Parallel.Threshold = 2
	}
	if c.Parallel.Workers == 0 {
		c.Parallel.Workers = 4
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9100"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// ApplyEnv layers the TEKHSI_* variables over the parallel-read settings.
// TEKHSI_DISABLE_PARALLEL_READS wins over everything else.
func (c *Config) ApplyEnv() {
	if envBool("TEKHSI_USE_PARALLEL_READS") {
		c.Parallel.Enabled = true
	}
	if v, err := strconv.Atoi(os.Getenv("TEKHSI_PARALLEL_THRESHOLD")); err == nil && v > 0 {
		c.Parallel.Threshold = v
	}
	if v, err := strconv.Atoi(os.Getenv("TEKHSI_PARALLEL_WORKERS")); err == nil && v > 0 {
		c.Parallel.Workers = v
	}
	if envBool("TEKHSI_DISABLE_PARALLEL_READS") {
		c.Parallel.Enabled = false
	}
}

func (c *Config) Validate() error {
	if c.Instrument.URL == "" {
		return fmt.Errorf("instrument.url is required")
	}
	if c.Acquire.ChunkSize < 0 {
		return fmt.Errorf("acquire.chunk_size must be >= 0")
	}
	if c.Parallel.Workers <= 0 {
		return fmt.Errorf("parallel.workers must be > 0")
	}
	return nil
}

// Policy flattens the acquisition tunables for the pipeline and session.
func (c *Config) Policy() ports.Policy {
	return ports.Policy{
		ChunkSize:         c.Acquire.ChunkSize,
		IdleSleep:         c.Acquire.IdleSleep,
		CoherenceRetries:  c.Acquire.CoherenceRetries,
		KeepAliveInterval: c.Instrument.KeepAliveInterval,
		KeepAliveMisses:   c.Instrument.KeepAliveMisses,
		Normalized:        c.Acquire.Normalized,
		ParallelReads:     c.Parallel.Enabled,
		ParallelThreshold: c.Parallel.Threshold,
		ParallelWorkers:   c.Parallel.Workers,
	}
}

func envBool(name string) bool {
	switch strings.ToLower(os.Getenv(name)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
