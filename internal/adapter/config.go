// Package adapter provides the I/O side of the scanner: configuration,
// catalog files, clocks, logging and external command sources.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// ScanConfig holds the sweep constants.
type ScanConfig struct {
	Start      float64       `yaml:"start"`
	End        float64       `yaml:"end"`
	Step       float64       `yaml:"step"`
	TickPeriod time.Duration `yaml:"tick_period"`
}

// Config is the scanner configuration.
type Config struct {
	Scan           ScanConfig    `yaml:"scan"`
	AutoStartDelay time.Duration `yaml:"auto_start_delay"`
	Catalog        string        `yaml:"catalog"` // empty means the embedded catalog
}

// DefaultConfig returns the values used by the anatomy diagram viewbox.
func DefaultConfig() Config {
	return Config{
		Scan: ScanConfig{
			Start:      32,
			End:        165,
			Step:       1,
			TickPeriod: 30 * time.Millisecond,
		},
	}
}

// LoadConfig reads a YAML file over DefaultConfig. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	return decodeConfig(file, cfg)
}

func decodeConfig(r io.Reader, cfg Config) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the sweep bounds and timing.
func (c Config) Validate() error {
	s := c.Scan

	switch {
	case s.Start >= s.End:
		return fmt.Errorf("%w: scan.start (%g) must be below scan.end (%g)", ErrInvalidConfig, s.Start, s.End)
	case s.Step <= 0:
		return fmt.Errorf("%w: scan.step must be positive, got %g", ErrInvalidConfig, s.Step)
	case s.Step > s.End-s.Start:
		return fmt.Errorf("%w: scan.step (%g) exceeds the sweep range", ErrInvalidConfig, s.Step)
	case s.TickPeriod <= 0:
		return fmt.Errorf("%w: scan.tick_period must be positive, got %s", ErrInvalidConfig, s.TickPeriod)
	case c.AutoStartDelay < 0:
		return fmt.Errorf("%w: auto_start_delay must not be negative", ErrInvalidConfig)
	}

	return nil
}
