// Package config holds the settings of the lanes command line tool.
//
// Settings are layered, later layers winning:
//  1. Defaults
//  2. YAML file (--config)
//  3. LANES_* environment variables
//  4. Command line flags (applied by the caller)
//
// Backend selection for the vector API itself is not configured here; it is
// fixed at build time by tags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lanes/lanes/features"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the verification and logging configuration.
type Config struct {
	Verify Verify `yaml:"verify"`
	Log    Log    `yaml:"log"`
}

// Verify configures the verification runner.
type Verify struct {
	// Iterations is the number of random inputs per conformance case.
	Iterations int `yaml:"iterations"`
	// Seed makes runs reproducible. Workers derive their own seeds from it.
	Seed int64 `yaml:"seed"`
	// Workers is the worker pool size; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Backends restricts the run to the named backends; empty means all.
	Backends []string `yaml:"backends"`
	// StreamLengths are the crosscheck stream lengths.
	StreamLengths []int `yaml:"stream_lengths"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Verify: Verify{
			Iterations:    200,
			Seed:          1,
			StreamLengths: []int{1, 7, 16, 33, 64, 129, 1000},
		},
		Log: Log{Level: "info", Format: "console"},
	}
}

// Load returns the defaults overlaid with the YAML file at path, when path
// is not empty, and then with the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overlays LANES_ITERATIONS, LANES_SEED, LANES_WORKERS,
// LANES_BACKENDS (comma separated), LANES_LOG_LEVEL and LANES_LOG_FORMAT.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"LANES_ITERATIONS", &c.Verify.Iterations},
		{"LANES_WORKERS", &c.Verify.Workers},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, e.key, v, err)
			}
			*e.dst = n
		}
	}
	if v, ok := lookup("LANES_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: LANES_SEED=%q: %w", ErrInvalid, v, err)
		}
		c.Verify.Seed = n
	}
	if v, ok := lookup("LANES_BACKENDS"); ok {
		c.Verify.Backends = SplitList(v)
	}
	if v, ok := lookup("LANES_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("LANES_LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	return nil
}

// SplitList parses a comma separated list, dropping blanks and duplicates.
func SplitList(s string) []string {
	items := lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.ToLower(strings.TrimSpace(item))
	})
	return lo.Uniq(lo.Compact(items))
}

// Validate checks ranges and backend names.
func (c Config) Validate() error {
	v := c.Verify
	if v.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalid, v.Iterations)
	}
	if v.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, v.Workers)
	}
	if unknown := lo.Without(v.Backends, features.Levels...); len(unknown) > 0 {
		return fmt.Errorf("%w: unknown backends %v (want one of %v)", ErrInvalid, unknown, features.Levels)
	}
	if bad := lo.Filter(v.StreamLengths, func(n int, _ int) bool { return n < 0 }); len(bad) > 0 {
		return fmt.Errorf("%w: negative stream lengths %v", ErrInvalid, bad)
	}
	return nil
}
