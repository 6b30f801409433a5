package pairs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultReferenceAsset = "AMUR"
	defaultSchema         = "public"
	defaultMaxBatch       = 100
	defaultWarmInterval   = time.Minute
)

// Config holds runtime settings for pair resolution. It is loaded from a
// dedicated yaml section file (etc/pairs.yaml) referenced by the main config.
type Config struct {
	// ReferenceAsset is the asset id volumes are normalised against.
	ReferenceAsset string `yaml:"reference_asset"`
	// Schema is the Postgres schema holding the matcher's pair aggregates.
	Schema string `yaml:"schema"`
	// MaxBatch caps how many pairs a single batch request may carry.
	MaxBatch int `yaml:"max_batch"`
	// Watchlist enumerates pairs the warmer keeps resolved in cache.
	Watchlist []string `yaml:"watchlist"`

	WarmInterval time.Duration `yaml:"-"`

	warmIntervalRaw string `yaml:"warm_interval"`
}

// DefaultConfig returns the configuration used when no pairs section file is
// configured.
func DefaultConfig() *Config {
	return &Config{
		ReferenceAsset: defaultReferenceAsset,
		Schema:         defaultSchema,
		MaxBatch:       defaultMaxBatch,
		WarmInterval:   defaultWarmInterval,
	}
}

// LoadConfig reads configuration from disk.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pairs config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// LoadConfigFromReader constructs a Config from a reader, expanding
// ${ENV_VAR} placeholders before parsing.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pairs config: %w", err)
	}

	var raw struct {
		ReferenceAsset string   `yaml:"reference_asset"`
		Schema         string   `yaml:"schema"`
		MaxBatch       int      `yaml:"max_batch"`
		Watchlist      []string `yaml:"watchlist"`
		WarmInterval   string   `yaml:"warm_interval"`
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &raw); err != nil {
		return nil, fmt.Errorf("parse pairs config: %w", err)
	}

	cfg := &Config{
		ReferenceAsset:  raw.ReferenceAsset,
		Schema:          raw.Schema,
		MaxBatch:        raw.MaxBatch,
		Watchlist:       raw.Watchlist,
		warmIntervalRaw: raw.WarmInterval,
	}
	if err := cfg.normalise(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalise() error {
	if strings.TrimSpace(c.ReferenceAsset) == "" {
		c.ReferenceAsset = defaultReferenceAsset
	}
	if strings.TrimSpace(c.Schema) == "" {
		c.Schema = defaultSchema
	}
	if c.MaxBatch <= 0 {
		c.MaxBatch = defaultMaxBatch
	}

	c.WarmInterval = defaultWarmInterval
	if raw := strings.TrimSpace(c.warmIntervalRaw); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("pairs config: parse warm_interval %q: %w", raw, err)
		}
		if d <= 0 {
			return errors.New("pairs config: warm_interval must be positive")
		}
		c.WarmInterval = d
	}

	for _, entry := range c.Watchlist {
		if _, err := ParsePair(entry); err != nil {
			return fmt.Errorf("pairs config: watchlist entry: %w", err)
		}
	}
	return nil
}
