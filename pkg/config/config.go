package config

import (
	"strings"
	"time"

	"github.com/arthur-debert/ddsbatch/pkg/errors"
)

// Config is the fully merged runtime configuration
type Config struct {
	Root       string        `koanf:"root"`
	Anchor     string        `koanf:"anchor"`
	Profile    string        `koanf:"profile"`
	RulesFile  string        `koanf:"rules_file"`
	Workers    int           `koanf:"workers"`
	Timeout    time.Duration `koanf:"timeout"`
	DryRun     bool          `koanf:"dry_run"`
	Extensions []string      `koanf:"extensions"`
	Encoder    EncoderConfig `koanf:"encoder"`
	Scale      ScaleConfig   `koanf:"scale"`
	Lint       LintConfig    `koanf:"lint"`
	Output     OutputConfig  `koanf:"output"`
}

// EncoderConfig locates the external encoder binary
type EncoderConfig struct {
	// Path, when set, bypasses the platform table
	Path      string            `koanf:"path"`
	Platforms map[string]string `koanf:"platforms"`
}

// ScaleConfig holds the global rescale factors
type ScaleConfig struct {
	Model     float64 `koanf:"model"`
	NormalMap float64 `koanf:"normal_map"`
}

// LintConfig tunes rule validation
type LintConfig struct {
	MaxPatternLength int `koanf:"max_pattern_length"`
}

// OutputConfig controls presentation
type OutputConfig struct {
	Format string `koanf:"format"`
	Prompt bool   `koanf:"prompt"`
}

// Validate checks values that cannot be caught by decoding
func (c *Config) Validate() error {
	invalid := func(key, format string, args ...interface{}) error {
		return errors.Newf(errors.ErrConfigValid, format, args...).WithDetail("key", key)
	}

	if strings.TrimSpace(c.Root) == "" {
		return invalid("root", "root directory must not be empty")
	}
	if c.Anchor == "" || strings.ContainsAny(c.Anchor, `/\`) {
		return invalid("anchor", "anchor must be a single directory name, got %q", c.Anchor)
	}
	if c.Profile == "" && c.RulesFile == "" {
		return invalid("profile", "either a rule profile or a rules file is required")
	}
	if c.Workers < 0 {
		return invalid("workers", "workers must not be negative, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return invalid("timeout", "timeout must not be negative, got %s", c.Timeout)
	}
	if len(c.Extensions) == 0 {
		return invalid("extensions", "at least one image extension is required")
	}
	if c.Scale.Model <= 0 {
		return invalid("scale.model", "model scale must be positive, got %g", c.Scale.Model)
	}
	if c.Scale.NormalMap <= 0 {
		return invalid("scale.normal_map", "normal map scale must be positive, got %g", c.Scale.NormalMap)
	}
	if c.Lint.MaxPatternLength < 0 {
		return invalid("lint.max_pattern_length", "max pattern length must not be negative")
	}
	return nil
}
