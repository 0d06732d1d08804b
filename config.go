package vecstream

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for the Assigner.
//
// The matching algorithm itself is not configurable: its per-host load
// target is derived from the input (ceil of partitions over hosts). Config
// only covers the surrounding concerns of verification and plan reuse.
type Config struct {
	// MaxRemoteFraction bounds the fraction of affinity-bearing partitions
	// that placement verification may find on an endpoint outside their
	// affinity set. When the final plan exceeds it, Assign fails with
	// ErrRemoteFractionExceeded.
	//
	// 0 disables escalation: the remote count is still computed and logged,
	// but never fails the run. Valid range: [0, 1].
	MaxRemoteFraction float64 `yaml:"maxRemoteFraction"`

	// EnablePlanCache reuses the computed plan when the same affinity lists
	// are assigned again against the same roster. Re-submitting an identical
	// batch job then skips the matcher entirely. Cache hits return a deep
	// copy; the cache is unbounded and lives for the Assigner's lifetime.
	EnablePlanCache bool `yaml:"enablePlanCache"`
}

// DefaultConfig returns a Config with production defaults: verification is
// advisory only and the plan cache is off.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		MaxRemoteFraction: 0,
		EnablePlanCache:   false,
	}
}

// LoadConfig reads a Config from a YAML file.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - Config: Parsed configuration
//   - error: Read or parse error, or a validation error
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks configuration constraints.
//
// Returns:
//   - error: ErrInvalidConfig with an explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MaxRemoteFraction < 0 || cfg.MaxRemoteFraction > 1 {
		return fmt.Errorf("%w: MaxRemoteFraction must be in [0, 1], got %v",
			ErrInvalidConfig, cfg.MaxRemoteFraction)
	}

	return nil
}
