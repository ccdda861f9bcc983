// Package config loads engine-wide settings with the standard precedence:
// environment variables override a YAML file, which overrides built-in
// defaults. Values are unmarshaled via koanf and checked with
// go-playground/validator struct tags.
package config

import "time"

// Config is the engine's full runtime configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog" koanf:"catalog"`
	Solver  SolverConfig  `yaml:"solver" koanf:"solver"`
	Output  OutputConfig  `yaml:"output" koanf:"output"`
	Logging LoggingConfig `yaml:"logging" koanf:"logging"`
}

// CatalogConfig points at the talent catalog data to parse.
type CatalogConfig struct {
	// Path is the JSON catalog file to load. It may be empty; the CLI's
	// -catalog flag supplies or overrides it.
	Path string `yaml:"path" koanf:"path"`
}

// SolverConfig bounds the counting/unranking engine's work.
type SolverConfig struct {
	// Timeout is a duration string that Load checks for parseability. The
	// CLI does not apply it to count or generate runs. Empty means unset.
	Timeout string `yaml:"timeout,omitempty" koanf:"timeout"`
	// SampleLimit is the generate limit the CLI uses when -limit is not
	// given (or is not positive).
	SampleLimit int `yaml:"sample_limit" koanf:"sample_limit" validate:"gte=1"`
}

// OutputConfig holds output settings. Load validates them; the CLI does not
// read them and always prints counts as text and builds as JSON.
type OutputConfig struct {
	Format string `yaml:"format" koanf:"format" validate:"omitempty,oneof=json text"`
	Path   string `yaml:"path,omitempty" koanf:"path"`
}

// LoggingConfig holds the log level. Load validates it; the CLI's stdlib
// log output does not filter by it.
type LoggingConfig struct {
	Level string `yaml:"level" koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Timeout parses Solver.Timeout, returning 0 when unset.
func (c *Config) Timeout() (time.Duration, error) {
	if c.Solver.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Solver.Timeout)
}

// Defaults returns a Config with sane built-in values, the lowest-priority
// layer in Load's precedence chain.
func Defaults() Config {
	return Config{
		Solver: SolverConfig{
			SampleLimit: 1000,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
