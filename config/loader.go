package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix env.Provider strips before transforming
// TALENTDAG_SOLVER__SAMPLE_LIMIT -> solver.sample_limit.
const EnvPrefix = "TALENTDAG_"

// Load resolves a Config with precedence env > file > Defaults.
// configPath may be empty, in which case only env vars and defaults apply.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")
	cfg := Defaults()

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load file %s: %w", configPath, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	// Decoding onto the pre-populated defaults leaves any key absent from
	// both the file and the environment at its default value: koanf's
	// underlying mapstructure decode only overwrites keys present in k.
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	v := validator.New()
	if err := v.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	if _, err := cfg.Timeout(); err != nil {
		return nil, fmt.Errorf("config: solver.timeout: %w", err)
	}

	return &cfg, nil
}
