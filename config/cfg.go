package config

import (
	"bytes"
	_ "embed"
	"fmt"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"sassext/common"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	ExtendConfig struct {
		Mode common.ExtendMode `yaml:"mode"`
		// TrimLimit caps the number of generated selectors per original
		// selector that are checked against each other for redundancy.
		TrimLimit         int  `yaml:"trim_limit" validate:"gte=0"`
		StripPlaceholders bool `yaml:"strip_placeholders"`
		CheckMedia        bool `yaml:"check_media"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Extend  ExtendConfig  `yaml:"extend"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

func checkConfig(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if !cfg.Extend.Mode.IsValid() {
		sl.ReportError(cfg.Extend.Mode, "Mode", "mode", "extend_mode", "")
	}
}

func validate(cfg *Config) (*Config, error) {
	if err := gencfg.Sanitize(cfg); err != nil {
		return nil, err
	}
	// struct level checks are registered by type, pass a value
	if err := gencfg.Validate(*cfg, gencfg.WithAdditionalChecks(checkConfig)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	return validate(cfg)
}

// Parse superimposes data on top of the built-in configuration to provide
// sane defaults and performs validation. Loading data from wherever it lives
// is up to the caller.
func Parse(data []byte) (*Config, error) {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if cfg, err = unmarshalConfig(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration: %w", err)
		}
	}
	return validate(cfg)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
