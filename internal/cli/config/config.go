package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the finfield configuration
type Config struct {
	Registry RegistryConfig `mapstructure:"registry"`
	Decoder  DecoderConfig  `mapstructure:"decoder"`
	Output   OutputConfig   `mapstructure:"output"`
}

// RegistryConfig selects the field definition table
type RegistryConfig struct {
	File string `mapstructure:"file"` // empty selects the built-in table
}

// DecoderConfig tunes field decoding
type DecoderConfig struct {
	MatchTimeout   time.Duration `mapstructure:"match_timeout"`
	StrictCharsets bool          `mapstructure:"strict_charsets"`
	Workers        int           `mapstructure:"workers"`
}

// OutputConfig controls terminal output
type OutputConfig struct {
	Color bool `mapstructure:"color"`
}

// Load reads finfield.yml or finfield.yaml from the working directory, or
// the file at path when it is not empty. FINFIELD_* environment variables
// override file values, e.g. FINFIELD_DECODER_WORKERS.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("registry.file", "")
	v.SetDefault("decoder.match_timeout", time.Second)
	v.SetDefault("decoder.strict_charsets", false)
	v.SetDefault("decoder.workers", 4)
	v.SetDefault("output.color", true)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("finfield")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FINFIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Decoder.MatchTimeout <= 0 {
		return fmt.Errorf("decoder.match_timeout must be positive, got: %s", cfg.Decoder.MatchTimeout)
	}
	if cfg.Decoder.Workers < 1 {
		return fmt.Errorf("decoder.workers must be at least 1, got: %d", cfg.Decoder.Workers)
	}
	return nil
}
