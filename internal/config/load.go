package config

import (
	"fmt"
	"strings"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigFileKey is the viper key holding the optional YAML config path.
const ConfigFileKey = "config"

// NewViper returns a viper instance reading KAFKA_TOPOLOGY_* environment
// variables and, when flags is non-nil, bound to those flags.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(strings.ToLower(EnvPrefix))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}
	return v, nil
}

// Load reads the configuration from v. Precedence, highest first: flags the
// user set, environment variables, the YAML file named by the "config" key,
// flag defaults, then Defaults.
func Load(v *viper.Viper) (*Config, error) {
	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := ApplyDefaults(&cfg); err != nil {
		return nil, err
	}

	for i, host := range cfg.Brokers {
		cfg.Brokers[i] = strings.TrimSpace(host)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills every zero-valued field of cfg from Defaults.
func ApplyDefaults(cfg *Config) error {
	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return fmt.Errorf("failed to apply config defaults: %w", err)
	}
	return nil
}
