// Package config loads and persists the tool configuration: one source
// section per dataset side plus output preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// SourceConfig describes where one side's files live. Type selects the
// implementation: "s3" or "local".
type SourceConfig struct {
	Type            string `mapstructure:"type" yaml:"type"`
	Bucket          string `mapstructure:"bucket" yaml:"bucket,omitempty"`
	Region          string `mapstructure:"region" yaml:"region,omitempty"`
	Prefix          string `mapstructure:"prefix" yaml:"prefix,omitempty"`
	AccessKeyID     string `mapstructure:"access_key_id" yaml:"access_key_id,omitempty"`
	SecretAccessKey string `mapstructure:"secret_access_key" yaml:"secret_access_key,omitempty"`
	SessionToken    string `mapstructure:"session_token" yaml:"session_token,omitempty"`
	Dir             string `mapstructure:"dir" yaml:"dir,omitempty"`
}

// Global configuration structure.
type Global struct {
	Metadata SourceConfig `mapstructure:"metadata" yaml:"metadata"`
	Customer SourceConfig `mapstructure:"customer" yaml:"customer"`

	// Output selects the default report rendering: "table" or "json".
	Output string `mapstructure:"output" yaml:"output"`

	// FetchTimeoutSec bounds each byte-source call; the engine itself owns
	// no timeout or cancellation.
	FetchTimeoutSec int `mapstructure:"fetch_timeout_sec" yaml:"fetch_timeout_sec"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.reconcile/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := defaultConfigDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env (RECONCILE_*) > config file > defaults. A .env file in the
// working directory is picked up when present.
func Load(cfgFile string) (*Global, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("RECONCILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("metadata.type", "local")
	v.SetDefault("metadata.dir", ".")
	v.SetDefault("customer.type", "local")
	v.SetDefault("customer.dir", ".")
	v.SetDefault("output", "table")
	v.SetDefault("fetch_timeout_sec", 60)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := defaultConfigDir()
		if err != nil {
			return nil, err
		}
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".reconcile"), nil
}
