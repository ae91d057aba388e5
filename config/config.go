// Package config loads the bindgen run configuration from defaults, an
// optional bindgen.toml, environment variables, and command-line flags, in
// increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/roc-streaming/bindgen/errors"
)

// Relative location of the Doxygen XML export inside a toolkit checkout.
const doxygenSubdir = "build/docs/public_api/xml"

// Config holds one generation run's settings.
type Config struct {
	// Target selects which bindings to generate: "go", "java", or "all".
	Target string `mapstructure:"target"`

	// ToolkitDir is the roc-toolkit checkout to read docs and git
	// metadata from.
	ToolkitDir string `mapstructure:"toolkit_dir"`

	// DoxygenDir overrides the XML export location; when empty it is
	// derived from ToolkitDir.
	DoxygenDir string `mapstructure:"doxygen_dir"`

	// GoOutputDir is the roc-go checkout to write into.
	GoOutputDir string `mapstructure:"go_output_dir"`

	// JavaOutputDir is the roc-java checkout to write into.
	JavaOutputDir string `mapstructure:"java_output_dir"`
}

// SetDefaults configures default values for all options. The defaults
// assume the sibling-checkout layout used by the binding repos.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("target", "all")
	v.SetDefault("toolkit_dir", "../roc-toolkit")
	v.SetDefault("doxygen_dir", "")
	v.SetDefault("go_output_dir", "../roc-go")
	v.SetDefault("java_output_dir", "../roc-java")
}

// Load reads the configuration from defaults, bindgen.toml (if present in
// the working directory), and BINDGEN_* environment variables.
func Load() (*Config, error) {
	v, err := NewViper()
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// NewViper builds the configured Viper instance without unmarshaling,
// so callers can bind flags before loading.
func NewViper() (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix("BINDGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Missing file is fine, a broken one is not: silently falling back to
	// defaults would steer output into the wrong checkouts.
	if path := findConfigFile(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	return v, nil
}

// LoadWithViper unmarshals the configuration from a prepared Viper
// instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	switch cfg.Target {
	case "go", "java", "all":
	default:
		return nil, errors.Newf("invalid target %q (expected go, java, or all)",
			cfg.Target)
	}

	return &cfg, nil
}

// ResolveDoxygenDir returns the effective XML export directory.
func (c *Config) ResolveDoxygenDir() string {
	if c.DoxygenDir != "" {
		return c.DoxygenDir
	}
	return filepath.Join(c.ToolkitDir, doxygenSubdir)
}

// WantGo reports whether the run generates Go bindings.
func (c *Config) WantGo() bool {
	return c.Target == "go" || c.Target == "all"
}

// WantJava reports whether the run generates Java bindings.
func (c *Config) WantJava() bool {
	return c.Target == "java" || c.Target == "all"
}

func findConfigFile() string {
	path := "bindgen.toml"
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
