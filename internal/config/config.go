package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/naming"
)

// Config is the top-level configuration for regs
type Config struct {
	// Naming overrides naming patterns inline. Keys left out keep their
	// defaults.
	Naming *naming.Settings `json:"naming,omitempty" yaml:"naming,omitempty"`

	// NamingFile points at a separate naming settings file, relative to the
	// config file. It wins over Naming.
	NamingFile string `json:"namingFile,omitempty" yaml:"namingFile,omitempty"`

	// Output controls what generate writes
	Output OutputConfig `json:"output" yaml:"output"`

	// dir is the directory the config was loaded from
	dir string
}

// OutputConfig contains output options
type OutputConfig struct {
	// Format is "json" or "yaml"
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Dir is where generated models are written (relative to the config file
	// if not absolute). Empty means stdout.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// Validate checks source documents against the schema before building
	Validate *bool `json:"validate,omitempty" yaml:"validate,omitempty"`
}

// Formats lists the supported output formats
var Formats = []string{"json", "yaml"}

// DefaultConfig returns the configuration used when no file is found
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:   "json",
			Validate: boolPtr(true),
		},
	}
}

func boolPtr(v bool) *bool {
	return &v
}

// Load finds and loads the configuration file
// Search order:
//  1. ./regs.json, ./.regs.json, ./regs.yaml (current working directory)
//  2. <rootPath>/regs.json, <rootPath>/.regs.json, <rootPath>/regs.yaml
//  3. ~/.config/regs/config.json
//
// Returns DefaultConfig if no config file is found
func Load(rootPath string) (*Config, error) {
	cwd, _ := os.Getwd()

	names := []string{"regs.json", ".regs.json", "regs.yaml"}
	var searchPaths []string
	for _, n := range names {
		searchPaths = append(searchPaths, filepath.Join(cwd, n))
	}

	if info, err := os.Stat(rootPath); err == nil && info.IsDir() {
		absRoot, _ := filepath.Abs(rootPath)
		if absRoot != cwd {
			for _, n := range names {
				searchPaths = append(searchPaths, filepath.Join(rootPath, n))
			}
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, ".config", "regs", "config.json"))
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	cfg := DefaultConfig()
	cfg.dir = cwd
	return cfg, nil
}

// LoadFile loads configuration from a specific JSON or YAML file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if isYAML(path) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	cfg.dir = filepath.Dir(path)
	return &cfg, nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "json"
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
	if c.Output.Validate == nil {
		c.Output.Validate = boolPtr(true)
	}
}

// Validate reports configuration values that cannot work
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("config: output format %q is not one of %s", c.Output.Format, strings.Join(Formats, ", "))
	}
	if c.Naming != nil && c.NamingFile == "" {
		if err := c.Naming.Validate(); err != nil {
			return fmt.Errorf("config: inline naming: %w", err)
		}
	}
	return nil
}

// Save writes the configuration to a file, as YAML for .yaml/.yml paths
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// NamingSettings returns the naming settings in effect: the naming file if
// one is configured, else the inline overrides on top of the defaults.
func (c *Config) NamingSettings() (*naming.Settings, error) {
	if c.NamingFile != "" {
		s, err := naming.LoadFile(c.Resolve(c.NamingFile))
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return s, nil
	}

	s := naming.DefaultSettings()
	if c.Naming != nil {
		for k, v := range c.Naming.Names {
			s.Names[k] = v
		}
		for k, v := range c.Naming.Descriptions {
			s.Descriptions[k] = v
		}
	}
	return s, nil
}

// Resolve makes path relative to the config file's directory unless it is
// absolute.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

// ValidateSources reports whether source documents are schema-checked
func (c *Config) ValidateSources() bool {
	return c.Output.Validate == nil || *c.Output.Validate
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
