package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"

	"optbind/internal/gen"
)

// Config holds the settings of one optbind run.
type Config struct {
	// Types names the contracts to generate. Empty selects every interface
	// marked //optbind:contract.
	Types []string `yaml:"types,omitempty"`
	// Packages are the package patterns to load.
	Packages []string `yaml:"packages,omitempty"`
	// Suffix is appended to generated file names.
	Suffix string `yaml:"suffix,omitempty"`
	// BindImport is the import path of the bind runtime.
	BindImport string `yaml:"bindImport,omitempty"`
	// DryRun prints generated code instead of writing it.
	DryRun bool `yaml:"dryRun,omitempty"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

// env lists the settings read from the environment. Values that fail to
// parse are errors.
type env struct {
	Types      string `env:"OPTBIND_TYPES,strict"`
	Suffix     string `env:"OPTBIND_SUFFIX,strict"`
	BindImport string `env:"OPTBIND_BIND_IMPORT,strict"`
	Verbose    bool   `env:"OPTBIND_VERBOSE,strict"`
}

// Load reads the YAML file at path (skipped when path is empty), applies the
// environment, and fills in defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func applyEnv(cfg *Config) error {
	var e env

	err := envdecode.Decode(&e)
	if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	if e.Types != "" {
		cfg.Types = SplitList(e.Types)
	}

	if e.Suffix != "" {
		cfg.Suffix = e.Suffix
	}

	if e.BindImport != "" {
		cfg.BindImport = e.BindImport
	}

	if e.Verbose {
		cfg.Verbose = true
	}

	return nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Suffix == "" {
		cfg.Suffix = gen.DefaultSuffix
	}

	if cfg.BindImport == "" {
		cfg.BindImport = gen.DefaultBindImport
	}

	if len(cfg.Packages) == 0 {
		cfg.Packages = []string{"."}
	}
}

// SplitList splits a comma-separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// GeneratorConfig returns the generator settings of the run.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		Suffix:           c.Suffix,
		BindImport:       c.BindImport,
		DebugUnformatted: true,
	}
}
