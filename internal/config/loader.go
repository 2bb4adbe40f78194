package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pqrs-org/verstamp/internal/debug"
	"github.com/pqrs-org/verstamp/internal/render"
	"gopkg.in/yaml.v3"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements Loader for YAML and JSON files.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path. JSON files are
// accepted as YAML. Missing fields are filled from DefaultConfig.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid configuration syntax", err)
	}

	mergeConfig(&cfg, DefaultConfig())
	if err := l.Validate(&cfg); err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.File = path
		}
		return nil, err
	}

	debug.Debug("[config] Loaded configuration: %s", path)
	debug.DebugJSON("[config] Config", cfg)
	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			debug.Debug("[config] No configuration at %s, using defaults", path)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	for _, suffix := range config.Suffixes {
		if !strings.HasSuffix(suffix, render.TemplateSuffix) || len(suffix) <= len(render.TemplateSuffix) {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "suffixes",
				fmt.Sprintf("suffix %q must end with %q and name an output extension", suffix, render.TemplateSuffix))
		}
	}
	for _, pattern := range config.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "exclude",
				fmt.Sprintf("invalid pattern %q", pattern))
		}
	}

	names := map[string]string{
		"descriptor.json":           config.Descriptor.JSON,
		"descriptor.version":        config.Descriptor.Version,
		"descriptor.driver_version": config.Descriptor.DriverVersion,
	}
	for field, name := range names {
		if name == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, "", field, "file name cannot be empty")
		}
		if filepath.IsAbs(name) || escapesRoot(name) {
			return NewConfigErrorWithField(ConfigValidationFailed, "", field,
				"file name must be relative to the root without '..'")
		}
	}
	return nil
}

// escapesRoot reports whether a relative name leaves the root directory.
func escapesRoot(name string) bool {
	clean := filepath.ToSlash(filepath.Clean(name))
	return clean == ".." || strings.HasPrefix(clean, "../")
}

// Resolve loads the configuration for root. An explicit path must exist;
// otherwise the first of DefaultConfigFiles present under root is used,
// falling back to defaults.
func Resolve(root, explicit string) (*Config, error) {
	loader := NewLoader()
	if explicit != "" {
		return loader.Load(explicit)
	}
	for _, name := range DefaultConfigFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return loader.Load(path)
		}
	}
	return DefaultConfig(), nil
}

// mergeConfig merges missing fields from defaults into cfg.
func mergeConfig(cfg, defaults *Config) {
	if len(cfg.Suffixes) == 0 {
		cfg.Suffixes = defaults.Suffixes
	}
	if cfg.Exclude == nil {
		cfg.Exclude = defaults.Exclude
	}
	if cfg.Descriptor.JSON == "" {
		cfg.Descriptor.JSON = defaults.Descriptor.JSON
	}
	if cfg.Descriptor.Version == "" {
		cfg.Descriptor.Version = defaults.Descriptor.Version
	}
	if cfg.Descriptor.DriverVersion == "" {
		cfg.Descriptor.DriverVersion = defaults.Descriptor.DriverVersion
	}
}
