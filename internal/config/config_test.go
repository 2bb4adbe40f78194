package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if diff := cmp.Diff([]string{".hpp.in", ".plist.in", ".xml.in"}, cfg.Suffixes); diff != "" {
		t.Errorf("Suffixes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{".git"}, cfg.Exclude); diff != "" {
		t.Errorf("Exclude mismatch (-want +got):\n%s", diff)
	}
	if cfg.Descriptor.JSON != "version.json" {
		t.Errorf("Expected Descriptor.JSON=version.json, got %s", cfg.Descriptor.JSON)
	}
	if cfg.Descriptor.Version != "version" || cfg.Descriptor.DriverVersion != "driver-version" {
		t.Errorf("unexpected flat descriptor names: %+v", cfg.Descriptor)
	}
	if err := NewLoader().Validate(cfg); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".verstamp.yaml", `
suffixes:
  - .h.in
  - .rc.in
descriptor:
  json: meta/version.json
`)

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{".h.in", ".rc.in"}, cfg.Suffixes); diff != "" {
		t.Errorf("Suffixes mismatch (-want +got):\n%s", diff)
	}
	if cfg.Descriptor.JSON != "meta/version.json" {
		t.Errorf("Descriptor.JSON = %q", cfg.Descriptor.JSON)
	}
	// Unset fields come from defaults.
	if cfg.Descriptor.Version != "version" {
		t.Errorf("Descriptor.Version = %q, want default", cfg.Descriptor.Version)
	}
	if diff := cmp.Diff(DefaultExclude(), cfg.Exclude); diff != "" {
		t.Errorf("Exclude mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".verstamp.json", `{"exclude": [".git", "vendor"], "descriptor": {"driver_version": "DRIVER_VERSION"}}`)

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{".git", "vendor"}, cfg.Exclude); diff != "" {
		t.Errorf("Exclude mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.DescriptorNames().DriverVersion; got != "DRIVER_VERSION" {
		t.Errorf("DriverVersion = %q", got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ".verstamp.yaml", "\n")

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("empty file should yield defaults (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errType ConfigErrorType
		field   string
	}{
		{"invalid syntax", "suffixes: [", ConfigInvalid, ""},
		{"unknown field", "suffix: [.h.in]", ConfigInvalid, ""},
		{"suffix without .in", "suffixes: [.hpp]", ConfigValidationFailed, "suffixes"},
		{"bare .in suffix", "suffixes: [.in]", ConfigValidationFailed, "suffixes"},
		{"absolute descriptor", "descriptor: {json: /etc/version.json}", ConfigValidationFailed, "descriptor.json"},
		{"escaping descriptor", "descriptor: {version: ../version}", ConfigValidationFailed, "descriptor.version"},
		{"nested escaping descriptor", "descriptor: {driver_version: meta/../../driver-version}", ConfigValidationFailed, "descriptor.driver_version"},
		{"parent directory descriptor", "descriptor: {json: ..}", ConfigValidationFailed, "descriptor.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), ".verstamp.yaml", tt.content)

			_, err := NewLoader().Load(path)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			cfgErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
			if cfgErr.Type != tt.errType {
				t.Errorf("Type = %v, want %v", cfgErr.Type, tt.errType)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
			if cfgErr.File != path {
				t.Errorf("File = %q, want %q", cfgErr.File, path)
			}
		})
	}
}

func TestLoadDescriptorNamesWithDots(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"double dot in file name", "v..json"},
		{"subdirectory", "meta/version.json"},
		{"leading double dot in file name", "..version.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), ".verstamp.yaml", "descriptor: {json: \""+tt.json+"\"}")

			cfg, err := NewLoader().Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Descriptor.JSON != tt.json {
				t.Errorf("Descriptor.JSON = %q, want %q", cfg.Descriptor.JSON, tt.json)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := NewLoader().LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestResolve(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		cfg, err := Resolve(t.TempDir(), "")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
			t.Errorf("expected defaults (-want +got):\n%s", diff)
		}
	})

	t.Run("yaml preferred over json", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".verstamp.yaml", "suffixes: [.h.in]")
		writeConfig(t, dir, ".verstamp.json", `{"suffixes": [".json.in"]}`)

		cfg, err := Resolve(dir, "")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if diff := cmp.Diff([]string{".h.in"}, cfg.Suffixes); diff != "" {
			t.Errorf("Suffixes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := Resolve(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
		cfgErr, ok := err.(*ConfigError)
		if !ok || cfgErr.Type != ConfigNotFound {
			t.Errorf("expected ConfigNotFound, got %v", err)
		}
	})
}

func TestLoadCommentOnlyFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ".verstamp.yaml", "# nothing configured yet\n")

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("comment-only file should yield defaults (-want +got):\n%s", diff)
	}
}
