package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pqrs-org/verstamp/internal/config"
	"github.com/pqrs-org/verstamp/internal/debug"
	"github.com/pqrs-org/verstamp/internal/descriptor"
)

// InitOptions contains options for descriptor initialization.
type InitOptions struct {
	// Root is the repository root where version.json is created.
	Root string
	// ConfigPath is an explicit configuration file (optional).
	ConfigPath string
	// PackageVersion is the dotted package version.
	PackageVersion string
	// DriverVersion is the dotted driver version.
	DriverVersion string
	// ClientProtocolVersion is optional; integers are stored as JSON numbers.
	ClientProtocolVersion string
	// Force overwrites an existing descriptor.
	Force bool
}

// InitDescriptor writes a new JSON descriptor and returns its path.
func InitDescriptor(opts InitOptions) (string, error) {
	root := rootOrDefault(opts.Root)
	debug.DebugSection("[app] Init workflow start")

	info, err := descriptor.NewVersionInfo(opts.PackageVersion, opts.DriverVersion, opts.ClientProtocolVersion)
	if err != nil {
		return "", NewValidationError("invalid version", err)
	}

	cfg, err := config.Resolve(root, opts.ConfigPath)
	if err != nil {
		return "", NewAppError(ConfigLoadFailed, "failed to load configuration", err)
	}
	path := filepath.Join(root, cfg.Descriptor.JSON)

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return "", NewInitError(path+" already exists (use --force to overwrite)", nil)
	}

	doc := map[string]interface{}{
		descriptor.KeyPackageVersion: info.PackageVersion,
		descriptor.KeyDriverVersion:  info.DriverVersion,
	}
	if cpv := info.ClientProtocolVersion; cpv != "" {
		if n, err := strconv.ParseInt(cpv, 10, 64); err == nil {
			doc[descriptor.KeyClientProtocolVersion] = n
		} else {
			doc[descriptor.KeyClientProtocolVersion] = cpv
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", NewInitError("failed to marshal descriptor", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", NewInitError("failed to create descriptor directory", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", NewInitError("failed to write "+path, err)
	}

	debug.Debug("[app] Wrote descriptor: %s", path)
	return path, nil
}
