package app

import (
	"path/filepath"

	"github.com/pqrs-org/verstamp/internal/config"
	"github.com/pqrs-org/verstamp/internal/debug"
	"github.com/pqrs-org/verstamp/internal/descriptor"
)

// GetOptions contains options for the get workflow.
type GetOptions struct {
	// Root is the repository root holding version.json.
	Root string
	// ConfigPath is an explicit configuration file (optional).
	ConfigPath string
	// Key is the descriptor key to print. Defaults to package_version.
	Key string
}

// Get returns a single value from the JSON descriptor.
func Get(opts GetOptions) (string, error) {
	root := rootOrDefault(opts.Root)
	debug.DebugValue("[app] Get key", opts.Key)

	cfg, err := config.Resolve(root, opts.ConfigPath)
	if err != nil {
		return "", NewAppError(ConfigLoadFailed, "failed to load configuration", err)
	}

	value, err := descriptor.Lookup(filepath.Join(root, cfg.Descriptor.JSON), opts.Key)
	if err != nil {
		return "", NewAppError(DescriptorLoadFailed, "failed to look up version", err)
	}
	return value, nil
}
