package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagRoot    = "root"
	FlagConfig  = "config"
	FlagDryRun  = "dry-run"
	FlagVerbose = "verbose"
	FlagForce   = "force"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"

	// Flag descriptions
	DescRoot    = "Repository root holding the descriptor and templates"
	DescConfig  = "Path to config file (default: .verstamp.yaml under the root)"
	DescDryRun  = "Show which outputs would change without writing them"
	DescVerbose = "Verbose output"
	DescForce   = "Overwrite an existing descriptor"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
)

// ValidateRoot checks that the root is an existing directory.
func ValidateRoot(path string) error {
	if path == "" {
		return fmt.Errorf("root cannot be empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("invalid root %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", path)
	}
	return nil
}

// normalizeFlagName accepts underscores in flag names, so the descriptor key
// spelling (--package_version) works as well as --package-version.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
