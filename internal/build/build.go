// Package build provides build-time information for the verstamp binary.
// The version is read from the embedded VERSION file unless set via ldflags.
package build

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// version can be overridden via ldflags:
// -X github.com/pqrs-org/verstamp/internal/build.version=x.y.z
var version string

// Version returns the verstamp version.
// Priority: ldflags > embedded VERSION file
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}
