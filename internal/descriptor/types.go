// Package descriptor loads the version descriptor that drives template
// rendering. A descriptor is either a single version.json or the legacy
// pair of flat files (version, driver-version).
package descriptor

import "strconv"

// Placeholder tokens recognized in template text.
const (
	TokenVersion               = "@VERSION@"
	TokenVersionNumber         = "@VERSION_NUMBER@"
	TokenDriverVersion         = "@DRIVER_VERSION@"
	TokenDriverVersionNumber   = "@DRIVER_VERSION_NUMBER@"
	TokenClientProtocolVersion = "@CLIENT_PROTOCOL_VERSION@"
)

// JSON keys of version.json.
const (
	KeyPackageVersion        = "package_version"
	KeyDriverVersion         = "driver_version"
	KeyClientProtocolVersion = "client_protocol_version"
)

// VersionInfo holds the version values substituted into templates.
// Values are immutable once loaded.
type VersionInfo struct {
	// PackageVersion is the dotted package version, e.g. "1.23.4".
	PackageVersion string `json:"package_version"`
	// DriverVersion is the dotted driver version.
	DriverVersion string `json:"driver_version"`
	// ClientProtocolVersion is empty when the source does not provide one.
	ClientProtocolVersion string `json:"client_protocol_version,omitempty"`

	packageVersionNumber int64
	driverVersionNumber  int64
}

// NewVersionInfo validates the dotted versions and computes the packed numbers.
func NewVersionInfo(packageVersion, driverVersion, clientProtocolVersion string) (*VersionInfo, error) {
	pvn, err := Pack(packageVersion)
	if err != nil {
		return nil, newFieldError(MalformedVersion, "", KeyPackageVersion, "invalid package version", err)
	}
	dvn, err := Pack(driverVersion)
	if err != nil {
		return nil, newFieldError(MalformedVersion, "", KeyDriverVersion, "invalid driver version", err)
	}
	return &VersionInfo{
		PackageVersion:        packageVersion,
		DriverVersion:         driverVersion,
		ClientProtocolVersion: clientProtocolVersion,
		packageVersionNumber:  pvn,
		driverVersionNumber:   dvn,
	}, nil
}

// PackageVersionNumber returns the base-100 packed package version.
func (v *VersionInfo) PackageVersionNumber() int64 {
	return v.packageVersionNumber
}

// DriverVersionNumber returns the base-100 packed driver version.
func (v *VersionInfo) DriverVersionNumber() int64 {
	return v.driverVersionNumber
}

// Replacement is a single literal token substitution.
type Replacement struct {
	Token string
	Value string
}

// Replacements returns the substitutions in the order they must be applied.
// The client protocol token is left untouched when no value is known.
func (v *VersionInfo) Replacements() []Replacement {
	reps := []Replacement{
		{Token: TokenVersion, Value: v.PackageVersion},
		{Token: TokenVersionNumber, Value: strconv.FormatInt(v.packageVersionNumber, 10)},
		{Token: TokenDriverVersion, Value: v.DriverVersion},
		{Token: TokenDriverVersionNumber, Value: strconv.FormatInt(v.driverVersionNumber, 10)},
	}
	if v.ClientProtocolVersion != "" {
		reps = append(reps, Replacement{Token: TokenClientProtocolVersion, Value: v.ClientProtocolVersion})
	}
	return reps
}
