package cli

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pqrs-org/verstamp/internal/descriptor"
)

// askOne is replaced in tests.
var askOne = survey.AskOne

// versionValues are the values written by init.
type versionValues struct {
	PackageVersion        string
	DriverVersion         string
	ClientProtocolVersion string
}

// promptForVersions interactively asks for every value not already set.
// The client protocol version is only asked for when the dotted versions
// were prompted too, since it is optional.
func promptForVersions(v versionValues) (versionValues, error) {
	prompted := false

	if v.PackageVersion == "" {
		value, err := promptDotted("package_version", "Package version, e.g. 1.2.3")
		if err != nil {
			return v, fmt.Errorf("failed to prompt for package_version: %w", err)
		}
		v.PackageVersion = value
		prompted = true
	}

	if v.DriverVersion == "" {
		value, err := promptDotted("driver_version", "Driver version, e.g. 1.0.0")
		if err != nil {
			return v, fmt.Errorf("failed to prompt for driver_version: %w", err)
		}
		v.DriverVersion = value
		prompted = true
	}

	if prompted && v.ClientProtocolVersion == "" {
		value, err := promptProtocol()
		if err != nil {
			return v, fmt.Errorf("failed to prompt for client_protocol_version: %w", err)
		}
		v.ClientProtocolVersion = value
	}

	return v, nil
}

// promptDotted prompts for a dotted version that packs in base 100.
func promptDotted(name, help string) (string, error) {
	var result string

	prompt := &survey.Input{
		Message: name + " (required)",
		Help:    help + ". Each component must be between 0 and 99.",
	}

	if err := askOne(prompt, &result, survey.WithValidator(survey.ComposeValidators(survey.Required, dottedValidator))); err != nil {
		return "", err
	}
	return result, nil
}

// promptProtocol prompts for the optional integer client protocol version.
func promptProtocol() (string, error) {
	var result string

	prompt := &survey.Input{
		Message: "client_protocol_version",
		Help:    "Integer protocol version substituted for @CLIENT_PROTOCOL_VERSION@. Leave empty to omit.",
	}

	if err := askOne(prompt, &result, survey.WithValidator(protocolValidator)); err != nil {
		return "", err
	}
	return result, nil
}

func dottedValidator(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	if _, err := descriptor.Pack(str); err != nil {
		return err
	}
	return nil
}

func protocolValidator(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	if str == "" {
		return nil
	}
	if _, err := strconv.Atoi(str); err != nil {
		return fmt.Errorf("must be an integer")
	}
	return nil
}
