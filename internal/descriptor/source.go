package descriptor

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pqrs-org/verstamp/internal/debug"
)

// Default descriptor file names at the repository root.
const (
	DefaultJSONFile          = "version.json"
	DefaultVersionFile       = "version"
	DefaultDriverVersionFile = "driver-version"
)

// Source loads a VersionInfo from a particular descriptor layout.
type Source interface {
	// Name returns a short human-readable description of the source.
	Name() string
	// Load reads and validates the descriptor.
	Load() (*VersionInfo, error)
}

// Names configures the descriptor file names looked up by Detect.
type Names struct {
	JSON          string
	Version       string
	DriverVersion string
}

// DefaultNames returns the conventional descriptor file names.
func DefaultNames() Names {
	return Names{
		JSON:          DefaultJSONFile,
		Version:       DefaultVersionFile,
		DriverVersion: DefaultDriverVersionFile,
	}
}

// Detect selects the descriptor source present under root.
// version.json wins over the flat-file pair.
func Detect(root string, names Names) (Source, error) {
	names = names.withDefaults()

	jsonPath := filepath.Join(root, names.JSON)
	if fileExists(jsonPath) {
		debug.Debug("[descriptor] Using JSON descriptor: %s", jsonPath)
		return &JSONSource{Path: jsonPath}, nil
	}

	versionPath := filepath.Join(root, names.Version)
	driverPath := filepath.Join(root, names.DriverVersion)
	if fileExists(versionPath) && fileExists(driverPath) {
		debug.Debug("[descriptor] Using flat-file descriptor: %s, %s", versionPath, driverPath)
		return &FlatSource{VersionPath: versionPath, DriverVersionPath: driverPath}, nil
	}

	return nil, newDescriptorError(DescriptorNotFound, root,
		fmt.Sprintf("no %s or %s/%s found", names.JSON, names.Version, names.DriverVersion), nil)
}

// Load detects the descriptor under root and loads it.
func Load(root string, names Names) (*VersionInfo, error) {
	src, err := Detect(root, names)
	if err != nil {
		return nil, err
	}
	return src.Load()
}

func (n Names) withDefaults() Names {
	d := DefaultNames()
	if n.JSON == "" {
		n.JSON = d.JSON
	}
	if n.Version == "" {
		n.Version = d.Version
	}
	if n.DriverVersion == "" {
		n.DriverVersion = d.DriverVersion
	}
	return n
}

// JSONSource reads version.json.
type JSONSource struct {
	Path string
}

// Name returns the descriptor path.
func (s *JSONSource) Name() string {
	return s.Path
}

// Load reads package_version, driver_version and client_protocol_version.
// client_protocol_version may be a JSON number or string.
func (s *JSONSource) Load() (*VersionInfo, error) {
	fields, err := readJSONObject(s.Path)
	if err != nil {
		return nil, err
	}

	packageVersion, err := stringField(s.Path, fields, KeyPackageVersion, true)
	if err != nil {
		return nil, err
	}
	driverVersion, err := stringField(s.Path, fields, KeyDriverVersion, true)
	if err != nil {
		return nil, err
	}
	clientProtocolVersion, err := stringField(s.Path, fields, KeyClientProtocolVersion, false)
	if err != nil {
		return nil, err
	}
	if clientProtocolVersion == "" {
		debug.Debug("[descriptor] %s has no %s; %s is left as is",
			s.Path, KeyClientProtocolVersion, TokenClientProtocolVersion)
	}

	info, err := NewVersionInfo(packageVersion, driverVersion, clientProtocolVersion)
	if err != nil {
		return nil, withFile(err, s.Path)
	}
	debug.DebugValue("[descriptor] package_version", info.PackageVersion)
	debug.DebugValue("[descriptor] driver_version", info.DriverVersion)
	debug.DebugValue("[descriptor] client_protocol_version", info.ClientProtocolVersion)
	return info, nil
}

// FlatSource reads the first line of the version and driver-version files.
// It has no client protocol version.
type FlatSource struct {
	VersionPath       string
	DriverVersionPath string
}

// Name returns both descriptor paths.
func (s *FlatSource) Name() string {
	return s.VersionPath + ", " + s.DriverVersionPath
}

// Load reads both flat files.
func (s *FlatSource) Load() (*VersionInfo, error) {
	packageVersion, err := readFirstLine(s.VersionPath)
	if err != nil {
		return nil, err
	}
	driverVersion, err := readFirstLine(s.DriverVersionPath)
	if err != nil {
		return nil, err
	}

	info, err := NewVersionInfo(packageVersion, driverVersion, "")
	if err != nil {
		if descErr, ok := err.(*DescriptorError); ok && descErr.Field == KeyDriverVersion {
			return nil, withFile(err, s.DriverVersionPath)
		}
		return nil, withFile(err, s.VersionPath)
	}
	debug.DebugValue("[descriptor] version", info.PackageVersion)
	debug.DebugValue("[descriptor] driver-version", info.DriverVersion)
	return info, nil
}

func readJSONObject(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newDescriptorError(DescriptorNotFound, path, "descriptor file not found", err)
		}
		return nil, newDescriptorError(DescriptorInvalid, path, "failed to read descriptor file", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, newDescriptorError(DescriptorInvalid, path, "invalid JSON syntax", err)
	}
	if fields == nil {
		return nil, newDescriptorError(DescriptorInvalid, path, "descriptor must be a JSON object", nil)
	}
	return fields, nil
}

// stringField returns a string or number field as text.
func stringField(path string, fields map[string]json.RawMessage, key string, required bool) (string, error) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		if required {
			return "", newFieldError(KeyNotFound, path, key, "required key is missing", nil)
		}
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var num json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&num); err == nil {
		return num.String(), nil
	}

	return "", newFieldError(DescriptorInvalid, path, key, "value must be a string or number", nil)
}

func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", newDescriptorError(DescriptorNotFound, path, "descriptor file not found", err)
		}
		return "", newDescriptorError(DescriptorInvalid, path, "failed to open descriptor file", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", newDescriptorError(DescriptorInvalid, path, "failed to read descriptor file", err)
		}
		return "", newDescriptorError(MalformedVersion, path, "descriptor file is empty", nil)
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// withFile attaches the descriptor path to an error raised before it was known.
func withFile(err error, path string) error {
	if descErr, ok := err.(*DescriptorError); ok && descErr.File == "" {
		descErr.File = path
	}
	return err
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
