package descriptor

import (
	"bytes"
	"encoding/json"
)

// DefaultLookupKey is the key printed when none is given.
const DefaultLookupKey = KeyPackageVersion

// Lookup returns the value stored under key in the JSON descriptor at path.
// Strings are returned verbatim and numbers in their JSON text form; any
// other value is returned as compact JSON.
func Lookup(path, key string) (string, error) {
	if key == "" {
		key = DefaultLookupKey
	}

	fields, err := readJSONObject(path)
	if err != nil {
		return "", err
	}

	raw, ok := fields[key]
	if !ok {
		return "", newFieldError(KeyNotFound, path, key, "key not found", nil)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var out bytes.Buffer
	if err := json.Compact(&out, raw); err != nil {
		return "", newFieldError(DescriptorInvalid, path, key, "failed to format value", err)
	}
	return out.String(), nil
}
