package descriptor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxComponent is the largest component that packs losslessly in base 100.
const maxComponent = 99

const maxPacked = (math.MaxInt64 - maxComponent) / 100

// Pack encodes a dotted version string as a base-100 integer, left to right.
// "1.23.4" packs to 12304. Every component must be a decimal integer in [0, 99].
func Pack(version string) (int64, error) {
	if version == "" {
		return 0, fmt.Errorf("version is empty")
	}

	var n int64
	for _, part := range strings.Split(version, ".") {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return 0, fmt.Errorf("component %q of %q is not a decimal integer", part, version)
		}
		c, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("component %q of %q: %w", part, version, err)
		}
		if c > maxComponent {
			return 0, fmt.Errorf("component %d of %q exceeds %d", c, version, maxComponent)
		}
		if n > maxPacked {
			return 0, fmt.Errorf("%q has too many components", version)
		}
		n = n*100 + c
	}
	return n, nil
}
