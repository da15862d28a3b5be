package update

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrentVersion is the compiled-in release version of this tool.
const CurrentVersion = "4.5.0"

// FrontendVersion pins the frontend package generation this build is
// compatible with; the npm registry is queried for exactly this
// release line.
const FrontendVersion = "1.2.1"

// Version is a dot-separated sequence of non-negative integers,
// compared component-wise rather than lexicographically.
type Version []int

// ParseVersion parses a dot-separated version string.
//
// Every component must be a non-negative integer; anything else
// ("1.0-rc1", "") is an error.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")

	v := make(Version, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid version %q", s)
		}
		v = append(v, n)
	}

	return v, nil
}

// MustParseVersion is ParseVersion for compiled-in constants; it
// panics on a malformed string.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare orders two versions component-wise, zero-padding the
// shorter one. It returns -1, 0 or +1:
//
//	MustParseVersion("2.9").Compare(MustParseVersion("2.10")) // -1
//	MustParseVersion("1.0").Compare(MustParseVersion("1.0.0")) // 0
func (v Version) Compare(other Version) int {
	n := len(v)
	if len(other) > n {
		n = len(other)
	}

	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(v) {
			a = v[i]
		}
		if i < len(other) {
			b = other[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}

	return 0
}

// String renders the version back to dot-separated form.
func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
