package tagcheck

import (
	"strconv"

	"github.com/woozymasta/semver"
)

// Version is a release tag folded into a single comparable integer.
//
// Each component of vMAJOR.MINOR.PATCH is weighted by a power of ten
// (MAJOR*100 + MINOR*10 + PATCH). A component of 10 or more spills into the
// next position, so v1.10.0 and v2.0.0 both encode to 200. The existing tag
// scheme relies on this; OrderingMismatch detects the cases where it differs
// from SemVer precedence.
type Version uint64

// ParseVersion converts "vMAJOR.MINOR.PATCH" into a Version.
// It returns false for any other input, including components that do not
// fit in 32 bits.
func ParseVersion(tag string) (Version, bool) {
	m := tagRe.FindStringSubmatch(tag)
	if m == nil {
		return 0, false
	}

	parts := m[1:]
	var (
		out    Version
		weight Version = 1
	)

	for i := len(parts) - 1; i >= 0; i-- {
		n, err := strconv.ParseUint(parts[i], 10, 32)
		if err != nil {
			return 0, false
		}

		out += Version(n) * weight
		weight *= 10
	}

	return out, true
}

// IsTag reports whether s looks like a release tag (vMAJOR.MINOR.PATCH).
func IsTag(s string) bool {
	return tagRe.MatchString(s)
}

// OrderingMismatch reports whether the positional encoding orders a and b
// differently from SemVer precedence. Both must be release tags; anything
// else reports false.
func OrderingMismatch(a, b string) bool {
	va, okA := ParseVersion(a)
	vb, okB := ParseVersion(b)
	if !okA || !okB {
		return false
	}

	sa, okA := semver.Parse(a)
	sb, okB := semver.Parse(b)
	if !okA || !okB || !sa.IsValid() || !sb.IsValid() {
		return false
	}

	return sign(compareVersion(va, vb)) != sign(sa.Compare(sb))
}

func compareVersion(a, b Version) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
