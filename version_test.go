package tagcheck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag  string
		want Version
		ok   bool
	}{
		{"v1.2.3", 123, true},
		{"v0.9.0", 90, true},
		{"v1.0.0", 100, true},
		{"v0.0.0", 0, true},
		{"v12.0.0", 1200, true},

		// positional aliasing is kept as is
		{"v1.10.0", 200, true},
		{"v2.0.0", 200, true},

		{"1.2.3", 0, false},
		{"V1.2.3", 0, false},
		{"v1.2", 0, false},
		{"v1.2.3.4", 0, false},
		{"v1.2.3-rc.1", 0, false},
		{"v1.2.3+build", 0, false},
		{" v1.2.3", 0, false},
		{"", 0, false},
		{"main", 0, false},
		{"v99999999999.0.0", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseVersion(tc.tag)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseVersion(%q) = %d, %v; want %d, %v", tc.tag, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseVersion_SingleDigits(t *testing.T) {
	t.Parallel()

	for a := 0; a < 10; a++ {
		for b := 0; b < 10; b++ {
			for c := 0; c < 10; c++ {
				tag := fmt.Sprintf("v%d.%d.%d", a, b, c)
				got, ok := ParseVersion(tag)
				if !ok || got != Version(a*100+b*10+c) {
					t.Fatalf("ParseVersion(%q) = %d, %v", tag, got, ok)
				}
			}
		}
	}
}

func TestIsTag(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTag("v1.0.0"))
	assert.True(t, IsTag("v10.20.30"))
	assert.False(t, IsTag("v1.0"))
	assert.False(t, IsTag("feature/v1.0.0"))
	assert.False(t, IsTag("v1.0.0/build.yml"))
}

func TestOrderingMismatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want bool
	}{
		{"v1.2.0", "v1.1.0", false},
		{"v1.0.0", "v1.0.0", false},
		{"v1.10.0", "v1.9.0", false},
		{"v1.10.0", "v2.0.0", true},
		{"v0.10.0", "v1.0.0", true},
		{"v1.0.10", "v1.1.0", true},
		{"main", "v1.0.0", false},
		{"v1.0.0", "1.0.0", false},
	}

	for _, tc := range cases {
		if got := OrderingMismatch(tc.a, tc.b); got != tc.want {
			t.Fatalf("OrderingMismatch(%q, %q) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
