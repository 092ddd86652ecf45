package tagcheck

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T, current string) *Validator {
	t.Helper()

	cfg, err := NewConfig(DefaultOrigin, current, "/")
	require.NoError(t, err)

	return NewValidator(cfg, existsIn(), nil)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		url        string
		current    string
		wantRev    string
		wantPassed []string
		wantFailed []string
	}{
		{
			name:       "newer tag",
			url:        DefaultOrigin + "v1.0.0/build.yaml",
			current:    "v0.9.0",
			wantRev:    "v1.0.0",
			wantPassed: []string{CheckOrigin, CheckTagPattern, CheckNextVersion},
			wantFailed: []string{},
		},
		{
			name:       "same tag",
			url:        DefaultOrigin + "v1.0.0/build.yaml",
			current:    "v1.0.0",
			wantRev:    "v1.0.0",
			wantPassed: []string{CheckOrigin, CheckTagPattern},
			wantFailed: []string{CheckNextVersion},
		},
		{
			name:       "older tag",
			url:        DefaultOrigin + "v0.8.9/build.yaml",
			current:    "v0.9.0",
			wantRev:    "v0.8.9",
			wantPassed: []string{CheckOrigin, CheckTagPattern},
			wantFailed: []string{CheckNextVersion},
		},
		{
			name:       "branch",
			url:        DefaultOrigin + "master/build.yaml",
			current:    "v0.9.0",
			wantRev:    "master",
			wantPassed: []string{CheckOrigin},
			wantFailed: []string{CheckTagPattern},
		},
		{
			name:       "foreign origin",
			url:        "https://gitlab.com/group/templates/v1.0.0/build.yaml",
			current:    "v0.9.0",
			wantRev:    "https://gitlab.com/group/templates/v1.0.0",
			wantPassed: []string{},
			wantFailed: []string{CheckOrigin, CheckTagPattern},
		},
		{
			name:       "component too large",
			url:        DefaultOrigin + "v99999999999.0.0/build.yaml",
			current:    "v0.9.0",
			wantRev:    "v99999999999.0.0",
			wantPassed: []string{CheckOrigin},
			wantFailed: []string{CheckTagPattern},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := newTestValidator(t, tc.current)
			res := NewResults()

			rev := v.Validate(tc.url, res)
			assert.Equal(t, tc.wantRev, rev)
			assert.Equal(t, tc.wantPassed, res.Passed)
			assert.Equal(t, tc.wantFailed, res.Failed)
		})
	}
}

func TestValidate_NextVersionSkippedWithoutTag(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t, "v0.1.0")
	res := NewResults()
	v.Validate(DefaultOrigin+"feature/x/build.yaml", res)

	_, evaluated := res.Outcome(CheckNextVersion)
	assert.False(t, evaluated)
}

func TestValidate_Accumulates(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t, "v0.9.0")
	res := NewResults()
	res.Pass("CUSTOM")

	v.Validate(DefaultOrigin+"v1.0.0/build.yaml", res)

	assert.Equal(t, []string{"CUSTOM", CheckOrigin, CheckTagPattern, CheckNextVersion}, res.Passed)
	assert.Empty(t, res.Failed)
}

func TestValidate_WarnsOnEncodingMismatch(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(DefaultOrigin, "v2.0.0", "/")
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})
	v := NewValidator(cfg, existsIn(), logger)

	res := NewResults()
	v.Validate(DefaultOrigin+"v1.10.0/build.yaml", res)

	// v1.10.0 and v2.0.0 both encode to 200
	passed, evaluated := res.Outcome(CheckNextVersion)
	assert.True(t, evaluated)
	assert.False(t, passed)
	assert.Contains(t, buf.String(), "version encoding disagrees with semver order")
}
