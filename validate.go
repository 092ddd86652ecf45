package tagcheck

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Validator checks remote template links against a Config.
type Validator struct {
	exists FileExists
	log    *log.Logger
	cfg    Config
}

// NewValidator returns a Validator. exists resolves revision boundaries,
// see ExtractRevision.
func NewValidator(cfg Config, exists FileExists, logger *log.Logger) *Validator {
	return &Validator{
		cfg:    cfg,
		exists: exists,
		log:    orDiscard(logger),
	}
}

// Validate runs the ORIGIN, TAG_REGEX_PATTERN and NEXT_VERSION checks for
// url, accumulating outcomes into res. NEXT_VERSION is neither passed nor
// failed when the revision is not a release tag. The extracted revision is
// returned.
func (v *Validator) Validate(url string, res *Results) string {
	res.Record(CheckOrigin, strings.HasPrefix(url, v.cfg.Origin))

	rev := ExtractRevision(url, v.cfg.Origin, v.exists)
	v.log.Debug("extracted revision", "url", url, "revision", rev)

	if !IsTag(rev) {
		res.Fail(CheckTagPattern)
		v.log.Debug("revision is not a release tag", "revision", rev)
		return rev
	}

	ver, ok := ParseVersion(rev)
	if !ok {
		res.Fail(CheckTagPattern)
		v.log.Debug("release tag out of range", "revision", rev)
		return rev
	}
	res.Pass(CheckTagPattern)

	next := ver > v.cfg.Current
	res.Record(CheckNextVersion, next)
	v.log.Debug("compared versions",
		"revision", rev, "version", uint64(ver),
		"current", v.cfg.CurrentTag, "current_version", uint64(v.cfg.Current),
		"newer", next)

	if OrderingMismatch(rev, v.cfg.CurrentTag) {
		v.log.Warn("version encoding disagrees with semver order",
			"revision", rev, "current", v.cfg.CurrentTag)
	}

	return rev
}
