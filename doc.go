/*
Package tagcheck checks that CI pipeline templates reference one consistent,
newer release of a shared template repository.

The package scans a directory for YAML templates and collects every remote
include:

	include:
	  - remote: https://raw.githubusercontent.com/jobtome-labs/ci-templates/v1.2.0/build.yml

Each link is checked for:

  - ORIGIN: the URL starts with the configured origin.
  - TAG_REGEX_PATTERN: the revision after the origin is vMAJOR.MINOR.PATCH.
  - NEXT_VERSION: that tag is strictly newer than the current release.

Template files that are not valid YAML fail the YAML check and contribute no
links.

Revisions are compared by positional encoding (MAJOR*100 + MINOR*10 + PATCH),
not by SemVer precedence. Components of 10 or more therefore alias
(see Version).

Usage example:

	cfg, err := tagcheck.NewConfig(tagcheck.DefaultOrigin, "v1.4.0", root)
	if err != nil {
		return err
	}

	fsys := afero.NewBasePathFs(afero.NewOsFs(), root)
	paths, _ := tagcheck.FindTemplates(fsys, tagcheck.FindOptions{})
	report, _ := tagcheck.NewScanner(cfg, fsys, nil).Scan(paths)

	failed, n := tagcheck.FilterFailed(report.Results)
	if n > 0 || !report.Consistent() {
		// report failed
	}
*/
package tagcheck
