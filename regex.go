package tagcheck

import "regexp"

var (
	// Release tag: exactly vX.Y.Z with decimal components.
	tagRe = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)$`)
)
