package tagcheck

import (
	"io"

	"github.com/charmbracelet/log"
)

// orDiscard substitutes a silent logger for nil.
func orDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}

	return l
}

// uniqueStrings returns the distinct values of in, keeping first appearance.
func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))

	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}

		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}
