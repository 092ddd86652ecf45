package tagcheck

import (
	"sort"

	"github.com/woozymasta/semver"
)

// SortRevisions orders revisions newest first. Valid SemVer revisions come
// first in descending precedence, the rest follow in lexicographic order.
// The input is not modified.
func SortRevisions(in []string) []string {
	type item struct {
		v    semver.Semver
		orig string
	}

	sem := make([]item, 0, len(in))
	other := make([]string, 0)

	for _, r := range in {
		v, ok := semver.Parse(r)
		if !ok || !v.IsValid() {
			other = append(other, r)
			continue
		}
		sem = append(sem, item{v: v, orig: r})
	}

	sort.SliceStable(sem, func(i, j int) bool {
		if c := sem[i].v.Compare(sem[j].v); c != 0 {
			return c > 0
		}
		return sem[i].orig < sem[j].orig
	})
	sort.Strings(other)

	out := make([]string, 0, len(in))
	for _, it := range sem {
		out = append(out, it.orig)
	}

	return append(out, other...)
}
