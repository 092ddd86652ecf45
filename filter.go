package tagcheck

import "slices"

// FailedLink holds the failed checks of one remote link.
type FailedLink struct {
	Failed []string `json:"failed"`
}

// FailedFile holds the failed checks of one template and of its links.
// Failed is empty when only links failed.
type FailedFile struct {
	Failed []string                 `json:"failed,omitempty"`
	Links  *OrderedMap[*FailedLink] `json:"remote-template-links,omitempty"`
}

// FailedResults maps a template path to its failures.
type FailedResults = OrderedMap[*FailedFile]

// FilterFailed reduces results to failing entries only.
//
// The returned count is the number of files with a failed file-level check
// plus the number of links with a failed check.
func FilterFailed(results *FileResults) (*FailedResults, int) {
	out := NewOrderedMap[*FailedFile]()
	count := 0

	for _, path := range results.Keys() {
		fr, _ := results.Get(path)

		var entry *FailedFile
		if fr.HasFailed() {
			entry = &FailedFile{Failed: slices.Clone(fr.Failed)}
			out.Set(path, entry)
			count++
		}

		for _, url := range fr.Links.Keys() {
			lr, _ := fr.Links.Get(url)
			if !lr.HasFailed() {
				continue
			}

			if entry == nil {
				entry = &FailedFile{}
				out.Set(path, entry)
			}

			if entry.Links == nil {
				entry.Links = NewOrderedMap[*FailedLink]()
			}

			entry.Links.Set(url, &FailedLink{Failed: slices.Clone(lr.Failed)})
			count++
		}
	}

	return out, count
}
