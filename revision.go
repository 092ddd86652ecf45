package tagcheck

import (
	"strings"

	"github.com/spf13/afero"
)

// FileExists reports whether path names an existing regular file.
// Paths are slash-separated and relative to the scan root.
type FileExists func(path string) bool

// FSExists returns a FileExists backed by fs. Directories and paths that
// cannot be stat'ed count as missing.
func FSExists(fs afero.Fs) FileExists {
	return func(path string) bool {
		if path == "" {
			return false
		}

		fi, err := fs.Stat(path)
		if err != nil {
			return false
		}

		return fi.Mode().IsRegular()
	}
}

// ExtractRevision returns the revision part of a remote template URL.
//
// The text after the last occurrence of origin (or the whole URL if origin
// does not occur) is peeled one path segment at a time. Peeling stops once
// the rest of the path is a file that exists locally, or once no separator
// is left. The peeled segments, joined by "/", are the revision. This way
// branch names containing slashes survive as long as the template file
// itself is present in the scanned tree.
//
// At least one segment is always returned.
func ExtractRevision(url, origin string, exists FileExists) string {
	rest := url
	if origin != "" {
		if i := strings.LastIndex(url, origin); i >= 0 {
			rest = url[i+len(origin):]
		}
	}

	var segments []string
	for {
		head, tail, found := strings.Cut(rest, "/")
		segments = append(segments, head)
		rest = tail

		if !found || !strings.Contains(rest, "/") || exists(rest) {
			break
		}
	}

	return strings.Join(segments, "/")
}
