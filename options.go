package tagcheck

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultOrigin is the raw-content prefix of the shared CI template repository.
const DefaultOrigin = "https://raw.githubusercontent.com/jobtome-labs/ci-templates/"

var (
	// ErrInvalidTag is returned when a tag is not of the form vMAJOR.MINOR.PATCH.
	ErrInvalidTag = errors.New("tag does not match vMAJOR.MINOR.PATCH")

	// ErrNotDirectory is returned when the scan root is missing or not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// Config is the per-invocation configuration. It is built once by NewConfig
// and passed by value; nothing mutates it during a scan.
type Config struct {
	// Origin is the URL prefix every remote include must start with.
	Origin string

	// CurrentTag is the release tag the templates are bumped from.
	CurrentTag string

	// Root is the absolute path of the scanned directory.
	Root string

	// Current is CurrentTag in positional encoding. Every referenced
	// revision must be strictly greater.
	Current Version
}

// NewConfig validates currentTag and returns a Config.
// An empty origin falls back to DefaultOrigin.
func NewConfig(origin, currentTag, root string) (Config, error) {
	if origin == "" {
		origin = DefaultOrigin
	}

	current, ok := ParseVersion(currentTag)
	if !ok {
		return Config{}, fmt.Errorf("current tag %q: %w", currentTag, ErrInvalidTag)
	}

	return Config{
		Origin:     origin,
		CurrentTag: currentTag,
		Root:       root,
		Current:    current,
	}, nil
}

// ResolveRoot makes path absolute and checks that it is an existing directory.
// An empty path means the working directory.
func ResolveRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}

	isDir, err := afero.IsDir(afero.NewOsFs(), abs)
	if err != nil || !isDir {
		return "", fmt.Errorf("%s: %w", abs, ErrNotDirectory)
	}

	return abs, nil
}

// FindOptions selects template files under the scan root.
type FindOptions struct {
	// Patterns are doublestar globs matched against slash-separated paths
	// relative to the root. A file is a template if any pattern matches.
	// Empty means DefaultPatterns.
	Patterns []string

	// Exclude drops files matching any of these globs.
	Exclude []string
}

// DefaultPatterns matches every YAML file in the tree.
var DefaultPatterns = []string{"**/*.{yml,yaml}"}

// normalized returns a copy with implicit defaults applied.
func (o FindOptions) normalized() FindOptions {
	out := o
	if len(out.Patterns) == 0 {
		out.Patterns = DefaultPatterns
	}

	return out
}
