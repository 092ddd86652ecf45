package tagcheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FindTemplates walks fsys from its root and returns the slash-separated
// paths of files selected by opt, in lexical order.
func FindTemplates(fsys afero.Fs, opt FindOptions) ([]string, error) {
	opt = opt.normalized()

	for _, p := range append(append([]string{}, opt.Patterns...), opt.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}

	var out []string
	err := afero.Walk(fsys, ".", func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.Mode()&fs.ModeSymlink != 0 {
			// follow file links; Walk itself never descends into linked dirs
			target, err := fsys.Stat(path)
			if err != nil {
				return nil
			}
			info = target
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		rel := filepath.ToSlash(path)
		if matchAny(opt.Exclude, rel) || !matchAny(opt.Patterns, rel) {
			return nil
		}

		out = append(out, rel)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk templates: %w", err)
	}

	sort.Strings(out)

	return out, nil
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}

	return false
}

// Scanner validates remote includes of template files.
type Scanner struct {
	fs        afero.Fs
	validator *Validator
	log       *log.Logger
}

// NewScanner returns a Scanner reading templates from fsys, which must be
// rooted at cfg.Root. Revision boundaries are resolved against fsys too.
func NewScanner(cfg Config, fsys afero.Fs, logger *log.Logger) *Scanner {
	logger = orDiscard(logger)

	return &Scanner{
		fs:        fsys,
		validator: NewValidator(cfg, FSExists(fsys), logger),
		log:       logger,
	}
}

// Scan processes paths in order and builds a Report.
//
// A file that is not valid YAML gets a failed YAML check and its includes
// are skipped. Only a read error aborts the scan.
func (s *Scanner) Scan(paths []string) (*Report, error) {
	files := NewOrderedMap[*FileResult]()
	revisions := make([]string, 0)

	for _, path := range paths {
		data, err := afero.ReadFile(s.fs, path)
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", path, err)
		}

		fr := &FileResult{Results: *NewResults()}
		files.Set(path, fr)

		urls, hasInclude, err := remoteIncludes(data)
		if err != nil {
			fr.Fail(CheckYAML)
			s.log.Info("invalid yaml", "file", path, "err", err)
			continue
		}
		fr.Pass(CheckYAML)

		if !hasInclude {
			s.log.Debug("no include", "file", path)
			continue
		}

		s.log.Info("checking remote includes", "file", path, "links", len(urls))
		fr.Links = NewOrderedMap[*Results]()

		for _, url := range urls {
			res := NewResults()
			fr.Links.Set(url, res)

			rev := s.validator.Validate(url, res)
			revisions = append(revisions, rev)

			s.log.Debug("checked link", "file", path, "url", url,
				"passed", res.Passed, "failed", res.Failed)
		}
	}

	return &Report{
		Results: files,
		Metadata: Metadata{
			Revisions:       revisions,
			UniqueRevisions: SortRevisions(uniqueStrings(revisions)),
		},
	}, nil
}

// remoteIncludes parses a YAML stream and returns the remote URLs listed
// under the top-level include key of every document. hasInclude is false
// when no document has the key. Any syntax error, in any document, is
// returned.
//
// include may be a sequence of mappings or a single mapping. Entries without
// a string remote key (local, project, template) are skipped.
func remoteIncludes(data []byte) (urls []string, hasInclude bool, err error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	urls = make([]string, 0)

	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, false, err
		}

		if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
			continue
		}

		include := mappingValue(resolve(doc.Content[0]), "include")
		if include == nil {
			continue
		}
		hasInclude = true

		urls = append(urls, includeRemotes(include)...)
	}

	return urls, hasInclude, nil
}

// includeRemotes returns the remote URLs of one include value.
func includeRemotes(include *yaml.Node) []string {
	var entries []*yaml.Node
	switch include.Kind {
	case yaml.SequenceNode:
		entries = include.Content
	case yaml.MappingNode:
		entries = []*yaml.Node{include}
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		remote := mappingValue(resolve(e), "remote")
		if remote == nil || remote.Kind != yaml.ScalarNode {
			continue
		}
		out = append(out, remote.Value)
	}

	return out
}

// mappingValue returns the value node under key, or nil if n is not a
// mapping or has no such key. On duplicate keys the last one wins, the same
// way the mapping would load into a map.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}

	for i := len(n.Content) - 2; i >= 0; i -= 2 {
		if k := resolve(n.Content[i]); k != nil && k.Kind == yaml.ScalarNode && k.Value == key {
			return resolve(n.Content[i+1])
		}
	}

	return nil
}

// resolve follows aliases.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	return n
}
