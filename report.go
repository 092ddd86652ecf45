package tagcheck

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Check names recorded in Results.
const (
	CheckYAML        = "YAML"
	CheckOrigin      = "ORIGIN"
	CheckTagPattern  = "TAG_REGEX_PATTERN"
	CheckNextVersion = "NEXT_VERSION"
)

// Results holds the outcome of named checks for one file or one link.
// A check name appears in at most one of the lists.
type Results struct {
	Passed []string `json:"passed"`
	Failed []string `json:"failed"`
}

// NewResults returns an empty record that encodes as two empty lists.
func NewResults() *Results {
	return &Results{Passed: []string{}, Failed: []string{}}
}

// Pass records check as passed.
func (r *Results) Pass(check string) {
	r.Record(check, true)
}

// Fail records check as failed.
func (r *Results) Fail(check string) {
	r.Record(check, false)
}

// Record stores the outcome of check, replacing an earlier one.
func (r *Results) Record(check string, ok bool) {
	r.Passed = slices.DeleteFunc(r.Passed, func(s string) bool { return s == check })
	r.Failed = slices.DeleteFunc(r.Failed, func(s string) bool { return s == check })

	if ok {
		r.Passed = append(r.Passed, check)
	} else {
		r.Failed = append(r.Failed, check)
	}
}

// Outcome reports whether check was evaluated and whether it passed.
func (r *Results) Outcome(check string) (passed, evaluated bool) {
	switch {
	case slices.Contains(r.Passed, check):
		return true, true
	case slices.Contains(r.Failed, check):
		return false, true
	default:
		return false, false
	}
}

// HasFailed reports whether any check failed.
func (r *Results) HasFailed() bool {
	return len(r.Failed) > 0
}

// OrderedMap is a string-keyed map that remembers insertion order and
// encodes to a JSON object in that order.
type OrderedMap[V any] struct {
	vals map[string]V
	keys []string
}

// NewOrderedMap returns an empty map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{vals: make(map[string]V)}
}

// Set stores v under key. An existing key keeps its position.
func (m *OrderedMap[V]) Set(key string, v V) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Get returns the value under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// Len returns the number of keys.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// MarshalJSON encodes m as a JSON object preserving key order.
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	if m != nil {
		for i, k := range m.keys {
			if i > 0 {
				buf.WriteByte(',')
			}

			key, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}

			val, err := json.Marshal(m.vals[k])
			if err != nil {
				return nil, err
			}

			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// LinkResults maps a raw remote URL to its check results.
type LinkResults = OrderedMap[*Results]

// FileResult is the outcome for one template file. Links is nil when the
// file was not valid YAML or had no include key.
type FileResult struct {
	Results
	Links *LinkResults `json:"remote-template-links,omitempty"`
}

// FileResults maps a template path, relative to the scan root, to its result.
type FileResults = OrderedMap[*FileResult]

// Metadata carries revisions seen across all links.
type Metadata struct {
	// Revisions lists every extracted revision in scan order, duplicates included.
	Revisions []string `json:"git-revisions"`

	// UniqueRevisions lists distinct revisions, newest first.
	UniqueRevisions []string `json:"unique-git-revisions"`
}

// Report is the result of a scan.
type Report struct {
	Results  *FileResults `json:"results"`
	Metadata Metadata     `json:"metadata"`
}

// Consistent reports whether at most one distinct revision was seen.
func (r *Report) Consistent() bool {
	return len(r.Metadata.UniqueRevisions) <= 1
}
