// Package recent tracks the most-recently-opened file paths.
package recent

import (
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sahilm/fuzzy"
)

// MaxEntries bounds the recent-files list.
const MaxEntries = 10

// List is a bounded, most-recently-used ordered set of file paths. Recording
// a path that is already present moves it to the front; the oldest entry is
// evicted once the bound is reached. Paths compare case-sensitively after
// cleaning.
type List struct {
	cache *lru.Cache[string, struct{}]
}

// NewList creates an empty list bounded to max entries.
func NewList(max int) (*List, error) {
	cache, err := lru.New[string, struct{}](max)
	if err != nil {
		return nil, err
	}
	return &List{cache: cache}, nil
}

// Record inserts path at the front, deduplicating and evicting as needed.
func (l *List) Record(path string) {
	if path == "" {
		return
	}
	l.cache.Add(filepath.Clean(path), struct{}{})
}

// Paths returns the entries most-recent-first.
func (l *List) Paths() []string {
	keys := l.cache.Keys() // oldest first
	paths := make([]string, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		paths = append(paths, keys[i])
	}
	return paths
}

// Replace resets the list from a most-recent-first slice, as persisted in
// the settings file.
func (l *List) Replace(paths []string) {
	l.cache.Purge()
	for i := len(paths) - 1; i >= 0; i-- {
		l.Record(paths[i])
	}
}

// Filter returns the entries fuzzy-matching query, best match first. An
// empty query returns everything in recency order.
func (l *List) Filter(query string) []string {
	paths := l.Paths()
	if query == "" {
		return paths
	}

	matches := fuzzy.Find(query, paths)
	filtered := make([]string, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, paths[m.Index])
	}
	return filtered
}

// Len returns the number of recorded paths.
func (l *List) Len() int {
	return l.cache.Len()
}
