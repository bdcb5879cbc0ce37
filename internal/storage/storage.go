// Package storage is the persistence adapter between document buffers and
// the filesystem. Files are plain UTF-8 text; anything else is rejected.
package storage

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// Errors returned by storage operations. Callers match with errors.Is.
var (
	ErrNotFound   = errors.New("file not found")
	ErrPermission = errors.New("permission denied")
	ErrEncoding   = errors.New("file is not valid UTF-8")
)

// Adapter reads and writes document content. The zero value is usable; it
// exists as a type so the session manager can take it as an interface.
type Adapter struct{}

func NewAdapter() *Adapter {
	return &Adapter{}
}

// Load reads the file at path and returns its content.
func (a *Adapter) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", classify(path, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrEncoding, path)
	}

	return string(data), nil
}

// Save writes content to path, creating the file if needed.
func (a *Adapter) Save(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return classify(path, err)
	}
	return nil
}

// classify maps OS errors onto the adapter's sentinel kinds, keeping the
// path in the message and the original error in the chain.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %v", ErrPermission, path, err)
	default:
		return fmt.Errorf("%s: %w", path, err)
	}
}
