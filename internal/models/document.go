// Package models holds the domain state for open documents.
package models

import "path/filepath"

// Document is the in-memory buffer for one open file: its text content, the
// file path it maps to (empty for untitled buffers) and a modified flag
// tracking whether the content differs from its last-saved state. Content is
// always UTF-8.
//
// Documents are confined to the UI goroutine; background work reaches them
// only through the event-loop dispatcher.
type Document struct {
	content  string
	path     string
	modified bool
	untitled string
}

// NewUntitled creates an empty buffer with a placeholder title such as
// "Untitled-1".
func NewUntitled(title string) *Document {
	return &Document{untitled: title}
}

// NewFromFile creates a clean buffer bound to path with loaded content.
func NewFromFile(path, content string) *Document {
	return &Document{
		content: content,
		path:    filepath.Clean(path),
	}
}

// Content returns the current buffer text.
func (d *Document) Content() string {
	return d.content
}

// SetContent replaces the buffer text, marking the buffer modified when the
// text actually changed.
func (d *Document) SetContent(content string) {
	if content == d.content {
		return
	}
	d.content = content
	d.modified = true
}

// Path returns the bound file path, or "" for untitled buffers.
func (d *Document) Path() string {
	return d.path
}

// SetPath binds the buffer to a file path.
func (d *Document) SetPath(path string) {
	d.path = filepath.Clean(path)
}

// HasPath reports whether the buffer is bound to a file.
func (d *Document) HasPath() bool {
	return d.path != ""
}

// IsModified reports whether the content differs from its last-saved state.
func (d *Document) IsModified() bool {
	return d.modified
}

// MarkModified flags the buffer dirty.
func (d *Document) MarkModified() {
	d.modified = true
}

// MarkClean clears the modified flag after a successful save or load.
func (d *Document) MarkClean() {
	d.modified = false
}

// Title returns the file base name, or the untitled placeholder.
func (d *Document) Title() string {
	if d.path != "" {
		return filepath.Base(d.path)
	}
	return d.untitled
}

// DisplayTitle is the tab caption: the title plus a trailing marker when the
// buffer has unsaved changes.
func (d *Document) DisplayTitle() string {
	if d.modified {
		return d.Title() + " *"
	}
	return d.Title()
}
