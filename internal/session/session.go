// Package session owns the collection of open document buffers and tracks
// which one is active. It delegates file I/O to the persistence adapter and
// feeds opened paths into the recent-files list. All methods run on the UI
// goroutine.
package session

import (
	"errors"
	"fmt"
	"path/filepath"

	"modern-notepad/internal/logger"
	"modern-notepad/internal/models"
)

// Errors returned by session operations.
var (
	ErrUnsavedChanges  = errors.New("buffer has unsaved changes")
	ErrNoPath          = errors.New("buffer has no file path")
	ErrNoActiveBuffer  = errors.New("no active buffer")
	ErrIndexOutOfRange = errors.New("tab index out of range")
)

// ClosePolicy decides what happens when the last tab is closed.
type ClosePolicy int

const (
	// SpawnUntitled auto-creates a fresh untitled buffer so the editor is
	// never without a typing target.
	SpawnUntitled ClosePolicy = iota
	// AllowEmpty leaves the session with zero tabs.
	AllowEmpty
)

// Storage abstracts the persistence adapter.
type Storage interface {
	Load(path string) (string, error)
	Save(path, content string) error
}

// Recorder receives paths for the recent-files list.
type Recorder interface {
	Record(path string)
}

// Manager is the tab session manager.
type Manager struct {
	storage Storage
	recent  Recorder
	logger  logger.Logger
	policy  ClosePolicy

	buffers     []*models.Document
	active      int
	untitledSeq int
}

// NewManager creates an empty session.
func NewManager(storage Storage, recent Recorder, log logger.Logger, policy ClosePolicy) *Manager {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Manager{
		storage: storage,
		recent:  recent,
		logger:  log,
		policy:  policy,
		active:  -1,
	}
}

// NewTab appends an untitled buffer and makes it active.
func (m *Manager) NewTab() *models.Document {
	m.untitledSeq++
	doc := models.NewUntitled(fmt.Sprintf("Untitled-%d", m.untitledSeq))
	m.buffers = append(m.buffers, doc)
	m.active = len(m.buffers) - 1

	m.logger.Debug("tab created", map[string]interface{}{
		"title": doc.Title(),
		"index": m.active,
	})
	return doc
}

// OpenFile opens path in a tab. If the path is already open its tab is
// activated instead of duplicating; otherwise the file is loaded and
// appended. Either way the path is pushed onto the recent-files list. The
// returned bool reports whether a new tab was created.
func (m *Manager) OpenFile(path string) (*models.Document, bool, error) {
	clean := filepath.Clean(path)

	for i, doc := range m.buffers {
		if doc.HasPath() && doc.Path() == clean {
			m.active = i
			m.record(clean)
			m.logger.Debug("existing tab activated", map[string]interface{}{
				"path":  clean,
				"index": i,
			})
			return doc, false, nil
		}
	}

	content, err := m.storage.Load(clean)
	if err != nil {
		m.logger.Error("file open failed", err, map[string]interface{}{
			"path": clean,
		})
		return nil, false, err
	}

	doc := models.NewFromFile(clean, content)
	m.buffers = append(m.buffers, doc)
	m.active = len(m.buffers) - 1
	m.record(clean)

	m.logger.Info("file opened", map[string]interface{}{
		"path":  clean,
		"bytes": len(content),
	})
	return doc, true, nil
}

// ActivateTab makes the buffer at index active.
func (m *Manager) ActivateTab(index int) error {
	if index < 0 || index >= len(m.buffers) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	m.active = index
	return nil
}

// CloseTab removes the buffer at index. A modified buffer is never removed
// directly: the call fails with ErrUnsavedChanges and the caller resolves
// the save/discard/cancel decision, then uses ForceCloseTab.
func (m *Manager) CloseTab(index int) error {
	if index < 0 || index >= len(m.buffers) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if m.buffers[index].IsModified() {
		return ErrUnsavedChanges
	}
	m.removeTab(index)
	return nil
}

// ForceCloseTab removes the buffer at index, discarding unsaved changes.
func (m *Manager) ForceCloseTab(index int) error {
	if index < 0 || index >= len(m.buffers) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	m.removeTab(index)
	return nil
}

func (m *Manager) removeTab(index int) {
	title := m.buffers[index].Title()
	m.buffers = append(m.buffers[:index], m.buffers[index+1:]...)

	switch {
	case len(m.buffers) == 0:
		m.active = -1
	case index < m.active:
		m.active--
	case index == m.active && index > 0:
		// Prefer the tab to the left.
		m.active = index - 1
	case index == m.active:
		// Closed the leftmost tab; the old right neighbor is now first.
		m.active = 0
	}

	m.logger.Debug("tab closed", map[string]interface{}{
		"title":     title,
		"remaining": len(m.buffers),
	})

	if len(m.buffers) == 0 && m.policy == SpawnUntitled {
		m.NewTab()
	}
}

// SaveActive writes the active buffer to its bound path. Untitled buffers
// fail with ErrNoPath; the caller routes those through Save-As.
func (m *Manager) SaveActive() error {
	doc := m.Active()
	if doc == nil {
		return ErrNoActiveBuffer
	}
	if !doc.HasPath() {
		return ErrNoPath
	}

	if err := m.storage.Save(doc.Path(), doc.Content()); err != nil {
		m.logger.Error("save failed", err, map[string]interface{}{
			"path": doc.Path(),
		})
		return err
	}

	doc.MarkClean()
	m.logger.Info("file saved", map[string]interface{}{
		"path": doc.Path(),
	})
	return nil
}

// SaveActiveAs writes the active buffer to path, binds the buffer to it and
// records the path as recently used.
func (m *Manager) SaveActiveAs(path string) error {
	doc := m.Active()
	if doc == nil {
		return ErrNoActiveBuffer
	}

	clean := filepath.Clean(path)
	if err := m.storage.Save(clean, doc.Content()); err != nil {
		m.logger.Error("save-as failed", err, map[string]interface{}{
			"path": clean,
		})
		return err
	}

	doc.SetPath(clean)
	doc.MarkClean()
	m.record(clean)

	m.logger.Info("file saved", map[string]interface{}{
		"path": clean,
	})
	return nil
}

// SaveAll writes every modified buffer that has a path. Untitled buffers are
// skipped. Returns the number of buffers saved and any per-buffer errors;
// one failure does not stop the rest.
func (m *Manager) SaveAll() (int, []error) {
	saved := 0
	var errs []error

	for _, doc := range m.buffers {
		if !doc.IsModified() || !doc.HasPath() {
			continue
		}
		if err := m.storage.Save(doc.Path(), doc.Content()); err != nil {
			errs = append(errs, err)
			continue
		}
		doc.MarkClean()
		saved++
	}

	return saved, errs
}

// Active returns the active buffer, or nil when the session is empty.
func (m *Manager) Active() *models.Document {
	if m.active < 0 || m.active >= len(m.buffers) {
		return nil
	}
	return m.buffers[m.active]
}

// ActiveIndex returns the active tab index, -1 when empty.
func (m *Manager) ActiveIndex() int {
	return m.active
}

// Document returns the buffer at index, or nil when out of range.
func (m *Manager) Document(index int) *models.Document {
	if index < 0 || index >= len(m.buffers) {
		return nil
	}
	return m.buffers[index]
}

// Len returns the number of open buffers.
func (m *Manager) Len() int {
	return len(m.buffers)
}

// HasUnsavedChanges reports whether any buffer is modified.
func (m *Manager) HasUnsavedChanges() bool {
	for _, doc := range m.buffers {
		if doc.IsModified() {
			return true
		}
	}
	return false
}

func (m *Manager) record(path string) {
	if m.recent != nil {
		m.recent.Record(path)
	}
}
