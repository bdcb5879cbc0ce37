package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage keeps files in memory and records save calls.
type fakeStorage struct {
	files     map[string]string
	loadErr   error
	saveErr   map[string]error
	saveCalls []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		files:   make(map[string]string),
		saveErr: make(map[string]error),
	}
}

func (f *fakeStorage) Load(path string) (string, error) {
	if f.loadErr != nil {
		return "", f.loadErr
	}
	content, ok := f.files[path]
	if !ok {
		return "", fmt.Errorf("file not found: %s", path)
	}
	return content, nil
}

func (f *fakeStorage) Save(path, content string) error {
	f.saveCalls = append(f.saveCalls, path)
	if err := f.saveErr[path]; err != nil {
		return err
	}
	f.files[path] = content
	return nil
}

// fakeRecorder collects recorded paths.
type fakeRecorder struct {
	paths []string
}

func (f *fakeRecorder) Record(path string) {
	f.paths = append(f.paths, path)
}

func newTestManager(policy ClosePolicy) (*Manager, *fakeStorage, *fakeRecorder) {
	storage := newFakeStorage()
	recorder := &fakeRecorder{}
	return NewManager(storage, recorder, nil, policy), storage, recorder
}

func TestNewTabNumbersUntitledBuffers(t *testing.T) {
	m, _, _ := newTestManager(AllowEmpty)

	first := m.NewTab()
	second := m.NewTab()

	assert.Equal(t, "Untitled-1", first.Title())
	assert.Equal(t, "Untitled-2", second.Title())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 1, m.ActiveIndex())
	assert.Same(t, second, m.Active())
}

func TestOpenFileLoadsAndRecords(t *testing.T) {
	m, storage, recorder := newTestManager(AllowEmpty)
	storage.files["/tmp/a.txt"] = "alpha"

	doc, created, err := m.OpenFile("/tmp/a.txt")
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, "alpha", doc.Content())
	assert.Equal(t, "/tmp/a.txt", doc.Path())
	assert.False(t, doc.IsModified())
	assert.Equal(t, []string{"/tmp/a.txt"}, recorder.paths)
}

func TestOpenFileActivatesExistingTab(t *testing.T) {
	m, storage, _ := newTestManager(AllowEmpty)
	storage.files["/tmp/a.txt"] = "alpha"
	storage.files["/tmp/b.txt"] = "beta"

	_, _, err := m.OpenFile("/tmp/a.txt")
	require.NoError(t, err)
	_, _, err = m.OpenFile("/tmp/b.txt")
	require.NoError(t, err)
	require.Equal(t, 1, m.ActiveIndex())

	doc, created, err := m.OpenFile("/tmp/a.txt")
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, 2, m.Len(), "no duplicate tab")
	assert.Equal(t, 0, m.ActiveIndex())
	assert.Equal(t, "/tmp/a.txt", doc.Path())
}

func TestOpenFileMatchesUncleanPath(t *testing.T) {
	m, storage, _ := newTestManager(AllowEmpty)
	storage.files["/tmp/a.txt"] = "alpha"

	_, _, err := m.OpenFile("/tmp/a.txt")
	require.NoError(t, err)

	_, created, err := m.OpenFile("/tmp/./a.txt")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, m.Len())
}

func TestOpenFileLoadFailure(t *testing.T) {
	m, storage, recorder := newTestManager(AllowEmpty)
	storage.loadErr = errors.New("disk error")

	_, _, err := m.OpenFile("/tmp/a.txt")
	assert.Error(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, recorder.paths)
}

func TestCloseCleanTabNeverSignals(t *testing.T) {
	m, _, _ := newTestManager(AllowEmpty)
	m.NewTab()

	assert.NoError(t, m.CloseTab(0))
	assert.Equal(t, 0, m.Len())
}

func TestCloseModifiedTabAlwaysSignals(t *testing.T) {
	m, _, _ := newTestManager(AllowEmpty)
	doc := m.NewTab()
	doc.SetContent("draft")

	err := m.CloseTab(0)
	assert.ErrorIs(t, err, ErrUnsavedChanges)
	assert.Equal(t, 1, m.Len(), "buffer must survive the signal")

	require.NoError(t, m.ForceCloseTab(0))
	assert.Equal(t, 0, m.Len())
}

func TestCloseActivePrefersLeftNeighbor(t *testing.T) {
	m, _, _ := newTestManager(AllowEmpty)
	m.NewTab()
	m.NewTab()
	m.NewTab()
	require.NoError(t, m.ActivateTab(1))

	require.NoError(t, m.CloseTab(1))

	assert.Equal(t, 0, m.ActiveIndex())
	assert.Equal(t, "Untitled-1", m.Active().Title())
}

func TestCloseLeftmostFallsBackToRightNeighbor(t *testing.T) {
	m, _, _ := newTestManager(AllowEmpty)
	m.NewTab()
	m.NewTab()
	require.NoError(t, m.ActivateTab(0))

	require.NoError(t, m.CloseTab(0))

	assert.Equal(t, 0, m.ActiveIndex())
	assert.Equal(t, "Untitled-2", m.Active().Title())
}

func TestCloseBackgroundTabKeepsActiveDocument(t *testing.T) {
	m, _, _ := newTestManager(AllowEmpty)
	m.NewTab()
	m.NewTab()
	third := m.NewTab()
	require.Equal(t, 2, m.ActiveIndex())

	require.NoError(t, m.CloseTab(0))

	assert.Equal(t, 1, m.ActiveIndex())
	assert.Same(t, third, m.Active())
}

func TestCloseOutOfRange(t *testing.T) {
	m, _, _ := newTestManager(AllowEmpty)
	m.NewTab()

	assert.ErrorIs(t, m.CloseTab(5), ErrIndexOutOfRange)
	assert.ErrorIs(t, m.CloseTab(-1), ErrIndexOutOfRange)
	assert.ErrorIs(t, m.ForceCloseTab(1), ErrIndexOutOfRange)
}

func TestCloseLastTabAllowEmpty(t *testing.T) {
	m, _, _ := newTestManager(AllowEmpty)
	m.NewTab()

	require.NoError(t, m.CloseTab(0))

	assert.Equal(t, 0, m.Len())
	assert.Equal(t, -1, m.ActiveIndex())
	assert.Nil(t, m.Active())
}

func TestCloseLastTabSpawnsUntitled(t *testing.T) {
	m, _, _ := newTestManager(SpawnUntitled)
	first := m.NewTab()

	require.NoError(t, m.CloseTab(0))

	require.Equal(t, 1, m.Len())
	assert.NotSame(t, first, m.Active())
	assert.False(t, m.Active().HasPath())
	assert.Equal(t, 0, m.ActiveIndex())
}

func TestSaveActiveWithoutPath(t *testing.T) {
	m, storage, _ := newTestManager(AllowEmpty)
	doc := m.NewTab()
	doc.SetContent("draft")

	assert.ErrorIs(t, m.SaveActive(), ErrNoPath)
	assert.Empty(t, storage.saveCalls)
	assert.True(t, doc.IsModified())
}

func TestSaveActiveWithEmptySession(t *testing.T) {
	m, _, _ := newTestManager(AllowEmpty)

	assert.ErrorIs(t, m.SaveActive(), ErrNoActiveBuffer)
	assert.ErrorIs(t, m.SaveActiveAs("/tmp/a.txt"), ErrNoActiveBuffer)
}

func TestSaveScenario(t *testing.T) {
	// new tab -> type "hello" -> modified -> save -> clean with bound path.
	m, storage, _ := newTestManager(AllowEmpty)
	doc := m.NewTab()

	doc.SetContent("hello")
	require.True(t, doc.IsModified())

	require.NoError(t, m.SaveActiveAs("/tmp/a.txt"))

	assert.False(t, doc.IsModified())
	assert.Equal(t, "/tmp/a.txt", doc.Path())
	assert.Equal(t, "hello", storage.files["/tmp/a.txt"])
}

func TestSaveActiveAsRecordsRecent(t *testing.T) {
	m, _, recorder := newTestManager(AllowEmpty)
	m.NewTab()

	require.NoError(t, m.SaveActiveAs("/tmp/saved.txt"))
	assert.Equal(t, []string{"/tmp/saved.txt"}, recorder.paths)
}

func TestSaveActiveWritesBoundPath(t *testing.T) {
	m, storage, _ := newTestManager(AllowEmpty)
	storage.files["/tmp/a.txt"] = "old"
	doc, _, err := m.OpenFile("/tmp/a.txt")
	require.NoError(t, err)

	doc.SetContent("new")
	require.NoError(t, m.SaveActive())

	assert.Equal(t, "new", storage.files["/tmp/a.txt"])
	assert.False(t, doc.IsModified())
}

func TestSaveActiveSurfacesStorageError(t *testing.T) {
	m, storage, _ := newTestManager(AllowEmpty)
	storage.files["/tmp/a.txt"] = "old"
	doc, _, err := m.OpenFile("/tmp/a.txt")
	require.NoError(t, err)
	doc.SetContent("new")

	storage.saveErr["/tmp/a.txt"] = errors.New("disk full")

	assert.Error(t, m.SaveActive())
	assert.True(t, doc.IsModified(), "failed save keeps the buffer dirty")
}

func TestSaveAllSkipsUntitledAndClean(t *testing.T) {
	m, storage, _ := newTestManager(AllowEmpty)
	storage.files["/tmp/a.txt"] = "alpha"
	storage.files["/tmp/b.txt"] = "beta"

	dirtyTitled, _, err := m.OpenFile("/tmp/a.txt")
	require.NoError(t, err)
	dirtyTitled.SetContent("alpha v2")

	cleanTitled, _, err := m.OpenFile("/tmp/b.txt")
	require.NoError(t, err)
	_ = cleanTitled

	dirtyUntitled := m.NewTab()
	dirtyUntitled.SetContent("scratch")

	saved, errs := m.SaveAll()

	assert.Equal(t, 1, saved)
	assert.Empty(t, errs)
	assert.Equal(t, []string{"/tmp/a.txt"}, storage.saveCalls)
	assert.False(t, dirtyTitled.IsModified())
	assert.True(t, dirtyUntitled.IsModified(), "untitled buffers are never auto-saved")
}

func TestSaveAllCollectsErrorsAndContinues(t *testing.T) {
	m, storage, _ := newTestManager(AllowEmpty)
	storage.files["/tmp/a.txt"] = "alpha"
	storage.files["/tmp/b.txt"] = "beta"

	docA, _, err := m.OpenFile("/tmp/a.txt")
	require.NoError(t, err)
	docA.SetContent("alpha v2")

	docB, _, err := m.OpenFile("/tmp/b.txt")
	require.NoError(t, err)
	docB.SetContent("beta v2")

	storage.saveErr["/tmp/a.txt"] = errors.New("permission denied")

	saved, errs := m.SaveAll()

	assert.Equal(t, 1, saved)
	assert.Len(t, errs, 1)
	assert.True(t, docA.IsModified())
	assert.False(t, docB.IsModified())
}

func TestHasUnsavedChanges(t *testing.T) {
	m, _, _ := newTestManager(AllowEmpty)
	assert.False(t, m.HasUnsavedChanges())

	doc := m.NewTab()
	assert.False(t, m.HasUnsavedChanges())

	doc.SetContent("draft")
	assert.True(t, m.HasUnsavedChanges())

	doc.MarkClean()
	assert.False(t, m.HasUnsavedChanges())
}

func TestActivateTabOutOfRange(t *testing.T) {
	m, _, _ := newTestManager(AllowEmpty)
	m.NewTab()

	assert.ErrorIs(t, m.ActivateTab(3), ErrIndexOutOfRange)
	assert.NoError(t, m.ActivateTab(0))
}

func TestDocumentAccessor(t *testing.T) {
	m, _, _ := newTestManager(AllowEmpty)
	doc := m.NewTab()

	assert.Same(t, doc, m.Document(0))
	assert.Nil(t, m.Document(1))
	assert.Nil(t, m.Document(-1))
}
