// Package controllers connects the tab session, persistence, recent files
// and settings to the main view. All file-operation errors stop here and
// surface as dialogs or status messages; none are fatal.
package controllers

import (
	"errors"

	"fyne.io/fyne/v2"

	"modern-notepad/internal/config"
	"modern-notepad/internal/logger"
	"modern-notepad/internal/recent"
	"modern-notepad/internal/session"
	"modern-notepad/internal/theme"
	"modern-notepad/internal/views"
)

// MainController orchestrates the application using the MVC pattern
type MainController struct {
	session      *session.Manager
	recent       *recent.List
	settings     *config.Settings
	settingsPath string
	logger       logger.Logger

	mainView *views.MainView
	quitFunc func()
}

// NewMainController creates a new main controller
func NewMainController(
	sess *session.Manager,
	recentList *recent.List,
	settings *config.Settings,
	settingsPath string,
	log logger.Logger,
) *MainController {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &MainController{
		session:      sess,
		recent:       recentList,
		settings:     settings,
		settingsPath: settingsPath,
		logger:       log,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

// SetQuitFunc sets the function that terminates the application
func (mc *MainController) SetQuitFunc(quit func()) {
	mc.quitFunc = quit
}

// setupViewEventHandlers connects view events to controller actions
func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetNewTabHandler(mc.NewTab)
	mc.mainView.SetOpenFileHandler(mc.OpenFileDialog)
	mc.mainView.SetSaveHandler(mc.SaveActive)
	mc.mainView.SetSaveAsHandler(mc.SaveActiveAs)
	mc.mainView.SetCloseTabHandler(mc.CloseTab)
	mc.mainView.SetSelectTabHandler(mc.selectTab)
	mc.mainView.SetTextChangedHandler(mc.textChanged)
	mc.mainView.SetQuickOpenHandler(mc.QuickOpen)
	mc.mainView.SetThemeHandler(mc.ChangeTheme)
	mc.mainView.SetWordWrapHandler(mc.SetWordWrap)
	mc.mainView.SetQuitHandler(mc.RequestQuit)
}

// Bootstrap applies persisted settings and opens the initial tab. When
// initialPath is non-empty (CLI argument) that file is opened instead of a
// blank untitled buffer; open failures fall back to an untitled tab.
func (mc *MainController) Bootstrap(initialPath string) {
	mc.recent.Replace(mc.settings.RecentFiles)
	mc.applyTheme()
	mc.mainView.SetWordWrap(mc.settings.WordWrap)
	mc.mainView.SetTabSize(mc.settings.TabSize)

	if initialPath != "" {
		if mc.OpenPath(initialPath) {
			return
		}
	}

	mc.NewTab()
}

// NewTab appends an untitled buffer and its editor tab
func (mc *MainController) NewTab() {
	doc := mc.session.NewTab()
	mc.mainView.AddEditorTab(doc.DisplayTitle(), doc.Content())
	mc.mainView.SelectEditorTab(mc.session.ActiveIndex())
	mc.refreshChrome()
}

// OpenFileDialog shows the file chooser and opens the selected file
func (mc *MainController) OpenFileDialog() {
	mc.mainView.ShowFileOpen(func(path string) {
		mc.OpenPath(path)
	})
}

// OpenPath opens path in a tab, activating an existing tab when the file is
// already open. Returns false when loading failed.
func (mc *MainController) OpenPath(path string) bool {
	doc, created, err := mc.session.OpenFile(path)
	if err != nil {
		mc.surfaceError("Open failed", err)
		return false
	}

	if created {
		mc.mainView.AddEditorTab(doc.DisplayTitle(), doc.Content())
	}
	mc.mainView.SelectEditorTab(mc.session.ActiveIndex())
	mc.mainView.UpdateStatus("Opened " + doc.Path())
	mc.persistSettings()
	mc.refreshChrome()
	return true
}

// SaveActive saves the active buffer, routing untitled buffers to Save-As
func (mc *MainController) SaveActive() {
	err := mc.session.SaveActive()
	switch {
	case errors.Is(err, session.ErrNoPath):
		mc.SaveActiveAs()
	case errors.Is(err, session.ErrNoActiveBuffer):
		// Nothing open; ignore.
	case err != nil:
		mc.surfaceError("Save failed", err)
	default:
		mc.afterSave()
	}
}

// SaveActiveAs shows the save dialog and writes the active buffer to the
// chosen path
func (mc *MainController) SaveActiveAs() {
	if mc.session.Active() == nil {
		return
	}
	mc.mainView.ShowFileSave(func(path string) {
		if err := mc.session.SaveActiveAs(path); err != nil {
			mc.surfaceError("Save failed", err)
			return
		}
		mc.persistSettings()
		mc.afterSave()
	})
}

func (mc *MainController) afterSave() {
	index := mc.session.ActiveIndex()
	doc := mc.session.Active()
	if doc == nil {
		return
	}
	mc.mainView.SetTabTitle(index, doc.DisplayTitle())
	mc.mainView.UpdateStatus("Saved " + doc.Path())
	mc.refreshChrome()
}

// CloseTab closes the tab at index, prompting for unsaved changes
func (mc *MainController) CloseTab(index int) {
	err := mc.session.CloseTab(index)
	if err == nil {
		mc.afterTabRemoved(index)
		return
	}
	if !errors.Is(err, session.ErrUnsavedChanges) {
		mc.surfaceError("Close failed", err)
		return
	}

	doc := mc.session.Document(index)
	if doc == nil {
		return
	}

	mc.mainView.ShowUnsavedDialog(doc.Title(), func(choice views.UnsavedChoice) {
		switch choice {
		case views.UnsavedSave:
			mc.saveThenClose(index)
		case views.UnsavedDiscard:
			mc.forceClose(index)
		case views.UnsavedCancel:
			// Keep the tab.
		}
	})
}

// saveThenClose saves the buffer at index, then removes it. Untitled buffers
// go through the save dialog first.
func (mc *MainController) saveThenClose(index int) {
	if err := mc.session.ActivateTab(index); err != nil {
		return
	}
	doc := mc.session.Active()

	if doc.HasPath() {
		if err := mc.session.SaveActive(); err != nil {
			mc.surfaceError("Save failed", err)
			return
		}
		mc.forceClose(index)
		return
	}

	mc.mainView.ShowFileSave(func(path string) {
		if err := mc.session.SaveActiveAs(path); err != nil {
			mc.surfaceError("Save failed", err)
			return
		}
		mc.persistSettings()
		mc.forceClose(index)
	})
}

func (mc *MainController) forceClose(index int) {
	if err := mc.session.ForceCloseTab(index); err != nil {
		mc.surfaceError("Close failed", err)
		return
	}
	mc.afterTabRemoved(index)
}

// afterTabRemoved realigns the view with the session after a close,
// including the spawn-untitled policy creating a replacement tab.
func (mc *MainController) afterTabRemoved(index int) {
	mc.mainView.RemoveEditorTab(index)

	if doc := mc.session.Active(); doc != nil && mc.session.Len() > mc.mainView.EditorTabCount() {
		// The close policy spawned a fresh untitled buffer.
		mc.mainView.AddEditorTab(doc.DisplayTitle(), doc.Content())
	}
	if mc.session.Len() > 0 {
		mc.mainView.SelectEditorTab(mc.session.ActiveIndex())
	}
	mc.refreshChrome()
}

// selectTab reacts to the user activating a tab in the view
func (mc *MainController) selectTab(index int) {
	if err := mc.session.ActivateTab(index); err != nil {
		return
	}
	mc.refreshChrome()
}

// textChanged reacts to user edits in an editor tab
func (mc *MainController) textChanged(index int, content string) {
	doc := mc.session.Document(index)
	if doc == nil {
		return
	}

	wasModified := doc.IsModified()
	doc.SetContent(content)

	if doc.IsModified() != wasModified {
		mc.mainView.SetTabTitle(index, doc.DisplayTitle())
	}
	if index == mc.session.ActiveIndex() {
		mc.refreshChrome()
	}
}

// QuickOpen shows the fuzzy recent-files picker
func (mc *MainController) QuickOpen() {
	mc.mainView.ShowQuickOpen(mc.recent.Filter, func(path string) {
		mc.OpenPath(path)
	})
}

// ChangeTheme switches between the dark and light themes
func (mc *MainController) ChangeTheme(name string) {
	if name != config.ThemeDark && name != config.ThemeLight {
		return
	}
	mc.settings.Theme = name
	mc.applyTheme()
	mc.persistSettings()
}

// SetWordWrap toggles word wrapping in all editors
func (mc *MainController) SetWordWrap(enabled bool) {
	mc.settings.WordWrap = enabled
	mc.mainView.SetWordWrap(enabled)
	mc.persistSettings()
}

// RequestQuit quits, asking for confirmation first when unsaved changes
// exist
func (mc *MainController) RequestQuit() {
	if !mc.session.HasUnsavedChanges() {
		mc.quit()
		return
	}

	mc.mainView.ShowConfirm(
		"Unsaved Changes",
		"Some tabs have unsaved changes. Quit anyway?",
		func(confirmed bool) {
			if confirmed {
				mc.quit()
			}
		},
	)
}

func (mc *MainController) quit() {
	mc.persistSettings()
	if mc.quitFunc != nil {
		mc.quitFunc()
	}
}

// NotifyAutoSave receives status messages from the auto-save timer
func (mc *MainController) NotifyAutoSave(message string) {
	mc.mainView.UpdateStatus(message)
	mc.refreshTabTitles()
}

// refreshTabTitles resyncs every tab caption with its buffer state; needed
// after auto-save clears modified flags in bulk.
func (mc *MainController) refreshTabTitles() {
	for i := 0; i < mc.session.Len(); i++ {
		if doc := mc.session.Document(i); doc != nil {
			mc.mainView.SetTabTitle(i, doc.DisplayTitle())
		}
	}
}

// Shutdown flushes settings before the application exits
func (mc *MainController) Shutdown() {
	mc.persistSettings()
}

func (mc *MainController) applyTheme() {
	var font fyne.Resource
	if mc.settings.Font != "" {
		res, err := theme.LoadFont(mc.settings.Font)
		if err != nil {
			mc.logger.Warning("font load failed, using default", map[string]interface{}{
				"font":  mc.settings.Font,
				"error": err.Error(),
			})
		} else {
			font = res
		}
	}

	var t *theme.EditorTheme
	if mc.settings.Theme == config.ThemeLight {
		t = theme.NewLight(mc.settings.FontSize, font)
	} else {
		t = theme.NewDark(mc.settings.FontSize, font)
	}
	mc.mainView.SetTheme(t)
}

// persistSettings writes the settings file, folding in the recent list.
// Failures are logged, never surfaced; losing a settings write must not
// interrupt editing.
func (mc *MainController) persistSettings() {
	mc.settings.RecentFiles = mc.recent.Paths()
	if err := config.Save(mc.settings, mc.settingsPath); err != nil {
		mc.logger.Warning("settings write failed", map[string]interface{}{
			"path":  mc.settingsPath,
			"error": err.Error(),
		})
	}
}

// surfaceError reports err through the error dialog and status bar
func (mc *MainController) surfaceError(title string, err error) {
	mc.logger.Error(title, err, nil)
	mc.mainView.ShowError(err)
	mc.mainView.UpdateStatus(title)
}

// refreshChrome updates the window title and status bar for the active
// buffer
func (mc *MainController) refreshChrome() {
	doc := mc.session.Active()
	if doc == nil {
		mc.mainView.SetWindowTitle("Modern Notepad")
		mc.mainView.ResetStatus()
		return
	}
	mc.mainView.SetWindowTitle(doc.DisplayTitle() + " - Modern Notepad")
	mc.mainView.UpdateDocumentInfo(doc.Title(), doc.Content(), doc.IsModified())
}
