package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"modern-notepad/internal/views/components"
)

// UnsavedChoice is the outcome of the unsaved-changes dialog.
type UnsavedChoice int

const (
	UnsavedSave UnsavedChoice = iota
	UnsavedDiscard
	UnsavedCancel
)

// MainView represents the main application view
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	editorTabs    *components.EditorTabs
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	newTabHandler      func()
	openFileHandler    func()
	saveHandler        func()
	saveAsHandler      func()
	closeTabHandler    func(index int)
	selectTabHandler   func(index int)
	textChangedHandler func(index int, content string)
	quickOpenHandler   func()
	themeHandler       func(name string)
	wordWrapHandler    func(enabled bool)
	quitHandler        func()
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()
	view.setupMenus()
	view.setupShortcuts()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.editorTabs = components.NewEditorTabs()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		mv.editorTabs.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetNewHandler(func() {
		if mv.newTabHandler != nil {
			mv.newTabHandler()
		}
	})

	mv.toolbar.SetOpenHandler(func() {
		if mv.openFileHandler != nil {
			mv.openFileHandler()
		}
	})

	mv.toolbar.SetSaveHandler(func() {
		if mv.saveHandler != nil {
			mv.saveHandler()
		}
	})

	mv.toolbar.SetQuickOpenHandler(func() {
		if mv.quickOpenHandler != nil {
			mv.quickOpenHandler()
		}
	})

	mv.editorTabs.SetTextChangedHandler(func(index int, content string) {
		if mv.textChangedHandler != nil {
			mv.textChangedHandler(index, content)
		}
	})

	mv.editorTabs.SetSelectedHandler(func(index int) {
		if mv.selectTabHandler != nil {
			mv.selectTabHandler(index)
		}
	})

	mv.editorTabs.SetCloseRequestedHandler(func(index int) {
		if mv.closeTabHandler != nil {
			mv.closeTabHandler(index)
		}
	})
}

// setupMenus constructs the main menu
func (mv *MainView) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Tab", func() {
			if mv.newTabHandler != nil {
				mv.newTabHandler()
			}
		}),
		fyne.NewMenuItem("Open...", func() {
			if mv.openFileHandler != nil {
				mv.openFileHandler()
			}
		}),
		fyne.NewMenuItem("Open Recent...", func() {
			if mv.quickOpenHandler != nil {
				mv.quickOpenHandler()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save", func() {
			if mv.saveHandler != nil {
				mv.saveHandler()
			}
		}),
		fyne.NewMenuItem("Save As...", func() {
			if mv.saveAsHandler != nil {
				mv.saveAsHandler()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Close Tab", func() {
			mv.requestCloseActive()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if mv.quitHandler != nil {
				mv.quitHandler()
			}
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Dark Theme", func() {
			if mv.themeHandler != nil {
				mv.themeHandler("dark")
			}
		}),
		fyne.NewMenuItem("Light Theme", func() {
			if mv.themeHandler != nil {
				mv.themeHandler("light")
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Word Wrap", func() {
			if mv.wordWrapHandler != nil {
				mv.wordWrapHandler(!mv.editorTabs.WordWrap())
			}
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, viewMenu)
	mv.window.SetMainMenu(mainMenu)
}

// setupShortcuts binds the keyboard shortcuts from the original editor:
// Ctrl-N/T new tab, Ctrl-O open, Ctrl-S save, Ctrl-Shift-S save-as,
// Ctrl-W close tab.
func (mv *MainView) setupShortcuts() {
	canvas := mv.window.Canvas()

	bind := func(key fyne.KeyName, mod fyne.KeyModifier, action func()) {
		canvas.AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: mod}, func(fyne.Shortcut) {
			action()
		})
	}

	bind(fyne.KeyN, fyne.KeyModifierControl, func() {
		if mv.newTabHandler != nil {
			mv.newTabHandler()
		}
	})
	bind(fyne.KeyT, fyne.KeyModifierControl, func() {
		if mv.newTabHandler != nil {
			mv.newTabHandler()
		}
	})
	bind(fyne.KeyO, fyne.KeyModifierControl, func() {
		if mv.openFileHandler != nil {
			mv.openFileHandler()
		}
	})
	bind(fyne.KeyS, fyne.KeyModifierControl, func() {
		if mv.saveHandler != nil {
			mv.saveHandler()
		}
	})
	bind(fyne.KeyS, fyne.KeyModifierControl|fyne.KeyModifierShift, func() {
		if mv.saveAsHandler != nil {
			mv.saveAsHandler()
		}
	})
	bind(fyne.KeyW, fyne.KeyModifierControl, func() {
		mv.requestCloseActive()
	})
	bind(fyne.KeyP, fyne.KeyModifierControl, func() {
		if mv.quickOpenHandler != nil {
			mv.quickOpenHandler()
		}
	})
}

func (mv *MainView) requestCloseActive() {
	index := mv.editorTabs.SelectedIndex()
	if index >= 0 && mv.closeTabHandler != nil {
		mv.closeTabHandler(index)
	}
}

// Event handler setters - called by controller

// SetNewTabHandler sets the handler for new-tab requests
func (mv *MainView) SetNewTabHandler(handler func()) {
	mv.newTabHandler = handler
}

// SetOpenFileHandler sets the handler for open-file requests
func (mv *MainView) SetOpenFileHandler(handler func()) {
	mv.openFileHandler = handler
}

// SetSaveHandler sets the handler for save requests
func (mv *MainView) SetSaveHandler(handler func()) {
	mv.saveHandler = handler
}

// SetSaveAsHandler sets the handler for save-as requests
func (mv *MainView) SetSaveAsHandler(handler func()) {
	mv.saveAsHandler = handler
}

// SetCloseTabHandler sets the handler for tab close requests
func (mv *MainView) SetCloseTabHandler(handler func(index int)) {
	mv.closeTabHandler = handler
}

// SetSelectTabHandler sets the handler for tab activation
func (mv *MainView) SetSelectTabHandler(handler func(index int)) {
	mv.selectTabHandler = handler
}

// SetTextChangedHandler sets the handler for user edits
func (mv *MainView) SetTextChangedHandler(handler func(index int, content string)) {
	mv.textChangedHandler = handler
}

// SetQuickOpenHandler sets the handler for the recent-files picker
func (mv *MainView) SetQuickOpenHandler(handler func()) {
	mv.quickOpenHandler = handler
}

// SetThemeHandler sets the handler for theme changes
func (mv *MainView) SetThemeHandler(handler func(name string)) {
	mv.themeHandler = handler
}

// SetWordWrapHandler sets the handler for word-wrap toggles
func (mv *MainView) SetWordWrapHandler(handler func(enabled bool)) {
	mv.wordWrapHandler = handler
}

// SetQuitHandler sets the handler for quit requests
func (mv *MainView) SetQuitHandler(handler func()) {
	mv.quitHandler = handler
}

// UI update methods - called by controller

// AddEditorTab appends a tab and returns its index
func (mv *MainView) AddEditorTab(title, content string) int {
	return mv.editorTabs.AddTab(title, content)
}

// RemoveEditorTab removes the tab at index
func (mv *MainView) RemoveEditorTab(index int) {
	fyne.Do(func() {
		mv.editorTabs.RemoveTab(index)
	})
}

// SelectEditorTab activates the tab at index
func (mv *MainView) SelectEditorTab(index int) {
	fyne.Do(func() {
		mv.editorTabs.SelectTab(index)
	})
}

// EditorTabCount returns the number of open editor tabs
func (mv *MainView) EditorTabCount() int {
	return mv.editorTabs.Count()
}

// SetTabTitle updates the caption of the tab at index
func (mv *MainView) SetTabTitle(index int, title string) {
	fyne.Do(func() {
		mv.editorTabs.SetTitle(index, title)
	})
}

// SetWordWrap applies the word-wrap setting to all editors
func (mv *MainView) SetWordWrap(wrap bool) {
	fyne.Do(func() {
		mv.editorTabs.SetWordWrap(wrap)
	})
}

// SetTabSize applies the tab-stop width to all editors
func (mv *MainView) SetTabSize(size int) {
	fyne.Do(func() {
		mv.editorTabs.SetTabSize(size)
	})
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// UpdateDocumentInfo updates the status bar document display
func (mv *MainView) UpdateDocumentInfo(title, content string, modified bool) {
	mv.statusBar.SetDocumentInfo(title, content, modified)
}

// ResetStatus restores the status bar to its empty-session state
func (mv *MainView) ResetStatus() {
	mv.statusBar.Reset()
}

// SetWindowTitle updates the window title
func (mv *MainView) SetWindowTitle(title string) {
	fyne.Do(func() {
		mv.window.SetTitle(title)
	})
}

// SetTheme applies a theme to the application
func (mv *MainView) SetTheme(t fyne.Theme) {
	fyne.Do(func() {
		fyne.CurrentApp().Settings().SetTheme(t)
		mv.mainContainer.Refresh()
	})
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, mv.window)
	})
}

// ShowConfirm displays a yes/no confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, mv.window)
	})
}

// ShowUnsavedDialog displays the three-way save/discard/cancel prompt for a
// modified buffer.
func (mv *MainView) ShowUnsavedDialog(title string, callback func(UnsavedChoice)) {
	fyne.Do(func() {
		message := widget.NewLabel("Do you want to save changes to " + title + " before closing?")

		var d dialog.Dialog
		choose := func(choice UnsavedChoice) func() {
			return func() {
				d.Hide()
				callback(choice)
			}
		}

		saveButton := widget.NewButton("Save", choose(UnsavedSave))
		saveButton.Importance = widget.HighImportance
		discardButton := widget.NewButton("Discard", choose(UnsavedDiscard))
		cancelButton := widget.NewButton("Cancel", choose(UnsavedCancel))

		buttons := container.NewHBox(saveButton, discardButton, cancelButton)
		content := container.NewVBox(message, buttons)

		d = dialog.NewCustomWithoutButtons("Unsaved Changes", content, mv.window)
		d.Show()
	})
}

// ShowFileOpen displays a file open dialog and reports the chosen path
func (mv *MainView) ShowFileOpen(callback func(path string)) {
	fyne.Do(func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				mv.ShowError(err)
				return
			}
			if reader == nil {
				return
			}
			path := reader.URI().Path()
			reader.Close()
			callback(path)
		}, mv.window)
	})
}

// ShowFileSave displays a file save dialog and reports the chosen path
func (mv *MainView) ShowFileSave(callback func(path string)) {
	fyne.Do(func() {
		dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				mv.ShowError(err)
				return
			}
			if writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			callback(path)
		}, mv.window)
	})
}

// ShowQuickOpen displays the recent-files picker with fuzzy filtering
func (mv *MainView) ShowQuickOpen(filter func(query string) []string, onOpen func(path string)) {
	fyne.Do(func() {
		results := filter("")

		list := widget.NewList(
			func() int { return len(results) },
			func() fyne.CanvasObject { return widget.NewLabel("") },
			func(id widget.ListItemID, obj fyne.CanvasObject) {
				obj.(*widget.Label).SetText(results[id])
			},
		)

		search := widget.NewEntry()
		search.SetPlaceHolder("Type to filter recent files...")
		search.OnChanged = func(query string) {
			results = filter(query)
			list.Refresh()
		}

		content := container.NewBorder(search, nil, nil, nil, list)

		d := dialog.NewCustom("Open Recent", "Close", content, mv.window)
		d.Resize(fyne.NewSize(500, 400))

		list.OnSelected = func(id widget.ListItemID) {
			if id < 0 || id >= len(results) {
				return
			}
			path := results[id]
			d.Hide()
			onOpen(path)
		}

		d.Show()
	})
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Show displays the view
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}
