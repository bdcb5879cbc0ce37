package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar represents the main application toolbar
type Toolbar struct {
	container       *fyne.Container
	newButton       *widget.Button
	openButton      *widget.Button
	saveButton      *widget.Button
	quickOpenButton *widget.Button

	// Event handlers
	newHandler       func()
	openHandler      func()
	saveHandler      func()
	quickOpenHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents() {
	t.newButton = widget.NewButton("New", nil)

	t.openButton = widget.NewButton("Open", nil)
	t.openButton.Importance = widget.HighImportance

	t.saveButton = widget.NewButton("Save", nil)
	t.saveButton.Importance = widget.HighImportance

	t.quickOpenButton = widget.NewButton("Recent...", nil)
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.newButton,
		t.openButton,
		t.saveButton,
		widget.NewSeparator(),
		t.quickOpenButton,
	)
}

// setupEventHandlers connects button events
func (t *Toolbar) setupEventHandlers() {
	t.newButton.OnTapped = func() {
		if t.newHandler != nil {
			t.newHandler()
		}
	}

	t.openButton.OnTapped = func() {
		if t.openHandler != nil {
			t.openHandler()
		}
	}

	t.saveButton.OnTapped = func() {
		if t.saveHandler != nil {
			t.saveHandler()
		}
	}

	t.quickOpenButton.OnTapped = func() {
		if t.quickOpenHandler != nil {
			t.quickOpenHandler()
		}
	}
}

// SetNewHandler sets the handler for new-tab requests
func (t *Toolbar) SetNewHandler(handler func()) {
	t.newHandler = handler
}

// SetOpenHandler sets the handler for open-file requests
func (t *Toolbar) SetOpenHandler(handler func()) {
	t.openHandler = handler
}

// SetSaveHandler sets the handler for save requests
func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

// SetQuickOpenHandler sets the handler for the recent-files picker
func (t *Toolbar) SetQuickOpenHandler(handler func()) {
	t.quickOpenHandler = handler
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
