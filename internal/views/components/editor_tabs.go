package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// EditorTabs wraps a DocTabs container holding one multi-line entry per open
// document. Tab indices mirror the session manager's buffer order; the
// controller keeps the two aligned.
type EditorTabs struct {
	tabs    *container.DocTabs
	entries []*widget.Entry
	wrap    bool
	tabSize int

	// Event handlers
	textChangedHandler    func(index int, content string)
	selectedHandler       func(index int)
	closeRequestedHandler func(index int)

	// Guards against change events fired by programmatic SetText calls.
	muted bool
}

// NewEditorTabs creates an empty tab container
func NewEditorTabs() *EditorTabs {
	et := &EditorTabs{wrap: true, tabSize: 4}
	et.tabs = container.NewDocTabs()
	et.tabs.SetTabLocation(container.TabLocationTop)

	et.tabs.OnSelected = func(item *container.TabItem) {
		if et.selectedHandler != nil {
			et.selectedHandler(et.indexOf(item))
		}
	}

	// Route close-button clicks to the controller instead of removing the
	// tab directly; unsaved buffers need a confirmation round-trip first.
	et.tabs.CloseIntercept = func(item *container.TabItem) {
		if et.closeRequestedHandler != nil {
			et.closeRequestedHandler(et.indexOf(item))
		}
	}

	return et
}

// AddTab appends a tab with the given title and content and returns its index
func (et *EditorTabs) AddTab(title, content string) int {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = et.wrapping()
	entry.TextStyle = et.textStyle()

	et.muted = true
	entry.SetText(content)
	et.muted = false

	item := container.NewTabItem(title, entry)
	et.tabs.Append(item)
	et.entries = append(et.entries, entry)
	index := len(et.entries) - 1

	entry.OnChanged = func(text string) {
		if et.muted {
			return
		}
		if et.textChangedHandler != nil {
			et.textChangedHandler(et.indexOfEntry(entry), text)
		}
	}

	return index
}

// RemoveTab removes the tab at index
func (et *EditorTabs) RemoveTab(index int) {
	if index < 0 || index >= len(et.entries) {
		return
	}
	et.tabs.RemoveIndex(index)
	et.entries = append(et.entries[:index], et.entries[index+1:]...)
}

// SelectTab activates the tab at index
func (et *EditorTabs) SelectTab(index int) {
	if index < 0 || index >= len(et.entries) {
		return
	}
	et.tabs.SelectIndex(index)
}

// SelectedIndex returns the active tab index, -1 when empty
func (et *EditorTabs) SelectedIndex() int {
	return et.tabs.SelectedIndex()
}

// SetTitle updates the caption of the tab at index
func (et *EditorTabs) SetTitle(index int, title string) {
	if index < 0 || index >= len(et.tabs.Items) {
		return
	}
	et.tabs.Items[index].Text = title
	et.tabs.Refresh()
}

// SetWordWrap applies the word-wrap setting to all open entries
func (et *EditorTabs) SetWordWrap(wrap bool) {
	et.wrap = wrap
	for _, entry := range et.entries {
		entry.Wrapping = et.wrapping()
		entry.Refresh()
	}
}

// WordWrap reports the current word-wrap setting
func (et *EditorTabs) WordWrap() bool {
	return et.wrap
}

// SetTabSize applies the tab-stop width to all open entries
func (et *EditorTabs) SetTabSize(size int) {
	et.tabSize = size
	for _, entry := range et.entries {
		entry.TextStyle = et.textStyle()
		entry.Refresh()
	}
}

// Count returns the number of open tabs
func (et *EditorTabs) Count() int {
	return len(et.entries)
}

// SetTextChangedHandler sets the handler for user edits
func (et *EditorTabs) SetTextChangedHandler(handler func(index int, content string)) {
	et.textChangedHandler = handler
}

// SetSelectedHandler sets the handler for tab activation
func (et *EditorTabs) SetSelectedHandler(handler func(index int)) {
	et.selectedHandler = handler
}

// SetCloseRequestedHandler sets the handler for tab close-button clicks
func (et *EditorTabs) SetCloseRequestedHandler(handler func(index int)) {
	et.closeRequestedHandler = handler
}

// GetContainer returns the tab container
func (et *EditorTabs) GetContainer() *container.DocTabs {
	return et.tabs
}

func (et *EditorTabs) textStyle() fyne.TextStyle {
	return fyne.TextStyle{Monospace: true, TabWidth: et.tabSize}
}

func (et *EditorTabs) wrapping() fyne.TextWrap {
	if et.wrap {
		return fyne.TextWrapWord
	}
	return fyne.TextWrapOff
}

func (et *EditorTabs) indexOf(item *container.TabItem) int {
	for i, it := range et.tabs.Items {
		if it == item {
			return i
		}
	}
	return -1
}

func (et *EditorTabs) indexOfEntry(entry *widget.Entry) int {
	for i, e := range et.entries {
		if e == entry {
			return i
		}
	}
	return -1
}
