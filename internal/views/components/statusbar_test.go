package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestSetDocumentInfoCountsLinesAndChars(t *testing.T) {
	test.NewApp()
	sb := NewStatusBar()

	sb.SetDocumentInfo("a.txt", "one\ntwo", true)

	assert.Equal(t, "a.txt | 2 lines, 7 chars [modified]", sb.documentInfo.Text)
}

func TestSetDocumentInfoCleanBuffer(t *testing.T) {
	test.NewApp()
	sb := NewStatusBar()

	sb.SetDocumentInfo("a.txt", "", false)

	assert.Equal(t, "a.txt | 1 lines, 0 chars", sb.documentInfo.Text)
}

func TestResetRestoresInitialState(t *testing.T) {
	test.NewApp()
	sb := NewStatusBar()
	sb.SetStatus("Saved /tmp/a.txt")
	sb.SetDocumentInfo("a.txt", "draft", true)

	sb.Reset()

	assert.Equal(t, "Ready", sb.GetStatus())
	assert.Equal(t, "No document", sb.documentInfo.Text)
}
