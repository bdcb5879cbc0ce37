// Package theme provides the dark and light editor themes. The dark palette
// follows the classic VS-Code-like notepad colors: #2d2d2d chrome, #1e1e1e
// input background, white text.
package theme

import (
	"image/color"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Dark palette.
var (
	darkBackground = color.NRGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff}
	darkInput      = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	darkForeground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	darkAccent     = color.NRGBA{R: 0x3e, G: 0x3e, B: 0x3e, A: 0xff}
	darkScrollBar  = color.NRGBA{R: 0x5a, G: 0x5a, B: 0x5a, A: 0xff}
)

// EditorTheme is a fyne.Theme with a fixed variant, configurable text size
// and an optional font face, so the settings file controls them independently
// of the OS. A nil font falls back to the bundled default.
type EditorTheme struct {
	dark     bool
	fontSize float32
	font     fyne.Resource
}

// NewDark returns the dark editor theme.
func NewDark(fontSize int, font fyne.Resource) *EditorTheme {
	return &EditorTheme{dark: true, fontSize: float32(fontSize), font: font}
}

// NewLight returns the light editor theme.
func NewLight(fontSize int, font fyne.Resource) *EditorTheme {
	return &EditorTheme{dark: false, fontSize: float32(fontSize), font: font}
}

// LoadFont reads a TTF/OTF file into a resource usable as the editor font.
func LoadFont(path string) (fyne.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(filepath.Base(path), data), nil
}

func (t *EditorTheme) variant() fyne.ThemeVariant {
	if t.dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color implements fyne.Theme.
func (t *EditorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if t.dark {
		switch name {
		case theme.ColorNameBackground:
			return darkBackground
		case theme.ColorNameInputBackground:
			return darkInput
		case theme.ColorNameForeground:
			return darkForeground
		case theme.ColorNameButton, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
			return darkAccent
		case theme.ColorNameScrollBar:
			return darkScrollBar
		}
	}
	return theme.DefaultTheme().Color(name, t.variant())
}

// Font implements fyne.Theme.
func (t *EditorTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil {
		return t.font
	}
	return theme.DefaultTheme().Font(style)
}

// Icon implements fyne.Theme.
func (t *EditorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size implements fyne.Theme.
func (t *EditorTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.fontSize > 0 {
		return t.fontSize
	}
	return theme.DefaultTheme().Size(name)
}
